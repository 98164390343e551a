package fusion

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Performance aggregates the statistics of a simulated trade sequence.
type Performance struct {
	DirectionAccuracy float64         `json:"direction_accuracy"`
	MeanPnL           float64         `json:"mean_pnl"`
	StdPnL            float64         `json:"std_pnl"`
	SharpeRatio       float64         `json:"sharpe_ratio"`
	MagnitudeRMSE     float64         `json:"magnitude_rmse"`
	TotalPnL          decimal.Decimal `json:"total_pnl"`
	Trades            int             `json:"trades"`
}

// Evaluate fuses every observation in the dataset under the given weight
// vector, simulates the resulting trades against the recorded outcomes,
// and returns the aggregate performance.
func Evaluate(ds *Dataset, weights []float64, costs CostModel, cfg Config) (Performance, error) {
	n := ds.Observations()
	if n == 0 {
		return Performance{}, fmt.Errorf("dataset has no observations")
	}

	pnl := make([]float64, n)
	total := decimal.Zero
	var correct int
	var squaredError float64

	for t := 0; t < n; t++ {
		fused, err := ds.FuseRow(t, weights, cfg)
		if err != nil {
			return Performance{}, fmt.Errorf("observation %d: %w", t, err)
		}

		actual := ds.Outcomes[t]
		if fused.Direction == actual.Direction {
			correct++
		}
		squaredError += (fused.Magnitude - actual.Magnitude) * (fused.Magnitude - actual.Magnitude)

		trade := costs.TradePnL(fused.Direction, actual)
		total = total.Add(trade)
		pnl[t] = trade.InexactFloat64()
	}

	mean := stat.Mean(pnl, nil)
	std := stat.PopStdDev(pnl, nil)

	return Performance{
		DirectionAccuracy: float64(correct) / float64(n),
		MeanPnL:           mean,
		StdPnL:            std,
		SharpeRatio:       SharpeRatio(mean, std),
		MagnitudeRMSE:     math.Sqrt(squaredError / float64(n)),
		TotalPnL:          total,
		Trades:            n,
	}, nil
}

// SharpeRatio is the simplified risk-adjusted return proxy used throughout
// this repository: mean over standard deviation, zero when the standard
// deviation is zero.
func SharpeRatio(mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return mean / std
}
