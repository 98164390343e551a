package fusion

import (
	"fmt"

	"github.com/ninjahangover/signalcartel-alien/types"
)

// volatilityFraction estimates the volatility of a blended position as a
// fraction of its expected move size.
const volatilityFraction = 0.5

// ExpectedPerformance is the closed-form analog of Evaluate: instead of
// simulating trades it blends the cohort's historical characteristics
// under a weight vector and computes the expected P&L directly.
type ExpectedPerformance struct {
	Accuracy     float64 `json:"accuracy"`
	Magnitude    float64 `json:"magnitude"`
	Reliability  float64 `json:"reliability"`
	ExpectedPnL  float64 `json:"expected_pnl"`  // dollars per trade
	RiskAdjusted float64 `json:"risk_adjusted"` // expected P&L over estimated volatility
}

// ExpectedPortfolio blends strategy profiles under the given weights and
// returns the expected per-trade performance of the blend. Wins and losses
// are assumed symmetric at the blended magnitude.
func ExpectedPortfolio(profiles []types.StrategyProfile, weights []float64, costs CostModel) (ExpectedPerformance, error) {
	if len(profiles) != len(weights) {
		return ExpectedPerformance{}, &InputShapeError{Signals: len(profiles), Weights: len(weights)}
	}
	if len(profiles) == 0 {
		return ExpectedPerformance{}, fmt.Errorf("no profiles to blend")
	}

	normalized := NormalizeWeights(weights)

	var accuracy, magnitude, reliability float64
	for i, p := range profiles {
		w := normalized[i]
		accuracy += w * p.Accuracy
		magnitude += w * p.AvgMagnitude()
		reliability += w * p.Reliability
	}

	position := costs.PositionSize.InexactFloat64()
	commission := costs.Commission.InexactFloat64()

	move := magnitude * position
	expected := accuracy*move - (1-accuracy)*move - commission
	volatility := move * volatilityFraction

	return ExpectedPerformance{
		Accuracy:     accuracy,
		Magnitude:    magnitude,
		Reliability:  reliability,
		ExpectedPnL:  expected,
		RiskAdjusted: SharpeRatio(expected, volatility),
	}, nil
}
