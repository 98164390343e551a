// Command fusionbench compares the named baseline weightings (equal,
// accuracy, reliability, inverse-magnitude, composite) in closed form over
// a fixed five-system cohort, and reports how each blend would fare
// against real per-pair trading statistics.
package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ninjahangover/signalcartel-alien/fusion"
	"github.com/ninjahangover/signalcartel-alien/types"
)

// pairStats is the recorded per-pair performance the analysis is anchored
// to: trade count, mean and standard deviation of per-trade P&L in dollars.
type pairStats struct {
	pair   string
	trades int
	mean   decimal.Decimal
	std    decimal.Decimal
}

var recorded = []pairStats{
	{"WLFIUSD", 35, decimal.NewFromFloat(1.093636), decimal.NewFromFloat(0.531818)},
	{"ETHUSD", 16, decimal.NewFromFloat(-0.002583), decimal.NewFromFloat(0.102576)},
	{"AVAXUSD", 12, decimal.NewFromFloat(0.001262), decimal.NewFromFloat(0.141156)},
	{"SOLUSD", 7, decimal.NewFromFloat(0.030408), decimal.NewFromFloat(0.070775)},
	{"BTCUSD", 5, decimal.NewFromFloat(-0.002010), decimal.NewFromFloat(0.049985)},
}

// cohort holds the five-system characteristics the closed-form comparison
// blends. Magnitude ranges are collapsed to each system's average move.
var cohort = []types.StrategyProfile{
	{Name: "Pine Script", Accuracy: 0.65, MinMagnitude: 0.012, MaxMagnitude: 0.012, Reliability: 0.75},
	{Name: "Markov Chain", Accuracy: 0.70, MinMagnitude: 0.015, MaxMagnitude: 0.015, Reliability: 0.80},
	{Name: "Math Intuition", Accuracy: 0.80, MinMagnitude: 0.008, MaxMagnitude: 0.008, Reliability: 0.70},
	{Name: "Bayesian", Accuracy: 0.75, MinMagnitude: 0.018, MaxMagnitude: 0.018, Reliability: 0.85},
	{Name: "Sentiment", Accuracy: 0.60, MinMagnitude: 0.025, MaxMagnitude: 0.025, Reliability: 0.60},
}

func main() {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	costs := fusion.CostModelFromEnv()

	fmt.Println("BASELINE WEIGHTING COMPARISON")
	fmt.Println(strings.Repeat("=", 80))

	fmt.Println("\nRECORDED SYSTEM PERFORMANCE:")
	fmt.Println(strings.Repeat("-", 50))
	totalTrades := 0
	weightedPnL := decimal.Zero
	for _, p := range recorded {
		totalTrades += p.trades
		weightedPnL = weightedPnL.Add(p.mean.Mul(decimal.NewFromInt(int64(p.trades))))
		fmt.Printf("%-8s: %3d trades, mean $%s, std $%s\n",
			p.pair, p.trades, p.mean.StringFixed(4), p.std.StringFixed(4))
	}
	meanPnL := weightedPnL.Div(decimal.NewFromInt(int64(totalTrades)))
	netPnL := meanPnL.Sub(costs.Commission)
	fmt.Printf("\nTotal trades: %d\n", totalTrades)
	fmt.Printf("Weighted mean PnL: $%s\n", meanPnL.StringFixed(6))
	fmt.Printf("Net per trade after $%s commission: $%s\n",
		costs.Commission.StringFixed(2), netPnL.StringFixed(6))

	fmt.Println("\nSYSTEM CHARACTERISTICS:")
	fmt.Println(strings.Repeat("-", 50))
	for _, p := range cohort {
		fmt.Printf("%-15s: Accuracy %.1f%%, Avg Magnitude %.1f%%, Reliability %.1f%%\n",
			p.Name, p.Accuracy*100, p.AvgMagnitude()*100, p.Reliability*100)
	}

	cases := []struct {
		name    string
		weights []float64
	}{
		{"Equal Weight", fusion.EqualWeights(len(cohort))},
		{"Accuracy Weight", fusion.AccuracyWeights(cohort)},
		{"Reliability Weight", fusion.ReliabilityWeights(cohort)},
		{"Anti-Magnitude Weight", fusion.InverseMagnitudeWeights(cohort)},
		{"Composite Weight", fusion.CompositeWeights(cohort)},
	}

	fmt.Println("\nCLOSED-FORM PORTFOLIO RESULTS:")
	fmt.Println(strings.Repeat("-", 50))

	type outcome struct {
		name string
		perf fusion.ExpectedPerformance
	}
	results := make([]outcome, 0, len(cases))
	for _, c := range cases {
		perf, err := fusion.ExpectedPortfolio(cohort, c.weights, costs)
		if err != nil {
			log.Fatalf("blending %s: %v", c.name, err)
		}
		results = append(results, outcome{c.name, perf})
		fmt.Printf("%-21s: Expected PnL $%+.4f, Risk-Adjusted %+.4f\n", c.name, perf.ExpectedPnL, perf.RiskAdjusted)
		fmt.Printf("%-21s  Weights: %s\n", "", formatWeights(c.weights))
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.perf.RiskAdjusted > best.perf.RiskAdjusted {
			best = r
		}
	}
	baseline := results[0]

	fmt.Println("\nCONCLUSION:")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Best weighting: %s\n", best.name)
	improvement := best.perf.RiskAdjusted - baseline.perf.RiskAdjusted
	fmt.Printf("Risk-adjusted improvement over equal weighting: %+.4f\n", improvement)

	if improvement > 0 && best.perf.ExpectedPnL > 0 {
		// Trades needed for the expected edge to cover one commission.
		breakeven := math.Abs(costs.Commission.InexactFloat64() / best.perf.ExpectedPnL)
		fmt.Printf("\nBreakeven: the %s blend needs %.0f winning trades to cover one commission.\n",
			best.name, math.Ceil(breakeven))
	} else {
		fmt.Println("\nNo weighting shows a clear advantage; the systems may be too similar,")
		fmt.Println("or commissions too high relative to signal quality.")
	}
}

func formatWeights(weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = fmt.Sprintf("%.3f", w)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
