// Command fusionvalidate simulates a cohort of imperfect prediction
// systems over a seeded dataset, optimizes the fusion weights for the
// Sharpe-like ratio, and compares the result against each individual
// system and the equal-weight baseline.
package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gonum.org/v1/gonum/stat"

	"github.com/ninjahangover/signalcartel-alien/fusion"
	"github.com/ninjahangover/signalcartel-alien/sim"
)

const (
	systemCount  = 5
	observations = 200
)

func main() {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	costs := fusion.CostModelFromEnv()
	cfg := fusion.DefaultConfig()
	rng := rand.New(rand.NewSource(sim.DefaultSeed))

	systems := sim.RandomSystems(systemCount, rng)
	ds := sim.GenerateDataset(systems, observations, rng)

	fmt.Println("TENSOR FUSION VALIDATION")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%d systems, %d observations, position $%s, commission $%s\n\n",
		systemCount, observations, costs.PositionSize.StringFixed(2), costs.Commission.StringFixed(2))

	fmt.Println("INDIVIDUAL SYSTEM PERFORMANCE:")
	fmt.Println(strings.Repeat("-", 50))
	for i, system := range systems {
		soloWeights := make([]float64, systemCount)
		soloWeights[i] = 1.0

		perf, err := fusion.Evaluate(ds, soloWeights, costs, cfg)
		if err != nil {
			log.Fatalf("evaluating %s: %v", system.Name, err)
		}
		fmt.Printf("%s (accuracy %.1f%%):\n", system.Name, system.Accuracy*100)
		fmt.Printf("  Direction accuracy: %.1f%%\n", perf.DirectionAccuracy*100)
		fmt.Printf("  Mean PnL: $%.4f, Sharpe: %.4f\n\n", perf.MeanPnL, perf.SharpeRatio)
	}

	fmt.Println("WEIGHT OPTIMIZATION:")
	fmt.Println(strings.Repeat("-", 50))
	optimal, optimalPerf, err := fusion.OptimizeWeights(ds, costs, cfg, fusion.OptimizerConfig{})
	if err != nil {
		log.Fatalf("optimizing weights: %v", err)
	}
	fmt.Printf("Optimal weights: %s\n\n", formatWeights(optimal))

	fmt.Println("OPTIMIZED FUSION PERFORMANCE:")
	printPerformance(optimalPerf)

	equal := fusion.EqualWeights(systemCount)
	equalPerf, err := fusion.Evaluate(ds, equal, costs, cfg)
	if err != nil {
		log.Fatalf("evaluating equal weights: %v", err)
	}
	fmt.Println("EQUAL WEIGHTING BASELINE:")
	printPerformance(equalPerf)

	improvement := optimalPerf.TotalPnL.Sub(equalPerf.TotalPnL)
	fmt.Println("IMPROVEMENT OVER BASELINE:")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Total PnL improvement:  $%s\n", improvement.StringFixed(2))
	fmt.Printf("Sharpe improvement:     %.4f\n", optimalPerf.SharpeRatio-equalPerf.SharpeRatio)

	accuracies := make([]float64, systemCount)
	for i, system := range systems {
		accuracies[i] = system.Accuracy
	}
	fmt.Printf("Weight-accuracy correlation: %.4f\n\n", stat.Correlation(optimal, accuracies, nil))

	if improvement.IsPositive() && optimalPerf.SharpeRatio > equalPerf.SharpeRatio {
		fmt.Println("The optimizer found a measurably better weight combination.")
	} else {
		fmt.Println("No clear advantage over equal weighting on this dataset.")
	}
}

func printPerformance(p fusion.Performance) {
	fmt.Printf("  Direction accuracy: %.1f%%\n", p.DirectionAccuracy*100)
	fmt.Printf("  Mean PnL: $%.4f (std $%.4f)\n", p.MeanPnL, p.StdPnL)
	fmt.Printf("  Sharpe: %.4f, Total PnL: $%s\n\n", p.SharpeRatio, p.TotalPnL.StringFixed(2))
}

func formatWeights(weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = fmt.Sprintf("%.3f", w)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
