// Command fusionproof runs the full strategy-catalog demonstration: it
// prints each strategy's mathematical properties and uniqueness scores,
// then simulates individual and fused performance to show the additive
// value of combining strategies.
package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ninjahangover/signalcartel-alien/fusion"
	"github.com/ninjahangover/signalcartel-alien/sim"
	"github.com/ninjahangover/signalcartel-alien/strategy"
)

const simulations = 1000

func main() {
	if err := godotenv.Load(); err != nil {
		// If .env file doesn't exist, log a warning but continue
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	costs := fusion.CostModelFromEnv()
	cfg := fusion.DefaultConfig()
	gate := sim.DefaultGate()
	rng := rand.New(rand.NewSource(sim.DefaultSeed))

	catalog := strategy.Catalog()
	profiles := strategy.Profiles(catalog)

	fmt.Println("ADVANCED TENSOR FUSION - STRATEGY CONTRIBUTION ANALYSIS")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Position size $%s, commission $%s per trade\n\n",
		costs.PositionSize.StringFixed(2), costs.Commission.StringFixed(2))

	fmt.Println("STRATEGY MATHEMATICAL PROPERTIES:")
	fmt.Println(strings.Repeat("-", 50))
	for _, p := range profiles {
		fmt.Printf("%-25s: %s\n", p.Name, p.MathDomain)
		fmt.Printf("%-25s  Specialty: %s\n", "", p.Specialty)
		fmt.Printf("%-25s  Accuracy: %.1f%%, Magnitude: %.1f%%-%.1f%%\n\n",
			"", p.Accuracy*100, p.MinMagnitude*100, p.MaxMagnitude*100)
	}

	fmt.Println("UNIQUENESS SCORES:")
	fmt.Println(strings.Repeat("-", 50))
	for _, score := range fusion.UniquenessScores(profiles) {
		fmt.Printf("%-25s: Total %.3f\n", score.Name, score.Total)
		fmt.Printf("%-25s  Domain: %s\n", "", score.MathDomain)
		fmt.Printf("%-25s  Specialty: %.3f, Performance: %.3f\n\n",
			"", score.Specialty, score.Performance)
	}

	states := sim.RandomMarketStates(simulations, rng)
	outcomes := sim.RandomOutcomes(simulations, rng)

	fmt.Printf("INDIVIDUAL STRATEGY PERFORMANCE (%d simulations):\n", simulations)
	fmt.Println(strings.Repeat("-", 50))

	var bestIndividual sim.IndividualResult
	for i, s := range catalog {
		result, err := sim.RunIndividual(s, states, outcomes, costs, rng)
		if err != nil {
			log.Fatalf("individual run for %s: %v", s.Name(), err)
		}
		fmt.Printf("%-25s: Profit $%+.4f/trade, Accuracy %.1f%%\n",
			result.Name, result.AvgPnL, result.Accuracy*100)
		if i == 0 || result.AvgPnL > bestIndividual.AvgPnL {
			bestIndividual = result
		}
	}

	combinations := []struct {
		name  string
		names []string
	}{
		{"Advanced Only", []string{strategy.NameGPUNeural, strategy.NameQuantumSupremacy, strategy.NameOrderBookAI}},
		{"Full Advanced", []string{strategy.NameGPUNeural, strategy.NameQuantumSupremacy, strategy.NameOrderBookAI, strategy.NameMarkovPredictor, strategy.NameProfitOptimizer}},
		{"All Strategies", strategy.CatalogNames()},
		{"Basic Only", []string{strategy.NamePineScriptRSI, strategy.NameMathIntuition}},
	}

	fmt.Println("\nFUSED COMBINATIONS (gated trades):")
	fmt.Println(strings.Repeat("-", 50))

	results := make(map[string]sim.CombinationResult, len(combinations))
	var bestCombination sim.CombinationResult
	for i, combo := range combinations {
		result, err := sim.RunCombination(combo.name, strategy.Subset(combo.names...), states, outcomes, costs, cfg, gate, rng)
		if err != nil {
			log.Fatalf("combination %s: %v", combo.name, err)
		}
		results[combo.name] = result
		fmt.Printf("%-15s: $%+.4f/trade, %.1f%% accuracy, %d trades\n",
			result.Name, result.AvgPnL, result.Accuracy*100, result.Trades)
		if i == 0 || result.AvgPnL > bestCombination.AvgPnL {
			bestCombination = result
		}
	}

	fmt.Println("\nCONCLUSIONS:")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Best individual strategy: %s ($%+.4f/trade)\n", bestIndividual.Name, bestIndividual.AvgPnL)
	fmt.Printf("Best fused combination:   %s ($%+.4f/trade)\n", bestCombination.Name, bestCombination.AvgPnL)

	improvement := bestCombination.AvgPnL - bestIndividual.AvgPnL
	fmt.Printf("Improvement:              $%+.4f/trade\n", improvement)
	if improvement > 0 {
		fmt.Println("\nFusion outperformed every individual strategy on this run.")
	} else {
		fmt.Println("\nNo clear fusion advantage on this run; strategies may be too correlated.")
	}

	advanced := results["Full Advanced"]
	basic := results["Basic Only"]
	saved := costs.Commission.Mul(decimal.NewFromInt(int64(basic.Trades - advanced.Trades)))
	fmt.Println("\nCOMMISSION RESISTANCE:")
	fmt.Printf("Advanced strategies traded %d times (selective), basic %d times\n",
		advanced.Trades, basic.Trades)
	fmt.Printf("Commission saved by selectivity: $%s\n", saved.StringFixed(2))
}
