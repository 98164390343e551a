package sim

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/ninjahangover/signalcartel-alien/fusion"
	"github.com/ninjahangover/signalcartel-alien/strategy"
	"github.com/ninjahangover/signalcartel-alien/types"
)

// Default trade-gate thresholds: a fused combination only trades when the
// signal is confident enough and carries enough information.
const (
	DefaultMinConfidence  = 0.6
	DefaultMinInformation = 2.0
)

// Gate decides which fused signals are worth a trade.
type Gate struct {
	MinConfidence  float64
	MinInformation float64
}

// DefaultGate returns the standard trade gate.
func DefaultGate() Gate {
	return Gate{MinConfidence: DefaultMinConfidence, MinInformation: DefaultMinInformation}
}

// Admits reports whether the gate lets the fused signal trade.
func (g Gate) Admits(f fusion.FusedSignal) bool {
	return f.Confidence > g.MinConfidence && f.Information > g.MinInformation
}

// IndividualResult holds one strategy's standalone simulated performance.
type IndividualResult struct {
	Name     string
	AvgPnL   float64
	Accuracy float64
	TotalPnL decimal.Decimal
	Trades   int
}

// RunIndividual trades a single strategy on every market state, one trade
// per observation, and reports its aggregate performance.
func RunIndividual(s strategy.Strategy, states []types.MarketState, outcomes []types.Outcome, costs fusion.CostModel, rng *rand.Rand) (IndividualResult, error) {
	if len(states) != len(outcomes) {
		return IndividualResult{}, fmt.Errorf("got %d states but %d outcomes", len(states), len(outcomes))
	}
	if len(states) == 0 {
		return IndividualResult{}, fmt.Errorf("no market states to run")
	}

	total := decimal.Zero
	var correct int
	for t, state := range states {
		signal := s.Generate(state, rng)
		if signal.Direction == outcomes[t].Direction {
			correct++
		}
		total = total.Add(costs.TradePnL(signal.Direction, outcomes[t]))
	}

	n := len(states)
	return IndividualResult{
		Name:     s.Name(),
		AvgPnL:   total.InexactFloat64() / float64(n),
		Accuracy: float64(correct) / float64(n),
		TotalPnL: total,
		Trades:   n,
	}, nil
}

// CombinationResult holds the gated, fused performance of a strategy set.
type CombinationResult struct {
	Name       string
	Strategies int
	Trades     int
	Accuracy   float64
	AvgPnL     float64
	TotalPnL   decimal.Decimal
}

// RunCombination fuses the strategies' signals under their priority weights
// on every market state and trades only the observations the gate admits.
func RunCombination(name string, strategies []strategy.Strategy, states []types.MarketState, outcomes []types.Outcome, costs fusion.CostModel, cfg fusion.Config, gate Gate, rng *rand.Rand) (CombinationResult, error) {
	if len(strategies) == 0 {
		return CombinationResult{}, fmt.Errorf("combination %q has no strategies", name)
	}
	if len(states) != len(outcomes) {
		return CombinationResult{}, fmt.Errorf("got %d states but %d outcomes", len(states), len(outcomes))
	}

	weights := strategy.PriorityWeights(strategies)

	total := decimal.Zero
	var trades, correct int
	for t, state := range states {
		signals := make([]types.Signal, len(strategies))
		for i, s := range strategies {
			signals[i] = s.Generate(state, rng)
		}

		fused, err := fusion.Fuse(signals, weights, cfg)
		if err != nil {
			return CombinationResult{}, fmt.Errorf("observation %d: %w", t, err)
		}
		if !gate.Admits(fused) {
			continue
		}

		trades++
		if fused.Direction == outcomes[t].Direction {
			correct++
		}
		total = total.Add(costs.TradePnL(fused.Direction, outcomes[t]))
	}

	result := CombinationResult{
		Name:       name,
		Strategies: len(strategies),
		Trades:     trades,
		TotalPnL:   total,
	}
	if trades > 0 {
		result.Accuracy = float64(correct) / float64(trades)
		result.AvgPnL = total.InexactFloat64() / float64(trades)
	}
	return result, nil
}
