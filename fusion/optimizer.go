package fusion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// DefaultMaxEvaluations bounds the objective evaluations of a weight search.
const DefaultMaxEvaluations = 2000

// OptimizerConfig holds the tunable constants of the weight search.
type OptimizerConfig struct {
	// MaxEvaluations caps objective evaluations; <= 0 means the default.
	MaxEvaluations int
}

// OptimizeWeights searches for the weight vector in the closed simplex
// (w_i >= 0, sum w = 1) that maximizes the Sharpe-like ratio of simulated
// P&L over the dataset. The optimizer runs over an unconstrained
// parameterization and every candidate is mapped back onto the simplex, so
// the returned weights satisfy the constraint regardless of how the search
// terminated. The dataset evaluation is a black box to the search.
func OptimizeWeights(ds *Dataset, costs CostModel, cfg Config, opt OptimizerConfig) ([]float64, Performance, error) {
	n := ds.Strategies()
	if n == 0 {
		return nil, Performance{}, fmt.Errorf("dataset has no strategies")
	}
	if ds.Observations() == 0 {
		return nil, Performance{}, fmt.Errorf("dataset has no observations")
	}

	maxEvals := opt.MaxEvaluations
	if maxEvals <= 0 {
		maxEvals = DefaultMaxEvaluations
	}

	objective := func(x []float64) float64 {
		perf, err := Evaluate(ds, simplexWeights(x), costs, cfg)
		if err != nil {
			return math.Inf(1)
		}
		return -perf.SharpeRatio
	}

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{FuncEvaluations: maxEvals}

	x0 := EqualWeights(n)
	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})

	weights := x0
	if result != nil && len(result.X) == n && !anyNaN(result.X) {
		weights = simplexWeights(result.X)
	} else if err != nil {
		return nil, Performance{}, fmt.Errorf("weight search failed: %w", err)
	}

	perf, evalErr := Evaluate(ds, weights, costs, cfg)
	if evalErr != nil {
		return nil, Performance{}, evalErr
	}
	return weights, perf, nil
}

// simplexWeights maps an unconstrained parameter vector onto the closed
// simplex by taking absolute values and normalizing. An all-zero vector
// maps to uniform weights.
func simplexWeights(x []float64) []float64 {
	abs := make([]float64, len(x))
	for i, v := range x {
		abs[i] = math.Abs(v)
	}
	if floats.Sum(abs) == 0 {
		return EqualWeights(len(x))
	}
	return NormalizeWeights(abs)
}

func anyNaN(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
