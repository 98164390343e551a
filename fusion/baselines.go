package fusion

import (
	"github.com/ninjahangover/signalcartel-alien/types"
)

// Named baseline weightings computed from strategy profiles, for comparison
// against optimized weights. Each returns a vector in the closed simplex;
// a degenerate score vector falls back to uniform via NormalizeWeights.

// EqualWeights returns the uniform weight vector of length n.
func EqualWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	return weights
}

// AccuracyWeights weights each strategy by its historical accuracy.
func AccuracyWeights(profiles []types.StrategyProfile) []float64 {
	scores := make([]float64, len(profiles))
	for i, p := range profiles {
		scores[i] = p.Accuracy
	}
	return NormalizeWeights(scores)
}

// ReliabilityWeights weights each strategy by its consistency.
func ReliabilityWeights(profiles []types.StrategyProfile) []float64 {
	scores := make([]float64, len(profiles))
	for i, p := range profiles {
		scores[i] = p.Reliability
	}
	return NormalizeWeights(scores)
}

// InverseMagnitudeWeights favors strategies that predict smaller, more
// frequent moves by weighting each one by the reciprocal of its average
// predicted magnitude.
func InverseMagnitudeWeights(profiles []types.StrategyProfile) []float64 {
	scores := make([]float64, len(profiles))
	for i, p := range profiles {
		if m := p.AvgMagnitude(); m > 0 {
			scores[i] = 1 / m
		}
	}
	return NormalizeWeights(scores)
}

// CompositeWeights weights each strategy by accuracy * reliability / average
// magnitude, blending the hit rate, consistency and anti-magnitude views.
func CompositeWeights(profiles []types.StrategyProfile) []float64 {
	scores := make([]float64, len(profiles))
	for i, p := range profiles {
		if m := p.AvgMagnitude(); m > 0 {
			scores[i] = p.Accuracy * p.Reliability / m
		}
	}
	return NormalizeWeights(scores)
}
