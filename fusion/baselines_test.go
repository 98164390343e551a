package fusion

import (
	"testing"

	"github.com/ninjahangover/signalcartel-alien/types"
)

var baselineProfiles = []types.StrategyProfile{
	{Name: "A", Accuracy: 0.65, MinMagnitude: 0.012, MaxMagnitude: 0.012, Reliability: 0.75},
	{Name: "B", Accuracy: 0.70, MinMagnitude: 0.015, MaxMagnitude: 0.015, Reliability: 0.80},
	{Name: "C", Accuracy: 0.80, MinMagnitude: 0.008, MaxMagnitude: 0.008, Reliability: 0.70},
	{Name: "D", Accuracy: 0.75, MinMagnitude: 0.018, MaxMagnitude: 0.018, Reliability: 0.85},
	{Name: "E", Accuracy: 0.60, MinMagnitude: 0.025, MaxMagnitude: 0.025, Reliability: 0.60},
}

func TestBaselinesAreSimplexVectors(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{"Equal", EqualWeights(len(baselineProfiles))},
		{"Accuracy", AccuracyWeights(baselineProfiles)},
		{"Reliability", ReliabilityWeights(baselineProfiles)},
		{"InverseMagnitude", InverseMagnitudeWeights(baselineProfiles)},
		{"Composite", CompositeWeights(baselineProfiles)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.weights) != len(baselineProfiles) {
				t.Fatalf("got %d weights, want %d", len(tt.weights), len(baselineProfiles))
			}
			assertSimplex(t, tt.weights)
		})
	}
}

func TestEqualWeights(t *testing.T) {
	weights := EqualWeights(4)
	for i, w := range weights {
		if !almostEqual(w, 0.25, epsilon) {
			t.Errorf("weight[%d] = %v, want 0.25", i, w)
		}
	}
}

func TestAccuracyWeightsProportionality(t *testing.T) {
	profiles := []types.StrategyProfile{
		{Name: "half", Accuracy: 0.4},
		{Name: "double", Accuracy: 0.8},
	}
	weights := AccuracyWeights(profiles)
	if !almostEqual(weights[1], 2*weights[0], epsilon) {
		t.Errorf("weights = %v, want second twice the first", weights)
	}
}

func TestInverseMagnitudeWeightsFavorSmallMoves(t *testing.T) {
	profiles := []types.StrategyProfile{
		{Name: "small", MinMagnitude: 0.005, MaxMagnitude: 0.005},
		{Name: "large", MinMagnitude: 0.020, MaxMagnitude: 0.020},
	}
	weights := InverseMagnitudeWeights(profiles)
	if weights[0] <= weights[1] {
		t.Errorf("weights = %v, want more weight on the small-move strategy", weights)
	}
	// Reciprocal ratio: 1/0.005 vs 1/0.020 is 4:1.
	if !almostEqual(weights[0], 0.8, epsilon) || !almostEqual(weights[1], 0.2, epsilon) {
		t.Errorf("weights = %v, want [0.8 0.2]", weights)
	}
}

func TestCompositeWeights(t *testing.T) {
	profiles := []types.StrategyProfile{
		{Name: "A", Accuracy: 0.8, Reliability: 0.5, MinMagnitude: 0.01, MaxMagnitude: 0.01},
		{Name: "B", Accuracy: 0.6, Reliability: 0.5, MinMagnitude: 0.02, MaxMagnitude: 0.02},
	}
	// Scores: 0.8*0.5/0.01 = 40 and 0.6*0.5/0.02 = 15.
	weights := CompositeWeights(profiles)
	if !almostEqual(weights[0], 40.0/55.0, epsilon) {
		t.Errorf("weight[0] = %v, want %v", weights[0], 40.0/55.0)
	}
	if !almostEqual(weights[1], 15.0/55.0, epsilon) {
		t.Errorf("weight[1] = %v, want %v", weights[1], 15.0/55.0)
	}
}

func TestMagnitudeBaselinesZeroMagnitude(t *testing.T) {
	profiles := []types.StrategyProfile{
		{Name: "degenerate"}, // zero magnitude range
		{Name: "normal", Accuracy: 0.7, Reliability: 0.8, MinMagnitude: 0.01, MaxMagnitude: 0.01},
	}

	for name, weights := range map[string][]float64{
		"InverseMagnitude": InverseMagnitudeWeights(profiles),
		"Composite":        CompositeWeights(profiles),
	} {
		if weights[0] != 0 {
			t.Errorf("%s: zero-magnitude strategy got weight %v, want 0", name, weights[0])
		}
		if !almostEqual(weights[1], 1.0, epsilon) {
			t.Errorf("%s: weights = %v, want all weight on the normal strategy", name, weights)
		}
	}
}
