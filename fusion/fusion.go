package fusion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ninjahangover/signalcartel-alien/types"
)

// DefaultEntropyFloor is the floor applied inside the log when computing
// information content, so that a zero confidence does not produce -Inf.
const DefaultEntropyFloor = 0.001

// Config holds the tunable constants of the fusion computation.
type Config struct {
	// EntropyFloor is the minimum value fed to log2 in InformationContent.
	EntropyFloor float64
}

// DefaultConfig returns the fusion configuration with standard constants.
func DefaultConfig() Config {
	return Config{EntropyFloor: DefaultEntropyFloor}
}

// InputShapeError reports a mismatch between signal and weight counts.
type InputShapeError struct {
	Signals int
	Weights int
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("input shape mismatch: %d signals, %d weights", e.Signals, e.Weights)
}

// FusedSignal is the weighted combination of a set of signals at one observation.
type FusedSignal struct {
	Confidence  float64 `json:"confidence"`
	Direction   int     `json:"direction"`
	Magnitude   float64 `json:"magnitude"`
	Coherence   float64 `json:"coherence"`
	Information float64 `json:"information"`
	Inputs      int     `json:"inputs"`
}

// NormalizeWeights scales weights so they sum to 1.
// A zero (or negative-degenerate) total falls back to uniform weights.
func NormalizeWeights(weights []float64) []float64 {
	normalized := make([]float64, len(weights))
	total := floats.Sum(weights)
	if total <= 0 {
		for i := range normalized {
			normalized[i] = 1 / float64(len(weights))
		}
		return normalized
	}
	for i, w := range weights {
		normalized[i] = w / total
	}
	return normalized
}

// Fuse combines n signals under n non-negative weights into a single signal.
//
// The fused direction is the sign of the confidence-weighted direction sum.
// A sum of exactly zero resolves long: with perfectly opposed inputs there
// is no information either way, and the tie-break must be deterministic.
func Fuse(signals []types.Signal, weights []float64, cfg Config) (FusedSignal, error) {
	if len(signals) != len(weights) {
		return FusedSignal{}, &InputShapeError{Signals: len(signals), Weights: len(weights)}
	}
	if len(signals) == 0 {
		return FusedSignal{}, fmt.Errorf("no signals to fuse")
	}

	normalized := NormalizeWeights(weights)

	var confidence, directionSum, magnitude float64
	for i, s := range signals {
		w := normalized[i]
		confidence += s.Confidence * w
		directionSum += float64(s.Direction) * s.Confidence * w
		magnitude += s.Magnitude * s.Confidence * w
	}

	direction := types.DirectionLong
	if directionSum < 0 {
		direction = types.DirectionShort
	}

	return FusedSignal{
		Confidence:  confidence,
		Direction:   direction,
		Magnitude:   magnitude,
		Coherence:   Coherence(signals),
		Information: InformationContent(signals, cfg.EntropyFloor),
		Inputs:      len(signals),
	}, nil
}

// Coherence measures directional agreement among signals, independent of
// confidence weighting. It is 1 when all directions agree and decreases
// toward 0 as they diverge, clamped to [0,1].
func Coherence(signals []types.Signal) float64 {
	if len(signals) == 0 {
		return 0
	}

	directions := make([]float64, len(signals))
	for i, s := range signals {
		directions[i] = float64(s.Direction)
	}

	variance := stat.PopVariance(directions, nil)
	coherence := 1 - math.Sqrt(variance)
	if coherence < 0 {
		return 0
	}
	if coherence > 1 {
		return 1
	}
	return coherence
}

// InformationContent is a Shannon-entropy style score over signal
// confidences, -sum(c * log2(max(floor, c))). It is a reporting
// diagnostic only and never feeds back into the fusion result.
func InformationContent(signals []types.Signal, floor float64) float64 {
	if floor <= 0 {
		floor = DefaultEntropyFloor
	}

	var content float64
	for _, s := range signals {
		if s.Confidence <= 0 {
			continue
		}
		content -= s.Confidence * math.Log2(math.Max(floor, s.Confidence))
	}
	return content
}
