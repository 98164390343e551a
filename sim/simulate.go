// Package sim generates the seeded synthetic datasets and experiments the
// proof binaries run over. Everything here is demonstration plumbing around
// the fusion package; all randomness flows from an explicit source.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ninjahangover/signalcartel-alien/fusion"
	"github.com/ninjahangover/signalcartel-alien/types"
)

// DefaultSeed makes binary runs reproducible end to end.
const DefaultSeed = 42

// magnitudeScale sets the average simulated move to ~2% of price.
const magnitudeScale = 0.02

// minPredictedMagnitude floors a system's magnitude prediction.
const minPredictedMagnitude = 0.001

// SystemTraits describes one simulated prediction system.
type SystemTraits struct {
	Name     string
	Accuracy float64 // probability of calling direction correctly
	Bias     float64 // systematic magnitude over/under-estimation
	Noise    float64 // standard deviation of per-observation noise
}

// RandomSystems draws n systems with accuracy in [0.6,0.9), a small
// systematic bias and a per-system noise level.
func RandomSystems(n int, rng *rand.Rand) []SystemTraits {
	systems := make([]SystemTraits, n)
	for i := range systems {
		systems[i] = SystemTraits{
			Name:     fmt.Sprintf("AI System %d", i+1),
			Accuracy: 0.6 + 0.3*rng.Float64(),
			Bias:     0.1 * (rng.Float64() - 0.5),
			Noise:    0.1 + 0.2*rng.Float64(),
		}
	}
	return systems
}

// GenerateDataset simulates the systems over the given number of
// observations. The true move per observation has a random direction and a
// lognormal magnitude; each system then predicts it imperfectly according
// to its traits.
func GenerateDataset(systems []SystemTraits, observations int, rng *rand.Rand) *fusion.Dataset {
	ds := fusion.NewDataset(observations, len(systems))

	for t := 0; t < observations; t++ {
		trueDirection := types.DirectionLong
		if rng.Float64() <= 0.5 {
			trueDirection = types.DirectionShort
		}
		trueMagnitude := math.Exp(rng.NormFloat64()*0.5) * magnitudeScale

		ds.Outcomes[t] = types.Outcome{Direction: trueDirection, Magnitude: trueMagnitude}

		for i, system := range systems {
			confidence := system.Accuracy + rng.NormFloat64()*system.Noise
			confidence = math.Min(1, math.Max(0, confidence))

			direction := trueDirection
			if rng.Float64() >= system.Accuracy {
				direction = -direction
			}

			magnitude := trueMagnitude*(1+system.Bias) + rng.NormFloat64()*system.Noise*0.01
			magnitude = math.Max(minPredictedMagnitude, magnitude)

			ds.SetSignal(t, i, types.Signal{
				Confidence:  confidence,
				Direction:   direction,
				Magnitude:   magnitude,
				Reliability: system.Accuracy,
			})
		}
	}

	return ds
}

// RandomMarketStates draws n synthetic market states.
func RandomMarketStates(n int, rng *rand.Rand) []types.MarketState {
	states := make([]types.MarketState, n)
	for i := range states {
		states[i] = types.MarketState{
			PatternStrength: rng.Float64(),
			BidAskPressure:  rng.Float64(),
			TransitionProb:  rng.Float64(),
			RiskReward:      0.5 + 2.5*rng.Float64(),
			Momentum:        rng.Float64(),
			Volatility:      0.1 + 0.7*rng.Float64(),
			Volume:          100000 + 9900000*rng.Float64(),
		}
	}
	return states
}

// RandomOutcomes draws n trade outcomes with coin-flip direction and a
// magnitude uniform in [0.5%, 4%].
func RandomOutcomes(n int, rng *rand.Rand) []types.Outcome {
	outcomes := make([]types.Outcome, n)
	for i := range outcomes {
		direction := types.DirectionLong
		if rng.Float64() <= 0.5 {
			direction = types.DirectionShort
		}
		outcomes[i] = types.Outcome{
			Direction: direction,
			Magnitude: 0.005 + 0.035*rng.Float64(),
		}
	}
	return outcomes
}
