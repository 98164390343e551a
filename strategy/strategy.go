package strategy

import (
	"fmt"
	"math/rand"

	"github.com/ninjahangover/signalcartel-alien/types"
)

// Strategy defines the interface for all signal-generating strategies
type Strategy interface {
	// Name returns the name of the strategy
	Name() string

	// Profile returns the strategy's historical characteristics
	Profile() types.StrategyProfile

	// Generate produces a signal for the given market state. Randomness
	// comes only from the provided source, so runs are reproducible.
	Generate(state types.MarketState, rng *rand.Rand) types.Signal
}

// FactoryFunc is a function that creates a new strategy
type FactoryFunc func() Strategy

// strategyRegistry maintains a registry of available strategies
var strategyRegistry = make(map[string]FactoryFunc)

// Register registers a strategy factory function
func Register(name string, factory FactoryFunc) {
	strategyRegistry[name] = factory
}

// Create creates a new strategy with the given name
func Create(name string) (Strategy, error) {
	factory, exists := strategyRegistry[name]
	if !exists {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return factory(), nil
}

// confidenceNoise is the standard deviation of the gaussian noise added
// to a strategy's base confidence per observation.
const confidenceNoise = 0.1

// profileStrategy generates signals from a StrategyProfile, with the
// directional rule chosen by the profile's specialty.
type profileStrategy struct {
	profile types.StrategyProfile
}

// New returns a strategy backed by the given profile.
func New(profile types.StrategyProfile) Strategy {
	return &profileStrategy{profile: profile}
}

func (s *profileStrategy) Name() string {
	return s.profile.Name
}

func (s *profileStrategy) Profile() types.StrategyProfile {
	return s.profile
}

func (s *profileStrategy) Generate(state types.MarketState, rng *rand.Rand) types.Signal {
	confidence := s.profile.Accuracy + rng.NormFloat64()*confidenceNoise
	confidence = clamp(confidence, 0, 1)

	spread := s.profile.MagnitudeSpread()
	magnitude := s.profile.MinMagnitude + rng.Float64()*spread

	return types.Signal{
		Confidence:  confidence * s.profile.Reliability,
		Direction:   s.direction(state, rng),
		Magnitude:   magnitude,
		Reliability: s.profile.Reliability,
	}
}

// direction applies the specialty's directional rule to the market state.
// Strategies without a specialized rule flip a coin.
func (s *profileStrategy) direction(state types.MarketState, rng *rand.Rand) int {
	long := false
	switch s.profile.Specialty {
	case types.SpecialtyDeepLearning:
		long = state.PatternStrength > 0.5
	case types.SpecialtyMicrostructure:
		long = state.BidAskPressure > 0.6
	case types.SpecialtyStatePrediction:
		long = state.TransitionProb > 0.65
	case types.SpecialtyProfitOptimization:
		long = state.RiskReward > 1.5
	case types.SpecialtyMultiDimensional:
		long = (state.Momentum+state.Volatility)/2 > 0.55
	default:
		long = rng.Float64() > 0.5
	}
	if long {
		return types.DirectionLong
	}
	return types.DirectionShort
}

// SpecialtyFactor returns how strongly the strategy's specialty applies to
// the current market: above 1 when conditions play to its strength.
func SpecialtyFactor(profile types.StrategyProfile, state types.MarketState) float64 {
	switch {
	case profile.Specialty == types.SpecialtyDeepLearning && state.PatternStrength > 0.7:
		return 1.5
	case profile.Specialty == types.SpecialtyMicrostructure && state.Volume > 5000000:
		return 1.3
	case profile.Specialty == types.SpecialtyStatePrediction && state.Volatility < 0.3:
		return 1.2
	default:
		return 1.0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
