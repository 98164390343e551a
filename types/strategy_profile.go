package types

// Specialty identifies what a strategy is uniquely good at
type Specialty string

const (
	// SpecialtyDeepLearning represents pattern-recognition strategies
	SpecialtyDeepLearning Specialty = "deep_learning"
	// SpecialtyMultiDimensional represents multi-factor strategies
	SpecialtyMultiDimensional Specialty = "multi_dimensional"
	// SpecialtyMicrostructure represents order-book driven strategies
	SpecialtyMicrostructure Specialty = "microstructure"
	// SpecialtyStatePrediction represents state-transition strategies
	SpecialtyStatePrediction Specialty = "state_prediction"
	// SpecialtyProfitOptimization represents risk/reward driven strategies
	SpecialtyProfitOptimization Specialty = "profit_optimization"
	// SpecialtyTechnicalAnalysis represents indicator-based strategies
	SpecialtyTechnicalAnalysis Specialty = "technical_analysis"
	// SpecialtyMathematical represents multi-domain analytical strategies
	SpecialtyMathematical Specialty = "mathematical"
)

// StrategyProfile describes a strategy's historical characteristics.
// Accuracy and Reliability are in [0,1]; Complexity is a 1-10 scale.
type StrategyProfile struct {
	Name         string    `json:"name"`
	Specialty    Specialty `json:"specialty"`
	MathDomain   string    `json:"math_domain"`
	Accuracy     float64   `json:"accuracy"`
	MinMagnitude float64   `json:"min_magnitude"`
	MaxMagnitude float64   `json:"max_magnitude"`
	Reliability  float64   `json:"reliability"`
	Complexity   int       `json:"complexity"`
}

// MagnitudeSpread returns the width of the profile's magnitude range.
func (p StrategyProfile) MagnitudeSpread() float64 {
	return p.MaxMagnitude - p.MinMagnitude
}

// AvgMagnitude returns the midpoint of the profile's magnitude range.
func (p StrategyProfile) AvgMagnitude() float64 {
	return (p.MinMagnitude + p.MaxMagnitude) / 2
}
