package strategy

import (
	"github.com/ninjahangover/signalcartel-alien/types"
)

// Strategy names in the catalog
const (
	NameGPUNeural        = "GPU Neural Strategy"
	NameQuantumSupremacy = "Quantum Supremacy Engine"
	NameOrderBookAI      = "Order Book AI"
	NameMarkovPredictor  = "Enhanced Markov Predictor"
	NameProfitOptimizer  = "Profit Optimizer"
	NamePineScriptRSI    = "Pine Script RSI"
	NameMathIntuition    = "Mathematical Intuition"
)

// catalogOrder fixes the iteration order of the catalog.
var catalogOrder = []string{
	NameGPUNeural,
	NameQuantumSupremacy,
	NameOrderBookAI,
	NameMarkovPredictor,
	NameProfitOptimizer,
	NamePineScriptRSI,
	NameMathIntuition,
}

// catalogProfiles holds the historical characteristics of every strategy
// in the catalog. The first five are the advanced strategies; the last two
// are basic strategies kept for comparison.
var catalogProfiles = map[string]types.StrategyProfile{
	NameGPUNeural: {
		Name:         NameGPUNeural,
		Specialty:    types.SpecialtyDeepLearning,
		MathDomain:   "Neural Network Optimization",
		Accuracy:     0.78,
		MinMagnitude: 0.008,
		MaxMagnitude: 0.035,
		Reliability:  0.85,
		Complexity:   9,
	},
	NameQuantumSupremacy: {
		Name:         NameQuantumSupremacy,
		Specialty:    types.SpecialtyMultiDimensional,
		MathDomain:   "Multi-Dimensional Optimization",
		Accuracy:     0.82,
		MinMagnitude: 0.012,
		MaxMagnitude: 0.040,
		Reliability:  0.88,
		Complexity:   10,
	},
	NameOrderBookAI: {
		Name:         NameOrderBookAI,
		Specialty:    types.SpecialtyMicrostructure,
		MathDomain:   "Market Microstructure Theory",
		Accuracy:     0.75,
		MinMagnitude: 0.006,
		MaxMagnitude: 0.025,
		Reliability:  0.82,
		Complexity:   8,
	},
	NameMarkovPredictor: {
		Name:         NameMarkovPredictor,
		Specialty:    types.SpecialtyStatePrediction,
		MathDomain:   "Markov Chain Theory",
		Accuracy:     0.73,
		MinMagnitude: 0.010,
		MaxMagnitude: 0.030,
		Reliability:  0.80,
		Complexity:   7,
	},
	NameProfitOptimizer: {
		Name:         NameProfitOptimizer,
		Specialty:    types.SpecialtyProfitOptimization,
		MathDomain:   "Convex Optimization",
		Accuracy:     0.70,
		MinMagnitude: 0.015,
		MaxMagnitude: 0.050,
		Reliability:  0.75,
		Complexity:   6,
	},
	NamePineScriptRSI: {
		Name:         NamePineScriptRSI,
		Specialty:    types.SpecialtyTechnicalAnalysis,
		MathDomain:   "Technical Indicators",
		Accuracy:     0.65,
		MinMagnitude: 0.005,
		MaxMagnitude: 0.020,
		Reliability:  0.70,
		Complexity:   3,
	},
	NameMathIntuition: {
		Name:         NameMathIntuition,
		Specialty:    types.SpecialtyMathematical,
		MathDomain:   "8-Domain Analysis",
		Accuracy:     0.68,
		MinMagnitude: 0.008,
		MaxMagnitude: 0.025,
		Reliability:  0.72,
		Complexity:   5,
	},
}

// priorityWeights are the raw fusion weights assigned to each catalog
// strategy; NormalizeWeights rescales them before use.
var priorityWeights = map[string]float64{
	NameGPUNeural:        3.0,
	NameQuantumSupremacy: 2.8,
	NameOrderBookAI:      2.5,
	NameMarkovPredictor:  2.2,
	NameProfitOptimizer:  2.0,
	NameMathIntuition:    1.5,
	NamePineScriptRSI:    0.8,
}

func init() {
	for name := range catalogProfiles {
		profile := catalogProfiles[name]
		Register(name, func() Strategy { return New(profile) })
	}
}

// Catalog returns all catalog strategies in their fixed order.
func Catalog() []Strategy {
	strategies := make([]Strategy, len(catalogOrder))
	for i, name := range catalogOrder {
		strategies[i] = New(catalogProfiles[name])
	}
	return strategies
}

// CatalogNames returns the catalog's strategy names in their fixed order.
func CatalogNames() []string {
	names := make([]string, len(catalogOrder))
	copy(names, catalogOrder)
	return names
}

// Subset returns the named catalog strategies, preserving catalog order.
func Subset(names ...string) []Strategy {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var strategies []Strategy
	for _, name := range catalogOrder {
		if want[name] {
			strategies = append(strategies, New(catalogProfiles[name]))
		}
	}
	return strategies
}

// PriorityWeight returns the raw fusion weight for a strategy, 1.0 when
// the strategy has no assigned priority.
func PriorityWeight(name string) float64 {
	if w, ok := priorityWeights[name]; ok {
		return w
	}
	return 1.0
}

// PriorityWeights returns the raw weight vector for the given strategies.
func PriorityWeights(strategies []Strategy) []float64 {
	weights := make([]float64, len(strategies))
	for i, s := range strategies {
		weights[i] = PriorityWeight(s.Name())
	}
	return weights
}

// Profiles extracts the profiles of the given strategies.
func Profiles(strategies []Strategy) []types.StrategyProfile {
	profiles := make([]types.StrategyProfile, len(strategies))
	for i, s := range strategies {
		profiles[i] = s.Profile()
	}
	return profiles
}
