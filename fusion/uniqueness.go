package fusion

import (
	"math"

	"github.com/ninjahangover/signalcartel-alien/types"
)

// Fixed component weights of the combined uniqueness score.
const (
	specialtyWeight   = 0.30
	mathDomainWeight  = 0.25
	performanceWeight = 0.25
	complexityWeight  = 0.20
)

// complexityScale is the top of the StrategyProfile complexity scale.
const complexityScale = 10.0

// UniquenessScore measures how distinct one strategy is within its cohort.
// Purely descriptive; nothing downstream consumes it.
type UniquenessScore struct {
	Name        string  `json:"name"`
	MathDomain  string  `json:"math_domain"`
	Specialty   float64 `json:"specialty"`   // 1 / count of strategies sharing the specialty
	Domain      float64 `json:"domain"`      // 1 / count of strategies sharing the math domain
	Performance float64 `json:"performance"` // Euclidean distance to nearest neighbor in (accuracy, magnitude spread)
	Complexity  float64 `json:"complexity"`  // deviation of complexity from cohort mean, scaled to [0,1]
	Total       float64 `json:"total"`
}

// UniquenessScores scores each strategy's distinctiveness along specialty,
// mathematical domain, performance profile and computational complexity,
// combined with fixed weights.
func UniquenessScores(profiles []types.StrategyProfile) []UniquenessScore {
	if len(profiles) == 0 {
		return nil
	}

	specialtyCounts := make(map[types.Specialty]int)
	domainCounts := make(map[string]int)
	var complexitySum float64
	for _, p := range profiles {
		specialtyCounts[p.Specialty]++
		domainCounts[p.MathDomain]++
		complexitySum += float64(p.Complexity)
	}
	complexityMean := complexitySum / float64(len(profiles))

	scores := make([]UniquenessScore, len(profiles))
	for i, p := range profiles {
		score := UniquenessScore{
			Name:        p.Name,
			MathDomain:  p.MathDomain,
			Specialty:   1 / float64(specialtyCounts[p.Specialty]),
			Domain:      1 / float64(domainCounts[p.MathDomain]),
			Performance: nearestNeighborDistance(profiles, i),
			Complexity:  math.Abs(float64(p.Complexity)-complexityMean) / complexityScale,
		}
		score.Total = score.Specialty*specialtyWeight +
			score.Domain*mathDomainWeight +
			score.Performance*performanceWeight +
			score.Complexity*complexityWeight
		scores[i] = score
	}
	return scores
}

// nearestNeighborDistance is the Euclidean distance in (accuracy, magnitude
// spread) space from profile i to its closest cohort member. A cohort of
// one has no neighbor and scores 1.
func nearestNeighborDistance(profiles []types.StrategyProfile, i int) float64 {
	if len(profiles) < 2 {
		return 1
	}

	p := profiles[i]
	minDistance := math.Inf(1)
	for j, other := range profiles {
		if j == i {
			continue
		}
		da := p.Accuracy - other.Accuracy
		ds := p.MagnitudeSpread() - other.MagnitudeSpread()
		if d := math.Hypot(da, ds); d < minDistance {
			minDistance = d
		}
	}
	return minDistance
}
