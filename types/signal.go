package types

// Constants for signal directions
const (
	DirectionLong  = 1
	DirectionShort = -1
)

// Signal represents one strategy's prediction bundle for a single observation.
// Signals are immutable once produced.
type Signal struct {
	Confidence  float64 `json:"confidence"`  // prediction confidence in [0,1]
	Direction   int     `json:"direction"`   // DirectionLong or DirectionShort
	Magnitude   float64 `json:"magnitude"`   // expected absolute move as a fraction of price, >= 0
	Reliability float64 `json:"reliability"` // historical consistency in [0,1]
}

// Outcome represents the realized market move for a single observation.
type Outcome struct {
	Direction int     `json:"direction"` // DirectionLong or DirectionShort
	Magnitude float64 `json:"magnitude"` // realized absolute move as a fraction of price
}
