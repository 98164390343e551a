package fusion

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ninjahangover/signalcartel-alien/types"
)

// Dataset holds a fixed batch of per-strategy signals and the corresponding
// ground-truth outcomes. Each feature is stored as a dense matrix with one
// row per observation and one column per strategy, so a single observation
// can be fused by reading across a row.
type Dataset struct {
	Confidence  *mat.Dense
	Direction   *mat.Dense
	Magnitude   *mat.Dense
	Reliability *mat.Dense
	Outcomes    []types.Outcome
}

// NewDataset allocates a dataset for the given dimensions.
func NewDataset(observations, strategies int) *Dataset {
	return &Dataset{
		Confidence:  mat.NewDense(observations, strategies, nil),
		Direction:   mat.NewDense(observations, strategies, nil),
		Magnitude:   mat.NewDense(observations, strategies, nil),
		Reliability: mat.NewDense(observations, strategies, nil),
		Outcomes:    make([]types.Outcome, observations),
	}
}

// Observations returns the number of observations in the dataset.
func (d *Dataset) Observations() int {
	if d.Confidence == nil {
		return 0
	}
	r, _ := d.Confidence.Dims()
	return r
}

// Strategies returns the number of strategies in the dataset.
func (d *Dataset) Strategies() int {
	if d.Confidence == nil {
		return 0
	}
	_, c := d.Confidence.Dims()
	return c
}

// SetSignal stores strategy i's signal for observation t.
func (d *Dataset) SetSignal(t, i int, s types.Signal) {
	d.Confidence.Set(t, i, s.Confidence)
	d.Direction.Set(t, i, float64(s.Direction))
	d.Magnitude.Set(t, i, s.Magnitude)
	d.Reliability.Set(t, i, s.Reliability)
}

// Signal reconstructs strategy i's signal for observation t.
func (d *Dataset) Signal(t, i int) types.Signal {
	direction := types.DirectionLong
	if d.Direction.At(t, i) < 0 {
		direction = types.DirectionShort
	}
	return types.Signal{
		Confidence:  d.Confidence.At(t, i),
		Direction:   direction,
		Magnitude:   d.Magnitude.At(t, i),
		Reliability: d.Reliability.At(t, i),
	}
}

// Row returns all strategy signals for observation t.
func (d *Dataset) Row(t int) []types.Signal {
	signals := make([]types.Signal, d.Strategies())
	for i := range signals {
		signals[i] = d.Signal(t, i)
	}
	return signals
}

// FuseRow fuses observation t under the given weight vector.
func (d *Dataset) FuseRow(t int, weights []float64, cfg Config) (FusedSignal, error) {
	if t < 0 || t >= d.Observations() {
		return FusedSignal{}, fmt.Errorf("observation index %d out of range [0,%d)", t, d.Observations())
	}
	return Fuse(d.Row(t), weights, cfg)
}
