package fusion

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ninjahangover/signalcartel-alien/types"
)

func TestSharpeRatio(t *testing.T) {
	tests := []struct {
		name     string
		mean     float64
		std      float64
		expected float64
	}{
		{"Positive edge", 0.5, 0.25, 2.0},
		{"Negative edge", -0.3, 0.1, -3.0},
		{"Zero volatility guards division", 1.0, 0.0, 0.0},
		{"Zero mean", 0.0, 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SharpeRatio(tt.mean, tt.std); !almostEqual(got, tt.expected, epsilon) {
				t.Errorf("SharpeRatio(%v, %v) = %v, want %v", tt.mean, tt.std, got, tt.expected)
			}
		})
	}
}

func TestTradePnL(t *testing.T) {
	costs := CostModel{
		PositionSize: decimal.NewFromInt(60),
		Commission:   decimal.NewFromFloat(0.25),
	}

	tests := []struct {
		name      string
		predicted int
		actual    types.Outcome
		expected  float64
	}{
		{
			name:      "Correct long call",
			predicted: types.DirectionLong,
			actual:    types.Outcome{Direction: types.DirectionLong, Magnitude: 0.02},
			expected:  0.02*60 - 0.25,
		},
		{
			name:      "Correct short call",
			predicted: types.DirectionShort,
			actual:    types.Outcome{Direction: types.DirectionShort, Magnitude: 0.01},
			expected:  0.01*60 - 0.25,
		},
		{
			name:      "Wrong call loses the move and the commission",
			predicted: types.DirectionLong,
			actual:    types.Outcome{Direction: types.DirectionShort, Magnitude: 0.02},
			expected:  -0.02*60 - 0.25,
		},
		{
			name:      "Flat move still pays commission",
			predicted: types.DirectionLong,
			actual:    types.Outcome{Direction: types.DirectionLong, Magnitude: 0},
			expected:  -0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := costs.TradePnL(tt.predicted, tt.actual).InexactFloat64()
			if !almostEqual(got, tt.expected, epsilon) {
				t.Errorf("TradePnL() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCostModelFromEnv(t *testing.T) {
	t.Setenv(EnvPositionSize, "100")
	t.Setenv(EnvCommission, "0.5")

	model := CostModelFromEnv()
	if !model.PositionSize.Equal(decimal.NewFromInt(100)) {
		t.Errorf("PositionSize = %s, want 100", model.PositionSize)
	}
	if !model.Commission.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("Commission = %s, want 0.5", model.Commission)
	}
}

func TestCostModelFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvPositionSize, "")
	t.Setenv(EnvCommission, "not-a-number")

	model := CostModelFromEnv()
	def := DefaultCostModel()
	if !model.PositionSize.Equal(def.PositionSize) || !model.Commission.Equal(def.Commission) {
		t.Errorf("CostModelFromEnv() = %+v, want defaults %+v", model, def)
	}
}

// singleStrategyDataset builds a one-strategy dataset where the strategy
// calls the recorded directions and the outcomes are as given.
func singleStrategyDataset(calls []int, outcomes []types.Outcome) *Dataset {
	ds := NewDataset(len(calls), 1)
	for t, call := range calls {
		ds.SetSignal(t, 0, types.Signal{Confidence: 1.0, Direction: call, Magnitude: outcomes[t].Magnitude})
		ds.Outcomes[t] = outcomes[t]
	}
	return ds
}

func TestEvaluate(t *testing.T) {
	// Commission-free $100 positions on 1% moves: each trade is +/- $1.
	costs := CostModel{PositionSize: decimal.NewFromInt(100), Commission: decimal.Zero}

	outcomes := []types.Outcome{
		{Direction: types.DirectionLong, Magnitude: 0.01},
		{Direction: types.DirectionShort, Magnitude: 0.01},
		{Direction: types.DirectionLong, Magnitude: 0.01},
	}
	calls := []int{types.DirectionLong, types.DirectionShort, types.DirectionShort}
	ds := singleStrategyDataset(calls, outcomes)

	perf, err := Evaluate(ds, []float64{1}, costs, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if !almostEqual(perf.DirectionAccuracy, 2.0/3.0, epsilon) {
		t.Errorf("DirectionAccuracy = %v, want 2/3", perf.DirectionAccuracy)
	}
	if !almostEqual(perf.MeanPnL, 1.0/3.0, epsilon) {
		t.Errorf("MeanPnL = %v, want 1/3", perf.MeanPnL)
	}

	// Population std of {+1, +1, -1}.
	wantStd := math.Sqrt((2*math.Pow(1-1.0/3, 2) + math.Pow(-1-1.0/3, 2)) / 3)
	if !almostEqual(perf.StdPnL, wantStd, epsilon) {
		t.Errorf("StdPnL = %v, want %v", perf.StdPnL, wantStd)
	}
	if !almostEqual(perf.SharpeRatio, perf.MeanPnL/wantStd, epsilon) {
		t.Errorf("SharpeRatio = %v, want %v", perf.SharpeRatio, perf.MeanPnL/wantStd)
	}
	if !perf.TotalPnL.Equal(decimal.NewFromInt(1)) {
		t.Errorf("TotalPnL = %s, want 1", perf.TotalPnL)
	}
	if perf.Trades != 3 {
		t.Errorf("Trades = %d, want 3", perf.Trades)
	}
}

func TestEvaluateZeroVolatility(t *testing.T) {
	costs := CostModel{PositionSize: decimal.NewFromInt(100), Commission: decimal.Zero}

	// Every call correct at identical magnitude: constant P&L, zero std.
	outcomes := []types.Outcome{
		{Direction: types.DirectionLong, Magnitude: 0.01},
		{Direction: types.DirectionLong, Magnitude: 0.01},
	}
	ds := singleStrategyDataset([]int{types.DirectionLong, types.DirectionLong}, outcomes)

	perf, err := Evaluate(ds, []float64{1}, costs, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if perf.SharpeRatio != 0 {
		t.Errorf("SharpeRatio = %v, want 0 on zero volatility", perf.SharpeRatio)
	}
	if perf.StdPnL != 0 {
		t.Errorf("StdPnL = %v, want 0", perf.StdPnL)
	}
}

func TestEvaluateEmptyDataset(t *testing.T) {
	if _, err := Evaluate(&Dataset{}, []float64{1}, DefaultCostModel(), DefaultConfig()); err == nil {
		t.Error("Evaluate() on empty dataset returned nil error")
	}
}

func TestEvaluateMagnitudeRMSE(t *testing.T) {
	costs := CostModel{PositionSize: decimal.NewFromInt(100), Commission: decimal.Zero}

	ds := NewDataset(1, 1)
	ds.SetSignal(0, 0, types.Signal{Confidence: 1.0, Direction: types.DirectionLong, Magnitude: 0.03})
	ds.Outcomes[0] = types.Outcome{Direction: types.DirectionLong, Magnitude: 0.01}

	perf, err := Evaluate(ds, []float64{1}, costs, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !almostEqual(perf.MagnitudeRMSE, 0.02, epsilon) {
		t.Errorf("MagnitudeRMSE = %v, want 0.02", perf.MagnitudeRMSE)
	}
}
