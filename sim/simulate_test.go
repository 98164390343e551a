package sim

import (
	"math/rand"
	"testing"

	"github.com/ninjahangover/signalcartel-alien/fusion"
	"github.com/ninjahangover/signalcartel-alien/types"
)

func TestRandomSystems(t *testing.T) {
	rng := rand.New(rand.NewSource(DefaultSeed))
	systems := RandomSystems(5, rng)
	if len(systems) != 5 {
		t.Fatalf("got %d systems, want 5", len(systems))
	}

	for _, s := range systems {
		if s.Accuracy < 0.6 || s.Accuracy >= 0.9 {
			t.Errorf("%s: accuracy %v outside [0.6, 0.9)", s.Name, s.Accuracy)
		}
		if s.Bias < -0.05 || s.Bias > 0.05 {
			t.Errorf("%s: bias %v outside [-0.05, 0.05]", s.Name, s.Bias)
		}
		if s.Noise < 0.1 || s.Noise >= 0.3 {
			t.Errorf("%s: noise %v outside [0.1, 0.3)", s.Name, s.Noise)
		}
		if s.Name == "" {
			t.Error("system has empty name")
		}
	}
}

func TestGenerateDataset(t *testing.T) {
	rng := rand.New(rand.NewSource(DefaultSeed))
	systems := RandomSystems(3, rng)
	ds := GenerateDataset(systems, 50, rng)

	if ds.Observations() != 50 || ds.Strategies() != 3 {
		t.Fatalf("dims = %dx%d, want 50x3", ds.Observations(), ds.Strategies())
	}

	for tIdx := 0; tIdx < 50; tIdx++ {
		outcome := ds.Outcomes[tIdx]
		if outcome.Direction != types.DirectionLong && outcome.Direction != types.DirectionShort {
			t.Fatalf("observation %d: outcome direction %v invalid", tIdx, outcome.Direction)
		}
		if outcome.Magnitude <= 0 {
			t.Fatalf("observation %d: outcome magnitude %v not positive", tIdx, outcome.Magnitude)
		}

		for i := 0; i < 3; i++ {
			signal := ds.Signal(tIdx, i)
			if signal.Confidence < 0 || signal.Confidence > 1 {
				t.Fatalf("observation %d system %d: confidence %v outside [0,1]", tIdx, i, signal.Confidence)
			}
			if signal.Magnitude < 0.001 {
				t.Fatalf("observation %d system %d: magnitude %v below floor", tIdx, i, signal.Magnitude)
			}
			if signal.Reliability != systems[i].Accuracy {
				t.Fatalf("observation %d system %d: reliability %v, want %v", tIdx, i, signal.Reliability, systems[i].Accuracy)
			}
		}
	}
}

func TestGenerateDatasetReproducible(t *testing.T) {
	build := func() *fusion.Dataset {
		rng := rand.New(rand.NewSource(DefaultSeed))
		return GenerateDataset(RandomSystems(4, rng), 20, rng)
	}

	first, second := build(), build()
	for tIdx := 0; tIdx < 20; tIdx++ {
		if first.Outcomes[tIdx] != second.Outcomes[tIdx] {
			t.Fatalf("observation %d: outcomes diverge under the same seed", tIdx)
		}
		for i := 0; i < 4; i++ {
			if first.Signal(tIdx, i) != second.Signal(tIdx, i) {
				t.Fatalf("observation %d system %d: signals diverge under the same seed", tIdx, i)
			}
		}
	}
}

func TestRandomMarketStates(t *testing.T) {
	rng := rand.New(rand.NewSource(DefaultSeed))
	states := RandomMarketStates(100, rng)
	if len(states) != 100 {
		t.Fatalf("got %d states, want 100", len(states))
	}

	for i, s := range states {
		if s.RiskReward < 0.5 || s.RiskReward > 3.0 {
			t.Errorf("state %d: risk/reward %v outside [0.5, 3.0]", i, s.RiskReward)
		}
		if s.Volatility < 0.1 || s.Volatility > 0.8 {
			t.Errorf("state %d: volatility %v outside [0.1, 0.8]", i, s.Volatility)
		}
		if s.Volume < 100000 || s.Volume > 10000000 {
			t.Errorf("state %d: volume %v outside [1e5, 1e7]", i, s.Volume)
		}
	}
}

func TestRandomOutcomes(t *testing.T) {
	rng := rand.New(rand.NewSource(DefaultSeed))
	outcomes := RandomOutcomes(100, rng)

	var longs int
	for i, o := range outcomes {
		if o.Magnitude < 0.005 || o.Magnitude > 0.040 {
			t.Errorf("outcome %d: magnitude %v outside [0.005, 0.040]", i, o.Magnitude)
		}
		if o.Direction == types.DirectionLong {
			longs++
		}
	}
	if longs == 0 || longs == len(outcomes) {
		t.Errorf("all outcomes in one direction (%d longs of %d)", longs, len(outcomes))
	}
}
