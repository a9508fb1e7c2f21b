package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/parabolic/parabolic/pkg/engine"
	"github.com/parabolic/parabolic/pkg/platform"
)

func TestStateAt_MatchesLiteral(t *testing.T) {
	initial := mustParse(t, exampleInput, 10)

	for target := 0; target <= 30; target++ {
		state, _, err := engine.StateAt(context.Background(), initial.Clone(), platform.StrategyScan, target, 1000)
		if err != nil {
			t.Fatalf("target %d: expected no error, got: %v", target, err)
		}
		want := literal(initial, target)
		if diff := cmp.Diff(want.String(), state.String()); diff != "" {
			t.Errorf("target %d: unexpected grid (-want +got):\n%s", target, diff)
		}
	}
}

func TestStateAt_BillionCycles(t *testing.T) {
	g := mustParse(t, exampleInput, 10)

	state, d, err := engine.StateAt(context.Background(), g, platform.StrategyScan, engine.DefaultTargetCycles, 1000)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if d.Cycle != 10 || d.FirstSeen != 3 {
		t.Errorf("Expected detection at cycle 10 from 3, got %+v", d)
	}
	if state.Load() != 64 {
		t.Errorf("Expected load 64, got %d", state.Load())
	}
	if !g.Equal(literal(mustParse(t, exampleInput, 10), 10)) {
		t.Error("Expected the input grid to be left at the detection cycle")
	}
}

func TestStateAt_Errors(t *testing.T) {
	tests := []struct {
		name      string
		target    int
		maxCycles int
		want      *engine.EngineError
	}{
		{name: "negative target", target: -1, maxCycles: 10, want: engine.ErrInvalidConfig},
		{name: "no period within cap", target: 100, maxCycles: 5, want: engine.ErrNoPeriodFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := engine.StateAt(context.Background(), mustParse(t, exampleInput, 10), platform.StrategyScan, tt.target, tt.maxCycles)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %s, got: %v", tt.want.Code, err)
			}
		})
	}
}

func TestSpinDirectionNames(t *testing.T) {
	want := []string{"north", "west", "south", "east"}
	if diff := cmp.Diff(want, engine.SpinDirectionNames()); diff != "" {
		t.Errorf("Unexpected names (-want +got):\n%s", diff)
	}
}
