package demo

import (
	"math/rand"
	"testing"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Scenario
		wantErr bool
	}{
		{name: "even", in: "even", want: ScenarioEven},
		{name: "sparse", in: "sparse", want: ScenarioSparse},
		{name: "trim and lowercase", in: "  RANDOM  ", want: ScenarioRandom},
		{name: "invalid", in: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScenario(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScenario() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseScenario() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, s := range Scenarios {
		w := Weights(s, rng)
		if s == ScenarioEmpty {
			if len(w) != 0 {
				t.Errorf("expected empty weights, got %v", w)
			}
			continue
		}
		if len(w) == 0 {
			t.Errorf("scenario %s: expected weights", s)
		}
		for _, v := range w {
			if v < 0 {
				t.Errorf("scenario %s: negative weight %v", s, v)
			}
		}
	}
}

func TestCycle(t *testing.T) {
	c := NewCycle(ScenarioEmpty)
	if c.Current() != ScenarioEmpty {
		t.Fatalf("expected to start on empty, got %s", c.Current())
	}
	if got := c.Next(); got != ScenarioRandom {
		t.Errorf("expected random after empty, got %s", got)
	}
	if got := c.Next(); got != ScenarioEven {
		t.Errorf("expected wrap to even, got %s", got)
	}
}
