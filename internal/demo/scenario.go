package demo

import (
	"fmt"
	"math/rand"
	"strings"
)

// Scenario selects a demo weight vector.
type Scenario string

const (
	ScenarioEven    Scenario = "even"
	ScenarioSkewed  Scenario = "skewed"
	ScenarioSparse  Scenario = "sparse"
	ScenarioPartial Scenario = "partial"
	ScenarioEmpty   Scenario = "empty"
	ScenarioRandom  Scenario = "random"
)

// Scenarios lists every scenario in cycling order.
var Scenarios = []Scenario{
	ScenarioEven,
	ScenarioSkewed,
	ScenarioSparse,
	ScenarioPartial,
	ScenarioEmpty,
	ScenarioRandom,
}

func ParseScenario(value string) (Scenario, error) {
	switch Scenario(strings.ToLower(strings.TrimSpace(value))) {
	case ScenarioEven, ScenarioSkewed, ScenarioSparse, ScenarioPartial, ScenarioEmpty, ScenarioRandom:
		return Scenario(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo scenario %q (valid: even, skewed, sparse, partial, empty, random)", value)
	}
}

// Weights returns the weight vector for a scenario. Only ScenarioRandom
// uses rng.
func Weights(scenario Scenario, rng *rand.Rand) []float64 {
	switch scenario {
	case ScenarioEven:
		return []float64{500, 500, 500, 500}
	case ScenarioSkewed:
		return []float64{1200, 300, 150, 50}
	case ScenarioSparse:
		// the first category is empty so the seam memo moves to slot 2
		return []float64{0, 0, 3, 1, 0}
	case ScenarioPartial:
		// the fifth value is the unfilled remainder
		return []float64{200, 150, 100, 50, 500}
	case ScenarioEmpty:
		return []float64{}
	case ScenarioRandom:
		weights := make([]float64, 4)
		for i := range weights {
			weights[i] = float64(rng.Intn(1000))
		}
		return weights
	default:
		return nil
	}
}

// Cycle steps through Scenarios, starting after a given scenario.
type Cycle struct {
	idx int
}

// NewCycle creates a cycle positioned on start.
func NewCycle(start Scenario) *Cycle {
	c := &Cycle{}
	for i, s := range Scenarios {
		if s == start {
			c.idx = i
		}
	}
	return c
}

// Current returns the scenario the cycle is on.
func (c *Cycle) Current() Scenario { return Scenarios[c.idx] }

// Next advances and returns the next scenario, wrapping around.
func (c *Cycle) Next() Scenario {
	c.idx = (c.idx + 1) % len(Scenarios)
	return Scenarios[c.idx]
}
