package tui

import (
	"log"

	"github.com/pablasso/statsview/internal/chart"
	"github.com/pablasso/statsview/internal/demo"
)

// Options configures TUI startup behavior.
type Options struct {
	Chart chart.Options

	// Data is the initial weight vector. When nil the scenario's weights
	// are used instead.
	Data     []float64
	Filling  int
	Scenario demo.Scenario
	Cycle    demo.Preset

	// DebugLog is a file path for log output. Empty discards logs.
	DebugLog string

	// Logger receives model events. Nil discards them; Run sets it to the
	// standard logger when DebugLog is set.
	Logger *log.Logger
}
