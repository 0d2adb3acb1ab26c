// Package msgs defines the messages a host program sends to the chart TUI.
package msgs

// AddChartMsg (re)places the chart on screen with the layout transition and
// feeds it the current data.
type AddChartMsg struct{}

// DataMsg replaces the chart weights. The reveal animation restarts.
type DataMsg struct {
	Weights []float64
}

// FillingMsg changes the filling level. Values outside [0,100] are clamped.
type FillingMsg struct {
	Level int
}
