package cli

import (
	"github.com/pablasso/statsview/internal/demo"
	"github.com/pablasso/statsview/internal/tui"
	"github.com/spf13/cobra"
)

func newShowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Open the interactive terminal view",
		Long: `Open the chart in the terminal. Keys: r next data, +/- filling,
g re-add the chart, ? help, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, st)
		},
	}
}

func runShow(cmd *cobra.Command, st *state) error {
	opts, err := st.showOptions()
	if err != nil {
		return err
	}
	return tui.Run(opts)
}

func (st *state) showOptions() (tui.Options, error) {
	chartOpts, err := st.chartOptions()
	if err != nil {
		return tui.Options{}, err
	}
	scenario, err := demo.ParseScenario(st.cfg.Scenario)
	if err != nil {
		return tui.Options{}, err
	}
	cycle, err := demo.ParsePreset(st.cfg.Cycle)
	if err != nil {
		return tui.Options{}, err
	}

	var data []float64
	if len(st.cfg.Data) > 0 {
		data = st.cfg.Data
	}

	return tui.Options{
		Chart:    chartOpts,
		Data:     data,
		Filling:  st.cfg.Filling,
		Scenario: scenario,
		Cycle:    cycle,
		DebugLog: st.cfg.DebugLog,
	}, nil
}
