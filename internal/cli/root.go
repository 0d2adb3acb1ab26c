package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pablasso/statsview/internal/chart"
	"github.com/pablasso/statsview/internal/config"
	"github.com/pablasso/statsview/internal/demo"
	"github.com/pablasso/statsview/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

// state is shared by the commands of one command tree.
type state struct {
	cfg *config.Config
	rng *rand.Rand
}

func newRootCmd() *cobra.Command {
	st := &state{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}

	cmd := &cobra.Command{
		Use:   "statsview",
		Short: "Animated ring chart for weighted categories",
		Long: `Statsview draws up to four weighted categories as an animated ring chart.
Without a subcommand it opens the interactive terminal view.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, st)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file path (default: ./statsview.yaml)")
	flags.String("debug-log", "", "write debug logs to this file")
	flags.String("data", "", "comma-separated weights, e.g. 500,500,500,500")
	flags.Int("filling", 100, "percentage of each arc painted in its color (clamped to 0-100)")
	flags.String("scenario", string(demo.ScenarioEven), "demo data when --data is not set: even|skewed|sparse|partial|empty|random")
	flags.String("cycle", string(demo.PresetOff), "replace demo data periodically in the terminal view: off|quick|medium|slow")
	flags.StringSlice("colors", nil, "up to four hex colors, e.g. #FF0000,#00FF00")
	flags.Float64("text-size", chart.DefaultTextSize, "label size in pixels")
	flags.Float64("line-width", chart.DefaultLineWidth, "ring stroke width in pixels")
	flags.Duration("duration", chart.DefaultDuration, "reveal animation duration")
	flags.Bool("rotate", false, "spin the ring in while it is revealed")

	cmd.AddCommand(newShowCmd(st))
	cmd.AddCommand(newRenderCmd(st))
	cmd.AddCommand(newLayoutCmd(st))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func (st *state) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	st.cfg = cfg
	return nil
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("data") {
		raw, _ := flags.GetString("data")
		weights, err := config.ParseWeights(raw)
		if err != nil {
			return err
		}
		cfg.Data = weights
	}
	if flags.Changed("filling") {
		cfg.Filling, _ = flags.GetInt("filling")
		cfg.Filling = chart.ClampFilling(cfg.Filling)
	}
	if flags.Changed("scenario") {
		cfg.Scenario, _ = flags.GetString("scenario")
	}
	if flags.Changed("colors") {
		cfg.Colors, _ = flags.GetStringSlice("colors")
	}
	if flags.Changed("text-size") {
		cfg.TextSize, _ = flags.GetFloat64("text-size")
	}
	if flags.Changed("line-width") {
		cfg.LineWidth, _ = flags.GetFloat64("line-width")
	}
	if flags.Changed("duration") {
		cfg.Duration, _ = flags.GetDuration("duration")
	}
	if flags.Changed("rotate") {
		cfg.Rotate, _ = flags.GetBool("rotate")
	}
	if flags.Changed("debug-log") {
		cfg.DebugLog, _ = flags.GetString("debug-log")
	}
	if flags.Changed("cycle") {
		cfg.Cycle, _ = flags.GetString("cycle")
	}
	return nil
}

// weights picks explicit data over the scenario's demo data.
func (st *state) weights() []float64 {
	if len(st.cfg.Data) > 0 {
		return st.cfg.Data
	}
	scenario, _ := demo.ParseScenario(st.cfg.Scenario)
	return demo.Weights(scenario, st.rng)
}

// chartOptions builds widget options for a headless or interactive view.
func (st *state) chartOptions() (chart.Options, error) {
	opts, err := st.cfg.ChartOptions()
	if err != nil {
		return chart.Options{}, err
	}
	opts.Rand = st.rng
	return opts, nil
}
