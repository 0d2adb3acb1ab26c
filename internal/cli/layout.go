package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pablasso/statsview/internal/chart"
	"github.com/spf13/cobra"
)

type layoutDump struct {
	Progress   float64          `json:"progress"`
	Filling    int              `json:"filling"`
	Normalized chart.Normalized `json:"normalized"`
	FirstArc   chart.FirstArc   `json:"first_arc"`
	Label      string           `json:"label"`
	EndAngle   float64          `json:"end_angle"`
	Ops        []chart.Op       `json:"ops"`
}

func newLayoutCmd(st *state) *cobra.Command {
	var (
		progress float64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the draw calls for one frame",
		Long:  `Print the angle-space draw calls (circle, arcs, label) the chart issues at a point in its reveal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if progress < 0 || progress > 1 {
				return fmt.Errorf("--progress must be within 0-1, got %v", progress)
			}
			dump, err := st.layout(progress)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dump)
			}
			printLayout(cmd.OutOrStdout(), dump)
			return nil
		},
	}

	cmd.Flags().Float64Var(&progress, "progress", 1, "point in the reveal, 0-1 of its duration")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func (st *state) layout(progress float64) (layoutDump, error) {
	opts, err := st.chartOptions()
	if err != nil {
		return layoutDump{}, err
	}

	palette := chart.NewPalette(opts.Colors, opts.Rand)
	normalized, memo := chart.Normalize(st.weights(), palette)

	frame := chart.Layout(chart.LayoutInput{
		Normalized: normalized,
		FirstArc:   memo,
		Palette:    palette,
		Progress:   progress,
		Filling:    st.cfg.Filling,
		Rotate:     opts.Rotate,
	})

	return layoutDump{
		Progress:   progress,
		Filling:    chart.ClampFilling(st.cfg.Filling),
		Normalized: normalized,
		FirstArc:   memo,
		Label:      frame.Label,
		EndAngle:   frame.EndAngle,
		Ops:        frame.Ops,
	}, nil
}

func printLayout(w io.Writer, d layoutDump) {
	fmt.Fprintf(w, "progress %.2f  filling %d%%  label %s  end %.2f°\n", d.Progress, d.Filling, d.Label, d.EndAngle)
	fmt.Fprintf(w, "%-3s %-7s %-5s %9s %9s  %s\n", "#", "kind", "slot", "start", "sweep", "color")
	for i, op := range d.Ops {
		slot := "-"
		if op.Slot >= 0 {
			slot = fmt.Sprint(op.Slot)
		}
		switch op.Kind {
		case chart.OpText:
			fmt.Fprintf(w, "%-3d %-7s %-5s %9s %9s  %q\n", i, op.Kind, slot, "", "", op.Text)
		case chart.OpCircle:
			fmt.Fprintf(w, "%-3d %-7s %-5s %9s %9.2f  %s\n", i, op.Kind, slot, "", 360.0, op.Color.Hex())
		default:
			fmt.Fprintf(w, "%-3d %-7s %-5s %9.2f %9.2f  %s\n", i, op.Kind, slot, op.Start, op.Sweep, op.Color.Hex())
		}
	}
}
