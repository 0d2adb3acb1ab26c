package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pablasso/statsview/internal/chart"
	"github.com/pablasso/statsview/internal/raster"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	out      string
	size     int
	progress float64
	frames   int
}

func newRenderCmd(st *state) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to PNG",
		Long: `Render one frame, or a sequence of frames spanning the whole reveal, to PNG.
With --frames N the files are named <out>-000.png ... <out>-(N-1).png.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := renderPNG(st, f)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.out, "out", "o", "statsview.png", "output file")
	cmd.Flags().IntVar(&f.size, "size", 400, "image width and height in pixels")
	cmd.Flags().Float64Var(&f.progress, "progress", 1, "point in the reveal to render, 0-1 of its duration")
	cmd.Flags().IntVar(&f.frames, "frames", 1, "number of evenly spaced frames to render")

	return cmd
}

// renderPNG drives a chart with a virtual clock so frames are exact and do
// not depend on wall time.
func renderPNG(st *state, f renderFlags) ([]string, error) {
	if f.size <= 0 {
		return nil, fmt.Errorf("--size must be positive, got %d", f.size)
	}
	if f.frames <= 0 {
		return nil, fmt.Errorf("--frames must be positive, got %d", f.frames)
	}
	if f.progress < 0 || f.progress > 1 {
		return nil, fmt.Errorf("--progress must be within 0-1, got %v", f.progress)
	}

	opts, err := st.chartOptions()
	if err != nil {
		return nil, err
	}
	start := time.Unix(0, 0)
	now := start
	opts.Clock = func() time.Time { return now }

	v := chart.New(opts)
	v.Resize(f.size, f.size)
	v.SetFilling(st.cfg.Filling)
	run := v.SetData(st.weights())

	at := func(p float64) {
		now = start.Add(time.Duration(p * float64(st.cfg.Duration)))
		v.Tick(run)
	}

	if f.frames == 1 {
		at(f.progress)
		if err := writeFrame(v, f.size, f.out); err != nil {
			return nil, err
		}
		return []string{f.out}, nil
	}

	paths := make([]string, 0, f.frames)
	for i := 0; i < f.frames; i++ {
		at(float64(i) / float64(f.frames-1))
		path := framePath(f.out, i)
		if err := writeFrame(v, f.size, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFrame(v *chart.StatsView, size int, path string) error {
	s := raster.New(size, size)
	v.Draw(s)
	return s.WritePNG(path)
}

// framePath turns chart.png into chart-007.png.
func framePath(out string, i int) string {
	ext := filepath.Ext(out)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(out, filepath.Ext(out)), i, ext)
}
