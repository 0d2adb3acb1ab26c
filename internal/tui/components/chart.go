package components

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/statsview/internal/chart"
	"github.com/pablasso/statsview/internal/raster"
	"github.com/pablasso/statsview/internal/tui/styles"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"

	// pixels fainter than this are treated as unpainted, which also hides
	// the nearly transparent background ring
	minVisibleAlpha = 0x80
)

// ChartSize returns the pixel surface a terminal area of cols×rows maps
// to. Each cell holds two vertically stacked pixels.
func ChartSize(cols, rows int) (w, h int) {
	return cols, rows * 2
}

// RenderChart draws v into a cols×rows block of half-block cells. The
// chart must already be resized to ChartSize(cols, rows). The label is
// overlaid as plain text on the center row.
func RenderChart(v *chart.StatsView, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	w, h := ChartSize(cols, rows)
	surface := raster.New(w, h).WithText(false)
	v.Draw(surface)

	cells := make([][]string, rows)
	for row := range cells {
		cells[row] = make([]string, cols)
		for col := range cells[row] {
			top := visible(surface.At(col, row*2))
			bottom := visible(surface.At(col, row*2+1))
			cells[row][col] = cell(top, bottom)
		}
	}

	for _, label := range surface.Labels() {
		overlayLabel(cells, label, v.Geometry().Center)
	}

	lines := make([]string, rows)
	for row := range cells {
		lines[row] = strings.Join(cells[row], "")
	}
	return strings.Join(lines, "\n")
}

func overlayLabel(cells [][]string, label raster.Label, center chart.Point) {
	row := int(center.Y / 2)
	if row < 0 || row >= len(cells) {
		return
	}
	runes := []rune(label.Text)
	start := int(center.X) - len(runes)/2
	for i, r := range runes {
		col := start + i
		if col < 0 || col >= len(cells[row]) {
			continue
		}
		cells[row][col] = styles.LabelStyle.Render(string(r))
	}
}

// visible returns the unpremultiplied color of a pixel, or nil when the
// pixel is not painted enough to show.
func visible(c color.RGBA) *lipgloss.Color {
	if c.A < minVisibleAlpha {
		return nil
	}
	unmul := func(v uint8) uint8 {
		return uint8(uint32(v) * 0xFF / uint32(c.A))
	}
	col := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", unmul(c.R), unmul(c.G), unmul(c.B)))
	return &col
}

func cell(top, bottom *lipgloss.Color) string {
	switch {
	case top == nil && bottom == nil:
		return " "
	case bottom == nil:
		return lipgloss.NewStyle().Foreground(*top).Render(upperHalf)
	case top == nil:
		return lipgloss.NewStyle().Foreground(*bottom).Render(lowerHalf)
	default:
		return lipgloss.NewStyle().Foreground(*top).Background(*bottom).Render(upperHalf)
	}
}
