// Package raster draws chart frames into an in-memory RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	"github.com/pablasso/statsview/internal/chart"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	// degrees per polygon segment along an arc
	arcStep  = 2.0
	capSteps = 12
)

var (
	fontOnce sync.Once
	fontData *opentype.Font
	fontErr  error
)

func loadFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		fontData, fontErr = opentype.Parse(goregular.TTF)
	})
	return fontData, fontErr
}

// Label is a text call seen by the surface.
type Label struct {
	Text   string
	Anchor chart.Point
	Size   float64
}

// Surface implements chart.Canvas over an *image.RGBA.
type Surface struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	text  bool
	faces map[float64]font.Face

	labels []Label
}

var _ chart.Canvas = (*Surface)(nil)

// New creates a transparent w×h surface that renders text.
func New(w, h int) *Surface {
	return &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
		text:  true,
		faces: make(map[float64]font.Face),
	}
}

// WithText toggles glyph rendering. Labels are still recorded when off.
func (s *Surface) WithText(enabled bool) *Surface {
	s.text = enabled
	return s
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Labels returns the text calls received so far.
func (s *Surface) Labels() []Label { return s.labels }

// DrawCircle strokes a full ring.
func (s *Surface) DrawCircle(center chart.Point, radius float64, st chart.Stroke) {
	if st.Color.Alpha() == 0 || radius <= 0 {
		return
	}
	half := st.Width / 2
	s.reset()
	s.circle(center, radius+half, false)
	if inner := radius - half; inner > 0 {
		s.circle(center, inner, true)
	}
	s.fill(st.Color)
}

// DrawArc strokes part of the ellipse inscribed in oval. Angles are
// degrees, clockwise from 3 o'clock.
func (s *Surface) DrawArc(oval chart.Rect, startAngle, sweepAngle float64, st chart.Stroke) {
	if st.Color.Alpha() == 0 || sweepAngle == 0 {
		return
	}
	if math.Abs(sweepAngle) >= 360 {
		c := oval.Center()
		s.DrawCircle(c, oval.Width()/2, st)
		return
	}

	c := oval.Center()
	rx, ry := oval.Width()/2, oval.Height()/2
	half := st.Width / 2
	end := startAngle + sweepAngle

	s.reset()
	s.arcPath(c, rx+half, ry+half, startAngle, end, true)
	if st.RoundCap {
		s.capPath(pointOn(c, rx, ry, end), half, end, end+180)
	}
	s.arcPath(c, math.Max(rx-half, 0), math.Max(ry-half, 0), end, startAngle, false)
	if st.RoundCap {
		s.capPath(pointOn(c, rx, ry, startAngle), half, startAngle+180, startAngle+360)
	}
	s.z.ClosePath()
	s.fill(st.Color)
}

// DrawText draws text centered horizontally on anchor with anchor on the
// baseline.
func (s *Surface) DrawText(text string, anchor chart.Point, t chart.TextStyle) {
	s.labels = append(s.labels, Label{Text: text, Anchor: anchor, Size: t.Size})
	if !s.text || t.Size <= 0 {
		return
	}

	face, err := s.face(t.Size)
	if err != nil {
		return
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(t.Color.NRGBA()),
		Face: face,
	}
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: toFixed(anchor.X) - width/2,
		Y: toFixed(anchor.Y),
	}
	d.DrawString(text)
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG writes the surface to a PNG file at path.
func (s *Surface) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// At returns the color of one pixel.
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

func (s *Surface) face(size float64) (font.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	fnt, err := loadFont()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}

func (s *Surface) reset() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
}

func (s *Surface) fill(c chart.Color) {
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

// circle adds a closed contour. reverse flips the winding so it punches a
// hole into a previous contour.
func (s *Surface) circle(c chart.Point, r float64, reverse bool) {
	steps := int(math.Ceil(360 / arcStep))
	for i := 0; i <= steps; i++ {
		a := 360 * float64(i) / float64(steps)
		if reverse {
			a = -a
		}
		p := pointOn(c, r, r, a)
		if i == 0 {
			s.z.MoveTo(float32(p.X), float32(p.Y))
		} else {
			s.z.LineTo(float32(p.X), float32(p.Y))
		}
	}
	s.z.ClosePath()
}

func (s *Surface) arcPath(c chart.Point, rx, ry, from, to float64, first bool) {
	steps := int(math.Ceil(math.Abs(to-from) / arcStep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := from + (to-from)*float64(i)/float64(steps)
		p := pointOn(c, rx, ry, a)
		if first && i == 0 {
			s.z.MoveTo(float32(p.X), float32(p.Y))
		} else {
			s.z.LineTo(float32(p.X), float32(p.Y))
		}
	}
}

func (s *Surface) capPath(c chart.Point, r, from, to float64) {
	for i := 1; i < capSteps; i++ {
		a := from + (to-from)*float64(i)/capSteps
		p := pointOn(c, r, r, a)
		s.z.LineTo(float32(p.X), float32(p.Y))
	}
}

func pointOn(c chart.Point, rx, ry, deg float64) chart.Point {
	rad := deg * math.Pi / 180
	return chart.Point{X: c.X + rx*math.Cos(rad), Y: c.Y + ry*math.Sin(rad)}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
