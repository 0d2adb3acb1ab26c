package chart

import (
	"math/rand"
	"testing"
	"time"
)

func newTestView(clock *fakeClock, invalidations *int) *StatsView {
	return New(Options{
		Colors:   []Color{0xFFFF0000, 0xFF00FF00, 0xFF0000FF, 0xFFFFFF00},
		Duration: time.Second,
		Rand:     rand.New(rand.NewSource(1)),
		Clock:    clock.Now,
		OnInvalidate: func() {
			if invalidations != nil {
				*invalidations++
			}
		},
	})
}

func TestStatsView_SetFillingClamps(t *testing.T) {
	v := newTestView(newFakeClock(), nil)

	v.SetFilling(150)
	if v.Filling() != 100 {
		t.Errorf("expected 100, got %d", v.Filling())
	}
	v.SetFilling(-10)
	if v.Filling() != 0 {
		t.Errorf("expected 0, got %d", v.Filling())
	}
}

func TestStatsView_SetFillingOnlyInvalidates(t *testing.T) {
	clock := newFakeClock()
	var inval int
	v := newTestView(clock, &inval)

	run := v.SetData([]float64{1, 2})
	clock.Advance(500 * time.Millisecond)
	v.Tick(run)
	before := inval

	v.SetFilling(30)

	if v.Run() != run {
		t.Error("filling must not start a new animation run")
	}
	if v.Progress() != 0.5 {
		t.Errorf("filling must not touch progress, got %v", v.Progress())
	}
	if inval != before+1 {
		t.Errorf("expected one redraw request, got %d", inval-before)
	}
}

func TestStatsView_SetDataRestartsAnimation(t *testing.T) {
	clock := newFakeClock()
	var inval int
	v := newTestView(clock, &inval)

	first := v.SetData([]float64{1, 1})
	if inval != 1 {
		t.Errorf("expected a redraw request on SetData, got %d", inval)
	}
	clock.Advance(800 * time.Millisecond)
	v.Tick(first)

	second := v.SetData([]float64{0, 0, 3, 1, 0})
	if v.Progress() != 0 {
		t.Errorf("expected progress reset, got %v", v.Progress())
	}
	if v.Tick(first) {
		t.Error("previous run must not tick after new data")
	}
	if v.Progress() != 0 {
		t.Errorf("stale tick wrote progress %v", v.Progress())
	}

	memo := v.FirstArc()
	if memo.Color != v.Palette()[2] || memo.Value != 3 {
		t.Errorf("expected memo on slot 2 with value 3, got %+v", memo)
	}

	clock.Advance(2 * time.Second)
	if v.Tick(second) {
		t.Error("expected run to finish")
	}
	if v.Progress() != 1 {
		t.Errorf("expected progress 1, got %v", v.Progress())
	}
}

func TestStatsView_DrawBeforeDataDrawsNothing(t *testing.T) {
	v := newTestView(newFakeClock(), nil)
	v.Resize(200, 200)

	var rec Recorder
	v.Draw(&rec)

	if len(rec.Calls) != 0 {
		t.Errorf("expected no calls before data, got %d", len(rec.Calls))
	}
	if _, ok := v.Frame(); ok {
		t.Error("expected no frame before data")
	}
}

func TestStatsView_DrawWithoutRoomDrawsNothing(t *testing.T) {
	v := newTestView(newFakeClock(), nil)
	v.SetData([]float64{1})
	v.Resize(8, 8)

	var rec Recorder
	v.Draw(&rec)

	if len(rec.Calls) != 0 {
		t.Errorf("expected no calls for a tiny surface, got %d", len(rec.Calls))
	}
}

func TestStatsView_DrawUsesGeometry(t *testing.T) {
	clock := newFakeClock()
	v := newTestView(clock, nil)
	v.Resize(300, 200)
	run := v.SetData([]float64{500, 500, 500, 500})
	v.SetFilling(80)
	clock.Advance(time.Second)
	v.Tick(run)

	var rec Recorder
	v.Draw(&rec)

	if len(rec.Calls) != 11 {
		t.Fatalf("expected 11 calls, got %d", len(rec.Calls))
	}

	circle := rec.Calls[0]
	if circle.Kind != OpCircle || circle.Radius != 95 || circle.Center != (Point{150, 100}) {
		t.Errorf("unexpected background circle %+v", circle)
	}

	wantOval := Rect{Left: 55, Top: 5, Right: 245, Bottom: 195}
	for _, arc := range rec.Arcs() {
		if arc.Oval != wantOval {
			t.Errorf("expected oval %+v, got %+v", wantOval, arc.Oval)
		}
		if !arc.Stroke.RoundCap || arc.Stroke.Width != DefaultLineWidth {
			t.Errorf("unexpected stroke %+v", arc.Stroke)
		}
	}

	text := rec.Calls[len(rec.Calls)-1]
	if text.Kind != OpText || text.Text != "100.00%" {
		t.Errorf("unexpected text call %+v", text)
	}
	if text.Center != (Point{150, 100 + DefaultTextSize/4}) {
		t.Errorf("unexpected text anchor %+v", text.Center)
	}
}

func TestStatsView_ResizeKeepsAnimationState(t *testing.T) {
	clock := newFakeClock()
	v := newTestView(clock, nil)
	run := v.SetData([]float64{2, 2})
	clock.Advance(300 * time.Millisecond)
	v.Tick(run)
	before := v.Normalized()

	v.Resize(120, 80)

	if v.Progress() != 0.3 {
		t.Errorf("resize changed progress to %v", v.Progress())
	}
	if v.Normalized() != before {
		t.Errorf("resize changed proportions to %v", v.Normalized())
	}
	if v.Geometry().Radius != 35 {
		t.Errorf("expected radius 35, got %v", v.Geometry().Radius)
	}
}

func TestStatsView_PaletteStableAcrossFrames(t *testing.T) {
	clock := newFakeClock()
	v := New(Options{Clock: clock.Now, Rand: rand.New(rand.NewSource(9))})
	v.Resize(100, 100)
	v.SetData([]float64{1, 1, 1, 1})
	clock.Advance(time.Hour)
	v.Tick(v.Run())

	var first, second Recorder
	v.Draw(&first)
	v.Draw(&second)

	for i := range first.Calls {
		if first.Calls[i].Stroke.Color != second.Calls[i].Stroke.Color {
			t.Fatalf("call %d changed color between frames", i)
		}
	}
}

func TestStatsView_EmptyDataStillDrawsLabel(t *testing.T) {
	v := newTestView(newFakeClock(), nil)
	v.Resize(100, 100)
	v.SetData(nil)

	var rec Recorder
	v.Draw(&rec)

	if len(rec.Calls) != 2 {
		t.Fatalf("expected background and label, got %+v", rec.Calls)
	}
	if rec.Calls[1].Text != "0.00%" {
		t.Errorf("expected 0.00%%, got %q", rec.Calls[1].Text)
	}
}

func TestStatsView_RevealProgressNeverDecreases(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"defaults", Options{}},
		{"short run", Options{Duration: 250 * time.Millisecond}},
		{"rotate", Options{Rotate: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			opts := tt.opts
			opts.Rand = rand.New(rand.NewSource(1))
			opts.Clock = clock.Now
			v := New(opts)

			run := v.SetData([]float64{500, 500, 500, 500})
			prev := v.Progress()
			for i := 0; i < 1000; i++ {
				clock.Advance(FrameInterval)
				more := v.Tick(run)
				if got := v.Progress(); got < prev {
					t.Fatalf("tick %d: progress decreased %v -> %v", i, prev, got)
				}
				prev = v.Progress()
				if !more {
					break
				}
			}
			if prev != 1 {
				t.Errorf("expected run to finish at 1, got %v", prev)
			}
		})
	}
}
