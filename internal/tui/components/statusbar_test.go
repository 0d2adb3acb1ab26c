package components

import (
	"strings"
	"testing"
)

func TestStatusBar_Render_MultipleItems(t *testing.T) {
	sb := NewStatusBar("")
	items := []string{"scenario even", "filling 80%", "run 3"}
	result := sb.Render(60, items)

	for _, item := range items {
		if !strings.Contains(result, item) {
			t.Errorf("expected result to contain %q, got: %s", item, result)
		}
	}
	if !strings.Contains(result, "•") {
		t.Errorf("expected result to contain '•' separator, got: %s", result)
	}
}

func TestStatusBar_Render_HintRightAligned(t *testing.T) {
	sb := NewStatusBar("? help")
	result := sb.Render(30, []string{"filling 80%"})

	if !strings.HasPrefix(result, "filling 80%") {
		t.Errorf("expected items on the left, got: %q", result)
	}
	if !strings.HasSuffix(strings.TrimRight(result, "\n"), "? help") {
		t.Errorf("expected hint at the right edge, got: %q", result)
	}
}

func TestStatusBar_Render_NarrowDropsHint(t *testing.T) {
	sb := NewStatusBar("? help")
	result := sb.Render(12, []string{"filling 80%"})

	if strings.Contains(result, "help") {
		t.Errorf("expected hint to be dropped, got: %q", result)
	}
}

func TestStatusBar_Render_EmptyItems(t *testing.T) {
	sb := NewStatusBar("")
	result := sb.Render(10, nil)

	if strings.TrimSpace(result) != "" {
		t.Errorf("expected blank bar, got: %q", result)
	}
}
