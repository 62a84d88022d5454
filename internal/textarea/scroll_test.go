package textarea

import "testing"

func TestScrollDelta(t *testing.T) {
	ta := New()
	ta.Viewport().Store(10, 5, 80, 24)

	ta.ScrollDelta(3, -2)
	row, col := ta.Viewport().ScrollTop()
	if row != 13 || col != 3 {
		t.Errorf("expected scroll top (13, 3), got (%d, %d)", row, col)
	}
}

func TestScrollPagesUsesStoredHeight(t *testing.T) {
	ta := New()
	ta.Viewport().Store(0, 0, 80, 24)

	ta.ScrollPages(2)
	row, _ := ta.Viewport().ScrollTop()
	if row != 48 {
		t.Errorf("expected scroll top 48, got %d", row)
	}

	ta.ScrollPages(-1)
	row, _ = ta.Viewport().ScrollTop()
	if row != 24 {
		t.Errorf("expected scroll top 24, got %d", row)
	}
}

func TestScrollHalfPages(t *testing.T) {
	ta := New()
	ta.Viewport().Store(0, 0, 80, 24)

	ta.ScrollHalfPages(1)
	row, _ := ta.Viewport().ScrollTop()
	if row != 12 {
		t.Errorf("expected scroll top 12, got %d", row)
	}
}

// Page size comes from the height recorded by the previous render
// pass. Before the first pass the stored height is zero and page
// scrolling is a no-op; the display height is simply not known yet.
func TestScrollPagesBeforeFirstRender(t *testing.T) {
	ta := New()

	ta.ScrollPages(3)
	row, col := ta.Viewport().ScrollTop()
	if row != 0 || col != 0 {
		t.Errorf("expected scroll top unchanged at (0, 0), got (%d, %d)", row, col)
	}
}

func TestScrollSaturates(t *testing.T) {
	ta := New()
	ta.Viewport().Store(1, 1, 80, 24)

	ta.ScrollDelta(-100, -100)
	row, col := ta.Viewport().ScrollTop()
	if row != 0 || col != 0 {
		t.Errorf("expected scroll top clamped to (0, 0), got (%d, %d)", row, col)
	}
}
