package core

import "testing"

func TestColorFromHex(t *testing.T) {
	c, err := ColorFromHex("#1e90ff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 0x1e || c.G != 0x90 || c.B != 0xff {
		t.Errorf("expected (30, 144, 255), got (%d, %d, %d)", c.R, c.G, c.B)
	}

	c, err = ColorFromHex("fff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("expected white, got (%d, %d, %d)", c.R, c.G, c.B)
	}
}

func TestColorFromHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "zzzzzz", "#gggggg"} {
		if _, err := ColorFromHex(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestColorDefault(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault must report default")
	}
	if ColorFromRGB(0, 0, 0).IsDefault() {
		t.Error("black is not the default color")
	}
}

func TestAttributeHasWith(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrUnderline)

	if !a.Has(AttrBold) || !a.Has(AttrUnderline) {
		t.Error("expected bold and underline set")
	}
	if a.Has(AttrItalic) {
		t.Error("italic must not be set")
	}
}

func TestStyleWith(t *testing.T) {
	s := DefaultStyle().
		WithForeground(ColorFromRGB(1, 2, 3)).
		WithAttributes(AttrBold)

	if s.Foreground != ColorFromRGB(1, 2, 3) {
		t.Errorf("unexpected foreground %+v", s.Foreground)
	}
	if !s.Background.IsDefault() {
		t.Error("background must stay default")
	}
	if !s.Equals(s) {
		t.Error("style must equal itself")
	}
	if s.Equals(DefaultStyle()) {
		t.Error("styles with different fields must differ")
	}
}

func TestRectShrink(t *testing.T) {
	r := NewRect(0, 0, 10, 5).Shrink(1)
	if r != NewRect(1, 1, 8, 3) {
		t.Errorf("unexpected shrink result %+v", r)
	}

	// Shrinking past the size clamps to empty instead of inverting.
	r = NewRect(0, 0, 2, 1).Shrink(1)
	if !r.IsEmpty() {
		t.Errorf("expected empty rect, got %+v", r)
	}
	if r.Width < 0 || r.Height < 0 {
		t.Errorf("rect must not invert, got %+v", r)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("expected corners inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("expected outside cells excluded")
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := a.Intersect(b)
	if got != NewRect(5, 5, 5, 5) {
		t.Errorf("unexpected intersection %+v", got)
	}

	c := NewRect(20, 20, 2, 2)
	if !a.Intersect(c).IsEmpty() {
		t.Error("expected empty intersection for disjoint rects")
	}
}
