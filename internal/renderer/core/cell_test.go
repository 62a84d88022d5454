package core

import "testing"

func TestRuneWidth(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'\u00e9', 1},
		{'日', 2},
		{'한', 2},
		{'\t', 0},
		{'\n', 0},
		{0x7F, 0},
	}
	for _, tc := range cases {
		if got := RuneWidth(tc.r); got != tc.want {
			t.Errorf("RuneWidth(%q): expected %d, got %d", tc.r, tc.want, got)
		}
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("abc"); got != 3 {
		t.Errorf("expected width 3, got %d", got)
	}
	if got := StringWidth("日本"); got != 4 {
		t.Errorf("expected width 4, got %d", got)
	}
}

func TestCellsFromString(t *testing.T) {
	cells := CellsFromString("a日b", DefaultStyle())

	if len(cells) != 4 {
		t.Fatalf("expected 4 cells (wide rune adds continuation), got %d", len(cells))
	}
	if cells[0].Rune != 'a' || cells[0].Width != 1 {
		t.Errorf("unexpected first cell %+v", cells[0])
	}
	if cells[1].Rune != '日' || cells[1].Width != 2 {
		t.Errorf("unexpected wide cell %+v", cells[1])
	}
	if !cells[2].IsContinuation() {
		t.Errorf("expected continuation cell, got %+v", cells[2])
	}
	if cells[3].Rune != 'b' {
		t.Errorf("unexpected last cell %+v", cells[3])
	}
}

func TestStringFromCells(t *testing.T) {
	cells := CellsFromString("a日b", DefaultStyle())
	if got := StringFromCells(cells); got != "a日b" {
		t.Errorf("expected round trip, got %q", got)
	}
}

func TestCellEquals(t *testing.T) {
	a := NewCell('x', DefaultStyle())
	b := NewCell('x', DefaultStyle())
	if !a.Equals(b) {
		t.Error("identical cells must be equal")
	}

	c := NewCell('x', DefaultStyle().WithAttributes(AttrBold))
	if a.Equals(c) {
		t.Error("cells with different styles must differ")
	}
}

func TestCellCombining(t *testing.T) {
	a := NewCell('e', DefaultStyle())
	b := a.WithCombining('\u0301')

	if len(a.Combining) != 0 {
		t.Error("WithCombining must not mutate the receiver")
	}
	if a.Equals(b) {
		t.Error("cells differing in combining marks must differ")
	}
	if !b.Equals(a.WithCombining('\u0301')) {
		t.Error("cells with the same combining marks must be equal")
	}

	if got := StringFromCells([]Cell{b}); got != "e\u0301" {
		t.Errorf("expected mark emitted after its base, got %q", got)
	}
}
