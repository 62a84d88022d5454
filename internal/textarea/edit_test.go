package textarea

import "testing"

func TestInsertRune(t *testing.T) {
	ta := New()
	for _, r := range "hi" {
		ta.InsertRune(r)
	}

	if got := ta.Text(); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}
	row, col := ta.Cursor()
	if row != 0 || col != 2 {
		t.Errorf("expected cursor (0, 2), got (%d, %d)", row, col)
	}
}

func TestInsertRuneMidLine(t *testing.T) {
	ta := NewFromString("held")
	ta.SetCursor(0, 3)
	ta.InsertRune('l')

	if got := ta.Line(0); got != "helld" {
		t.Errorf("expected %q, got %q", "helld", got)
	}
}

func TestInsertRuneNewlineSplits(t *testing.T) {
	ta := NewFromString("split")
	ta.SetCursor(0, 2)
	ta.InsertRune('\n')

	if got := ta.LineCount(); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
	if ta.Line(0) != "sp" || ta.Line(1) != "lit" {
		t.Errorf("expected sp/lit, got %q/%q", ta.Line(0), ta.Line(1))
	}
	row, col := ta.Cursor()
	if row != 1 || col != 0 {
		t.Errorf("expected cursor (1, 0), got (%d, %d)", row, col)
	}
}

func TestInsertStringSingleLine(t *testing.T) {
	ta := NewFromString("ad")
	ta.SetCursor(0, 1)
	ta.InsertString("bc")

	if got := ta.Line(0); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
	_, col := ta.Cursor()
	if col != 3 {
		t.Errorf("expected cursor col 3, got %d", col)
	}
}

func TestInsertStringMultiLine(t *testing.T) {
	ta := NewFromString("head tail")
	ta.SetCursor(0, 5)
	ta.InsertString("one\ntwo\nthree ")

	want := []string{"head one", "two", "three tail"}
	for i, w := range want {
		if got := ta.Line(i); got != w {
			t.Errorf("line %d: expected %q, got %q", i, w, got)
		}
	}
	row, col := ta.Cursor()
	if row != 2 || col != 6 {
		t.Errorf("expected cursor (2, 6), got (%d, %d)", row, col)
	}
}

func TestDeleteBackward(t *testing.T) {
	ta := NewFromString("abc")
	ta.SetCursor(0, 2)
	ta.DeleteBackward()

	if got := ta.Line(0); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
	_, col := ta.Cursor()
	if col != 1 {
		t.Errorf("expected cursor col 1, got %d", col)
	}
}

func TestDeleteBackwardJoinsLines(t *testing.T) {
	ta := NewFromString("ab\ncd")
	ta.SetCursor(1, 0)
	ta.DeleteBackward()

	if got := ta.Text(); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
	row, col := ta.Cursor()
	if row != 0 || col != 2 {
		t.Errorf("expected cursor (0, 2), got (%d, %d)", row, col)
	}
}

func TestDeleteBackwardAtOrigin(t *testing.T) {
	ta := NewFromString("ab")
	ta.DeleteBackward()

	if got := ta.Text(); got != "ab" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestDeleteForward(t *testing.T) {
	ta := NewFromString("abc")
	ta.SetCursor(0, 1)
	ta.DeleteForward()

	if got := ta.Line(0); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
}

func TestDeleteForwardJoinsLines(t *testing.T) {
	ta := NewFromString("ab\ncd")
	ta.SetCursor(0, 2)
	ta.DeleteForward()

	if got := ta.Text(); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
}

func TestDeleteForwardAtEnd(t *testing.T) {
	ta := NewFromString("ab")
	ta.SetCursor(0, 2)
	ta.DeleteForward()

	if got := ta.Text(); got != "ab" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestInsertMultibyteRunes(t *testing.T) {
	ta := New()
	ta.InsertString("日本語")
	ta.InsertRune('!')

	if got := ta.Line(0); got != "日本語!" {
		t.Errorf("expected %q, got %q", "日本語!", got)
	}
	_, col := ta.Cursor()
	if col != 4 {
		t.Errorf("expected cursor col 4 (runes, not bytes), got %d", col)
	}
}
