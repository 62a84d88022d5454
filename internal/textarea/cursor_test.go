package textarea

import "testing"

func TestSetCursorClamps(t *testing.T) {
	ta := NewFromString("short\nlonger line")

	ta.SetCursor(10, 50)
	row, col := ta.Cursor()
	if row != 1 || col != 11 {
		t.Errorf("expected cursor clamped to (1, 11), got (%d, %d)", row, col)
	}

	ta.SetCursor(-5, -5)
	row, col = ta.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("expected cursor clamped to (0, 0), got (%d, %d)", row, col)
	}
}

func TestCursorUpDownClampsColumn(t *testing.T) {
	ta := NewFromString("ab\nlong line\ncd")
	ta.SetCursor(1, 9)

	ta.CursorUp()
	row, col := ta.Cursor()
	if row != 0 || col != 2 {
		t.Errorf("expected cursor (0, 2), got (%d, %d)", row, col)
	}

	ta.SetCursor(1, 9)
	ta.CursorDown()
	row, col = ta.Cursor()
	if row != 2 || col != 2 {
		t.Errorf("expected cursor (2, 2), got (%d, %d)", row, col)
	}
}

func TestCursorUpAtTop(t *testing.T) {
	ta := NewFromString("ab")
	ta.CursorUp()

	row, _ := ta.Cursor()
	if row != 0 {
		t.Errorf("expected cursor to stay at row 0, got %d", row)
	}
}

func TestCursorDownAtBottom(t *testing.T) {
	ta := NewFromString("ab")
	ta.CursorDown()

	row, _ := ta.Cursor()
	if row != 0 {
		t.Errorf("expected cursor to stay at row 0, got %d", row)
	}
}

func TestCursorLeftWrapsToPreviousLine(t *testing.T) {
	ta := NewFromString("abc\nd")
	ta.SetCursor(1, 0)
	ta.CursorLeft()

	row, col := ta.Cursor()
	if row != 0 || col != 3 {
		t.Errorf("expected cursor (0, 3), got (%d, %d)", row, col)
	}
}

func TestCursorRightWrapsToNextLine(t *testing.T) {
	ta := NewFromString("ab\ncd")
	ta.SetCursor(0, 2)
	ta.CursorRight()

	row, col := ta.Cursor()
	if row != 1 || col != 0 {
		t.Errorf("expected cursor (1, 0), got (%d, %d)", row, col)
	}
}

func TestCursorLineStartEnd(t *testing.T) {
	ta := NewFromString("hello")
	ta.SetCursor(0, 3)

	ta.CursorLineEnd()
	_, col := ta.Cursor()
	if col != 5 {
		t.Errorf("expected cursor col 5, got %d", col)
	}

	ta.CursorLineStart()
	_, col = ta.Cursor()
	if col != 0 {
		t.Errorf("expected cursor col 0, got %d", col)
	}
}

func TestCursorTopBottom(t *testing.T) {
	ta := NewFromString("one\ntwo\nthree")
	ta.SetCursor(1, 1)

	ta.CursorBottom()
	row, _ := ta.Cursor()
	if row != 2 {
		t.Errorf("expected cursor at last row, got %d", row)
	}

	ta.CursorTop()
	row, _ = ta.Cursor()
	if row != 0 {
		t.Errorf("expected cursor at first row, got %d", row)
	}
}
