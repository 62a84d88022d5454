package textarea

// SetCursor moves the cursor to (row, col), clamping both coordinates
// into the buffer.
func (ta *TextArea) SetCursor(row, col int) {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	if row < 0 {
		row = 0
	}
	if row >= len(ta.lines) {
		row = len(ta.lines) - 1
	}
	ta.row = row
	ta.col = col
	ta.clampCol()
}

// CursorUp moves the cursor one line up, clamping the column to the
// new line's length.
func (ta *TextArea) CursorUp() {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	if ta.row > 0 {
		ta.row--
		ta.clampCol()
	}
}

// CursorDown moves the cursor one line down.
func (ta *TextArea) CursorDown() {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	if ta.row+1 < len(ta.lines) {
		ta.row++
		ta.clampCol()
	}
}

// CursorLeft moves the cursor one rune left, wrapping to the end of
// the previous line.
func (ta *TextArea) CursorLeft() {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	ta.clampCol()
	switch {
	case ta.col > 0:
		ta.col--
	case ta.row > 0:
		ta.row--
		ta.col = len(ta.lineRunes())
	}
}

// CursorRight moves the cursor one rune right, wrapping to the start
// of the next line.
func (ta *TextArea) CursorRight() {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	ta.clampCol()
	switch {
	case ta.col < len(ta.lineRunes()):
		ta.col++
	case ta.row+1 < len(ta.lines):
		ta.row++
		ta.col = 0
	}
}

// CursorLineStart moves the cursor to column zero.
func (ta *TextArea) CursorLineStart() {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.col = 0
}

// CursorLineEnd moves the cursor past the last rune of the line.
func (ta *TextArea) CursorLineEnd() {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.col = len(ta.lineRunes())
}

// CursorTop moves the cursor to the first line, keeping the column.
func (ta *TextArea) CursorTop() {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.row = 0
	ta.clampCol()
}

// CursorBottom moves the cursor to the last line, keeping the column.
func (ta *TextArea) CursorBottom() {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.row = len(ta.lines) - 1
	ta.clampCol()
}
