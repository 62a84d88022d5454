package textarea

import "strings"

// InsertRune inserts a single rune at the cursor and advances it.
func (ta *TextArea) InsertRune(r rune) {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	if r == '\n' {
		ta.insertNewline()
		return
	}

	line := ta.lineRunes()
	ta.clampColLocked(line)
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:ta.col]...)
	out = append(out, r)
	out = append(out, line[ta.col:]...)
	ta.lines[ta.row] = string(out)
	ta.col++
}

// InsertString inserts text at the cursor. Embedded newlines split the
// current line.
func (ta *TextArea) InsertString(s string) {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	parts := strings.Split(s, "\n")

	line := ta.lineRunes()
	ta.clampColLocked(line)
	head := string(line[:ta.col])
	tail := string(line[ta.col:])

	if len(parts) == 1 {
		ta.lines[ta.row] = head + parts[0] + tail
		ta.col += len([]rune(parts[0]))
		return
	}

	inserted := make([]string, len(parts))
	inserted[0] = head + parts[0]
	copy(inserted[1:], parts[1:])
	last := len(inserted) - 1
	endCol := len([]rune(inserted[last]))
	inserted[last] += tail

	out := make([]string, 0, len(ta.lines)+len(inserted)-1)
	out = append(out, ta.lines[:ta.row]...)
	out = append(out, inserted...)
	out = append(out, ta.lines[ta.row+1:]...)
	ta.lines = out

	ta.row += last
	ta.col = endCol
}

// InsertNewline splits the current line at the cursor.
func (ta *TextArea) InsertNewline() {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.insertNewline()
}

func (ta *TextArea) insertNewline() {
	line := ta.lineRunes()
	ta.clampColLocked(line)
	head := string(line[:ta.col])
	tail := string(line[ta.col:])

	out := make([]string, 0, len(ta.lines)+1)
	out = append(out, ta.lines[:ta.row]...)
	out = append(out, head, tail)
	out = append(out, ta.lines[ta.row+1:]...)
	ta.lines = out

	ta.row++
	ta.col = 0
}

// DeleteBackward removes the rune before the cursor. At the start of a
// line it joins the line with the previous one.
func (ta *TextArea) DeleteBackward() {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	line := ta.lineRunes()
	ta.clampColLocked(line)

	if ta.col > 0 {
		ta.lines[ta.row] = string(line[:ta.col-1]) + string(line[ta.col:])
		ta.col--
		return
	}
	if ta.row == 0 {
		return
	}

	prev := []rune(ta.lines[ta.row-1])
	ta.lines[ta.row-1] = string(prev) + string(line)
	ta.lines = append(ta.lines[:ta.row], ta.lines[ta.row+1:]...)
	ta.row--
	ta.col = len(prev)
}

// DeleteForward removes the rune under the cursor. At the end of a
// line it joins the next line onto this one.
func (ta *TextArea) DeleteForward() {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	line := ta.lineRunes()
	ta.clampColLocked(line)

	if ta.col < len(line) {
		ta.lines[ta.row] = string(line[:ta.col]) + string(line[ta.col+1:])
		return
	}
	if ta.row+1 >= len(ta.lines) {
		return
	}

	ta.lines[ta.row] = string(line) + ta.lines[ta.row+1]
	ta.lines = append(ta.lines[:ta.row+1], ta.lines[ta.row+2:]...)
}

// clampColLocked clamps the column against an already-extracted rune
// slice. Callers hold the lock.
func (ta *TextArea) clampColLocked(line []rune) {
	if ta.col > len(line) {
		ta.col = len(line)
	}
	if ta.col < 0 {
		ta.col = 0
	}
}
