// Package renderer draws a textarea into a display area. The Widget
// is rebuilt for every frame; the scroll position it computes survives
// in the TextArea's viewport.
package renderer

import (
	"math"
	"strings"

	"github.com/dshills/textpane/internal/renderer/backend"
	"github.com/dshills/textpane/internal/renderer/core"
	"github.com/dshills/textpane/internal/renderer/frame"
	"github.com/dshills/textpane/internal/renderer/gutter"
	"github.com/dshills/textpane/internal/renderer/viewport"
	"github.com/dshills/textpane/internal/textarea"
)

// Widget renders one TextArea. It holds per-frame presentation options
// only; all persistent state lives in the TextArea.
type Widget struct {
	frame       frame.Frame
	lineNumbers bool
	numberStyle core.Style
}

// Option configures a Widget.
type Option func(*Widget)

// WithFrame draws a border around the pane.
func WithFrame(f frame.Frame) Option {
	return func(w *Widget) { w.frame = f }
}

// WithLineNumbers enables the line-number gutter.
func WithLineNumbers(style core.Style) Option {
	return func(w *Widget) {
		w.lineNumbers = true
		w.numberStyle = style
	}
}

// New creates a widget. The zero value renders borderless without
// line numbers.
func New(opts ...Option) Widget {
	var w Widget
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Render draws the textarea into the given area of the surface and
// returns the screen position of the cursor; ok is false when the
// content area is empty.
//
// One pass: compute the inner content area, read the previous scroll
// offsets, follow the cursor on both axes, paint the visible window,
// then store the new offsets together with the content size — exactly
// once, after every read of the previous state.
func (w Widget) Render(s backend.Surface, area core.Rect, ta *textarea.TextArea) (cursorX, cursorY int, ok bool) {
	w.frame.Render(s, area)
	inner := w.frame.Inner(area)

	gutterWidth := 0
	digits := 0
	if w.lineNumbers {
		digits = gutter.Digits(ta.LineCount())
		gutterWidth = gutter.Width(ta.LineCount())
		if gutterWidth > inner.Width {
			gutterWidth = inner.Width
		}
	}
	text := core.NewRect(inner.X+gutterWidth, inner.Y, inner.Width-gutterWidth, inner.Height)

	cursorRow, cursorCol := ta.Cursor()
	vp := ta.Viewport()

	prevRow, prevCol := vp.ScrollTop()
	width := clamp16(text.Width)
	height := clamp16(text.Height)
	topRow := viewport.NextTop(prevRow, clamp16(cursorRow), height)
	topCol := viewport.NextTop(prevCol, clamp16(cursorCol), width)

	style := ta.Style()
	if !inner.IsEmpty() {
		s.Fill(inner, core.Cell{Rune: ' ', Width: 1, Style: style})

		if placeholder, phStyle := ta.Placeholder(); placeholder != "" && ta.IsEmpty() {
			w.renderPlaceholder(s, text, placeholder, phStyle)
		} else {
			w.renderLines(s, inner, text, ta, int(topRow), int(topCol), digits, gutterWidth, style)
		}
	}

	// Store the scroll top for the next pass. This is the single
	// terminal write; everything above reads the previous state.
	vp.Store(topRow, topCol, width, height)

	if text.IsEmpty() {
		return 0, 0, false
	}
	cursorX = text.X + cursorScreenOffset(ta.Line(cursorRow), int(topCol), cursorCol, ta.TabWidth())
	cursorY = text.Y + cursorRow - int(topRow)
	return cursorX, cursorY, text.Contains(cursorX, cursorY)
}

func (w Widget) renderLines(s backend.Surface, inner, text core.Rect, ta *textarea.TextArea,
	topRow, topCol, digits, gutterWidth int, style core.Style) {
	lines := ta.Lines()
	bottom := min(topRow+text.Height, len(lines))
	tabWidth := ta.TabWidth()

	for i := topRow; i < bottom; i++ {
		y := text.Y + i - topRow
		if gutterWidth > 0 {
			s.SetString(inner.X, y, clipCells(gutter.Format(i, digits), gutterWidth), w.numberStyle)
		}
		s.SetString(text.X, y, sliceLine(lines[i], topCol, text.Width, tabWidth), style)
	}
}

func (w Widget) renderPlaceholder(s backend.Surface, text core.Rect, placeholder string, style core.Style) {
	for i, line := range strings.Split(placeholder, "\n") {
		if i >= text.Height {
			break
		}
		s.SetString(text.X, text.Y+i, clipCells(line, text.Width), style)
	}
}

// sliceLine drops the first topCol runes of the line, expands tabs to
// spaces and truncates to width display cells. The surface only clips
// at its own edge, so a pane inside a larger surface must not write
// past its area.
func sliceLine(line string, topCol, width, tabWidth int) string {
	runes := []rune(line)
	if topCol >= len(runes) || width <= 0 {
		return ""
	}
	var b strings.Builder
	cells := 0
	for _, r := range runes[topCol:] {
		if r == '\t' {
			n := min(tabWidth, width-cells)
			b.WriteString(strings.Repeat(" ", n))
			cells += n
		} else {
			// Zero-width marks ride along with their base rune.
			w := core.RuneWidth(r)
			if cells+w > width {
				break
			}
			b.WriteRune(r)
			cells += w
		}
	}
	return b.String()
}

// clipCells truncates a string to width display cells. A wide rune
// straddling the edge is dropped.
func clipCells(s string, width int) string {
	if core.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	cells := 0
	for _, r := range s {
		w := core.RuneWidth(r)
		if cells+w > width {
			break
		}
		b.WriteRune(r)
		cells += w
	}
	return b.String()
}

// cursorScreenOffset returns the display-cell offset of the cursor
// from the left edge of the text area, accounting for tabs and wide
// runes between the scroll top and the cursor column.
func cursorScreenOffset(line string, topCol, cursorCol, tabWidth int) int {
	runes := []rune(line)
	if cursorCol > len(runes) {
		cursorCol = len(runes)
	}
	x := 0
	for i := topCol; i < cursorCol; i++ {
		if runes[i] == '\t' {
			x += tabWidth
		} else {
			x += core.RuneWidth(runes[i])
		}
	}
	return x
}

func clamp16(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}
