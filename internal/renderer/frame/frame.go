// Package frame draws the decorative border around a pane and computes
// the content area left inside it.
package frame

import (
	"github.com/dshills/textpane/internal/renderer/backend"
	"github.com/dshills/textpane/internal/renderer/core"
)

// LineStyle selects the border character set.
type LineStyle uint8

const (
	// LineNone disables the border entirely.
	LineNone LineStyle = iota
	// LineSingle uses single box-drawing characters.
	LineSingle
	// LineRounded uses single lines with rounded corners.
	LineRounded
	// LineDouble uses double box-drawing characters.
	LineDouble
)

type charset struct {
	horizontal, vertical                       rune
	topLeft, topRight, bottomLeft, bottomRight rune
}

var charsets = map[LineStyle]charset{
	LineSingle:  {'─', '│', '┌', '┐', '└', '┘'},
	LineRounded: {'─', '│', '╭', '╮', '╰', '╯'},
	LineDouble:  {'═', '║', '╔', '╗', '╚', '╝'},
}

// Frame is a border with an optional title. The zero value draws
// nothing and leaves the content area untouched.
type Frame struct {
	Line  LineStyle
	Title string
	Style core.Style
}

// New creates a frame with the given line style.
func New(line LineStyle) Frame {
	return Frame{Line: line}
}

// WithTitle returns a copy of the frame with a title in the top edge.
func (f Frame) WithTitle(title string) Frame {
	f.Title = title
	return f
}

// WithStyle returns a copy of the frame drawn with the given style.
func (f Frame) WithStyle(style core.Style) Frame {
	f.Style = style
	return f
}

// Inner returns the content area remaining inside the border. Without
// a border it is the area itself; with one it shrinks by one cell on
// every side, clamped to empty rather than inverting.
func (f Frame) Inner(area core.Rect) core.Rect {
	if f.Line == LineNone {
		return area
	}
	return area.Shrink(1)
}

// Render paints the border onto the surface. The content area is not
// cleared; callers paint it afterwards.
func (f Frame) Render(s backend.Surface, area core.Rect) {
	if f.Line == LineNone || area.IsEmpty() {
		return
	}
	cs := charsets[f.Line]

	right := area.X + area.Width - 1
	bottom := area.Y + area.Height - 1

	for x := area.X + 1; x < right; x++ {
		s.SetCell(x, area.Y, core.NewCell(cs.horizontal, f.Style))
		s.SetCell(x, bottom, core.NewCell(cs.horizontal, f.Style))
	}
	for y := area.Y + 1; y < bottom; y++ {
		s.SetCell(area.X, y, core.NewCell(cs.vertical, f.Style))
		s.SetCell(right, y, core.NewCell(cs.vertical, f.Style))
	}

	s.SetCell(area.X, area.Y, core.NewCell(cs.topLeft, f.Style))
	s.SetCell(right, area.Y, core.NewCell(cs.topRight, f.Style))
	s.SetCell(area.X, bottom, core.NewCell(cs.bottomLeft, f.Style))
	s.SetCell(right, bottom, core.NewCell(cs.bottomRight, f.Style))

	if f.Title != "" && area.Width > 4 {
		title := f.Title
		if maxw := area.Width - 4; core.StringWidth(title) > maxw {
			title = truncate(title, maxw)
		}
		s.SetString(area.X+2, area.Y, title, f.Style)
	}
}

func truncate(s string, width int) string {
	w := 0
	for i, r := range s {
		rw := core.RuneWidth(r)
		if w+rw > width {
			return s[:i]
		}
		w += rw
	}
	return s
}
