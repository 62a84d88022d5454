// Package textarea holds the persistent state of a text pane: the
// logical lines, the cursor, and the viewport that remembers where the
// visible window starts between render passes.
package textarea

import (
	"strings"
	"sync"

	"github.com/dshills/textpane/internal/renderer/core"
	"github.com/dshills/textpane/internal/renderer/viewport"
)

// TextArea is the editing-state aggregate. It outlives every render
// pass; the rendering widget is rebuilt per frame and reaches the
// scroll state only through the embedded viewport's atomic word.
//
// All methods are safe for concurrent use. TextArea must not be
// copied.
type TextArea struct {
	mu    sync.RWMutex
	lines []string
	row   int // cursor row, 0-based
	col   int // cursor column in runes, 0-based

	placeholder      string
	placeholderStyle core.Style
	style            core.Style
	tabWidth         int

	vp viewport.Viewport
}

// Option configures a TextArea at construction.
type Option func(*TextArea)

// WithPlaceholder sets the text shown while the buffer is empty.
func WithPlaceholder(s string) Option {
	return func(ta *TextArea) { ta.placeholder = s }
}

// WithPlaceholderStyle sets the style of the placeholder text.
func WithPlaceholderStyle(style core.Style) Option {
	return func(ta *TextArea) { ta.placeholderStyle = style }
}

// WithStyle sets the style applied uniformly to the visible text.
func WithStyle(style core.Style) Option {
	return func(ta *TextArea) { ta.style = style }
}

// WithTabWidth sets the display width of a tab stop.
func WithTabWidth(w int) Option {
	return func(ta *TextArea) {
		if w > 0 {
			ta.tabWidth = w
		}
	}
}

// New creates an empty TextArea holding a single empty line.
func New(opts ...Option) *TextArea {
	ta := &TextArea{
		lines:            []string{""},
		placeholderStyle: core.DefaultStyle().WithAttributes(core.AttrDim),
		style:            core.DefaultStyle(),
		tabWidth:         4,
	}
	for _, opt := range opts {
		opt(ta)
	}
	return ta
}

// NewFromString creates a TextArea with initial content. Line endings
// are normalized to LF.
func NewFromString(s string, opts ...Option) *TextArea {
	ta := New(opts...)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	ta.lines = strings.Split(s, "\n")
	return ta
}

// Lines returns a copy of the logical lines.
func (ta *TextArea) Lines() []string {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return append([]string(nil), ta.lines...)
}

// Line returns the line at index i, or "" when out of range.
func (ta *TextArea) Line(i int) string {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	if i < 0 || i >= len(ta.lines) {
		return ""
	}
	return ta.lines[i]
}

// LineCount returns the number of logical lines. Never zero.
func (ta *TextArea) LineCount() int {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return len(ta.lines)
}

// Text returns the full content joined with LF.
func (ta *TextArea) Text() string {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return strings.Join(ta.lines, "\n")
}

// IsEmpty returns true when the buffer holds nothing but one empty
// line.
func (ta *TextArea) IsEmpty() bool {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return len(ta.lines) == 1 && ta.lines[0] == ""
}

// Cursor returns the cursor position as (row, column), both 0-based,
// the column counted in runes.
func (ta *TextArea) Cursor() (row, col int) {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return ta.row, ta.col
}

// Placeholder returns the placeholder text and its style.
func (ta *TextArea) Placeholder() (string, core.Style) {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return ta.placeholder, ta.placeholderStyle
}

// SetPlaceholder replaces the placeholder text.
func (ta *TextArea) SetPlaceholder(s string) {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.placeholder = s
}

// Style returns the uniform text style.
func (ta *TextArea) Style() core.Style {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return ta.style
}

// SetStyle replaces the uniform text style.
func (ta *TextArea) SetStyle(style core.Style) {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.style = style
}

// TabWidth returns the display width of a tab stop.
func (ta *TextArea) TabWidth() int {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return ta.tabWidth
}

// Viewport exposes the scroll state shared with the renderer.
func (ta *TextArea) Viewport() *viewport.Viewport {
	return &ta.vp
}

// lineRunes returns the current cursor line as runes. Callers hold the
// lock.
func (ta *TextArea) lineRunes() []rune {
	return []rune(ta.lines[ta.row])
}

// clampCol clamps the cursor column to the current line length.
// Callers hold the lock.
func (ta *TextArea) clampCol() {
	if n := len(ta.lineRunes()); ta.col > n {
		ta.col = n
	}
	if ta.col < 0 {
		ta.col = 0
	}
}
