package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textpane/internal/renderer/core"
)

// Terminal is a Surface backed by a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	buffer *ScreenBuffer
}

// NewTerminal creates a terminal backend on a fresh tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen. Used by tests with
// tcell's simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen and the draw buffer.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	w, h := t.screen.Size()
	t.buffer = NewScreenBuffer(w, h)
	return nil
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// Resize resizes the draw buffer after a terminal resize event.
func (t *Terminal) Resize(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Sync()
	t.buffer.Resize(width, height)
}

// SetCell writes one cell into the draw buffer.
func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.SetCell(x, y, cell)
}

// SetString writes a string into the draw buffer.
func (t *Terminal) SetString(x, y int, s string, style core.Style) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buffer.SetString(x, y, s, style)
}

// Fill fills a rectangle in the draw buffer.
func (t *Terminal) Fill(rect core.Rect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.Fill(rect, cell)
}

// Clear clears the draw buffer.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.Clear()
}

// Show pushes changed cells to the terminal and displays them.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, ch := range t.buffer.Diff() {
		if ch.Cell.IsContinuation() {
			continue
		}
		t.screen.SetContent(ch.X, ch.Y, ch.Cell.Rune, ch.Cell.Combining, convertStyle(ch.Cell.Style))
	}
	t.buffer.Sync()
	t.screen.Show()
}

// ShowCursor places the hardware cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.HideCursor()
}

// PollEvent blocks until the next terminal event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// convertStyle converts a core style to a tcell style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

// convertColor converts a core color to a tcell color.
func convertColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
