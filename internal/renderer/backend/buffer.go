package backend

import (
	"unicode"

	"github.com/dshills/textpane/internal/renderer/core"
)

// ScreenBuffer is an in-memory Surface with double buffering and
// change tracking. It keeps a front buffer (what is displayed) and a
// back buffer (what is being drawn); Diff reports only the cells that
// actually changed.
type ScreenBuffer struct {
	width, height int
	front         [][]core.Cell
	back          [][]core.Cell
	fullRedraw    bool
}

// NewScreenBuffer creates a screen buffer with the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{
		width:      max(width, 0),
		height:     max(height, 0),
		fullRedraw: true,
	}
	sb.allocate()
	return sb
}

func (sb *ScreenBuffer) allocate() {
	sb.front = make([][]core.Cell, sb.height)
	sb.back = make([][]core.Cell, sb.height)
	for y := 0; y < sb.height; y++ {
		sb.front[y] = make([]core.Cell, sb.width)
		sb.back[y] = make([]core.Cell, sb.width)
		for x := 0; x < sb.width; x++ {
			sb.front[y][x] = core.EmptyCell()
			sb.back[y][x] = core.EmptyCell()
		}
	}
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// Resize resizes the buffer, preserving content where possible, and
// forces a full redraw on the next sync.
func (sb *ScreenBuffer) Resize(width, height int) {
	if width == sb.width && height == sb.height {
		return
	}

	oldBack := sb.back
	oldWidth, oldHeight := sb.width, sb.height

	sb.width = max(width, 0)
	sb.height = max(height, 0)
	sb.allocate()

	for y := 0; y < min(oldHeight, sb.height); y++ {
		for x := 0; x < min(oldWidth, sb.width); x++ {
			sb.back[y][x] = oldBack[y][x]
		}
	}
	sb.fullRedraw = true
}

// SetCell writes a cell into the back buffer.
func (sb *ScreenBuffer) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return
	}
	sb.back[y][x] = cell
}

// Cell returns a cell from the back buffer.
func (sb *ScreenBuffer) Cell(x, y int) core.Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return core.EmptyCell()
	}
	return sb.back[y][x]
}

// SetString writes a string into the back buffer, emitting
// continuation cells after wide runes. Combining marks attach to the
// cell of the preceding rune; other zero-width runes are dropped.
// Returns the x position after the last written cell.
func (sb *ScreenBuffer) SetString(x, y int, s string, style core.Style) int {
	if y < 0 || y >= sb.height {
		return x
	}
	col := x
	base := -1
	for _, r := range s {
		w := core.RuneWidth(r)
		if w == 0 {
			if !unicode.IsControl(r) && base >= 0 {
				sb.back[y][base] = sb.back[y][base].WithCombining(r)
			}
			continue
		}
		if col >= sb.width {
			break
		}
		if col >= 0 {
			sb.back[y][col] = core.Cell{Rune: r, Width: w, Style: style}
			base = col
		}
		col++
		if w == 2 {
			if col >= 0 && col < sb.width {
				sb.back[y][col] = core.ContinuationCell(style)
			}
			col++
		}
	}
	return col
}

// Fill fills a rectangle in the back buffer with the given cell.
func (sb *ScreenBuffer) Fill(rect core.Rect, cell core.Cell) {
	for y := rect.Y; y < rect.Y+rect.Height && y < sb.height; y++ {
		for x := rect.X; x < rect.X+rect.Width && x < sb.width; x++ {
			if x >= 0 && y >= 0 {
				sb.back[y][x] = cell
			}
		}
	}
}

// Clear fills the whole back buffer with empty cells.
func (sb *ScreenBuffer) Clear() {
	sb.Fill(core.NewRect(0, 0, sb.width, sb.height), core.EmptyCell())
}

// Row returns the text content of one back-buffer row, continuation
// cells skipped. Intended for tests and debugging.
func (sb *ScreenBuffer) Row(y int) string {
	if y < 0 || y >= sb.height {
		return ""
	}
	return core.StringFromCells(sb.back[y])
}

// Change is one cell difference between the front and back buffers.
type Change struct {
	X, Y int
	Cell core.Cell
}

// Diff returns the changes needed to bring the display up to date.
func (sb *ScreenBuffer) Diff() []Change {
	var changes []Change
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			if sb.fullRedraw || !sb.back[y][x].Equals(sb.front[y][x]) {
				changes = append(changes, Change{X: x, Y: y, Cell: sb.back[y][x]})
			}
		}
	}
	return changes
}

// Sync copies the back buffer to the front buffer. Call after the
// diff has been applied to the display.
func (sb *ScreenBuffer) Sync() {
	for y := 0; y < sb.height; y++ {
		copy(sb.front[y], sb.back[y])
	}
	sb.fullRedraw = false
}

// MarkFullRedraw forces the next Diff to report every cell.
func (sb *ScreenBuffer) MarkFullRedraw() {
	sb.fullRedraw = true
}
