// Package backend provides paint targets for the renderer: an
// in-memory double-buffered screen and a tcell-backed terminal.
package backend

import "github.com/dshills/textpane/internal/renderer/core"

// Surface is the sink the widget paints into. Implementations must
// tolerate out-of-range coordinates by ignoring them.
type Surface interface {
	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell writes one cell.
	SetCell(x, y int, cell core.Cell)

	// SetString writes a string with the given style, handling wide
	// runes. Returns the x position after the last written cell.
	SetString(x, y int, s string, style core.Style) int

	// Fill fills a rectangle with the given cell.
	Fill(rect core.Rect, cell core.Cell)
}
