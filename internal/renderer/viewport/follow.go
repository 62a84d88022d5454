package viewport

import "math"

// NextTop computes the top offset that keeps the cursor inside a window
// of the given length on one axis, moving the window no further than
// necessary. The same function serves rows and columns.
//
// The window is sticky: while the cursor is already inside it the
// offset does not change. A cursor above or left of the window pulls
// the top edge to the cursor; a cursor past the far edge pushes the
// window just far enough that the cursor lands on the last visible
// cell. With length 0 the window is degenerate and anchors at the
// cursor.
func NextTop(prevTop, cursor, length uint16) uint16 {
	// Widened so that prevTop+length cannot wrap and cursor+1-length
	// cannot underflow.
	switch {
	case cursor < prevTop:
		return cursor
	case int32(prevTop)+int32(length) <= int32(cursor):
		if length == 0 {
			// A zero-length window cannot contain anything;
			// anchor it at the cursor, not one past it.
			return cursor
		}
		return clamp16(int32(cursor) + 1 - int32(length))
	default:
		return prevTop
	}
}

func clamp16(n int32) uint16 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}
