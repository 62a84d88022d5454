// Package viewport tracks which window of a logical text buffer is
// visible inside a fixed display area, and keeps that window following
// the cursor across render passes.
package viewport

import (
	"math"
	"sync/atomic"
)

// Viewport records the top-left scroll offset (row, column) and the
// display size observed on the most recent render pass.
//
// The four 16-bit fields are packed into a single 64-bit word so the
// whole state can be loaded and replaced atomically. The rendering
// widget is reconstructed on every frame and reaches the viewport only
// through a shared reference to the owning TextArea, yet the scroll
// position must outlive each frame; the packed word lets the widget
// update it without exclusive access and without a half-written state
// ever being observable.
//
// The zero value is a valid viewport anchored at the origin with zero
// size.
type Viewport struct {
	packed atomic.Uint64
}

// Field layout inside the packed word, most to least significant:
// width, height, top row, top column.
const (
	widthShift  = 48
	heightShift = 32
	rowShift    = 16
)

func pack(row, col, width, height uint16) uint64 {
	return uint64(width)<<widthShift |
		uint64(height)<<heightShift |
		uint64(row)<<rowShift |
		uint64(col)
}

// ScrollTop returns the logical coordinates of the first visible row
// and column.
func (v *Viewport) ScrollTop() (row, col uint16) {
	u := v.packed.Load()
	return uint16(u >> rowShift), uint16(u)
}

// Rect returns the full viewport state: top offsets plus the width and
// height stored by the last render pass.
func (v *Viewport) Rect() (row, col, width, height uint16) {
	u := v.packed.Load()
	return uint16(u >> rowShift), uint16(u), uint16(u >> widthShift), uint16(u >> heightShift)
}

// Position returns the inclusive bounding box of the visible window.
// The bottom edge never falls above the top edge, even when the stored
// width or height is zero.
func (v *Viewport) Position() (rowTop, colTop, rowBottom, colBottom uint16) {
	rowTop, colTop, width, height := v.Rect()
	rowBottom = satSub(satAdd(rowTop, height), 1)
	colBottom = satSub(satAdd(colTop, width), 1)
	return rowTop, colTop, max(rowTop, rowBottom), max(colTop, colBottom)
}

// Store replaces all four fields in one indivisible operation. The
// renderer calls it exactly once per pass, after every read of the
// previous state.
func (v *Viewport) Store(row, col, width, height uint16) {
	v.packed.Store(pack(row, col, width, height))
}

// Scroll applies a signed delta to the top offsets, leaving the stored
// size untouched. Offsets saturate at 0 and at the 16-bit maximum
// instead of wrapping. This is the explicit, user-driven scroll; the
// cursor-follow recomputation happens separately during rendering.
func (v *Viewport) Scroll(deltaRows, deltaCols int) {
	u := v.packed.Load()
	row := applyDelta(uint16(u>>rowShift), deltaRows)
	col := applyDelta(uint16(u), deltaCols)
	v.packed.Store(u&0xffff_ffff_0000_0000 | uint64(row)<<rowShift | uint64(col))
}

// Clone returns an independent viewport holding a snapshot of the
// packed state at the instant of the call.
func (v *Viewport) Clone() *Viewport {
	c := &Viewport{}
	c.packed.Store(v.packed.Load())
	return c
}

func applyDelta(pos uint16, delta int) uint16 {
	n := int64(pos) + int64(delta)
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}

func satAdd(a, b uint16) uint16 {
	if s := uint32(a) + uint32(b); s <= math.MaxUint16 {
		return uint16(s)
	}
	return math.MaxUint16
}

func satSub(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}
