package textarea

// Explicit, user-driven scrolling. These adjust the viewport's top
// offsets directly and are independent of the cursor-follow that runs
// during rendering; the next render pass may pull the window back if
// the cursor would otherwise leave it.
//
// Page units come from the height stored by the last render pass. The
// stored size trails the display by one pass, so a page scroll issued
// immediately after a resize uses the previous height. That is the
// stored-state contract, not a bug.

// ScrollDelta scrolls by the given number of rows and columns.
// Negative values move toward the origin; offsets saturate instead of
// wrapping.
func (ta *TextArea) ScrollDelta(rows, cols int) {
	ta.vp.Scroll(rows, cols)
}

// ScrollPages scrolls vertically by n pages.
func (ta *TextArea) ScrollPages(n int) {
	_, _, _, height := ta.vp.Rect()
	ta.vp.Scroll(n*int(height), 0)
}

// ScrollHalfPages scrolls vertically by n half pages.
func (ta *TextArea) ScrollHalfPages(n int) {
	_, _, _, height := ta.vp.Rect()
	ta.vp.Scroll(n*int(height)/2, 0)
}
