// Package gutter formats the line-number column rendered left of the
// text content.
package gutter

import "fmt"

// numDigits returns the number of decimal digits in n. Zero still
// occupies one digit.
func numDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Width returns the total gutter width for a buffer with the given
// line count: the digits of the largest line number plus one space of
// padding on each side.
func Width(lineCount int) int {
	return numDigits(lineCount) + 2
}

// Format renders the 1-indexed number for the given 0-indexed line,
// right-aligned to digits, with the surrounding padding spaces.
func Format(line, digits int) string {
	return fmt.Sprintf(" %*d ", digits, line+1)
}

// Digits returns the digit width used by Format for a buffer with the
// given line count.
func Digits(lineCount int) int {
	return numDigits(lineCount)
}
