package render

// ScrollPosition maps a cursor position in [0, itemCount) to a scrollbar
// row in [0, height). Grounded on spec.md §4.B-C's formula (itself tracing
// original_source's scroll_position helper): position 0 maps to row 0,
// any position at or past itemCount-height maps to the last row, and
// everything between is an affine interpolation whose slope keeps the bar
// off the very first and last row except at those two boundaries. The
// degenerate case maxPosition==1 (a one-row "in between" range) centers the
// indicator rather than dividing by zero.
func ScrollPosition(position, itemCount, height int) int {
	if height <= 0 {
		return 0
	}
	if position <= 0 || itemCount <= height {
		return 0
	}
	if position >= itemCount-height {
		return height - 1
	}

	maxPosition := itemCount - height - 1
	if maxPosition <= 1 {
		return height / 2
	}

	slope := float64(height-3) / float64(maxPosition-1)
	row := 1 + slope*float64(position-1)
	return round(row)
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
