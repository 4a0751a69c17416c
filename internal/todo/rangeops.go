package todo

// The four functions below are a direct port of
// original_source/todo_file/utils.rs (swap_range_up, swap_range_down,
// remove_range, add_range): all four accept a (start, end) pair in either
// order and normalize internally, matching TodoFile's selection model where
// anchor and cursor may appear on either side of a visual selection.

func swapRangeUp(lines []Line, start, end int) {
	lo, hi := end-1, start
	if end > start {
		lo, hi = start-1, end
	}
	for i := lo; i < hi; i++ {
		lines[i], lines[i+1] = lines[i+1], lines[i]
	}
}

func swapRangeDown(lines []Line, start, end int) {
	lo, hi := end, start
	if end > start {
		lo, hi = start, end
	}
	for i := hi; i >= lo; i-- {
		lines[i], lines[i+1] = lines[i+1], lines[i]
	}
}

func removeRange(lines []Line, start, end int) ([]Line, []Line) {
	var removed []Line
	if end <= start {
		for i := 0; i <= start-end; i++ {
			removed = append(removed, lines[end])
			lines = append(lines[:end], lines[end+1:]...)
		}
	} else {
		for i := 0; i <= end-start; i++ {
			removed = append(removed, lines[start])
			lines = append(lines[:start], lines[start+1:]...)
		}
	}
	return lines, removed
}

func addRange(lines []Line, newLines []Line, start, end int) []Line {
	lo, hi := end, start
	if end > start {
		lo, hi = start, end
	}
	for addIndex, index := 0, lo; index <= hi; addIndex, index = addIndex+1, index+1 {
		tail := append([]Line(nil), lines[index:]...)
		lines = append(append(append([]Line(nil), lines[:index]...), newLines[addIndex]), tail...)
	}
	return lines
}

// clampInsertIndex clamps an insertion index to [0, length] (inclusive of
// "append at end"), unlike clampRange which clamps to an existing element.
func clampInsertIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

func clampRange(i, length int) int {
	if length == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i > length-1 {
		return length - 1
	}
	return i
}

func normalize(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
