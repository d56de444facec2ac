package pane

// listWindow returns the [start, end) slice of count items that fits in
// height rows and keeps selected visible, scrolling as little as possible
// from the previous start.
func listWindow(count, selected, start, height int) (int, int) {
	if height < 1 || count == 0 {
		return 0, 0
	}
	if selected < start {
		start = selected
	}
	if selected >= start+height {
		start = selected - height + 1
	}
	start = max(0, min(start, count-height))
	return start, min(count, start+height)
}

// clampIndex keeps i within [0, count-1], or 0 for an empty list.
func clampIndex(i, count int) int {
	if count == 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
