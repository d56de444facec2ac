package wrap

import "slices"

// Projection is the wrapped view of a buffer for one frame.
type Projection struct {
	Width  int
	Rows   []Row
	Cursor VisualPos
}

// Project wraps lines at width and locates the cursor.
func Project(lines []string, col, row, width int) Projection {
	width = normWidth(width)
	return Projection{
		Width:  width,
		Rows:   slices.AppendSeq(make([]Row, 0, RowCount(lines, width)), Rows(lines, width)),
		Cursor: Cursor(lines, col, row, width),
	}
}

// Window returns at most height rows centered on the cursor row, plus the
// cursor row relative to the first returned row.
func (p Projection) Window(height int) ([]Row, int) {
	if height < 1 || len(p.Rows) == 0 {
		return nil, 0
	}
	if len(p.Rows) <= height {
		return p.Rows, p.Cursor.Row
	}

	start := p.Cursor.Row - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(p.Rows) {
		end = len(p.Rows)
		start = end - height
	}
	return p.Rows[start:end], p.Cursor.Row - start
}

// Texts returns just the text of rows.
func Texts(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Text
	}
	return out
}
