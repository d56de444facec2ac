// Package wrap projects logical buffer lines onto fixed-width visual rows.
//
// Everything here is pure and recomputed per frame: the logical lines are
// never modified and nothing is cached between calls. Widths are counted
// in runes, matching textbuf columns.
package wrap

import "iter"

// Row is one visual row: chunk Chunk of logical line Line.
type Row struct {
	Line  int
	Chunk int
	Text  string
}

// VisualPos is the on-screen cursor position after wrapping.
// Trailing is set when the cursor sits right after a line whose length is
// an exact multiple of the width; it is drawn after the last chunk
// (Col == width) instead of on a phantom empty row.
type VisualPos struct {
	Col      int
	Row      int
	Trailing bool
}

func normWidth(width int) int {
	if width < 1 {
		return 1
	}
	return width
}

// chunkCount returns the number of visual rows for a line of n runes.
func chunkCount(n, width int) int {
	if n == 0 {
		return 1
	}
	return (n + width - 1) / width
}

// Chunks splits a line into pieces of at most width runes.
// An empty line yields a single empty chunk.
func Chunks(line string, width int) []string {
	width = normWidth(width)
	runes := []rune(line)
	count := chunkCount(len(runes), width)
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		start := i * width
		end := min(start+width, len(runes))
		out = append(out, string(runes[start:end]))
	}
	return out
}

// Rows lazily yields the visual rows of lines, in order.
func Rows(lines []string, width int) iter.Seq[Row] {
	width = normWidth(width)
	return func(yield func(Row) bool) {
		for i, line := range lines {
			for j, chunk := range Chunks(line, width) {
				if !yield(Row{Line: i, Chunk: j, Text: chunk}) {
					return
				}
			}
		}
	}
}

// Cursor maps the logical cursor (col,row) to its visual position.
func Cursor(lines []string, col, row, width int) VisualPos {
	width = normWidth(width)
	if len(lines) == 0 {
		return VisualPos{}
	}
	row = max(0, min(row, len(lines)-1))

	above := 0
	for i := 0; i < row; i++ {
		above += chunkCount(len([]rune(lines[i])), width)
	}

	n := len([]rune(lines[row]))
	col = max(0, min(col, n))

	if col == n && n > 0 && n%width == 0 {
		return VisualPos{Col: width, Row: above + col/width - 1, Trailing: true}
	}
	return VisualPos{Col: col % width, Row: above + col/width}
}

// RowCount returns the total number of visual rows for lines.
func RowCount(lines []string, width int) int {
	width = normWidth(width)
	total := 0
	for _, line := range lines {
		total += chunkCount(len([]rune(line)), width)
	}
	return total
}
