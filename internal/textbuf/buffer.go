package textbuf

import (
	"strings"
)

// Position is a logical cursor position. Col counts runes into the line.
type Position struct {
	Col int
	Row int
}

// Buffer is a multi-line text buffer with a single cursor.
//
// Lines are stored as rune slices so columns always count Unicode scalar
// values, never bytes. A Buffer always holds at least one (possibly empty)
// line and the cursor is kept inside the document after every operation.
type Buffer struct {
	lines     [][]rune
	cursor    Position
	formatErr string
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewFromString creates a buffer seeded with text, cursor at (0,0).
func NewFromString(text string) *Buffer {
	b := New()
	b.Load(text)
	return b
}

// Load replaces the content and resets the cursor to (0,0).
func (b *Buffer) Load(text string) {
	b.lines = splitLines(text)
	b.cursor = Position{}
	b.formatErr = ""
}

// LoadAtEnd replaces the content and places the cursor at the end of the document.
func (b *Buffer) LoadAtEnd(text string) {
	b.Load(text)
	b.moveToEnd()
}

// Text joins all lines with "\n".
func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, line := range b.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// Lines returns a copy of the lines as strings.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// Line returns line i, or "" when out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// LineCount returns the number of lines (always >= 1).
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Len returns the length of Text() in runes.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// IsEmpty reports whether the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// SetCursor moves the cursor, clamping it into the document.
func (b *Buffer) SetCursor(col, row int) {
	row = clamp(row, 0, len(b.lines)-1)
	col = clamp(col, 0, len(b.lines[row]))
	b.cursor = Position{Col: col, Row: row}
}

// FlattenedOffset returns the cursor offset into Text(), in runes.
func (b *Buffer) FlattenedOffset() int {
	offset := 0
	for i := 0; i < b.cursor.Row; i++ {
		offset += len(b.lines[i]) + 1
	}
	return offset + b.cursor.Col
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.lines = [][]rune{{}}
	b.cursor = Position{}
	b.formatErr = ""
}

func (b *Buffer) moveToEnd() {
	last := len(b.lines) - 1
	b.cursor = Position{Col: len(b.lines[last]), Row: last}
}

func (b *Buffer) current() []rune {
	return b.lines[b.cursor.Row]
}

func splitLines(text string) [][]rune {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
