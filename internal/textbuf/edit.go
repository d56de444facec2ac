package textbuf

import "strings"

// InsertChar inserts r at the cursor. A line break splits the line.
func (b *Buffer) InsertChar(r rune) {
	if r == '\n' {
		b.SplitLine()
		return
	}
	if r == '\r' {
		return
	}
	line := b.current()
	col := b.cursor.Col
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	b.lines[b.cursor.Row] = next
	b.cursor.Col++
}

// InsertString inserts s at the cursor. The first line of s merges into the
// current line, every following line becomes a new line. The cursor ends up
// right after the inserted text.
func (b *Buffer) InsertString(s string) {
	if s == "" {
		return
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	parts := strings.Split(s, "\n")

	line := b.current()
	head := append([]rune{}, line[:b.cursor.Col]...)
	tail := append([]rune{}, line[b.cursor.Col:]...)

	inserted := make([][]rune, len(parts))
	for i, p := range parts {
		inserted[i] = []rune(strings.ReplaceAll(p, "\r", ""))
	}

	last := len(inserted) - 1
	endCol := len(inserted[last])
	if last == 0 {
		endCol += len(head)
	}

	inserted[0] = append(head, inserted[0]...)
	inserted[last] = append(inserted[last], tail...)

	lines := make([][]rune, 0, len(b.lines)+last)
	lines = append(lines, b.lines[:b.cursor.Row]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[b.cursor.Row+1:]...)
	b.lines = lines
	b.cursor = Position{Col: endCol, Row: b.cursor.Row + last}
}

// SplitLine breaks the current line at the cursor. The cursor moves to
// column 0 of the new line.
func (b *Buffer) SplitLine() {
	line := b.current()
	col := b.cursor.Col
	head := append([]rune{}, line[:col]...)
	tail := append([]rune{}, line[col:]...)

	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:b.cursor.Row]...)
	lines = append(lines, head, tail)
	lines = append(lines, b.lines[b.cursor.Row+1:]...)
	b.lines = lines
	b.cursor = Position{Col: 0, Row: b.cursor.Row + 1}
}

// DeleteBackward removes the rune left of the cursor. At column 0 the
// current line is joined onto the previous one. No-op at (0,0).
func (b *Buffer) DeleteBackward() {
	if b.cursor.Col > 0 {
		line := b.current()
		col := b.cursor.Col
		b.lines[b.cursor.Row] = append(line[:col-1:col-1], line[col:]...)
		b.cursor.Col--
		return
	}
	if b.cursor.Row == 0 {
		return
	}
	prev := b.lines[b.cursor.Row-1]
	joinCol := len(prev)
	b.lines[b.cursor.Row-1] = append(append([]rune{}, prev...), b.current()...)
	b.lines = append(b.lines[:b.cursor.Row], b.lines[b.cursor.Row+1:]...)
	b.cursor = Position{Col: joinCol, Row: b.cursor.Row - 1}
}

// DeleteForward removes the rune under the cursor. At end of line the next
// line is joined onto the current one. No-op at end of document.
func (b *Buffer) DeleteForward() {
	line := b.current()
	if b.cursor.Col < len(line) {
		col := b.cursor.Col
		b.lines[b.cursor.Row] = append(line[:col:col], line[col+1:]...)
		return
	}
	if b.cursor.Row == len(b.lines)-1 {
		return
	}
	next := b.lines[b.cursor.Row+1]
	b.lines[b.cursor.Row] = append(append([]rune{}, line...), next...)
	b.lines = append(b.lines[:b.cursor.Row+1], b.lines[b.cursor.Row+2:]...)
}

// ClearBeforeCursor removes everything between line start and the cursor.
func (b *Buffer) ClearBeforeCursor() {
	line := b.current()
	b.lines[b.cursor.Row] = append([]rune{}, line[b.cursor.Col:]...)
	b.cursor.Col = 0
}

// ClearAfterCursor removes everything between the cursor and line end.
func (b *Buffer) ClearAfterCursor() {
	line := b.current()
	b.lines[b.cursor.Row] = append([]rune{}, line[:b.cursor.Col]...)
}
