package textbuf

// MoveLeft moves one rune left, wrapping to the end of the previous line.
func (b *Buffer) MoveLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
		return
	}
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.cursor.Col = len(b.lines[b.cursor.Row])
	}
}

// MoveRight moves one rune right, wrapping to the start of the next line.
func (b *Buffer) MoveRight() {
	if b.cursor.Col < len(b.current()) {
		b.cursor.Col++
		return
	}
	if b.cursor.Row < len(b.lines)-1 {
		b.cursor.Row++
		b.cursor.Col = 0
	}
}

// MoveUp moves to the previous line keeping the column, clamped to the
// destination line length. There is no remembered "sticky" column.
func (b *Buffer) MoveUp() {
	if b.cursor.Row == 0 {
		return
	}
	b.cursor.Row--
	b.cursor.Col = min(b.cursor.Col, len(b.lines[b.cursor.Row]))
}

// MoveDown moves to the next line keeping the column, clamped to the
// destination line length.
func (b *Buffer) MoveDown() {
	if b.cursor.Row >= len(b.lines)-1 {
		return
	}
	b.cursor.Row++
	b.cursor.Col = min(b.cursor.Col, len(b.lines[b.cursor.Row]))
}

// MoveHome moves to the start of the current line.
func (b *Buffer) MoveHome() {
	b.cursor.Col = 0
}

// MoveEnd moves to the end of the current line.
func (b *Buffer) MoveEnd() {
	b.cursor.Col = len(b.current())
}
