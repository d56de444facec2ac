package pane

import (
	"github.com/studiowebux/reqtui/internal/textbuf"
	"github.com/studiowebux/reqtui/internal/wrap"
)

// Frame is what a pane draws for one render: the visible lines and the
// cursor position within them.
type Frame struct {
	Lines      []string
	Cursor     wrap.VisualPos
	ShowCursor bool
	// Highlight is the index of the selected line, or -1.
	Highlight int
}

// bufferFrame wraps buf at width and keeps the cursor row in view.
func bufferFrame(buf *textbuf.Buffer, width, height int, show bool) Frame {
	cur := buf.Cursor()
	proj := wrap.Project(buf.Lines(), cur.Col, cur.Row, width)
	rows, cursorRow := proj.Window(height)

	pos := proj.Cursor
	pos.Row = cursorRow
	return Frame{
		Lines:      wrap.Texts(rows),
		Cursor:     pos,
		ShowCursor: show,
		Highlight:  -1,
	}
}

// offset shifts the frame down by rows and right by cols, for panes that
// draw a header or label before the buffer.
func (f Frame) offset(rows, cols int) Frame {
	f.Cursor.Row += rows
	f.Cursor.Col += cols
	if f.Highlight >= 0 {
		f.Highlight += rows
	}
	return f
}
