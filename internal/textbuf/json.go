package textbuf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/pretty"
)

// FormatError reports a structured reformat request on content that does
// not parse. The buffer is left untouched when it is returned.
type FormatError struct {
	// Offset is the byte offset of the syntax error, -1 when unknown.
	Offset int64
	Err    error
}

func (e *FormatError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// PrettifyJSON replaces the content with its pretty-printed JSON form and
// moves the cursor to the end of the document. On invalid content it
// returns a *FormatError, records the message for display and does not
// touch lines or cursor.
func (b *Buffer) PrettifyJSON() error {
	raw := []byte(b.Text())

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		ferr := &FormatError{Offset: -1, Err: err}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			ferr.Offset = syntaxErr.Offset
		}
		b.formatErr = ferr.Error()
		return ferr
	}

	formatted := bytes.TrimRight(pretty.PrettyOptions(raw, prettyOptions), "\n")
	b.lines = splitLines(string(formatted))
	b.moveToEnd()
	b.formatErr = ""
	return nil
}

// FormatError returns the message of the last failed reformat, or "".
func (b *Buffer) FormatError() string {
	return b.formatErr
}

// ClearFormatError drops the recorded reformat message.
func (b *Buffer) ClearFormatError() {
	b.formatErr = ""
}
