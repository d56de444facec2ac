/*
Package textbuf implements the multi-line text buffer shared by every
editable region of the TUI: the address bar, the request body, the
header/param pair editor and the text-input popups.

# Model

A Buffer is a list of lines plus one cursor (Col, Row). Columns count runes
(Unicode scalar values), so non-ASCII input never splits a character.

Invariants held after every operation:
  - there is always at least one line
  - 0 <= Row < LineCount()
  - 0 <= Col <= len(Line(Row)) in runes

Edge movements clamp silently: deleting at the start of the document or
moving past its end are no-ops, never errors.

# Cursor Policy

Left/Right wrap across line boundaries. Up/Down keep the column but clamp it
to the destination line length; the original column is not remembered.

# Flattened Offset

Callers that mirror the buffer into a flat string (the request body on
the domain object) use FlattenedOffset to locate the cursor in Text().

# JSON

PrettifyJSON reformats the buffer in place. Invalid content yields a
*FormatError and leaves the buffer unchanged; the message stays available
through FormatError() for display.
*/
package textbuf
