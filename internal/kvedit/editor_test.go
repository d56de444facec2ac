package kvedit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/textbuf"
)

func feed(e *Editor, s string) {
	for _, r := range s {
		e.FeedChar(r)
	}
}

func TestToggleRoutesInput(t *testing.T) {
	e := New()
	require.Equal(t, SideKey, e.Active())

	feed(e, "Accept")
	e.ToggleActive()
	assert.Equal(t, SideValue, e.Active())
	feed(e, "text/html")

	key, value := e.Commit()
	assert.Equal(t, "Accept", key)
	assert.Equal(t, "text/html", value)

	e.ToggleActive()
	assert.Equal(t, SideKey, e.Active())
	e.FeedBackspace()
	key, value = e.Commit()
	assert.Equal(t, "Accep", key)
	assert.Equal(t, "text/html", value)
}

func TestCommitDoesNotMutate(t *testing.T) {
	e := New()
	feed(e, "k")
	e.ToggleActive()
	feed(e, "v")

	k1, v1 := e.Commit()
	k2, v2 := e.Commit()
	assert.Equal(t, k1, k2)
	assert.Equal(t, v1, v2)
	assert.Equal(t, SideValue, e.Active())
}

func TestReset(t *testing.T) {
	e := New()
	feed(e, "X-Id")
	e.ToggleActive()
	feed(e, "42")

	e.Reset()
	key, value := e.Commit()
	assert.Empty(t, key)
	assert.Empty(t, value)
	assert.Equal(t, SideKey, e.Active())
	assert.Equal(t, textbuf.Position{}, e.Key().Cursor())
}

func TestFeedPasteMultiLine(t *testing.T) {
	e := New()
	e.ToggleActive()
	feed(e, "ab")
	e.Value().MoveLeft()

	e.FeedPaste("1\n2\n3")
	assert.Equal(t, []string{"a1", "2", "3b"}, e.Value().Lines())
	assert.Equal(t, textbuf.Position{Col: 1, Row: 2}, e.Value().Cursor())
	assert.True(t, e.Key().IsEmpty())
}

func TestPasteFromProvider(t *testing.T) {
	e := New()
	assert.True(t, e.Paste(clipboard.Static{Text: "token"}))
	key, _ := e.Commit()
	assert.Equal(t, "token", key)

	assert.False(t, e.Paste(clipboard.Static{Err: errors.New("no clipboard")}))
	assert.False(t, e.Paste(nil))
	key, _ = e.Commit()
	assert.Equal(t, "token", key)
}

func TestLoad(t *testing.T) {
	e := New()
	e.ToggleActive()
	e.Load("Content-Type", "application/json")

	assert.Equal(t, SideKey, e.Active())
	assert.Equal(t, textbuf.Position{Col: 12}, e.Key().Cursor())
	e.FeedBackspace()
	key, value := e.Commit()
	assert.Equal(t, "Content-Typ", key)
	assert.Equal(t, "application/json", value)
}

func TestFeedEvent(t *testing.T) {
	e := New()
	for _, ev := range []event.Event{
		event.Char('a'), event.Special(event.KeySpace), event.Char('b'),
		event.Special(event.KeyLeft), event.Special(event.KeyBackspace),
	} {
		assert.True(t, e.FeedEvent(ev), ev.String())
	}
	key, _ := e.Commit()
	assert.Equal(t, "ab", key)

	assert.True(t, e.FeedEvent(event.Ctrl('k')))
	key, _ = e.Commit()
	assert.Equal(t, "a", key)

	assert.True(t, e.FeedEvent(event.Paste("xyz")))
	key, _ = e.Commit()
	assert.Equal(t, "axyz", key)

	assert.False(t, e.FeedEvent(event.Special(event.KeyTab)))
	assert.False(t, e.FeedEvent(event.Special(event.KeyEnter)))
	assert.False(t, e.FeedEvent(event.Special(event.KeyEsc)))
	assert.False(t, e.FeedEvent(event.Ctrl('q')))
	assert.Equal(t, SideKey, e.Active())
}
