// Package focus tracks which region of the UI receives input: a fixed ring
// of targets plus a stack of modal popups that preempt the ring.
package focus

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRing       = errors.New("focus ring is empty")
	ErrDuplicateTarget = errors.New("duplicate focus target")
)

// Target names a focusable region.
type Target string

const (
	TargetAddressBar   Target = "address_bar"
	TargetRequestBody  Target = "request_body"
	TargetResponseBody Target = "response_body"
	TargetRequestList  Target = "request_list"
)

// DefaultRing is the focus order of the main screen.
var DefaultRing = []Target{
	TargetRequestList,
	TargetAddressBar,
	TargetRequestBody,
	TargetResponseBody,
}

// Chain is the focus ring and the modal stack.
//
// The ring is fixed at construction. Advance and Retreat are the only
// operations that change the focused target. While a modal is pushed, the
// caller must offer input to Top before the ring.
type Chain struct {
	ring    []Target
	current int
	modals  []Modal
}

// NewChain builds a chain focused on the first target.
func NewChain(ring ...Target) (*Chain, error) {
	if len(ring) == 0 {
		return nil, ErrEmptyRing
	}
	seen := make(map[Target]bool, len(ring))
	for _, t := range ring {
		if seen[t] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTarget, t)
		}
		seen[t] = true
	}
	return &Chain{ring: append([]Target(nil), ring...)}, nil
}

// Advance moves focus to the next target, wrapping at the end.
func (c *Chain) Advance() {
	c.current = (c.current + 1) % len(c.ring)
}

// Retreat moves focus to the previous target, wrapping at the start.
func (c *Chain) Retreat() {
	c.current = (c.current - 1 + len(c.ring)) % len(c.ring)
}

// Current returns the focused ring target.
func (c *Chain) Current() Target {
	return c.ring[c.current]
}

// Index returns the position of the focused target in the ring.
func (c *Chain) Index() int {
	return c.current
}

// Ring returns a copy of the ring.
func (c *Chain) Ring() []Target {
	return append([]Target(nil), c.ring...)
}

// Push puts m on top of the modal stack.
func (c *Chain) Push(m Modal) {
	c.modals = append(c.modals, m)
}

// Top returns the modal that owns input, if any.
func (c *Chain) Top() (Modal, bool) {
	if len(c.modals) == 0 {
		return nil, false
	}
	return c.modals[len(c.modals)-1], true
}

// Pop removes and returns the top modal.
func (c *Chain) Pop() (Modal, bool) {
	m, ok := c.Top()
	if ok {
		c.modals[len(c.modals)-1] = nil
		c.modals = c.modals[:len(c.modals)-1]
	}
	return m, ok
}

// Depth returns the number of stacked modals.
func (c *Chain) Depth() int {
	return len(c.modals)
}

// State returns the state of the modal sub-machine, decided by the top modal.
func (c *Chain) State() ModalState {
	if m, ok := c.Top(); ok {
		return m.State()
	}
	return NoModal
}

// Descriptor describes the top modal for rendering.
func (c *Chain) Descriptor() (Descriptor, bool) {
	m, ok := c.Top()
	if !ok {
		return Descriptor{}, false
	}
	return m.Describe(), true
}
