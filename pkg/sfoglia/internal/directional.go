package internal

import (
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// Direction represents a horizontal paging direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// HorizontalInput tracks held left/right buttons and handles repeat timing
// for page-by-page navigation. Embed it in component controllers to get
// consistent hold-to-flip behavior.
type HorizontalInput struct {
	held struct {
		left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewHorizontalInput creates a HorizontalInput with default timing.
// Default delay is 300ms before the first repeat, then 150ms between
// repeats; page flips are heavier than list steps, so the interval is
// slower than the 4-way default.
func NewHorizontalInput() HorizontalInput {
	return NewHorizontalInputWithTiming(300*time.Millisecond, 150*time.Millisecond)
}

// NewHorizontalInputWithTiming creates a HorizontalInput with custom timing.
func NewHorizontalInputWithTiming(delay, interval time.Duration) HorizontalInput {
	return HorizontalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a horizontal directional button.
func (h *HorizontalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonLeft:
		h.held.left = held
		if !held {
			h.hasRepeated = false
		}
		return true
	case constants.VirtualButtonRight:
		h.held.right = held
		if !held {
			h.hasRepeated = false
		}
		return true
	}
	return false
}

// IsHeld returns true if either direction is currently held.
func (h *HorizontalInput) IsHeld() bool {
	return h.held.left || h.held.right
}

// HeldDirection returns the currently held direction. When both are held,
// left wins. Returns DirectionNone if neither is held.
func (h *HorizontalInput) HeldDirection() Direction {
	if h.held.left {
		return DirectionLeft
	}
	if h.held.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the direction that should be processed,
// or DirectionNone if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after
// repeatInterval.
func (h *HorizontalInput) Update() Direction {
	if !h.IsHeld() {
		h.lastRepeatTime = time.Now()
		h.hasRepeated = false
		return DirectionNone
	}

	timeSince := time.Since(h.lastRepeatTime)

	threshold := h.repeatInterval
	if !h.hasRepeated {
		threshold = h.repeatDelay
	}

	if timeSince >= threshold {
		h.lastRepeatTime = time.Now()
		h.hasRepeated = true
		return h.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held state and timing.
func (h *HorizontalInput) Reset() {
	h.held.left = false
	h.held.right = false
	h.hasRepeated = false
	h.lastRepeatTime = time.Now()
}
