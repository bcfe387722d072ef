package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/stretchr/testify/require"
)

func TestHorizontalInput_IgnoresVerticalButtons(t *testing.T) {
	h := NewHorizontalInput()

	require.False(t, h.SetHeld(constants.VirtualButtonUp, true))
	require.False(t, h.SetHeld(constants.VirtualButtonA, true))
	require.False(t, h.IsHeld())

	require.True(t, h.SetHeld(constants.VirtualButtonLeft, true))
	require.True(t, h.IsHeld())
	require.Equal(t, DirectionLeft, h.HeldDirection())
}

func TestHorizontalInput_RepeatTiming(t *testing.T) {
	h := NewHorizontalInputWithTiming(20*time.Millisecond, 10*time.Millisecond)

	h.SetHeld(constants.VirtualButtonRight, true)

	require.Equal(t, DirectionNone, h.Update(), "no repeat before the initial delay")

	time.Sleep(25 * time.Millisecond)
	require.Equal(t, DirectionRight, h.Update(), "first repeat after the delay")

	require.Equal(t, DirectionNone, h.Update(), "interval not elapsed yet")

	time.Sleep(15 * time.Millisecond)
	require.Equal(t, DirectionRight, h.Update(), "subsequent repeats after the interval")
}

func TestHorizontalInput_ReleaseStopsRepeats(t *testing.T) {
	h := NewHorizontalInputWithTiming(5*time.Millisecond, 5*time.Millisecond)

	h.SetHeld(constants.VirtualButtonRight, true)
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, DirectionRight, h.Update())

	h.SetHeld(constants.VirtualButtonRight, false)
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, DirectionNone, h.Update())
}

func TestHorizontalInput_LeftWinsWhenBothHeld(t *testing.T) {
	h := NewHorizontalInput()

	h.SetHeld(constants.VirtualButtonRight, true)
	h.SetHeld(constants.VirtualButtonLeft, true)

	require.Equal(t, DirectionLeft, h.HeldDirection())
}

func TestHorizontalInput_Reset(t *testing.T) {
	h := NewHorizontalInput()

	h.SetHeld(constants.VirtualButtonLeft, true)
	h.Reset()

	require.False(t, h.IsHeld())
	require.Equal(t, DirectionNone, h.HeldDirection())
}
