package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes the raw input device carrying the hardware
// power button on CFW handhelds. SDL never sees this button, so it is read
// straight from evdev in a background goroutine.
type PowerButtonConfig struct {
	ButtonCode      uint16        // Key code of the power button (usually 116, KEY_POWER)
	DevicePath      string        // Input device path, e.g. /dev/input/event1
	ShortPressMax   time.Duration // Presses up to this length suspend; longer ones shut down
	CoolDownTime    time.Duration // Minimum gap between handled presses
	SuspendScript   string        // Command run on short press
	ShutdownCommand string        // Command run on long press
}

var (
	powerStop   = atomic.NewBool(false)
	powerDevice *evdev.InputDevice
)

// PowerButtonHandler watches the configured input device and runs the
// suspend or shutdown command depending on press length. It exits when the
// device errors out, which is how StopPowerButtonHandler unblocks it.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	defer wg.Done()

	dev, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}
	powerDevice = dev

	var pressedAt time.Time
	var lastHandled time.Time

	for {
		event, err := dev.ReadOne()
		if err != nil {
			if !powerStop.Load() {
				GetInternalLogger().Error("Power button device read failed", "error", err)
			}
			return
		}
		if powerStop.Load() {
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != pbc.ButtonCode {
			continue
		}

		switch event.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if pressedAt.IsZero() {
				continue
			}
			if time.Since(lastHandled) < pbc.CoolDownTime {
				continue
			}
			lastHandled = time.Now()

			held := time.Since(pressedAt)
			pressedAt = time.Time{}

			if held <= pbc.ShortPressMax {
				runPowerCommand("suspend", pbc.SuspendScript)
			} else {
				runPowerCommand("shutdown", pbc.ShutdownCommand)
			}
		}
	}
}

// StopPowerButtonHandler signals the watcher to exit and closes its device
// to unblock the pending read. Safe to call when no watcher was started.
func StopPowerButtonHandler() {
	powerStop.Store(true)
	if powerDevice != nil {
		powerDevice.Close()
		powerDevice = nil
	}
}

func runPowerCommand(action, command string) {
	if command == "" {
		return
	}
	GetInternalLogger().Info("Power button action", "action", action, "command", command)
	if err := exec.Command(command).Run(); err != nil {
		GetInternalLogger().Error("Power command failed", "action", action, "error", err)
	}
}
