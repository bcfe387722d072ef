package internal

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a translated button event: an abstract VirtualButton plus its
// pressed/released edge.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// PointerPhase describes where a touch/mouse gesture is in its lifecycle.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is a normalized touch or mouse event in window pixels.
// Touch finger coordinates arrive from SDL in [0,1] and are scaled to the
// window size here so components only ever deal with pixels.
type PointerEvent struct {
	Phase PointerPhase
	X     int32
	Y     int32
}

// InputTranslator turns raw SDL events into Events and PointerEvents.
// It also owns the opened game controllers.
type InputTranslator struct {
	controllers []*sdl.GameController
	mouseDown   bool
}

var translator *InputTranslator

// InitInputTranslator opens every attached game controller and installs
// the shared translator.
func InitInputTranslator() {
	t := &InputTranslator{}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			t.controllers = append(t.controllers, c)
		}
	}

	GetInternalLogger().Debug("Input translator ready", "controllers", len(t.controllers))
	translator = t
}

// GetInputTranslator returns the shared translator.
func GetInputTranslator() *InputTranslator {
	return translator
}

// CloseAllControllers releases every controller opened at init.
func CloseAllControllers() {
	if translator == nil {
		return
	}
	for _, c := range translator.controllers {
		c.Close()
	}
	translator.controllers = nil
}

// TranslateButton maps a keyboard or controller event to a virtual button
// event. Returns nil for events that carry no binding (including key
// repeats, which components handle with their own repeat timing).
func (t *InputTranslator) TranslateButton(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button := keyBinding(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button := controllerBinding(e.Button)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}
	}

	return nil
}

// TranslatePointer maps mouse and touch events to pointer events. Returns
// nil for events that are not pointer input, and for mouse motion while no
// button is held.
func (t *InputTranslator) TranslatePointer(event sdl.Event, windowW, windowH int32) *PointerEvent {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return nil
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t.mouseDown = true
			return &PointerEvent{Phase: PointerDown, X: e.X, Y: e.Y}
		}
		t.mouseDown = false
		return &PointerEvent{Phase: PointerUp, X: e.X, Y: e.Y}

	case *sdl.MouseMotionEvent:
		if !t.mouseDown {
			return nil
		}
		return &PointerEvent{Phase: PointerMove, X: e.X, Y: e.Y}

	case *sdl.TouchFingerEvent:
		x := int32(e.X * float32(windowW))
		y := int32(e.Y * float32(windowH))
		switch e.Type {
		case sdl.FINGERDOWN:
			return &PointerEvent{Phase: PointerDown, X: x, Y: y}
		case sdl.FINGERMOTION:
			return &PointerEvent{Phase: PointerMove, X: x, Y: y}
		case sdl.FINGERUP:
			return &PointerEvent{Phase: PointerUp, X: x, Y: y}
		}
	}

	return nil
}

func keyBinding(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return constants.VirtualButtonB
	case sdl.K_PAGEUP:
		return constants.VirtualButtonL1
	case sdl.K_PAGEDOWN:
		return constants.VirtualButtonR1
	case sdl.K_SPACE:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	default:
		return constants.VirtualButtonUnassigned
	}
}

func controllerBinding(button uint8) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
