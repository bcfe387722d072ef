package internal

import (
	"os"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up the SDL subsystems, the host window, and fonts. If a
// power button device is configured, the watcher goroutine starts too.
func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO |
		img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP |
		sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	InitInputTranslator()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts(GetTheme().FontPath, DefaultFontSizes)

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		window.PowerButtonWG.Add(1)
		go PowerButtonHandler(&window.PowerButtonWG, pbc)
	}
}

func SDLCleanup() {
	StopPowerButtonHandler()
	window.closeWindow()
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
