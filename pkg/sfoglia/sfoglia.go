// Package sfoglia provides a horizontally paged container for graphical
// applications on embedded Linux devices, particularly handheld gaming
// consoles running custom firmware.
//
// The package handles SDL initialization, input translation, theming, and
// the PagedView component: a touch- and button-driven sequence of lazily
// materialized pages. The windowing logic itself lives in the pager
// subpackage and can be used headless.
package sfoglia

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// Options configures sfoglia initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background image
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	ThemePath            string                 // TOML theme file; falls back to THEME_PATH, then built-in defaults
	PrimaryThemeColorHex uint32                 // Custom accent color overriding the theme's
	Language             string                 // BCP 47 tag for UI strings (default English)
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	EnablePowerButton    bool                   // Watch the hardware power button device for suspend/shutdown
	PowerButtonDevice    string                 // Input device path (default /dev/input/event1)
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other sfoglia functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	themePath := options.ThemePath
	if themePath == "" {
		themePath = os.Getenv(constants.ThemePathEnvVar)
	}
	if themePath != "" {
		theme, err := internal.LoadThemeFile(themePath)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme file", "path", themePath, "error", err)
		} else {
			internal.SetTheme(theme)
		}
	}

	if options.PrimaryThemeColorHex != 0 {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	if options.Language != "" {
		internal.SetLanguage(strings.Split(options.Language, ",")...)
	}

	pbc := internal.PowerButtonConfig{}
	if options.EnablePowerButton {
		devicePath := options.PowerButtonDevice
		if devicePath == "" {
			devicePath = "/dev/input/event1"
		}
		pbc = internal.PowerButtonConfig{
			ButtonCode:      116,
			DevicePath:      devicePath,
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
			ShutdownCommand: "/sbin/poweroff",
		}
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc)
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
