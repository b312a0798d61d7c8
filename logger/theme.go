package logger

import (
	"sync"

	"go.uber.org/zap/zapcore"
)

// Console themes, selected by log.theme
const (
	ThemeEverforest = "everforest"
	ThemeGruvbox    = "gruvbox"
	ThemeNone       = "none"
)

const colorReset = "\x1b[0m"

// palette colors level names in console output
type palette struct {
	debug string
	info  string
	warn  string
	error string
}

var palettes = map[string]palette{
	ThemeEverforest: {
		debug: "\x1b[38;5;65m",  // Deep green (#7fbbb3)
		info:  "\x1b[38;5;108m", // Bright green (#a7c080)
		warn:  "\x1b[38;5;179m", // Soft yellow (#dbbc7f)
		error: "\x1b[38;5;167m", // Warm red (#e67e80)
	},
	ThemeGruvbox: {
		debug: "\x1b[38;5;109m", // Soft blue (#83a598)
		info:  "\x1b[38;5;142m", // Muted green (#b8bb26)
		warn:  "\x1b[38;5;214m", // Soft yellow (#fabd2f)
		error: "\x1b[38;5;167m", // Warm red (#fb4934)
	},
}

var (
	themeMu      sync.RWMutex
	currentTheme = ThemeEverforest
)

// SetTheme selects the console color scheme. Unknown themes are ignored.
// Takes effect on the next Initialize.
func SetTheme(theme string) {
	if _, ok := palettes[theme]; !ok && theme != ThemeNone {
		return
	}
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
}

// Theme returns the active console theme
func Theme() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// levelEncoder returns the level encoder for the active theme
func levelEncoder() zapcore.LevelEncoder {
	colors, ok := palettes[Theme()]
	if !ok {
		return zapcore.CapitalLevelEncoder
	}

	return func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		var color string
		switch {
		case level >= zapcore.ErrorLevel:
			color = colors.error
		case level == zapcore.WarnLevel:
			color = colors.warn
		case level == zapcore.InfoLevel:
			color = colors.info
		default:
			color = colors.debug
		}
		enc.AppendString(color + level.CapitalString() + colorReset)
	}
}
