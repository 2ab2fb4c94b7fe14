package logger

import (
	"fmt"
	"os"
	"time"
)

// ANSI color codes
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
)

var useColors = os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"

func colorize(color, text string) string {
	if !useColors {
		return text
	}
	return color + text + reset
}

func timestamp() string {
	return colorize(dim, time.Now().Format("15:04:05"))
}

// Banner prints the startup banner.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Println()
	fmt.Println(colorize(cyan+bold, "  new eden routes ") + colorize(dim, version))
	fmt.Println()
}

// Info prints an info message.
func Info(tag, msg string) {
	icon := colorize(blue, "●")
	tagStr := colorize(cyan, fmt.Sprintf("[%s]", tag))
	fmt.Printf("%s %s %s %s\n", timestamp(), icon, tagStr, msg)
}

// Success prints a success message.
func Success(tag, msg string) {
	icon := colorize(green, "✓")
	tagStr := colorize(green, fmt.Sprintf("[%s]", tag))
	fmt.Printf("%s %s %s %s\n", timestamp(), icon, tagStr, msg)
}

// Warn prints a warning message.
func Warn(tag, msg string) {
	icon := colorize(yellow, "▲")
	tagStr := colorize(yellow, fmt.Sprintf("[%s]", tag))
	fmt.Printf("%s %s %s %s\n", timestamp(), icon, tagStr, msg)
}

// Error prints an error message.
func Error(tag, msg string) {
	icon := colorize(red, "✗")
	tagStr := colorize(red, fmt.Sprintf("[%s]", tag))
	fmt.Printf("%s %s %s %s\n", timestamp(), icon, tagStr, msg)
}
