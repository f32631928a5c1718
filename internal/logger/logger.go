package logger

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

func useColor() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func tagLine(color, tag, msg string) {
	if useColor() {
		fmt.Printf("%s[%s]%s %s\n", color, tag, colorReset, msg)
		return
	}
	fmt.Printf("[%s] %s\n", tag, msg)
}

// Info logs a neutral status line with a component tag.
func Info(tag, msg string) {
	tagLine(colorCyan, tag, msg)
}

// Success logs a completed operation.
func Success(tag, msg string) {
	tagLine(colorGreen, tag, msg)
}

// Warn logs a recoverable problem.
func Warn(tag, msg string) {
	tagLine(colorYellow, tag, msg)
}

// Error logs a failure.
func Error(tag, msg string) {
	tagLine(colorRed, tag, msg)
}

// Banner prints the startup header.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	bold, reset := "", ""
	if useColor() {
		bold, reset = colorBold, colorReset
	}
	fmt.Printf("%sHideout Tracker%s %s\n", bold, reset, version)
	fmt.Println("Crafting profitability for your hideout stations")
	fmt.Println()
}

// Section prints a visual divider before a group of log lines.
func Section(title string) {
	if useColor() {
		fmt.Printf("%s--- %s ---%s\n", colorGray, title, colorReset)
		return
	}
	fmt.Printf("--- %s ---\n", title)
}

// Stats prints a key/value stat line.
func Stats(key string, value interface{}) {
	fmt.Printf("  %s: %v\n", key, value)
}

// Server logs the listen address once the HTTP server is up.
func Server(addr string) {
	Success("Server", fmt.Sprintf("Listening on http://%s", addr))
}
