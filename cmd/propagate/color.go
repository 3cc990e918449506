package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"
)

// useColor decides whether to colorize messages.
func useColor(mode string) (bool, error) {
	switch mode {
	case "auto":
		return isatty(), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid -c value: %s", mode)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
	reTab = regexp.MustCompile(`(?m)^\t.+`)

	posColor = color.New(color.Bold)
	tabColor = color.New(color.Faint)
	errColor = color.New(color.FgRed)
)

// colorize adds ANSI color codes to the message. Positions are bold and
// indented details are dim.
func colorize(message string) string {
	posColor.EnableColor()
	tabColor.EnableColor()
	errColor.EnableColor()

	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(posColor.Sprint(string(b)))
	})
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(tabColor.Sprint(string(b)))
	})
	if !rePos.Match([]byte(message)) {
		return errColor.Sprint(string(m))
	}
	return string(m)
}
