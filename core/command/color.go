package command

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	ColorModeAlways = "always"
	ColorModeAuto   = "auto"
	ColorModeNever  = "never"
)

var (
	ColorBold     = color.New(color.Bold)
	ColorBoldRed  = color.New(color.FgRed, color.Bold)
	ColorBoldBlue = color.New(color.FgBlue, color.Bold)
)

// ColorPrinter decides whether output should be colorized. A nil
// ColorPrinter never colors.
type ColorPrinter struct {
	mode     string
	terminal bool
}

// NewColorPrinter creates a printer for the given mode (always|auto|never).
// In auto mode output is colored when out is a terminal.
func NewColorPrinter(mode string, out interface{}) *ColorPrinter {
	terminal := false
	if f, ok := out.(*os.File); ok {
		terminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &ColorPrinter{mode: mode, terminal: terminal}
}

// ShouldColor returns true if output should contain color escapes.
func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case c == nil || c.mode == ColorModeNever:
		return false
	case c.mode == ColorModeAlways:
		return true
	default:
		return c.terminal
	}
}

// Sprintf formats the string, colored with clr if ShouldColor.
func (c *ColorPrinter) Sprintf(clr *color.Color, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}
	forced := *clr
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}
