// Package ui holds the colours and tables shared by the commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variant of each colour.
var DarkTheme bool

type shade struct {
	onDark  pterm.Color
	onLight pterm.Color
}

func (s shade) paint(a any) string {
	if DarkTheme {
		return s.onDark.Sprint(a)
	}

	return s.onLight.Sprint(a)
}

var (
	green   = shade{pterm.FgLightGreen, pterm.FgGreen}
	cyan    = shade{pterm.FgLightCyan, pterm.FgCyan}
	magenta = shade{pterm.FgLightMagenta, pterm.FgMagenta}
	blue    = shade{pterm.FgLightBlue, pterm.FgBlue}
	red     = shade{pterm.FgLightRed, pterm.FgRed}
)

func Green(a any) string {
	return green.paint(a)
}

func Cyan(a any) string {
	return cyan.paint(a)
}

func Magenta(a any) string {
	return magenta.paint(a)
}

func Blue(a any) string {
	return blue.paint(a)
}

func Red(a any) string {
	return red.paint(a)
}
