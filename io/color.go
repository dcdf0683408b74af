package noargio

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
)

// Style is an immutable set of SGR attributes.
type Style struct {
	attrs []color.Attribute
}

// NewStyle creates a style from fatih/color attributes.
func NewStyle(attrs ...color.Attribute) Style { return Style{attrs: slices.Clone(attrs)} }

// Add returns a copy of s with more attributes.
func (s Style) Add(attrs ...color.Attribute) Style {
	return Style{attrs: append(slices.Clone(s.attrs), attrs...)}
}

// Sprint returns a styled string if m supports color; otherwise text unchanged.
func (s Style) Sprint(m *IOManager, text string) string {
	if len(s.attrs) == 0 {
		return text
	}
	c := color.New(s.attrs...)
	if m.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Sprintf formats with fmt.Sprintf and then applies the style.
func (s Style) Sprintf(m *IOManager, format string, a ...any) string {
	return s.Sprint(m, fmt.Sprintf(format, a...))
}

// Theme provides semantic colors.
type Theme struct {
	Primary, Success, Warning, Error, Info, Debug, Muted Style
}

// DefaultTheme returns the 16-color theme used by help, errors and prompts.
func DefaultTheme() Theme {
	return Theme{
		Primary: NewStyle(color.FgHiBlue),
		Success: NewStyle(color.FgHiGreen),
		Warning: NewStyle(color.FgHiYellow),
		Error:   NewStyle(color.FgHiRed),
		Info:    NewStyle(color.FgHiCyan),
		Debug:   NewStyle(color.FgHiMagenta),
		Muted:   NewStyle(color.Faint),
	}
}

// Red returns s in red when color is supported.
func (m *IOManager) Red(s string) string { return NewStyle(color.FgRed).Sprint(m, s) }

// Yellow returns s in yellow when color is supported.
func (m *IOManager) Yellow(s string) string { return NewStyle(color.FgYellow).Sprint(m, s) }

// Green returns s in green when color is supported.
func (m *IOManager) Green(s string) string { return NewStyle(color.FgGreen).Sprint(m, s) }

// Blue returns s in blue when color is supported.
func (m *IOManager) Blue(s string) string { return NewStyle(color.FgBlue).Sprint(m, s) }

// Cyan returns s in cyan when color is supported.
func (m *IOManager) Cyan(s string) string { return NewStyle(color.FgCyan).Sprint(m, s) }

// Bold returns s in bold when color is supported.
func (m *IOManager) Bold(s string) string { return NewStyle(color.Bold).Sprint(m, s) }

// Faint returns s in faint intensity when color is supported.
func (m *IOManager) Faint(s string) string { return NewStyle(color.Faint).Sprint(m, s) }
