// Package output renders calculation results for the console and for
// machine consumption (JSON, CSV).
package output

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // blue
	ColorGood    = lipgloss.Color("42")  // green
	ColorBad     = lipgloss.Color("196") // red
	ColorMuted   = lipgloss.Color("245") // gray
	ColorAccent  = lipgloss.Color("214") // orange

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	GoodStyle = lipgloss.NewStyle().
			Foreground(ColorGood)

	BadStyle = lipgloss.NewStyle().
			Foreground(ColorBad)
)
