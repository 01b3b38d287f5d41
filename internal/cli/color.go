package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ib823/cockpit-engine/internal/allocation"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	optimalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C800"))
	fullStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }

// Band renders text in the color of a utilization band.
func Band(u allocation.Utilization, text string) string {
	switch u {
	case allocation.Idle:
		return idleStyle.Render(text)
	case allocation.Optimal:
		return optimalStyle.Render(text)
	case allocation.Full:
		return fullStyle.Render(text)
	case allocation.Overallocated:
		return overStyle.Render(text)
	}
	return text
}
