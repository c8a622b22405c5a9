package log

import "github.com/charmbracelet/lipgloss"

var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")) // Gray
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")) // Blue
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")) // Yellow
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")) // Red

	// padded to the same width so messages line up in the log file
	levelStyles = []struct {
		level Level
		style lipgloss.Style
	}{
		{DebugLevel, debugStyle},
		{InfoLevel, infoStyle},
		{WarnLevel, warnStyle},
		{ErrorLevel, errorStyle},
	}
)

const levelWidth = 5
