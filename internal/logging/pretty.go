package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorProfileOnce sync.Once

	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	msgStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

func shouldPrettyPrint() bool {
	term := strings.TrimSpace(os.Getenv("TERM"))
	return term != "" && term != "dumb" && os.Getenv("NO_COLOR") == ""
}

func levelBadge(level slog.Level) string {
	fg, bg := "230", "31"
	switch {
	case level <= slog.LevelDebug:
		fg, bg = "255", "240"
	case level >= slog.LevelError:
		fg, bg = "231", "160"
	case level >= slog.LevelWarn:
		fg, bg = "234", "214"
	}
	return badgeStyle.Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg)).
		Render(strings.ToUpper(level.String()))
}

// FormatEventANSI renders an event with a colored level badge and styled
// key=value fields on one line.
func FormatEventANSI(event Event) string {
	colorProfileOnce.Do(func() {
		lipgloss.SetColorProfile(termenv.TrueColor)
	})
	var b strings.Builder
	b.WriteString(timeStyle.Render(event.Time.Format("15:04:05.000")))
	b.WriteString(" " + levelBadge(event.Level) + " ")
	b.WriteString(msgStyle.Render(event.Message))
	for _, key := range orderedFieldKeys(event.Fields) {
		style := valueStyle
		if key == "error" {
			style = errorStyle
		}
		b.WriteString(" " + keyStyle.Render(key+"=") + style.Render(formatFieldValue(event.Fields[key])))
	}
	b.WriteString("\n")
	return b.String()
}
