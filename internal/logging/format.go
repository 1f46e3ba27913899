package logging

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// FormatEventLine renders an event as a single plain-text line.
func FormatEventLine(event Event) string {
	line := fmt.Sprintf("%s [%s] %s", event.Time.Format("15:04:05"), strings.ToUpper(event.Level.String()), event.Message)
	for _, key := range orderedFieldKeys(event.Fields) {
		line += " " + key + "=" + formatFieldValue(event.Fields[key])
	}
	return line + "\n"
}

func formatFieldValue(value any) string {
	var text string
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case error:
		text = v.Error()
	case string:
		text = v
	case fmt.Stringer:
		text = v.String()
	default:
		return fmt.Sprint(value)
	}
	if text == "" {
		return `""`
	}
	if strings.ContainsAny(text, " \t\r\n\"") {
		return fmt.Sprintf("%q", text)
	}
	return text
}

// orderedFieldKeys sorts keys alphabetically but keeps "error" last.
func orderedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	_, hasError := fields["error"]
	for key := range fields {
		if key != "error" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if hasError {
		keys = append(keys, "error")
	}
	return keys
}

func attrsToMap(attrs []slog.Attr) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	values := make(map[string]any, len(attrs))
	for _, attr := range attrs {
		if attr.Key == "" {
			continue
		}
		values[attr.Key] = attr.Value.Resolve().Any()
	}
	return values
}
