package logging

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultLogDirPathSuffix(t *testing.T) {
	path, err := DefaultLogDirPath()
	if err != nil {
		t.Fatalf("DefaultLogDirPath() error = %v", err)
	}
	if got, want := path, filepath.Join("appicon", "logs"); !strings.HasSuffix(got, want) {
		t.Fatalf("DefaultLogDirPath() = %q, want suffix %q", got, want)
	}
}

func readJSONLines(t *testing.T, path string) []jsonLogLine {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) error = %v", path, err)
	}
	var out []jsonLogLine
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var decoded jsonLogLine
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, decoded)
	}
	return out
}

func TestFileSinkWritesJSONL(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	sink, err := openFileSink(dir, time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("openFileSink() error = %v", err)
	}
	if name := filepath.Base(sink.Path()); !strings.HasPrefix(name, "appicon-20261017-120000-") || !strings.HasSuffix(name, ".jsonl") {
		t.Fatalf("unexpected log filename %q", name)
	}

	event := Event{
		Time:    time.Unix(1700000000, 123456789),
		Level:   slog.LevelDebug,
		Message: "encoded icon size",
		Fields: map[string]any{
			"size":  192,
			"path":  "web/icons/Icon-192.png",
			"error": errors.New("boom"),
		},
	}
	for i := 0; i < 3; i++ {
		if err := sink.WriteEvent(event); err != nil {
			t.Fatalf("WriteEvent() error = %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	lines := readJSONLines(t, sink.Path())
	if len(lines) != 3 {
		t.Fatalf("persisted %d lines, want 3", len(lines))
	}
	for _, decoded := range lines {
		if decoded.Level != "DEBUG" || decoded.Fields["error"] != "boom" || decoded.Fields["size"] != float64(192) {
			t.Fatalf("decoded line = %+v", decoded)
		}
	}

	if err := sink.WriteEvent(event); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("WriteEvent() after Close error = %v, want os.ErrClosed", err)
	}
}

func TestLoggerPersistsHiddenDebugEvents(t *testing.T) {
	dir := t.TempDir()

	logger := New(false)
	logger.SetTerminalOutputEnabled(false)
	path, err := logger.EnableFilePersistence(dir)
	if err != nil {
		t.Fatalf("EnableFilePersistence() error = %v", err)
	}

	var published []string
	unsubscribe := logger.Subscribe(func(e Event) {
		published = append(published, e.Message)
	})
	defer unsubscribe()

	logger.Debug("hidden detail")
	logger.Info("before close")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	logger.Info("after close")

	if len(published) != 2 || published[0] != "before close" || published[1] != "after close" {
		t.Fatalf("published = %v", published)
	}

	var messages []string
	for _, line := range readJSONLines(t, path) {
		messages = append(messages, line.Message)
	}
	if got := strings.Join(messages, ","); got != "hidden detail,before close" {
		t.Fatalf("persisted messages = %s", got)
	}
}
