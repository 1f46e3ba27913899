package logging

import (
	"log/slog"
	"os"
	"sync"
	"time"
)

// Logger writes leveled events to stderr, an optional JSONL run file and any
// in-process subscribers.
type Logger struct {
	debug  bool
	pretty bool

	mu          sync.RWMutex
	terminal    bool
	sink        *fileSink
	nextID      int
	subscribers map[int]func(Event)
}

type Event struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Fields  map[string]any
}

func New(debug bool) *Logger {
	return &Logger{
		debug:       debug,
		pretty:      shouldPrettyPrint(),
		terminal:    true,
		subscribers: map[int]func(Event){},
	}
}

func Field(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

// Debug events are shown only when the logger was built with debug on, but
// they always reach the run file.
func (l *Logger) Debug(msg string, fields ...slog.Attr) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *Logger) Info(msg string, fields ...slog.Attr) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *Logger) Warn(msg string, fields ...slog.Attr) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *Logger) Error(msg string, fields ...slog.Attr) {
	l.log(slog.LevelError, msg, fields)
}

func (l *Logger) SetTerminalOutputEnabled(enabled bool) {
	l.mu.Lock()
	l.terminal = enabled
	l.mu.Unlock()
}

// EnableFilePersistence mirrors every later event to a new JSONL file in dir
// and returns its path.
func (l *Logger) EnableFilePersistence(dir string) (string, error) {
	sink, err := openFileSink(dir, time.Now())
	if err != nil {
		return "", err
	}
	l.mu.Lock()
	old := l.sink
	l.sink = sink
	l.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return sink.Path(), nil
}

func (l *Logger) Close() error {
	l.mu.Lock()
	sink := l.sink
	l.sink = nil
	l.mu.Unlock()
	if sink == nil {
		return nil
	}
	return sink.Close()
}

// Subscribe registers fn for every visible event and returns a function
// that removes it.
func (l *Logger) Subscribe(fn func(Event)) func() {
	if fn == nil {
		panic("logging.Logger.Subscribe: callback must not be nil")
	}
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subscribers[id] = fn
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		delete(l.subscribers, id)
		l.mu.Unlock()
	}
}

func (l *Logger) log(level slog.Level, msg string, attrs []slog.Attr) {
	if l == nil {
		return
	}
	event := Event{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Fields:  attrsToMap(attrs),
	}

	l.mu.RLock()
	sink := l.sink
	terminal := l.terminal
	callbacks := make([]func(Event), 0, len(l.subscribers))
	for _, cb := range l.subscribers {
		callbacks = append(callbacks, cb)
	}
	l.mu.RUnlock()

	if sink != nil {
		_ = sink.WriteEvent(event)
	}
	if level == slog.LevelDebug && !l.debug {
		return
	}
	if terminal {
		if l.pretty {
			_, _ = os.Stderr.WriteString(FormatEventANSI(event))
		} else {
			_, _ = os.Stderr.WriteString(FormatEventLine(event))
		}
	}
	for _, cb := range callbacks {
		cb(event)
	}
}
