package zerolog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/haguru/docgate/internal/interfaces"
	"github.com/rs/zerolog"
)

// Logger implements interfaces.Logger using zerolog.
type Logger struct {
	zlog zerolog.Logger
}

// NewZerologLogger initializes zerolog with a console writer on stdout.
func NewZerologLogger(serviceName string) interfaces.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i any) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	return New(serviceName, output)
}

// New returns a logger writing JSON lines (or whatever out formats) tagged with the service name.
func New(serviceName string, out io.Writer) interfaces.Logger {
	z := zerolog.New(out).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	return &Logger{zlog: z}
}

func (l *Logger) Info(msg string, keyvals ...interface{}) {
	withFields(l.zlog.Info(), keyvals).Msg(msg)
}

func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	withFields(l.zlog.Warn(), keyvals).Msg(msg)
}

func (l *Logger) Error(msg string, keyvals ...interface{}) {
	withFields(l.zlog.Error(), keyvals).Msg(msg)
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	withFields(l.zlog.Debug(), keyvals).Msg(msg)
}

// SetLevel sets the minimum level of this logger. Unknown levels fall back to info.
func (l *Logger) SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	l.zlog = l.zlog.Level(lvl)
}

// WithContext creates a new logger with additional context.
func (l *Logger) WithContext(ctx map[string]interface{}) interfaces.Logger {
	newLogger := l.zlog.With()
	for key, value := range ctx {
		newLogger = newLogger.Interface(key, value)
	}
	return &Logger{zlog: newLogger.Logger()}
}

// withFields attaches key/value pairs to event; errors go through Err so they
// render as strings. Non-string keys are skipped.
func withFields(event *zerolog.Event, keyvals []interface{}) *zerolog.Event {
	for i := 0; i < len(keyvals)-1; i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		if err, isErr := keyvals[i+1].(error); isErr {
			event = event.AnErr(key, err)
			continue
		}
		event = event.Interface(key, keyvals[i+1])
	}
	return event
}
