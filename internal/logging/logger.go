// Package logging provides leveled diagnostics for the mm CLI. The
// metrics engine itself never logs; only the command layer does.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"
)

// Level is the log severity.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes timestamped, leveled lines with optional key=value fields.
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	fields []field
}

type field struct {
	key   string
	value interface{}
}

var defaultLogger = &Logger{
	level:  INFO,
	output: os.Stderr,
}

// SetLevel sets the level of the default logger.
func SetLevel(level Level) {
	defaultLogger.level = level
}

// SetOutput redirects the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.output = w
}

// WithField returns a copy of the default logger carrying the field on
// every line it writes. Fields print in sorted key order.
func WithField(key string, value interface{}) *Logger {
	return defaultLogger.WithField(key, value)
}

// WithField returns a copy of l carrying the extra field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	fields := make([]field, 0, len(l.fields)+1)
	fields = append(fields, l.fields...)
	fields = append(fields, field{key, value})
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].key < fields[j].key })
	return &Logger{
		level:  l.level,
		output: l.output,
		fields: fields,
	}
}

func (l *Logger) log(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	formatted := msg
	if len(args) > 0 {
		formatted = fmt.Sprintf(msg, args...)
	}

	var fieldsStr string
	for _, f := range l.fields {
		fieldsStr += fmt.Sprintf(" %s=%v", f.key, f.value)
	}

	fmt.Fprintf(l.output, "%s [%s] %s%s\n",
		time.Now().Format("15:04:05"), level, formatted, fieldsStr)
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log(DEBUG, msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log(INFO, msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log(WARN, msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log(ERROR, msg, args...) }

// Package-level helpers writing through the default logger.
func Debug(msg string, args ...interface{}) { defaultLogger.log(DEBUG, msg, args...) }
func Info(msg string, args ...interface{})  { defaultLogger.log(INFO, msg, args...) }
func Warn(msg string, args ...interface{})  { defaultLogger.log(WARN, msg, args...) }
func Error(msg string, args ...interface{}) { defaultLogger.log(ERROR, msg, args...) }
