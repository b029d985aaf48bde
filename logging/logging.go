package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// A Logger receives log messages from a reduction. Loggers are handed to the
// components which need them; there is no package-level logger.
type Logger interface {
	Logf(level int, format string, args ...interface{})
}

// Std returns a Logger which writes to w through the standard library logger,
// dropping messages below minLevel
func Std(w io.Writer, source string, minLevel int) Logger {
	return &stdLogger{
		out:      log.New(w, "", log.LstdFlags),
		source:   source,
		minLevel: minLevel,
	}
}

// Default returns a Logger which writes messages at WarnLevel and above to stderr
func Default() Logger {
	return Std(os.Stderr, "fold", WarnLevel)
}

type stdLogger struct {
	out      *log.Logger
	source   string
	minLevel int
}

func (l *stdLogger) Logf(level int, format string, args ...interface{}) {
	if level < l.minLevel {
		return
	}
	l.out.Printf("%s: level [%s]: %s", l.source, LogLevelToString(level), fmt.Sprintf(format, args...))
}

// Discard is a Logger which drops every message
var Discard Logger = discard{}

type discard struct{}

func (discard) Logf(level int, format string, args ...interface{}) {}

// Entry is a single message captured by a Recorder
type Entry struct {
	Level   int
	Message string
}

// Recorder is a Logger which keeps every message in memory. It is safe for
// concurrent use.
type Recorder struct {
	lock    sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Logf records a message
func (r *Recorder) Logf(level int, format string, args ...interface{}) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Entries returns a copy of the recorded messages, oldest first
func (r *Recorder) Entries() []Entry {
	r.lock.Lock()
	defer r.lock.Unlock()
	res := make([]Entry, len(r.entries))
	copy(res, r.entries)
	return res
}

// AtLevel returns the recorded messages with the given level
func (r *Recorder) AtLevel(level int) []Entry {
	res := make([]Entry, 0)
	for _, e := range r.Entries() {
		if e.Level == level {
			res = append(res, e)
		}
	}
	return res
}
