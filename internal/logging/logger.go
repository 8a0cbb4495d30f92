package logging

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"
)

type Fields map[string]interface{}

// Level gates output; messages below the configured minimum are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelFatal
)

var minLevel = LevelInfo

// SetLevel installs the minimum level emitted. Call it once at process
// start, before anything logs concurrently.
func SetLevel(l Level) {
	minLevel = l
}

// ParseLevel maps a configuration string to a Level. Unknown values fall
// back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

func output(l Level, level, msg string, fields Fields) {
	if l < minLevel {
		return
	}
	if fields == nil {
		fields = Fields{}
	}
	fields["level"] = level
	fields["ts"] = time.Now().UTC().Format(time.RFC3339)
	fields["msg"] = msg
	b, err := json.Marshal(fields)
	if err != nil {
		// fallback to plain logging
		log.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	log.Println(string(b))
}

// Debug logs a development-level message with optional fields.
func Debug(msg string, fields Fields) {
	output(LevelDebug, "debug", msg, fields)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	output(LevelInfo, "info", msg, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	output(LevelError, "error", msg, fields)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	output(LevelFatal, "fatal", msg, fields)
	os.Exit(1)
}
