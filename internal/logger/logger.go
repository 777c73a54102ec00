// Package logger provides the small leveled logging surface the lead
// service needs: submissions and deletions at Info, degraded input at Warn,
// storage faults at Error.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the logging surface used across the service. Fields are
// alternating key/value pairs appended to the message line.
type Logger interface {
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
}

// leadLogger renders leveled key=value lines onto two standard loggers
type leadLogger struct {
	out    *log.Logger
	errOut *log.Logger
}

// NewSimpleLogger creates a logger writing to stdout and stderr.
func NewSimpleLogger() Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a logger writing info and warn lines to out and error
// lines to errOut.
func NewLoggerTo(out, errOut io.Writer) Logger {
	flags := log.Ldate | log.Ltime
	return &leadLogger{
		out:    log.New(out, "", flags),
		errOut: log.New(errOut, "", flags),
	}
}

// Info logs a routine event
func (l *leadLogger) Info(msg string, fields ...interface{}) {
	l.out.Printf("INFO: %s%s", msg, formatFields(fields))
}

// Warn logs input the service accepted but could not fully honor
func (l *leadLogger) Warn(msg string, fields ...interface{}) {
	l.out.Printf("WARN: %s%s", msg, formatFields(fields))
}

// Error logs a failure together with its cause
func (l *leadLogger) Error(msg string, err error, fields ...interface{}) {
	l.errOut.Printf("ERROR: %s: %v%s", msg, err, formatFields(fields))
}

// formatFields renders alternating key/value pairs as " k=v k=v". A
// dangling key without a value is rendered bare.
func formatFields(fields []interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(fields); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(fields) {
			fmt.Fprintf(&b, "%v=%v", fields[i], fields[i+1])
		} else {
			fmt.Fprintf(&b, "%v", fields[i])
		}
	}
	return b.String()
}
