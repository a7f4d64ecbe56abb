// Package report implements the two-severity validation reporting used by all
// export stages. Warnings mean the offending entity was skipped and the export
// continues; errors mean the resulting file is known-incomplete. Neither stops
// an export.
package report

import "fmt"

// Severity classifies a reported message.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Func receives validation messages during collection and serialization.
type Func func(severity Severity, msg string)

// Discard is a Func that drops all messages.
func Discard(Severity, string) {}

// Warnf reports a formatted warning through fn. A nil fn is a no-op.
func Warnf(fn Func, format string, args ...any) {
	if fn != nil {
		fn(SeverityWarning, fmt.Sprintf(format, args...))
	}
}

// Errorf reports a formatted error through fn. A nil fn is a no-op.
func Errorf(fn Func, format string, args ...any) {
	if fn != nil {
		fn(SeverityError, fmt.Sprintf(format, args...))
	}
}

// Message is a collected report entry.
type Message struct {
	Severity Severity
	Text     string
}

// Log collects messages, mainly for tests and for summarizing an export run.
type Log struct {
	Messages []Message
}

// Func returns a Func that appends to the log.
func (l *Log) Func() Func {
	return func(severity Severity, msg string) {
		l.Messages = append(l.Messages, Message{Severity: severity, Text: msg})
	}
}

// Warnings returns the number of collected warnings.
func (l *Log) Warnings() int {
	return l.count(SeverityWarning)
}

// Errors returns the number of collected errors.
func (l *Log) Errors() int {
	return l.count(SeverityError)
}

func (l *Log) count(severity Severity) int {
	n := 0
	for _, m := range l.Messages {
		if m.Severity == severity {
			n++
		}
	}
	return n
}
