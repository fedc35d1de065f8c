// Package diag carries diagnostics about a pattern (errors and warnings
// pointing at source columns) from the core to whoever renders them.
package diag

import "strings"

// Severity of a diagnostic.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a message about the pattern Source. Start and Stop are
// inclusive 0-based columns; Start < 0 means there is nothing to underline.
type Diagnostic struct {
	Severity Severity
	Message  string
	Source   string
	Start    int
	Stop     int
}

// Marker returns the underline for the diagnostic's columns, e.g. "   ^^^".
func (d Diagnostic) Marker() string {
	if d.Start < 0 {
		return ""
	}
	stop := d.Stop
	if stop < d.Start {
		stop = d.Start
	}
	return strings.Repeat(" ", d.Start) + strings.Repeat("^", stop-d.Start+1)
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector keeps every reported diagnostic in memory.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Count returns how many diagnostics of the given severity were reported.
func (c *Collector) Count(s Severity) int {
	n := 0
	for _, d := range c.Diagnostics {
		if d.Severity == s {
			n++
		}
	}
	return n
}
