package nfagen

import (
	"fmt"

	"github.com/KromDaniel/bearpig/internal/diag"
)

// Kind classifies a generation diagnostic.
type Kind int

const (
	// InvalidRange is a set range whose start comes after its stop. It
	// aborts generation.
	InvalidRange Kind = iota
	// ConfusingRange is a range spanning both the upper and lower case
	// letter blocks, which silently includes the punctuation between them.
	ConfusingRange
)

func (k Kind) String() string {
	switch k {
	case InvalidRange:
		return "invalid range"
	case ConfusingRange:
		return "confusing range"
	default:
		return "unknown"
	}
}

// Diagnostic reports a problem with a set range. Start and Stop are the
// source columns of the range endpoints.
type Diagnostic struct {
	Kind   Kind
	Low    byte
	High   byte
	Start  int
	Stop   int
	Source string
}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case ConfusingRange:
		return fmt.Sprintf("[%c-%c] might not do what you expected. "+
			"Consider not mixing upper case and lower case symbols in the same range", d.Low, d.High)
	default:
		return fmt.Sprintf("[%c-%c] is an invalid range", d.Low, d.High)
	}
}

// Fatal reports whether the diagnostic stops generation.
func (d *Diagnostic) Fatal() bool {
	return d.Kind == InvalidRange
}

// Diagnostic converts d for rendering by a diag.Sink.
func (d *Diagnostic) Diagnostic() diag.Diagnostic {
	sev := diag.SeverityWarning
	if d.Fatal() {
		sev = diag.SeverityError
	}
	return diag.Diagnostic{
		Severity: sev,
		Message:  d.Error(),
		Source:   d.Source,
		Start:    d.Start,
		Stop:     d.Stop,
	}
}
