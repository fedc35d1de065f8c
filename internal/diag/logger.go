package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	ansiRed    = "31"
	ansiYellow = "33"
)

// Logger provides verbose tracing of the compilation pipeline and renders
// diagnostics. It is a Sink.
type Logger struct {
	enabled bool
	color   bool
	out     io.Writer
	zl      zerolog.Logger
}

// NewLogger creates a logger writing to stderr. Debug traces are only
// emitted when enabled is set; diagnostics and Info are always emitted.
func NewLogger(enabled bool) *Logger {
	l := &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
	l.rebuild()
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{out: io.Discard, zl: zerolog.Nop()}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
	l.rebuild()
}

// SetColor toggles ANSI colors in the console output and caret markers.
func (l *Logger) SetColor(color bool) {
	l.color = color
	l.rebuild()
}

func (l *Logger) rebuild() {
	level := zerolog.InfoLevel
	if l.enabled {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{
		Out:          l.out,
		NoColor:      !l.color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	l.zl = zerolog.New(console).Level(level)
}

// Log prints a formatted debug message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		l.zl.Debug().Msgf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		l.zl.Debug().Msgf("=== %s ===", name)
	}
}

// Info prints a message regardless of verbosity.
func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Zerolog exposes the underlying logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// Report renders d as three lines: the message, the source and a caret
// marker under the offending columns.
func (l *Logger) Report(d Diagnostic) {
	var level zerolog.Level
	color := ansiYellow
	switch d.Severity {
	case SeverityError:
		level = zerolog.ErrorLevel
		color = ansiRed
	case SeverityWarning:
		level = zerolog.WarnLevel
	default:
		if !l.enabled {
			return
		}
		level = zerolog.DebugLevel
	}

	l.zl.WithLevel(level).Msg(d.Message)
	if d.Source == "" {
		return
	}
	l.zl.WithLevel(level).Msg(d.Source)
	if marker := d.Marker(); marker != "" {
		if l.color {
			marker = fmt.Sprintf("\033[%sm%s\033[0m", color, marker)
		}
		l.zl.WithLevel(level).Msg(marker)
	}
}
