// Package stream applies compiled patterns to line-oriented input without
// loading it into memory.
//
// Example usage with a compiled pattern:
//
//	re := bearpig.MustCompile("ERR[0-9]+")
//	file, _ := os.Open("large.log")
//	defer file.Close()
//
//	err := stream.FindReader(file, stream.DefaultConfig(), re.Spans, func(m stream.Match) bool {
//	    fmt.Printf("line %d, offset %d: %s\n", m.Line, m.StreamOffset, m.Text)
//	    return true // continue
//	})
package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Config configures line scanning.
type Config struct {
	// BufferSize is the read buffer size.
	// Default: 64KB (65536).
	BufferSize int

	// MaxLineLength rejects lines longer than this many bytes, excluding the
	// newline. 0 means unlimited.
	MaxLineLength int
}

// DefaultConfig returns a Config with a 64KB buffer and no line limit.
func DefaultConfig() Config {
	return Config{
		BufferSize:    64 * 1024,
		MaxLineLength: 0,
	}
}

// Validate validates the Config and returns an error if invalid.
func (c Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("stream: negative buffer size %d", c.BufferSize)
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("stream: negative max line length %d", c.MaxLineLength)
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	result := c
	if result.BufferSize == 0 {
		result.BufferSize = 64 * 1024
	}
	return result
}

// Span locates a match inside a line.
type Span struct {
	Start  int
	Length int
}

// Finder returns the non-overlapping matches in a single line, left to
// right. The line does not include its trailing newline.
type Finder func(line string) []Span

// Match is a match with its position in the stream.
type Match struct {
	// Line is the 1-based line number.
	Line int
	// Start is the byte offset of the match within its line.
	Start  int
	Length int
	Text   string
	// StreamOffset is the absolute byte position of the match start
	// within the entire stream (0-indexed).
	StreamOffset int64
}

// ErrLineTooLong is returned when a line exceeds Config.MaxLineLength.
type ErrLineTooLong struct {
	Line   int
	Length int
	Limit  int
}

func (e ErrLineTooLong) Error() string {
	return fmt.Sprintf("stream: line %d is %d bytes long, limit is %d", e.Line, e.Length, e.Limit)
}

// FindReader calls fn for every match find reports, line by line. Returning
// false from fn stops the scan without error.
func FindReader(r io.Reader, cfg Config, find Finder, fn func(Match) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.ApplyDefaults()

	br := bufio.NewReaderSize(r, cfg.BufferSize)
	var offset int64
	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if len(raw) > 0 {
			lineNo++
			line := strings.TrimSuffix(raw, "\n")
			if cfg.MaxLineLength > 0 && len(line) > cfg.MaxLineLength {
				return ErrLineTooLong{Line: lineNo, Length: len(line), Limit: cfg.MaxLineLength}
			}
			for _, s := range find(line) {
				m := Match{
					Line:         lineNo,
					Start:        s.Start,
					Length:       s.Length,
					Text:         line[s.Start : s.Start+s.Length],
					StreamOffset: offset + int64(s.Start),
				}
				if !fn(m) {
					return nil
				}
			}
			offset += int64(len(raw))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
