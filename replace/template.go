// Package replace parses replacement templates and splices them into
// matched input.
//
// The engine has no capture groups, so a template can only refer to the
// whole match:
//
//	$0 or ${0}   the matched text
//	$$           a literal dollar sign
//
// A dollar sign followed by anything else is literal text. References to
// numbered or named groups are rejected.
package replace

import (
	"fmt"
	"strings"
)

// SegmentType indicates the type of segment in a replacement template.
type SegmentType int

const (
	// SegmentLiteral is text copied as-is.
	SegmentLiteral SegmentType = iota
	// SegmentFullMatch is replaced by the matched text.
	SegmentFullMatch
)

func (t SegmentType) String() string {
	switch t {
	case SegmentLiteral:
		return "Literal"
	case SegmentFullMatch:
		return "FullMatch"
	default:
		return fmt.Sprintf("SegmentType(%d)", int(t))
	}
}

// Segment is one piece of a parsed template.
type Segment struct {
	Type    SegmentType
	Literal string
}

// Template is a parsed replacement template.
type Template struct {
	Original string
	Segments []Segment
}

// Span locates a match in the input by byte offset and length.
type Span struct {
	Start  int
	Length int
}

// Parse splits template into segments. Adjacent literal text is merged into
// one segment.
func Parse(template string) (*Template, error) {
	t := &Template{Original: template, Segments: []Segment{}}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.Segments = append(t.Segments, Segment{Type: SegmentLiteral, Literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			lit.WriteByte(c)
			i++
			continue
		}

		next := template[i+1]
		switch {
		case next == '$':
			lit.WriteByte('$')
			i += 2
		case next == '0':
			flush()
			t.Segments = append(t.Segments, Segment{Type: SegmentFullMatch})
			i += 2
		case next >= '1' && next <= '9':
			return nil, fmt.Errorf("at position %d: group reference $%c is not supported", i, next)
		case next == '{':
			end := strings.IndexByte(template[i:], '}')
			if end == -1 {
				return nil, fmt.Errorf("at position %d: unclosed ${", i)
			}
			ref := template[i+2 : i+end]
			if ref != "0" {
				return nil, fmt.Errorf("at position %d: unsupported reference ${%s}", i, ref)
			}
			flush()
			t.Segments = append(t.Segments, Segment{Type: SegmentFullMatch})
			i += end + 1
		case isNameStart(next):
			return nil, fmt.Errorf("at position %d: named reference is not supported", i)
		default:
			lit.WriteByte('$')
			i++
		}
	}
	flush()

	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(template string) *Template {
	t, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return t
}

// Expand renders the template for one matched text.
func (t *Template) Expand(match string) string {
	var b strings.Builder
	t.expandTo(&b, match)
	return b.String()
}

func (t *Template) expandTo(b *strings.Builder, match string) {
	for _, seg := range t.Segments {
		switch seg.Type {
		case SegmentLiteral:
			b.WriteString(seg.Literal)
		case SegmentFullMatch:
			b.WriteString(match)
		}
	}
}

// Apply replaces every span of input with the expanded template. Spans must
// be sorted by Start and must not overlap.
func (t *Template) Apply(input string, spans []Span) string {
	if len(spans) == 0 {
		return input
	}
	var b strings.Builder
	b.Grow(len(input))
	last := 0
	for _, s := range spans {
		b.WriteString(input[last:s.Start])
		t.expandTo(&b, input[s.Start:s.Start+s.Length])
		last = s.Start + s.Length
	}
	b.WriteString(input[last:])
	return b.String()
}

// IsLiteral reports whether the template never refers to the match.
func (t *Template) IsLiteral() bool {
	for _, seg := range t.Segments {
		if seg.Type != SegmentLiteral {
			return false
		}
	}
	return true
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
