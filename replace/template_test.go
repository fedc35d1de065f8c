package replace

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantSegs []Segment
	}{
		{
			name:     "empty",
			template: "",
			wantSegs: []Segment{},
		},
		{
			name:     "literal only",
			template: "redacted",
			wantSegs: []Segment{{Type: SegmentLiteral, Literal: "redacted"}},
		},
		{
			name:     "match",
			template: "$0",
			wantSegs: []Segment{{Type: SegmentFullMatch}},
		},
		{
			name:     "braced match",
			template: "<${0}>",
			wantSegs: []Segment{
				{Type: SegmentLiteral, Literal: "<"},
				{Type: SegmentFullMatch},
				{Type: SegmentLiteral, Literal: ">"},
			},
		},
		{
			name:     "escaped dollar merges with text",
			template: "cost: $$5",
			wantSegs: []Segment{{Type: SegmentLiteral, Literal: "cost: $5"}},
		},
		{
			name:     "trailing dollar",
			template: "x$",
			wantSegs: []Segment{{Type: SegmentLiteral, Literal: "x$"}},
		},
		{
			name:     "dollar before punctuation",
			template: "$-$0",
			wantSegs: []Segment{
				{Type: SegmentLiteral, Literal: "$-"},
				{Type: SegmentFullMatch},
			},
		},
		{
			name:     "repeated match",
			template: "$0$0",
			wantSegs: []Segment{{Type: SegmentFullMatch}, {Type: SegmentFullMatch}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.template)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.template, err)
			}
			if got.Original != tt.template {
				t.Errorf("Original = %q, want %q", got.Original, tt.template)
			}
			if !reflect.DeepEqual(got.Segments, tt.wantSegs) {
				t.Errorf("Segments = %+v, want %+v", got.Segments, tt.wantSegs)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		template string
		errFrag  string
	}{
		{"$1", "group reference"},
		{"a$9b", "position 1"},
		{"$name", "named reference"},
		{"${", "unclosed"},
		{"${1}", "unsupported reference"},
		{"${}", "unsupported reference"},
		{"${word}", "unsupported reference"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			_, err := Parse(tt.template)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.template)
			}
			if !strings.Contains(err.Error(), tt.errFrag) {
				t.Errorf("error %q does not contain %q", err, tt.errFrag)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		template string
		match    string
		want     string
	}{
		{"[$0]", "abc", "[abc]"},
		{"$$$0", "7", "$7"},
		{"fixed", "ignored", "fixed"},
		{"", "gone", ""},
		{"$0-$0", "x", "x-x"},
	}

	for _, tt := range tests {
		got := MustParse(tt.template).Expand(tt.match)
		if got != tt.want {
			t.Errorf("Expand(%q) with %q = %q, want %q", tt.match, tt.template, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	tmpl := MustParse("<$0>")

	tests := []struct {
		name  string
		input string
		spans []Span
		want  string
	}{
		{"no spans", "abc", nil, "abc"},
		{"one span", "abc", []Span{{Start: 1, Length: 1}}, "a<b>c"},
		{"two spans", "ab ab", []Span{{0, 2}, {3, 2}}, "<ab> <ab>"},
		{"empty span", "ab", []Span{{0, 0}, {1, 0}, {2, 0}}, "<>a<>b<>"},
		{"whole input", "xyz", []Span{{0, 3}}, "<xyz>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tmpl.Apply(tt.input, tt.spans); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsLiteral(t *testing.T) {
	if !MustParse("a$$b").IsLiteral() {
		t.Error("expected a$$b to be literal")
	}
	if MustParse("a$0").IsLiteral() {
		t.Error("expected a$0 to refer to the match")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("$1")
}
