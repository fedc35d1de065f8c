package bearpig

import (
	"regexp"
	"strings"
	"testing"
)

var benchPatterns = []struct {
	name    string
	pattern string
	input   string
}{
	{"Literal", "needle", strings.Repeat("haystack ", 100) + "needle"},
	{"Email", "[a-z]+@[a-z]+", strings.Repeat("contact bob@example or ", 50)},
	{"Mixed", "([a-zA-Z]+|[0-9][0-9]?)+", "aaaaaabcbcbabcbcbacbCBACBCBacbcbacb09090abCBab09cb0a)0"},
	{"Alternation", "cat|dog|bird", strings.Repeat("the fish and the ", 20) + "bird"},
}

func BenchmarkFindFirst(b *testing.B) {
	for _, bp := range benchPatterns {
		re := MustCompile(bp.pattern)
		std := regexp.MustCompile(bp.pattern)

		b.Run(bp.name+"/bearpig", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				re.FindFirst(bp.input)
			}
		})
		b.Run(bp.name+"/stdlib", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				std.FindStringIndex(bp.input)
			}
		})
	}
}

func BenchmarkFindAll(b *testing.B) {
	for _, bp := range benchPatterns {
		re := MustCompile(bp.pattern)
		std := regexp.MustCompile(bp.pattern)

		b.Run(bp.name+"/bearpig", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				re.FindAll(bp.input)
			}
		})
		b.Run(bp.name+"/stdlib", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				std.FindAllStringIndex(bp.input, -1)
			}
		})
	}
}

func BenchmarkCompile(b *testing.B) {
	for _, bp := range benchPatterns {
		b.Run(bp.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				MustCompile(bp.pattern)
			}
		})
	}
}
