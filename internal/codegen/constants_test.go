package codegen

import "testing"

func TestTableName(t *testing.T) {
	tests := []struct {
		name  string
		table string
		want  string
	}{
		{"Email", "Transitions", "emailTransitions"},
		{"email", "Closures", "emailClosures"},
		{"X", "Accept", "xAccept"},
	}

	for _, tt := range tests {
		got := TableName(tt.name, tt.table)
		if got != tt.want {
			t.Errorf("TableName(%q, %q) = %q, want %q", tt.name, tt.table, got, tt.want)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "a"},
		{"ABC", "aBC"},
		{"Hello", "hello"},
		{"hello", "hello"},
		{"X", "x"},
		{"_Word", "_Word"},
		{"9a", "9a"},
		{"Émile", "émile"},
	}

	for _, tt := range tests {
		got := LowerFirst(tt.input)
		if got != tt.want {
			t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"x", "X"},
		{"_word", "_word"},
		{"émile", "Émile"},
	}

	for _, tt := range tests {
		got := UpperFirst(tt.input)
		if got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
