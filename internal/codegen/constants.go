// Package codegen emits standalone Go source that simulates a compiled
// automaton without depending on this module.
package codegen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Variable names used in generated code
const (
	InputName   = "input"
	PosName     = "pos"
	ExactName   = "exact"
	CurrentName = "current"
	NextName    = "next"
	MovedName   = "moved"
	LengthName  = "length"
	OkName      = "ok"
	StartName   = "start"
)

// wildcardEdge mirrors nfa.Wildcard in the generated tables.
const wildcardEdge = 256

// TableName returns the name of a per-pattern package-level table, e.g.
// "emailTransitions".
func TableName(name, table string) string {
	return fmt.Sprintf("%s%s", LowerFirst(name), table)
}

// LowerFirst converts the first character of a string to lowercase.
// Characters without case, such as '_', are kept.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
