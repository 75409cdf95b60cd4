package kson

import (
	"strings"

	"github.com/cybergodev/kson/internal"
)

// Parse reads a complete JSON document from in with the default configuration.
// The root must be an array or an object; an empty source yields nil.
func Parse(in Input, config ...*Config) (Json, error) {
	return NewParser(in, config...).Parse()
}

// ParseString parses a JSON document held in a string
func ParseString(s string, config ...*Config) (Json, error) {
	return Parse(NewStringInput(s), config...)
}

// ParseValue reads exactly one JSON value of any kind from in.
// Trailing non-blank content is an error.
func ParseValue(in Input, config ...*Config) (any, error) {
	return NewParser(in, config...).ParseValue(true)
}

// ParseValueString parses a single JSON value held in a string
func ParseValueString(s string, config ...*Config) (any, error) {
	return ParseValue(NewStringInput(s), config...)
}

// Escape returns s with JSON string escaping applied, without surrounding quotes
func Escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	_ = internal.WriteEscaped(&sb, s)
	return sb.String()
}

// Write renders value to out in compact form. Go maps and slices are
// rendered as objects and arrays.
func Write(value any, out Output) error {
	s := &serializer{out: out}
	s.value(value)
	return s.err
}

// WritePretty renders value to out with two spaces of indentation per level,
// starting from indent
func WritePretty(value any, out Output, indent string) error {
	s := &serializer{out: out}
	s.prettyValue(value, indent)
	return s.err
}

// ToJsonString renders value in compact form
func ToJsonString(value any) (string, error) {
	var sb strings.Builder
	if err := Write(value, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ToJsonStringPretty renders value in indented form
func ToJsonStringPretty(value any) (string, error) {
	var sb strings.Builder
	if err := WritePretty(value, &sb, ""); err != nil {
		return "", err
	}
	return sb.String(), nil
}
