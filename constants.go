package kson

import "math"

const (
	// Indentation is the unit added per nesting level by pretty printing
	Indentation = "  "

	// DefaultMaxDepth is the default container nesting limit
	DefaultMaxDepth = 10000

	// parseBufferSize is the fixed working buffer used for strings and numbers
	parseBufferSize = 1024

	// Numeric classification
	minInt64Decile   = math.MinInt64 / 10
	maxDoubleDigits  = 15
	maxExponentDigit = 3

	// maxPlainFractionDigits bounds the fraction length of decimals written
	// without an exponent
	maxPlainFractionDigits = 20
)
