package kson

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber_Classification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"zero", "0", int64(0)},
		{"small", "42", int64(42)},
		{"negative", "-42", int64(-42)},
		{"max int64", "9223372036854775807", int64(math.MaxInt64)},
		{"min int64", "-9223372036854775808", int64(math.MinInt64)},
		{"one past max int64", "9223372036854775808", bigInt("9223372036854775808")},
		{"one past min int64", "-9223372036854775809", bigInt("-9223372036854775809")},
		{"long integer", "123456789012345678901234567890", bigInt("123456789012345678901234567890")},
		{"negative zero", "-0", bigInt("0")},
		{"fraction", "1.5", 1.5},
		{"negative fraction", "-0.25", -0.25},
		{"exponent", "1e10", 1e10},
		{"upper case negative exponent", "1E-5", 1e-5},
		{"positive exponent sign", "2.5e+3", 2500.0},
		{"fifteen digits", "1.23456789012345", 1.23456789012345},
		{"sixteen digits", "1.234567890123456", decimal.RequireFromString("1.234567890123456")},
		{"largest accepted exponent", "1.5e307", 1.5e307},
		{"exponent past 307", "1e308", decimal.RequireFromString("1e308")},
		{"exponent with middle digit", "1e299", decimal.RequireFromString("1e299")},
		{"four digit exponent", "1e0300", decimal.RequireFromString("1e300")},
		{"beyond float64 range", "999999999999999e307", decimal.RequireFromString("999999999999999e307")},
		{"huge exponent", "1e400", decimal.RequireFromString("1e400")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseValueString(tt.input)
			require.NoError(t, err)
			require.IsType(t, tt.expected, value)
			switch expected := tt.expected.(type) {
			case *big.Int:
				assert.Equal(t, 0, expected.Cmp(value.(*big.Int)), "got %s", value)
			case decimal.Decimal:
				assert.True(t, expected.Equal(value.(decimal.Decimal)), "got %s", value)
			default:
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}

func TestParseNumber_InContainers(t *testing.T) {
	doc, err := ParseString(`[0,-1,2.5,1e2,18446744073709551616]`)
	require.NoError(t, err)
	arr, err := doc.AsArray()
	require.NoError(t, err)

	kinds := make([]string, 0, arr.Len())
	for _, v := range arr.Values() {
		kinds = append(kinds, kindName(v))
	}
	assert.Equal(t, []string{"integer", "integer", "float", "float", "big integer"}, kinds)
}

func TestParseNumber_BigIntegersAreNeverNil(t *testing.T) {
	for _, literal := range []string{"-0", "9223372036854775808", "-9223372036854775809", strings.Repeat("9", parseBufferSize-1)} {
		value, err := ParseValueString(literal)
		require.NoError(t, err, literal)
		n, ok := value.(*big.Int)
		require.True(t, ok, literal)
		require.NotNil(t, n, literal)
		assert.Equal(t, strings.TrimPrefix(literal, "-") == "0", n.Sign() == 0, literal)
	}
}

func TestParseNumber_TooLong(t *testing.T) {
	_, err := ParseValueString(strings.Repeat("1", parseBufferSize))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number is too long")

	value, err := ParseValueString(strings.Repeat("1", parseBufferSize-1))
	require.NoError(t, err)
	assert.IsType(t, &big.Int{}, value)

	_, err = ParseValueString("1." + strings.Repeat("5", parseBufferSize))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number is too long")
}

func TestExponentFitsDouble(t *testing.T) {
	tests := map[string]bool{
		"5":    true,
		"99":   true,
		"100":  true,
		"307":  true,
		"300":  true,
		"308":  false,
		"310":  false,
		"400":  false,
		"1000": false,
		"0300": false,
	}
	for exp, expected := range tests {
		assert.Equal(t, expected, exponentFitsDouble([]rune(exp)), "exponent %s", exp)
	}
}

func bigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big integer literal " + s)
	}
	return n
}
