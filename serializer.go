package kson

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cybergodev/kson/internal"
	"github.com/shopspring/decimal"
)

// serializer renders values to an Output. The first write error is kept and
// every later write becomes a no-op.
type serializer struct {
	out Output
	err error
}

func (s *serializer) writeByte(c byte) {
	if s.err == nil {
		s.err = s.out.WriteByte(c)
	}
}

func (s *serializer) writeString(str string) {
	if s.err == nil {
		_, s.err = s.out.WriteString(str)
	}
}

func (s *serializer) writeQuoted(str string) {
	s.writeByte('"')
	if s.err == nil {
		s.err = internal.WriteEscaped(s.out, str)
	}
	s.writeByte('"')
}

func (s *serializer) writeIndent(indent string) {
	s.writeByte('\n')
	s.writeString(indent)
}

// value renders any value in compact form
func (s *serializer) value(v any) {
	if s.err != nil {
		return
	}
	if j := asContainer(v); j != nil {
		if a, err := j.AsArray(); err == nil {
			s.array(a)
		} else {
			o, _ := j.AsObject()
			s.object(o)
		}
		return
	}
	s.scalar(v)
}

// prettyValue renders any value, indenting nested containers from indent
func (s *serializer) prettyValue(v any, indent string) {
	if s.err != nil {
		return
	}
	if j := asContainer(v); j != nil {
		if a, err := j.AsArray(); err == nil {
			s.prettyArray(a, indent)
		} else {
			o, _ := j.AsObject()
			s.prettyObject(o, indent)
		}
		return
	}
	s.scalar(v)
}

// asContainer returns v as a container, converting host maps and slices
func asContainer(v any) Json {
	switch v := v.(type) {
	case nil, bool, string, []byte, int64, float64, *big.Int, decimal.Decimal, time.Time:
		return nil
	case Json:
		return v
	}
	if j, ok := ToJsonOrIntegral(v).(Json); ok {
		return j
	}
	return nil
}

func (s *serializer) array(a *Array) {
	s.writeByte('[')
	for i, v := range a.values {
		if i > 0 {
			s.writeByte(',')
		}
		s.value(v)
	}
	s.writeByte(']')
}

func (s *serializer) prettyArray(a *Array, indent string) {
	next := indent + Indentation
	s.writeByte('[')
	for i, v := range a.values {
		if i > 0 {
			s.writeByte(',')
		}
		s.writeIndent(next)
		s.prettyValue(v, next)
	}
	if len(a.values) > 0 {
		s.writeIndent(indent)
	}
	s.writeByte(']')
}

func (s *serializer) object(o *Object) {
	s.writeByte('{')
	for i, k := range o.keys {
		if i > 0 {
			s.writeByte(',')
		}
		s.writeQuoted(k)
		s.writeByte(':')
		s.value(o.values[k])
	}
	s.writeByte('}')
}

func (s *serializer) prettyObject(o *Object, indent string) {
	next := indent + Indentation
	s.writeByte('{')
	for i, k := range o.keys {
		if i > 0 {
			s.writeByte(',')
		}
		s.writeIndent(next)
		s.writeQuoted(k)
		s.writeString(" : ")
		s.prettyValue(o.values[k], next)
	}
	if len(o.keys) > 0 {
		s.writeIndent(indent)
	}
	s.writeByte('}')
}

func (s *serializer) scalar(v any) {
	switch v := v.(type) {
	case nil:
		s.writeString("null")
		return
	case bool:
		if v {
			s.writeString("true")
		} else {
			s.writeString("false")
		}
		return
	case string:
		s.writeQuoted(v)
		return
	case []byte:
		s.writeQuoted(string(v))
		return
	case time.Time:
		s.writeQuoted(v.Format(time.RFC3339Nano))
		return
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.err = newOperationError("serialize", "invalid number: "+strconv.FormatFloat(v, 'g', -1, 64), ErrInvalidNumber)
			return
		}
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			s.err = newOperationError("serialize", "invalid number: "+strconv.FormatFloat(float64(v), 'g', -1, 32), ErrInvalidNumber)
			return
		}
	}
	if n, ok := formatNumber(v); ok {
		s.writeString(n)
		return
	}
	str, err := ToString(v)
	if err != nil {
		s.err = err
		return
	}
	s.writeQuoted(str)
}

// formatNumber returns the JSON text of a numeric value. Floats always carry
// a fraction or an exponent so that they read back as floats.
func formatNumber(value any) (string, bool) {
	switch v := value.(type) {
	case int64:
		return internal.FormatInt(v), true
	case float64:
		return formatFloat(v, 64), true
	case *big.Int:
		return v.String(), true
	case decimal.Decimal:
		return formatDecimal(v), true
	case float32:
		return formatFloat(float64(v), 32), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	}
	if n, ok := integral(value); ok {
		return internal.FormatInt(n), true
	}
	return "", false
}

func formatFloat(f float64, bits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	var formatted string
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-6 && abs <= 1e15) {
		formatted = strconv.FormatFloat(f, 'f', -1, bits)
	} else {
		formatted = strconv.FormatFloat(f, 'g', -1, bits)
	}
	if !strings.ContainsAny(formatted, ".e") {
		formatted += ".0"
	}
	return formatted
}

// formatDecimal renders a decimal from its coefficient and exponent.
// Integral values move their trailing zeros into an exponent so they do not
// read back as integers. Fractions use plain form up to
// maxPlainFractionDigits places and exponent form beyond, unless the
// exponent form would read back as a float64.
func formatDecimal(d decimal.Decimal) string {
	digits := d.Coefficient().String()
	sign := ""
	if digits[0] == '-' {
		sign, digits = "-", digits[1:]
	}
	if digits == "0" {
		return "0e0"
	}
	trimmed := strings.TrimRight(digits, "0")
	exp := int64(d.Exponent()) + int64(len(digits)-len(trimmed))
	digits = trimmed

	if exp >= 0 {
		return sign + digits + "e" + strconv.FormatInt(exp, 10)
	}
	if -exp <= maxPlainFractionDigits {
		return sign + plainFraction(digits, exp)
	}

	sciExp := exp + int64(len(digits)) - 1
	absExp := sciExp
	if absExp < 0 {
		absExp = -absExp
	}
	if len(digits) <= maxDoubleDigits && exponentFitsDouble([]rune(strconv.FormatInt(absExp, 10))) {
		return sign + plainFraction(digits, exp)
	}
	mantissa := digits[:1]
	if len(digits) > 1 {
		mantissa += "." + digits[1:]
	}
	return sign + mantissa + "e" + strconv.FormatInt(sciExp, 10)
}

// plainFraction places the decimal point into digits for a negative exponent
func plainFraction(digits string, exp int64) string {
	point := int64(len(digits)) + exp
	if point > 0 {
		return digits[:point] + "." + digits[point:]
	}
	return "0." + strings.Repeat("0", int(-point)) + digits
}

func (a *Array) Write(out Output) error {
	s := &serializer{out: out}
	s.array(a)
	return s.err
}

func (a *Array) WritePretty(out Output, indent string) error {
	s := &serializer{out: out}
	s.prettyArray(a, indent)
	return s.err
}

// String returns the compact JSON text. A NaN or infinite leaf truncates
// the text; use Write to observe the error.
func (a *Array) String() string {
	var sb strings.Builder
	_ = a.Write(&sb)
	return sb.String()
}

// PrettyString returns the indented JSON text
func (a *Array) PrettyString() string {
	var sb strings.Builder
	_ = a.WritePretty(&sb, "")
	return sb.String()
}

func (o *Object) Write(out Output) error {
	s := &serializer{out: out}
	s.object(o)
	return s.err
}

func (o *Object) WritePretty(out Output, indent string) error {
	s := &serializer{out: out}
	s.prettyObject(o, indent)
	return s.err
}

// String returns the compact JSON text. A NaN or infinite leaf truncates
// the text; use Write to observe the error.
func (o *Object) String() string {
	var sb strings.Builder
	_ = o.Write(&sb)
	return sb.String()
}

// PrettyString returns the indented JSON text
func (o *Object) PrettyString() string {
	var sb strings.Builder
	_ = o.WritePretty(&sb, "")
	return sb.String()
}
