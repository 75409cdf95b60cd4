package kson

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Conversion helpers
// These implement the fixed conversion matrix used by every typed accessor.
// A nil input always yields the zero value and a nil error; a present value
// that cannot be represented yields a *ConversionError.

// ToString converts any value to its string form
func ToString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case []byte:
		return string(v), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case Json:
		return v.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	if s, ok := formatNumber(value); ok {
		return s, nil
	}
	return fmt.Sprint(value), nil
}

// ToBool converts a value to bool. Numbers test for non-zero; strings accept
// true/false, t/f and 1/0 in any case.
func ToBool(value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "true", "t", "1":
			return true, nil
		case "false", "f", "0":
			return false, nil
		}
		return false, newConversionError(value, KindBool, errors.Errorf("invalid boolean %q", v))
	case float32:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case *big.Int:
		return v.Sign() != 0, nil
	case decimal.Decimal:
		return !v.IsZero(), nil
	case uint:
		return v != 0, nil
	case uint64:
		return v != 0, nil
	}
	if n, ok := integral(value); ok {
		return n != 0, nil
	}
	return false, newConversionError(value, KindBool, nil)
}

// ToChar converts a boolean to 't'/'f' or a single character string to its rune
func ToChar(value any) (rune, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 't', nil
		}
		return 'f', nil
	case string:
		if utf8.RuneCountInString(v) != 1 {
			return 0, newConversionError(value, KindChar, errors.New("invalid length"))
		}
		r, _ := utf8.DecodeRuneInString(v)
		return r, nil
	}
	return 0, newConversionError(value, KindChar, nil)
}

// ToInt8 converts a value to int8, narrowing numbers
func ToInt8(value any) (int8, error) {
	n, err := toSigned(value, KindInt8, 8)
	return int8(n), err
}

// ToInt16 converts a value to int16, narrowing numbers
func ToInt16(value any) (int16, error) {
	n, err := toSigned(value, KindInt16, 16)
	return int16(n), err
}

// ToInt32 converts a value to int32, narrowing numbers
func ToInt32(value any) (int32, error) {
	n, err := toSigned(value, KindInt32, 32)
	return int32(n), err
}

// ToInt converts a value to int, narrowing numbers
func ToInt(value any) (int, error) {
	n, err := toSigned(value, KindInt, strconv.IntSize)
	return int(n), err
}

// ToInt64 converts a value to int64, narrowing numbers
func ToInt64(value any) (int64, error) {
	return toSigned(value, KindInt64, 64)
}

// toSigned implements the integer family. Numbers are narrowed by the caller
// with a standard conversion; strings must parse within the target width.
func toSigned(value any, kind Kind, bits int) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(v, 10, bits)
		if err != nil {
			return 0, newConversionError(value, kind, err)
		}
		return n, nil
	case float32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case *big.Int:
		return v.Int64(), nil
	case decimal.Decimal:
		return v.IntPart(), nil
	case uint:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	}
	if n, ok := integral(value); ok {
		return n, nil
	}
	return 0, newConversionError(value, kind, nil)
}

// integral widens any Go integer type to int64. Unsigned values above
// math.MaxInt64 are rejected.
func integral(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), v <= math.MaxInt64
	}
	return 0, false
}

// ToBigInt converts a value to an arbitrary-precision integer.
// Fractional numbers are truncated toward zero.
func ToBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case bool:
		if v {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case *big.Int:
		return v, nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float32:
		return floatToBigInt(value, float64(v))
	case float64:
		return floatToBigInt(value, v)
	case decimal.Decimal:
		return v.BigInt(), nil
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, newConversionError(value, KindBigInt, errors.Errorf("invalid integer %q", v))
		}
		return n, nil
	}
	if n, ok := integral(value); ok {
		return big.NewInt(n), nil
	}
	return nil, newConversionError(value, KindBigInt, nil)
}

func floatToBigInt(value any, f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, newConversionError(value, KindBigInt, ErrInvalidNumber)
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n, nil
}

// ToFloat32 converts a value to float32
func ToFloat32(value any) (float32, error) {
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, newConversionError(value, KindFloat32, err)
		}
		return float32(f), nil
	}
	f, err := toFloat(value, KindFloat32)
	return float32(f), err
}

// ToFloat64 converts a value to float64
func ToFloat64(value any) (float64, error) {
	return toFloat(value, KindFloat64)
}

func toFloat(value any, kind Kind) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(v).Float64()
		return f, nil
	case decimal.Decimal:
		return v.InexactFloat64(), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, newConversionError(value, kind, err)
		}
		return f, nil
	case uint64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	}
	if n, ok := integral(value); ok {
		return float64(n), nil
	}
	return 0, newConversionError(value, kind, nil)
}

// ToBigDecimal converts a value to an arbitrary-precision decimal
func ToBigDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Decimal{}, nil
	case bool:
		if v {
			return decimal.NewFromInt(1), nil
		}
		return decimal.NewFromInt(0), nil
	case decimal.Decimal:
		return v, nil
	case *big.Int:
		return decimal.NewFromBigInt(v, 0), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Decimal{}, newConversionError(value, KindBigDecimal, ErrInvalidNumber)
		}
		return decimal.NewFromFloat32(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, newConversionError(value, KindBigDecimal, ErrInvalidNumber)
		}
		return decimal.NewFromFloat(v), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, newConversionError(value, KindBigDecimal, err)
		}
		return d, nil
	}
	if n, ok := integral(value); ok {
		return decimal.NewFromInt(n), nil
	}
	return decimal.Decimal{}, newConversionError(value, KindBigDecimal, nil)
}

// ToTime converts a value to an instant. Strings use RFC 3339.
func ToTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, newConversionError(value, KindTime, err)
		}
		return t, nil
	}
	return time.Time{}, newConversionError(value, KindTime, nil)
}

// ToDateTime converts a value to a local date and time.
// A date converts to midnight of that day.
func ToDateTime(value any) (civil.DateTime, error) {
	switch v := value.(type) {
	case nil:
		return civil.DateTime{}, nil
	case civil.DateTime:
		return v, nil
	case civil.Date:
		return civil.DateTime{Date: v}, nil
	case time.Time:
		return civil.DateTimeOf(v), nil
	case string:
		dt, err := civil.ParseDateTime(v)
		if err != nil {
			return civil.DateTime{}, newConversionError(value, KindDateTime, err)
		}
		return dt, nil
	}
	return civil.DateTime{}, newConversionError(value, KindDateTime, nil)
}

// ToDate converts a value to a local date
func ToDate(value any) (civil.Date, error) {
	switch v := value.(type) {
	case nil:
		return civil.Date{}, nil
	case civil.Date:
		return v, nil
	case civil.DateTime:
		return v.Date, nil
	case time.Time:
		return civil.DateOf(v), nil
	case string:
		d, err := civil.ParseDate(v)
		if err != nil {
			return civil.Date{}, newConversionError(value, KindDate, err)
		}
		return d, nil
	}
	return civil.Date{}, newConversionError(value, KindDate, nil)
}

// ToTimeOfDay converts a value to a local time of day
func ToTimeOfDay(value any) (civil.Time, error) {
	switch v := value.(type) {
	case nil:
		return civil.Time{}, nil
	case civil.Time:
		return v, nil
	case civil.DateTime:
		return v.Time, nil
	case time.Time:
		return civil.TimeOf(v), nil
	case string:
		t, err := civil.ParseTime(v)
		if err != nil {
			return civil.Time{}, newConversionError(value, KindTimeOfDay, err)
		}
		return t, nil
	}
	return civil.Time{}, newConversionError(value, KindTimeOfDay, nil)
}

// ToBytes converts a string to its UTF-8 bytes
func ToBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, newConversionError(value, KindBytes, nil)
}

// toArray returns containers unchanged and converts host collections
func toArray(value any) (*Array, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *Array:
		return v, nil
	case *MutableArray:
		return v.AsArray()
	}
	if j, ok := ToJsonOrIntegral(value).(Json); ok && j.IsArray() {
		return j.AsArray()
	}
	return nil, newConversionError(value, KindArray, nil)
}

// toObject returns containers unchanged and converts host maps
func toObject(value any) (*Object, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *Object:
		return v, nil
	case *MutableObject:
		return v.AsObject()
	}
	if j, ok := ToJsonOrIntegral(value).(Json); ok && j.IsObject() {
		return j.AsObject()
	}
	return nil, newConversionError(value, KindObject, nil)
}

func toJsonContainer(value any) (Json, error) {
	if value == nil {
		return nil, nil
	}
	if j, ok := ToJsonOrIntegral(value).(Json); ok {
		return j, nil
	}
	return nil, newConversionError(value, KindJson, nil)
}
