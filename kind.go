package kson

import (
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Kind names a representation a stored value can be converted to
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindBool
	KindChar
	KindInt8
	KindInt16
	KindInt32
	KindInt
	KindInt64
	KindBigInt
	KindFloat32
	KindFloat64
	KindBigDecimal
	KindTime
	KindDateTime
	KindDate
	KindTimeOfDay
	KindBytes
	KindArray
	KindObject
	KindJson
)

var kindNames = [...]string{
	KindAny:        "any",
	KindString:     "string",
	KindBool:       "boolean",
	KindChar:       "char",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt:        "int",
	KindInt64:      "int64",
	KindBigInt:     "big integer",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindBigDecimal: "big decimal",
	KindTime:       "instant",
	KindDateTime:   "local datetime",
	KindDate:       "local date",
	KindTimeOfDay:  "local time",
	KindBytes:      "bytes",
	KindArray:      "array",
	KindObject:     "object",
	KindJson:       "json",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// converters is the closed dispatch table behind Convert.
// Every entry maps null to nil.
var converters [len(kindNames)]func(any) (any, error)

func init() {
	converters = [len(kindNames)]func(any) (any, error){
		KindAny:        func(v any) (any, error) { return v, nil },
		KindString:     nullable(ToString),
		KindBool:       nullable(ToBool),
		KindChar:       nullable(ToChar),
		KindInt8:       nullable(ToInt8),
		KindInt16:      nullable(ToInt16),
		KindInt32:      nullable(ToInt32),
		KindInt:        nullable(ToInt),
		KindInt64:      nullable(ToInt64),
		KindBigInt:     nullable(ToBigInt),
		KindFloat32:    nullable(ToFloat32),
		KindFloat64:    nullable(ToFloat64),
		KindBigDecimal: nullable(ToBigDecimal),
		KindTime:       nullable(ToTime),
		KindDateTime:   nullable(ToDateTime),
		KindDate:       nullable(ToDate),
		KindTimeOfDay:  nullable(ToTimeOfDay),
		KindBytes:      nullable(ToBytes),
		KindArray:      nullable(toArray),
		KindObject:     nullable(toObject),
		KindJson:       nullable(toJsonContainer),
	}
}

func nullable[T any](fn func(any) (T, error)) func(any) (any, error) {
	return func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return fn(v)
	}
}

// Convert converts value to the representation named by kind.
// A nil value converts to nil for every kind.
func Convert(value any, kind Kind) (any, error) {
	if kind < 0 || int(kind) >= len(converters) {
		return nil, newOperationError("convert", fmt.Sprintf("unknown kind %s", kind), ErrConversion)
	}
	return converters[kind](value)
}

// kindName describes the kind of a stored value for error messages
func kindName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case *big.Int:
		return "big integer"
	case float32, float64:
		return "float"
	case decimal.Decimal:
		return "big decimal"
	case string:
		return "string"
	case []byte:
		return "bytes"
	case time.Time:
		return "instant"
	case civil.DateTime:
		return "local datetime"
	case civil.Date:
		return "local date"
	case civil.Time:
		return "local time"
	case *Array, *MutableArray:
		return "array"
	case *Object, *MutableObject:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
