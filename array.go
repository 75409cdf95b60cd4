package kson

import (
	"fmt"
	"iter"
	"math/big"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Array is a read-only, ordered sequence of JSON values
type Array struct {
	values []any
}

// MutableArray is an Array that also exposes mutation operations
type MutableArray struct {
	Array
}

// NewArray creates a read-only array holding values
func NewArray(values ...any) *Array {
	return &Array{values: append([]any(nil), values...)}
}

// NewMutableArray creates a mutable array holding values
func NewMutableArray(values ...any) *MutableArray {
	return &MutableArray{Array{values: append([]any(nil), values...)}}
}

func (a *Array) IsArray() bool   { return true }
func (a *Array) IsObject() bool  { return false }
func (a *Array) IsMutable() bool { return false }

func (a *Array) AsArray() (*Array, error) {
	return a, nil
}

func (a *Array) AsObject() (*Object, error) {
	return nil, newOperationError("as_object", "container is an array", ErrNotObject)
}

func (a *Array) Len() int {
	return len(a.values)
}

func (a *Array) IsEmpty() bool {
	return len(a.values) == 0
}

// Get returns the element at index
func (a *Array) Get(index int) (any, error) {
	if err := a.checkIndex(index, len(a.values)); err != nil {
		return nil, err
	}
	return a.values[index], nil
}

func (a *Array) checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return newOperationError("get", fmt.Sprintf("index %d out of range [0:%d]", index, size), ErrIndexOutOfRange)
	}
	return nil
}

// IsNull reports whether the element at index exists and is null
func (a *Array) IsNull(index int) bool {
	return index >= 0 && index < len(a.values) && a.values[index] == nil
}

// Values iterates over the elements in order
func (a *Array) Values() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, v := range a.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// element fetches the element at index and converts it
func element[T any](a *Array, index int, conv func(any) (T, error)) (T, error) {
	v, err := a.Get(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return conv(v)
}

func (a *Array) GetString(index int) (string, error)   { return element(a, index, ToString) }
func (a *Array) GetBool(index int) (bool, error)       { return element(a, index, ToBool) }
func (a *Array) GetChar(index int) (rune, error)       { return element(a, index, ToChar) }
func (a *Array) GetInt8(index int) (int8, error)       { return element(a, index, ToInt8) }
func (a *Array) GetInt16(index int) (int16, error)     { return element(a, index, ToInt16) }
func (a *Array) GetInt32(index int) (int32, error)     { return element(a, index, ToInt32) }
func (a *Array) GetInt(index int) (int, error)         { return element(a, index, ToInt) }
func (a *Array) GetInt64(index int) (int64, error)     { return element(a, index, ToInt64) }
func (a *Array) GetBigInt(index int) (*big.Int, error) { return element(a, index, ToBigInt) }
func (a *Array) GetFloat32(index int) (float32, error) { return element(a, index, ToFloat32) }
func (a *Array) GetFloat64(index int) (float64, error) { return element(a, index, ToFloat64) }
func (a *Array) GetBytes(index int) ([]byte, error)    { return element(a, index, ToBytes) }
func (a *Array) GetTime(index int) (time.Time, error)  { return element(a, index, ToTime) }
func (a *Array) GetDate(index int) (civil.Date, error) { return element(a, index, ToDate) }

func (a *Array) GetBigDecimal(index int) (decimal.Decimal, error) {
	return element(a, index, ToBigDecimal)
}

func (a *Array) GetDateTime(index int) (civil.DateTime, error) {
	return element(a, index, ToDateTime)
}

func (a *Array) GetTimeOfDay(index int) (civil.Time, error) {
	return element(a, index, ToTimeOfDay)
}

// GetArray returns the element at index as an array; a host slice is converted
func (a *Array) GetArray(index int) (*Array, error) { return element(a, index, toArray) }

// GetObject returns the element at index as an object; a host map is converted
func (a *Array) GetObject(index int) (*Object, error) { return element(a, index, toObject) }

// GetJson returns the element at index as a container of either kind
func (a *Array) GetJson(index int) (Json, error) { return element(a, index, toJsonContainer) }

// GetAs returns the element at index converted to kind; null stays nil
func (a *Array) GetAs(index int, kind Kind) (any, error) {
	return element(a, index, func(v any) (any, error) { return Convert(v, kind) })
}

// Copy returns a deep copy of the array as a MutableArray
func (a *Array) Copy() Json {
	values := make([]any, len(a.values))
	for i, v := range a.values {
		values[i] = copyValue(v)
	}
	return &MutableArray{Array{values: values}}
}

// Equal reports whether other is an array holding equal elements in the same order
func (a *Array) Equal(other Json) bool {
	if other == nil || !other.IsArray() {
		return false
	}
	b, _ := other.AsArray()
	if len(a.values) != len(b.values) {
		return false
	}
	for i := range a.values {
		if !valueEqual(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}

func (a *Array) Native() any {
	out := make([]any, len(a.values))
	for i, v := range a.values {
		out[i] = nativeValue(v)
	}
	return out
}

func (m *MutableArray) IsMutable() bool { return true }

// ReadOnly returns a read-only view sharing this array's storage
func (m *MutableArray) ReadOnly() *Array {
	return &m.Array
}

// Push appends values
func (m *MutableArray) Push(values ...any) *MutableArray {
	m.values = append(m.values, values...)
	return m
}

// PushAll appends every element of values
func (m *MutableArray) PushAll(values []any) *MutableArray {
	m.values = append(m.values, values...)
	return m
}

// Set replaces the element at index and returns the previous one
func (m *MutableArray) Set(index int, value any) (any, error) {
	if err := m.checkIndex(index, len(m.values)); err != nil {
		return nil, err
	}
	previous := m.values[index]
	m.values[index] = value
	return previous, nil
}

// Insert places value at index, shifting later elements. index may equal Len.
func (m *MutableArray) Insert(index int, value any) error {
	if err := m.checkIndex(index, len(m.values)+1); err != nil {
		return err
	}
	m.values = append(m.values, nil)
	copy(m.values[index+1:], m.values[index:])
	m.values[index] = value
	return nil
}

// Remove deletes the element at index and returns it
func (m *MutableArray) Remove(index int) (any, error) {
	if err := m.checkIndex(index, len(m.values)); err != nil {
		return nil, err
	}
	removed := m.values[index]
	copy(m.values[index:], m.values[index+1:])
	m.values[len(m.values)-1] = nil
	m.values = m.values[:len(m.values)-1]
	return removed, nil
}

// Clear removes every element
func (m *MutableArray) Clear() {
	clear(m.values)
	m.values = m.values[:0]
}
