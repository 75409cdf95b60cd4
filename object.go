package kson

import (
	"iter"
	"math/big"
	"reflect"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Pair is a key/value entry used to build objects in a given order
type Pair struct {
	Key   string
	Value any
}

// P builds a Pair
func P(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Object is a read-only mapping from string keys to JSON values that
// iterates in insertion order
type Object struct {
	keys   []string
	values map[string]any
}

// MutableObject is an Object that also exposes mutation operations
type MutableObject struct {
	Object
}

// NewObject creates a read-only object from pairs. A repeated key keeps its
// first position and its last value.
func NewObject(pairs ...Pair) *Object {
	o := &Object{values: make(map[string]any, len(pairs))}
	for _, p := range pairs {
		o.put(p.Key, p.Value)
	}
	return o
}

// NewMutableObject creates a mutable object from pairs
func NewMutableObject(pairs ...Pair) *MutableObject {
	return &MutableObject{*NewObject(pairs...)}
}

// put stores value under key, keeping the position of an existing key
func (o *Object) put(key string, value any) (previous any, existed bool) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	previous, existed = o.values[key]
	if !existed {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return previous, existed
}

func (o *Object) IsArray() bool   { return false }
func (o *Object) IsObject() bool  { return true }
func (o *Object) IsMutable() bool { return false }

func (o *Object) AsArray() (*Array, error) {
	return nil, newOperationError("as_array", "container is an object", ErrNotArray)
}

func (o *Object) AsObject() (*Object, error) {
	return o, nil
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) IsEmpty() bool {
	return len(o.keys) == 0
}

// Get returns the value stored under key, or nil when the key is absent
func (o *Object) Get(key string) any {
	return o.values[key]
}

// Has reports whether key is present, even with a null value
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// IsNull reports whether key is present with a null value
func (o *Object) IsNull(key string) bool {
	v, ok := o.values[key]
	return ok && v == nil
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Entries iterates over the entries in insertion order
func (o *Object) Entries() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

func member[T any](o *Object, key string, conv func(any) (T, error)) (T, error) {
	return conv(o.values[key])
}

func (o *Object) GetString(key string) (string, error)   { return member(o, key, ToString) }
func (o *Object) GetBool(key string) (bool, error)       { return member(o, key, ToBool) }
func (o *Object) GetChar(key string) (rune, error)       { return member(o, key, ToChar) }
func (o *Object) GetInt8(key string) (int8, error)       { return member(o, key, ToInt8) }
func (o *Object) GetInt16(key string) (int16, error)     { return member(o, key, ToInt16) }
func (o *Object) GetInt32(key string) (int32, error)     { return member(o, key, ToInt32) }
func (o *Object) GetInt(key string) (int, error)         { return member(o, key, ToInt) }
func (o *Object) GetInt64(key string) (int64, error)     { return member(o, key, ToInt64) }
func (o *Object) GetBigInt(key string) (*big.Int, error) { return member(o, key, ToBigInt) }
func (o *Object) GetFloat32(key string) (float32, error) { return member(o, key, ToFloat32) }
func (o *Object) GetFloat64(key string) (float64, error) { return member(o, key, ToFloat64) }
func (o *Object) GetBytes(key string) ([]byte, error)    { return member(o, key, ToBytes) }
func (o *Object) GetTime(key string) (time.Time, error)  { return member(o, key, ToTime) }
func (o *Object) GetDate(key string) (civil.Date, error) { return member(o, key, ToDate) }

func (o *Object) GetBigDecimal(key string) (decimal.Decimal, error) {
	return member(o, key, ToBigDecimal)
}

func (o *Object) GetDateTime(key string) (civil.DateTime, error) {
	return member(o, key, ToDateTime)
}

func (o *Object) GetTimeOfDay(key string) (civil.Time, error) {
	return member(o, key, ToTimeOfDay)
}

func (o *Object) GetArray(key string) (*Array, error)   { return member(o, key, toArray) }
func (o *Object) GetObject(key string) (*Object, error) { return member(o, key, toObject) }
func (o *Object) GetJson(key string) (Json, error)      { return member(o, key, toJsonContainer) }

// GetAs returns the value under key converted to kind; null or absent stays nil
func (o *Object) GetAs(key string, kind Kind) (any, error) {
	return Convert(o.values[key], kind)
}

// Copy returns a deep copy of the object as a MutableObject
func (o *Object) Copy() Json {
	c := &MutableObject{Object{
		keys:   slices.Clone(o.keys),
		values: make(map[string]any, len(o.values)),
	}}
	for k, v := range o.values {
		c.values[k] = copyValue(v)
	}
	return c
}

// Equal reports whether other is an object with equal entries in the same order
func (o *Object) Equal(other Json) bool {
	if other == nil || !other.IsObject() {
		return false
	}
	p, _ := other.AsObject()
	if len(o.keys) != len(p.keys) {
		return false
	}
	for i, k := range o.keys {
		if p.keys[i] != k || !valueEqual(o.values[k], p.values[k]) {
			return false
		}
	}
	return true
}

func (o *Object) Native() any {
	out := make(map[string]any, len(o.values))
	for k, v := range o.values {
		out[k] = nativeValue(v)
	}
	return out
}

// Decode binds the object onto out, a pointer to a struct or map.
// Struct fields are matched through their json tags and scalar types are
// converted weakly, so "42" fills an int field.
func (o *Object) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			decodeNumberHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		),
	})
	if err != nil {
		return errors.Wrap(err, "create decoder")
	}
	if err := decoder.Decode(o.Native()); err != nil {
		return newOperationError("decode", err.Error(), errors.Wrap(ErrConversion, err.Error()))
	}
	return nil
}

// decodeNumberHook narrows arbitrary-precision leaves to the target field kind
func decodeNumberHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch data.(type) {
		case *big.Int, decimal.Decimal:
			return ToInt64(data)
		}
	case reflect.Float32, reflect.Float64:
		switch data.(type) {
		case *big.Int, decimal.Decimal:
			return ToFloat64(data)
		}
	case reflect.String:
		switch data.(type) {
		case *big.Int, decimal.Decimal:
			return ToString(data)
		}
	}
	return data, nil
}

func (m *MutableObject) IsMutable() bool { return true }

// ReadOnly returns a read-only view sharing this object's storage
func (m *MutableObject) ReadOnly() *Object {
	return &m.Object
}

// Set stores value under key and returns the previous value.
// Overwriting a key keeps its original position.
func (m *MutableObject) Set(key string, value any) any {
	previous, _ := m.put(key, value)
	return previous
}

// SetAll stores every pair in order
func (m *MutableObject) SetAll(pairs ...Pair) *MutableObject {
	for _, p := range pairs {
		m.put(p.Key, p.Value)
	}
	return m
}

// Remove deletes key and returns its value
func (m *MutableObject) Remove(key string) (any, bool) {
	value, ok := m.values[key]
	if !ok {
		return nil, false
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return value, true
}

// Clear removes every entry
func (m *MutableObject) Clear() {
	clear(m.values)
	m.keys = m.keys[:0]
}
