package kson

import (
	"bytes"
	"fmt"
	"maps"
	"math/big"
	"reflect"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ToJson converts a Go map or slice into a mutable container, recursively.
// nil converts to nil; any other value fails with ErrNotConvertible.
func ToJson(value any) (Json, error) {
	if value == nil {
		return nil, nil
	}
	if j, ok := ToJsonOrIntegral(value).(Json); ok {
		return j, nil
	}
	return nil, newOperationError("to_json", fmt.Sprintf("%T is not a map or a collection", value), ErrNotConvertible)
}

// ToJsonOrIntegral converts Go maps into *MutableObject and slices or arrays
// into *MutableArray, recursively. Map keys are stringified with fmt.Sprint
// and inserted in sorted order. Containers, []byte and every other value are
// returned unchanged.
func ToJsonOrIntegral(value any) any {
	switch v := value.(type) {
	case nil, bool, string, []byte, int64, float64, *big.Int, decimal.Decimal, time.Time:
		return v
	case Json:
		return v
	case map[string]any:
		obj := NewMutableObject()
		for _, k := range slices.Sorted(maps.Keys(v)) {
			obj.put(k, ToJsonOrIntegral(v[k]))
		}
		return obj
	case []any:
		arr := &MutableArray{Array{values: make([]any, len(v))}}
		for i, val := range v {
			arr.values[i] = ToJsonOrIntegral(val)
		}
		return arr
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		type entry struct {
			key   string
			value reflect.Value
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, entry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value()})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].key < entries[j].key
		})
		obj := NewMutableObject()
		for _, e := range entries {
			obj.put(e.key, ToJsonOrIntegral(e.value.Interface()))
		}
		return obj
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}
		arr := &MutableArray{Array{values: make([]any, rv.Len())}}
		for i := range arr.values {
			arr.values[i] = ToJsonOrIntegral(rv.Index(i).Interface())
		}
		return arr
	}
	return value
}

// ArrayFrom builds a mutable array from a slice, converting nested maps and slices
func ArrayFrom[T any](values []T) *MutableArray {
	arr := &MutableArray{Array{values: make([]any, len(values))}}
	for i, v := range values {
		arr.values[i] = ToJsonOrIntegral(v)
	}
	return arr
}

// ObjectFrom builds a mutable object from a map with keys in sorted order,
// converting nested maps and slices
func ObjectFrom[V any](m map[string]V) *MutableObject {
	obj := NewMutableObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		obj.put(k, ToJsonOrIntegral(m[k]))
	}
	return obj
}

// valueEqual compares two leaves or containers. Integers compare by value
// across Go widths; arbitrary-precision numbers compare numerically.
func valueEqual(a, b any) bool {
	if x, ok := integral(a); ok {
		y, ok := integral(b)
		return ok && x == y
	}
	switch x := a.(type) {
	case nil:
		return b == nil
	case Json:
		y, ok := b.(Json)
		return ok && x.Equal(y)
	case *big.Int:
		y, ok := b.(*big.Int)
		return ok && x.Cmp(y) == 0
	case decimal.Decimal:
		y, ok := b.(decimal.Decimal)
		return ok && x.Equal(y)
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Format(time.RFC3339Nano) == y.Format(time.RFC3339Nano)
	}
	return reflect.DeepEqual(a, b)
}

func nativeValue(v any) any {
	if j, ok := v.(Json); ok {
		return j.Native()
	}
	return v
}
