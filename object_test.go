package kson

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Basics(t *testing.T) {
	obj := NewObject(P("a", 1), P("b", nil))

	assert.True(t, obj.IsObject())
	assert.False(t, obj.IsArray())
	assert.False(t, obj.IsMutable())
	assert.Equal(t, 2, obj.Len())
	assert.True(t, NewObject().IsEmpty())

	_, err := obj.AsArray()
	assert.True(t, errors.Is(err, ErrNotArray))

	same, err := obj.AsObject()
	require.NoError(t, err)
	assert.Same(t, obj, same)
}

func TestObject_Lookup(t *testing.T) {
	obj := NewObject(P("a", 1), P("b", nil))

	assert.Equal(t, 1, obj.Get("a"))
	assert.Nil(t, obj.Get("b"))
	assert.Nil(t, obj.Get("missing"))

	assert.True(t, obj.Has("b"))
	assert.False(t, obj.Has("missing"))
	assert.True(t, obj.IsNull("b"))
	assert.False(t, obj.IsNull("a"))
	assert.False(t, obj.IsNull("missing"))

	n, err := obj.GetInt("missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	as, err := obj.GetAs("missing", KindInt64)
	require.NoError(t, err)
	assert.Nil(t, as)
}

func TestObject_RepeatedPairKeepsFirstPosition(t *testing.T) {
	obj := NewObject(P("a", 1), P("b", 2), P("a", 3))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.Equal(t, 3, obj.Get("a"))
}

func TestObject_KeysIsACopy(t *testing.T) {
	obj := NewObject(P("a", 1))
	keys := obj.Keys()
	keys[0] = "changed"

	assert.Equal(t, []string{"a"}, obj.Keys())
}

func TestObject_Entries(t *testing.T) {
	obj := NewObject(P("z", 1), P("a", 2), P("m", 3))

	var keys []string
	var sum int
	for k, v := range obj.Entries() {
		keys = append(keys, k)
		sum += v.(int)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
	assert.Equal(t, 6, sum)

	keys = nil
	for k := range obj.Entries() {
		keys = append(keys, k)
		break
	}
	assert.Equal(t, []string{"z"}, keys)
}

func TestObject_TypedGetters(t *testing.T) {
	doc, err := ParseString(`{
		"name": "Ada",
		"age": "36",
		"height": 1.7,
		"admin": "true",
		"initial": "A",
		"born": "1815-12-10T00:00:00Z",
		"day": "1815-12-10",
		"local": "1815-12-10T09:30:00",
		"clock": "09:30:00",
		"tags": ["x", "y"],
		"meta": {"k": 1}
	}`)
	require.NoError(t, err)
	obj, _ := doc.AsObject()

	name, err := obj.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	age, err := obj.GetInt16("age")
	require.NoError(t, err)
	assert.Equal(t, int16(36), age)

	age32, err := obj.GetInt32("age")
	require.NoError(t, err)
	assert.Equal(t, int32(36), age32)

	height, err := obj.GetFloat64("height")
	require.NoError(t, err)
	assert.Equal(t, 1.7, height)

	admin, err := obj.GetBool("admin")
	require.NoError(t, err)
	assert.True(t, admin)

	initial, err := obj.GetChar("initial")
	require.NoError(t, err)
	assert.Equal(t, 'A', initial)

	born, err := obj.GetTime("born")
	require.NoError(t, err)
	assert.Equal(t, 1815, born.Year())

	local, err := obj.GetDateTime("local")
	require.NoError(t, err)
	assert.Equal(t, 9, local.Time.Hour)

	date, err := obj.GetDate("day")
	require.NoError(t, err)
	assert.Equal(t, time.December, date.Month)

	clock, err := obj.GetTimeOfDay("clock")
	require.NoError(t, err)
	assert.Equal(t, 30, clock.Minute)

	tags, err := obj.GetArray("tags")
	require.NoError(t, err)
	assert.Equal(t, 2, tags.Len())

	meta, err := obj.GetObject("meta")
	require.NoError(t, err)
	assert.Equal(t, int64(1), meta.Get("k"))

	j, err := obj.GetJson("tags")
	require.NoError(t, err)
	assert.True(t, j.IsMutable())

	_, err = obj.GetInt8("name")
	assert.True(t, IsConversionError(err))

	_, err = obj.GetObject("tags")
	assert.True(t, IsConversionError(err))

	_, err = obj.GetJson("name")
	assert.True(t, IsConversionError(err))
}

func TestMutableObject_Mutation(t *testing.T) {
	obj := NewMutableObject(P("a", 1))
	assert.True(t, obj.IsMutable())

	assert.Nil(t, obj.Set("b", 2))
	assert.Equal(t, 1, obj.Set("a", 10))
	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	obj.SetAll(P("c", 3), P("a", 11))
	assert.Equal(t, `{"a":11,"b":2,"c":3}`, obj.String())

	removed, ok := obj.Remove("b")
	assert.True(t, ok)
	assert.Equal(t, 2, removed)
	_, ok = obj.Remove("b")
	assert.False(t, ok)
	assert.Equal(t, `{"a":11,"c":3}`, obj.String())

	obj.Set("b", nil)
	assert.Equal(t, []string{"a", "c", "b"}, obj.Keys())

	obj.Clear()
	assert.True(t, obj.IsEmpty())
	assert.False(t, obj.Has("a"))
	assert.Equal(t, "{}", obj.String())
}

func TestMutableObject_ReadOnlyView(t *testing.T) {
	obj := NewMutableObject()
	view := obj.ReadOnly()
	assert.False(t, view.IsMutable())

	obj.Set("k", true)
	assert.True(t, view.Has("k"))
}

func TestObject_Copy(t *testing.T) {
	original := NewMutableObject(P("list", NewMutableArray(1)), P("n", 2))

	copied := original.Copy().(*MutableObject)
	assert.True(t, original.Equal(copied))

	list, err := copied.GetArray("list")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())

	copied.Set("n", 3)
	copied.Get("list").(*MutableArray).Push(2)

	assert.Equal(t, `{"list":[1],"n":2}`, original.String())
	assert.Equal(t, `{"list":[1,2],"n":3}`, copied.String())
}

func TestObject_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Json
		equal bool
	}{
		{"same entries", NewObject(P("a", 1)), NewObject(P("a", 1)), true},
		{"parsed and built", mustParse(t, `{"a":[1,{"b":null}]}`), NewObject(P("a", NewArray(1, NewObject(P("b", nil))))), true},
		{"mutable and read-only", NewObject(P("a", "x")), NewMutableObject(P("a", "x")), true},
		{"equal instants", NewObject(P("t", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))), NewObject(P("t", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))), true},
		{"different order", NewObject(P("a", 1), P("b", 2)), NewObject(P("b", 2), P("a", 1)), false},
		{"different value", NewObject(P("a", 1)), NewObject(P("a", 2)), false},
		{"different key", NewObject(P("a", 1)), NewObject(P("b", 1)), false},
		{"absent and null", NewObject(), NewObject(P("a", nil)), false},
		{"array", NewObject(), NewArray(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			if tt.equal {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestObject_HashFollowsContent(t *testing.T) {
	a := NewMutableObject(P("k", 1))
	before := a.Hash()
	assert.Equal(t, before, a.Hash())

	a.Set("k", 2)
	assert.NotEqual(t, before, a.Hash())
}

func TestObject_Native(t *testing.T) {
	obj := mustParse(t, `{"a":[1,"x"],"b":{"c":null}}`)

	expected := map[string]any{
		"a": []any{int64(1), "x"},
		"b": map[string]any{"c": nil},
	}
	if diff := cmp.Diff(expected, obj.Native()); diff != "" {
		t.Errorf("Native() mismatch (-want +got):\n%s", diff)
	}
}

type person struct {
	Name    string    `json:"name"`
	Age     int       `json:"age"`
	Score   float64   `json:"score"`
	Big     int64     `json:"big"`
	Born    time.Time `json:"born"`
	Tags    []string  `json:"tags"`
	Address struct {
		City string `json:"city"`
	} `json:"address"`
}

func TestObject_Decode(t *testing.T) {
	doc := mustParse(t, `{
		"name": "Ada",
		"age": "36",
		"score": 99.5,
		"big": 9223372036854775807,
		"born": "1815-12-10T00:00:00Z",
		"tags": ["math", "engines"],
		"address": {"city": "London"},
		"ignored": true
	}`)
	obj, _ := doc.AsObject()

	var p person
	require.NoError(t, obj.Decode(&p))

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, 36, p.Age)
	assert.Equal(t, 99.5, p.Score)
	assert.Equal(t, int64(9223372036854775807), p.Big)
	assert.Equal(t, 1815, p.Born.Year())
	assert.Equal(t, []string{"math", "engines"}, p.Tags)
	assert.Equal(t, "London", p.Address.City)
}

func TestObject_DecodeBigNumbers(t *testing.T) {
	obj := NewObject(P("age", bigInt("40")), P("score", bigInt("12")))

	var p person
	require.NoError(t, obj.Decode(&p))
	assert.Equal(t, 40, p.Age)
	assert.Equal(t, 12.0, p.Score)
}

func TestObject_DecodeError(t *testing.T) {
	obj := NewObject(P("age", "not a number"))

	var p person
	err := obj.Decode(&p)
	require.Error(t, err)
	assert.True(t, IsConversionError(err))

	var opErr *JsonsError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "decode", opErr.Op)
}
