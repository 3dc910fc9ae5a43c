package collections_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fn-utils/collections"
)

func TestMap_InsertionOrder(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, []int{3, 1, 2}, m.Values())
	assert.Equal(t, 3, m.Len())
}

func TestMap_SetKeepsPosition(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestMap_GetMissing(t *testing.T) {
	m := collections.NewMap[string, *int]()
	v, ok := m.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, m.Has("nope"))
}

func TestMap_Delete(t *testing.T) {
	m := collections.FromEntries(
		collections.Entry[string, int]{Key: "a", Value: 1},
		collections.Entry[string, int]{Key: "b", Value: 2},
		collections.Entry[string, int]{Key: "c", Value: 3},
	)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())

	v, ok := m.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	m.Set("b", 20)
	assert.Equal(t, []string{"a", "c", "b"}, m.Keys())
}

func TestMap_KeysReturnsCopy(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("a", 1)
	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMap_EachStops(t *testing.T) {
	m := collections.NewMap[int, string]()
	for i := range 5 {
		m.Set(i, "v")
	}
	var seen []int
	m.Each(func(k int, _ string) bool {
		seen = append(seen, k)
		return k < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestMap_All(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("x", 1)
	m.Set("y", 2)

	var keys []string
	sum := 0
	for k, v := range m.All() {
		keys = append(keys, k)
		sum += v
	}
	assert.Equal(t, []string{"x", "y"}, keys)
	assert.Equal(t, 3, sum)
}

func TestMap_CloneIsIndependent(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("a", 1)
	c := m.Clone()
	c.Set("b", 2)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestMap_Entries(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "(a, 1)", entries[0].String())
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m.ToMap())
}

func TestMap_String(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)
	assert.Equal(t, "{b: 2, a: 1}", m.String())
}

func TestMap_MarshalJSON_PreservesOrder(t *testing.T) {
	m := collections.NewMap[string, []int]()
	m.Set("tesla", []int{1, 2})
	m.Set("ford", []int{3})

	b, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"tesla":[1,2],"ford":[3]}`, string(b))
}

func TestMap_MarshalJSON_IntKeys(t *testing.T) {
	m := collections.NewMap[int, string]()
	m.Set(2, "b")
	m.Set(1, "a")

	b, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"2":"b","1":"a"}`, string(b))
}

type carMake string

func TestMap_MarshalJSON_NamedStringKeys(t *testing.T) {
	m := collections.NewMap[carMake, int]()
	m.Set("tesla", 1)
	m.Set("ford", 2)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"tesla":1,"ford":2}`, string(b))

	plain, err := json.Marshal(map[carMake]int{"tesla": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"tesla":1}`, string(plain))
}

func TestMap_MarshalJSON_FloatAndBoolKeys(t *testing.T) {
	floats := collections.NewMap[float64, string]()
	floats.Set(1.5, "a")
	floats.Set(1e21, "b")
	b, err := floats.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"1.5":"a","1e+21":"b"}`, string(b))

	bools := collections.NewMap[bool, int]()
	bools.Set(true, 1)
	b, err = bools.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"true":1}`, string(b))
}

func TestMap_Index(t *testing.T) {
	m := collections.NewMap[string, any]()
	m.Set("a", nil)

	v, ok := m.Index("a")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = m.Index("b")
	assert.False(t, ok)

	ints := collections.NewMap[int, string]()
	ints.Set(1, "x")
	_, ok = ints.Index("1")
	assert.False(t, ok)
}

func TestMap_MarshalJSON_Empty(t *testing.T) {
	b, err := collections.NewMap[string, int]().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestMap_MarshalJSON_UnsupportedKey(t *testing.T) {
	type point struct{ X, Y int }
	m := collections.NewMap[point, int]()
	m.Set(point{1, 2}, 3)

	_, err := m.MarshalJSON()
	assert.True(t, errors.Is(err, collections.ErrUnsupportedKey))
}
