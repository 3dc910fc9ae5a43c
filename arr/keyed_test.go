package arr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fn-utils/arr"
	"github.com/hasbyte1/go-fn-utils/collections"
)

type vehicle struct {
	Make  string
	Model string
}

func vehicles() []vehicle {
	return []vehicle{
		{"tesla", "3"},
		{"tesla", "y"},
		{"ford", "mach-e"},
		{"gm", "bolt"},
		{"ford", "f-150"},
	}
}

func byMake(v vehicle) string { return v.Make }

func TestGroupBy(t *testing.T) {
	groups := arr.GroupBy(vehicles(), byMake)

	assert.Equal(t, []string{"tesla", "ford", "gm"}, groups.Keys())

	tesla, ok := groups.Get("tesla")
	require.True(t, ok)
	assert.Equal(t, []vehicle{{"tesla", "3"}, {"tesla", "y"}}, tesla)

	ford, _ := groups.Get("ford")
	assert.Equal(t, []vehicle{{"ford", "mach-e"}, {"ford", "f-150"}}, ford)
}

func TestGroupBy_FlattenReproducesInput(t *testing.T) {
	input := []int{5, 1, 4, 2, 3, 8, 6, 7, 9, 0}
	groups := arr.GroupBy(input, func(n int) int { return n % 3 })

	var flat []int
	for _, g := range groups.Values() {
		flat = append(flat, g...)
	}
	assert.ElementsMatch(t, input, flat)
	assert.Len(t, flat, len(input))
	assert.Equal(t, []int{2, 1, 0}, groups.Keys())
}

func TestGroupBy_Empty(t *testing.T) {
	groups := arr.GroupBy([]vehicle{}, byMake)
	require.NotNil(t, groups)
	assert.Equal(t, 0, groups.Len())

	groups = arr.GroupBy[vehicle, string](nil, byMake)
	assert.Equal(t, 0, groups.Len())
}

func TestGroupBy_ZeroKeyIsOrdinary(t *testing.T) {
	groups := arr.GroupBy([]string{"a", "", "b", ""}, func(s string) string { return s })
	assert.Equal(t, []string{"a", "", "b"}, groups.Keys())
	empty, ok := groups.Get("")
	require.True(t, ok)
	assert.Len(t, empty, 2)
}

func TestGroupBy_DoesNotMutateInput(t *testing.T) {
	input := vehicles()
	snapshot := append([]vehicle(nil), input...)
	_ = arr.GroupBy(input, byMake)
	assert.Equal(t, snapshot, input)
}

func TestCollectBy(t *testing.T) {
	got := arr.CollectBy(vehicles(), byMake)
	want := [][]vehicle{
		{{"tesla", "3"}, {"tesla", "y"}},
		{{"ford", "mach-e"}, {"ford", "f-150"}},
		{{"gm", "bolt"}},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, arr.GroupBy(vehicles(), byMake).Values(), got)
}

func TestCollectBy_Empty(t *testing.T) {
	got := arr.CollectBy([]int{}, func(n int) int { return n })
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestIndexBy(t *testing.T) {
	type item struct{ A int }
	idx := arr.IndexBy([]item{{1}, {2}, {3}}, func(i item) int { return i.A })
	assert.Equal(t, []int{1, 2, 3}, idx.Keys())
	v, ok := idx.Get(2)
	require.True(t, ok)
	assert.Equal(t, item{2}, v)
}

func TestIndexBy_LastWins(t *testing.T) {
	idx := arr.IndexBy(vehicles(), byMake)
	assert.Equal(t, []string{"tesla", "ford", "gm"}, idx.Keys())

	tesla, _ := idx.Get("tesla")
	assert.Equal(t, "y", tesla.Model)
	ford, _ := idx.Get("ford")
	assert.Equal(t, "f-150", ford.Model)
}

func TestDifferenceBy(t *testing.T) {
	assert.Equal(t, []int{1, 2}, arr.DifferenceBy([]int{1, 2, 3}, []int{3, 4, 5}, func(n int) int { return n }))

	a := []vehicle{{Make: "tesla"}, {Make: "ford"}, {Make: "gm"}}
	b := []vehicle{{Make: "tesla"}, {Make: "bmw"}, {Make: "audi"}}
	assert.Equal(t, []vehicle{{Make: "ford"}, {Make: "gm"}}, arr.DifferenceBy(a, b, byMake))
}

func TestDifferenceBy_KeepsDuplicates(t *testing.T) {
	got := arr.DifferenceBy([]string{"x", "y", "x", "z"}, []string{"z"}, strings.ToUpper)
	assert.Equal(t, []string{"x", "y", "x"}, got)
}

func TestDifferenceBy_ZeroValuedMatchesCount(t *testing.T) {
	// A key present in b whose element is the zero value still excludes.
	got := arr.DifferenceBy([]int{0, 1}, []int{0}, func(n int) int { return n })
	assert.Equal(t, []int{1}, got)
}

func TestDifferenceBy_Empty(t *testing.T) {
	id := func(n int) int { return n }
	assert.Equal(t, []int{}, arr.DifferenceBy([]int{}, []int{1}, id))
	assert.Equal(t, []int{1, 2}, arr.DifferenceBy([]int{1, 2}, nil, id))
}

func TestIntersectionBy(t *testing.T) {
	id := func(n int) int { return n }
	assert.Equal(t, []int{2, 3}, arr.IntersectionBy([]int{1, 2, 3}, []int{2, 3, 4}, id))

	type obj struct{ A int }
	got := arr.IntersectionBy([]obj{{1}, {2}}, []obj{{2}, {3}, {4}}, func(o obj) int { return o.A })
	assert.Equal(t, []obj{{2}}, got)
}

func TestIntersectionBy_KeepsDuplicates(t *testing.T) {
	got := arr.IntersectionBy([]int{2, 2, 3, 2}, []int{2}, func(n int) int { return n })
	assert.Equal(t, []int{2, 2, 2}, got)
}

func TestDifferenceAndIntersectionPartitionA(t *testing.T) {
	a := vehicles()
	b := []vehicle{{Make: "ford"}, {Make: "kia"}}

	diff := arr.DifferenceBy(a, b, byMake)
	inter := arr.IntersectionBy(a, b, byMake)

	assert.Len(t, append(diff, inter...), len(a))
	assert.ElementsMatch(t, a, append(diff, inter...))
	for _, d := range diff {
		assert.NotContains(t, inter, d)
	}
}

func TestKeyFuncPanicPropagates(t *testing.T) {
	boom := func(int) int { panic("boom") }
	assert.PanicsWithValue(t, "boom", func() { arr.GroupBy([]int{1}, boom) })
	assert.PanicsWithValue(t, "boom", func() { arr.DifferenceBy([]int{1}, []int{2}, boom) })
	assert.NotPanics(t, func() { arr.GroupBy([]int{}, boom) })
}

type car struct{ Available bool }

func TestFindKey(t *testing.T) {
	cars := collections.NewMap[string, car]()
	cars.Set("tesla", car{true})
	cars.Set("ford", car{false})
	cars.Set("gm", car{true})

	k, ok := arr.FindKey(cars, func(c car, _ string, _ collections.Enumerable[string, car]) bool {
		return !c.Available
	})
	require.True(t, ok)
	assert.Equal(t, "ford", k)
}

func TestFindKey_FirstInInsertionOrder(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("z", 1)
	m.Set("a", 1)

	k, ok := arr.FindKey(m, func(v int, _ string, _ collections.Enumerable[string, int]) bool { return v == 1 })
	require.True(t, ok)
	assert.Equal(t, "z", k)
}

func TestFindKey_ReceivesKeyAndIndex(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	k, ok := arr.FindKey(m, func(_ int, key string, idx collections.Enumerable[string, int]) bool {
		return key == "b" && idx.Len() == 2
	})
	require.True(t, ok)
	assert.Equal(t, "b", k)
}

func TestFindKey_NoMatch(t *testing.T) {
	m := collections.NewMap[string, int]()
	m.Set("a", 1)
	k, ok := arr.FindKey(m, func(int, string, collections.Enumerable[string, int]) bool { return false })
	assert.False(t, ok)
	assert.Equal(t, "", k)

	_, ok = arr.FindKey(collections.NewMap[string, int](), func(int, string, collections.Enumerable[string, int]) bool { return true })
	assert.False(t, ok)
}

func TestFindKeyIn(t *testing.T) {
	cars := map[string]car{
		"tesla": {true},
		"ford":  {false},
		"gm":    {true},
	}
	k, ok := arr.FindKeyIn(cars, func(c car, _ string, _ map[string]car) bool { return !c.Available })
	require.True(t, ok)
	assert.Equal(t, "ford", k)

	k, ok = arr.FindKeyIn(cars, func(c car, _ string, _ map[string]car) bool { return c.Available })
	require.True(t, ok)
	assert.Equal(t, "gm", k, "keys are visited in ascending order")
}
