package seqfmt

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedMapKeysNumeric(t *testing.T) {
	t.Parallel()
	// Lexical ordering would put 10 before 2.
	m := map[int]string{10: "j", 2: "b", 1: "a"}
	keys := sortedMapKeys(reflect.ValueOf(m))
	require.Len(t, keys, 3)
	assert.Equal(t, int64(1), keys[0].Int())
	assert.Equal(t, int64(2), keys[1].Int())
	assert.Equal(t, int64(10), keys[2].Int())
}

func TestSortedMapKeysUint(t *testing.T) {
	t.Parallel()
	m := map[uint]bool{3: true, 1: true, 2: true}
	keys := sortedMapKeys(reflect.ValueOf(m))
	require.Len(t, keys, 3)
	assert.Equal(t, uint64(1), keys[0].Uint())
	assert.Equal(t, uint64(3), keys[2].Uint())
}

func TestSortedMapKeysFloat(t *testing.T) {
	t.Parallel()
	m := map[float64]bool{2.5: true, 0.5: true}
	keys := sortedMapKeys(reflect.ValueOf(m))
	require.Len(t, keys, 2)
	assert.Equal(t, 0.5, keys[0].Float())
}

func TestSortedMapKeysFallbackOnRenderedText(t *testing.T) {
	t.Parallel()
	m := map[bool]int{true: 1, false: 0}
	keys := sortedMapKeys(reflect.ValueOf(m))
	require.Len(t, keys, 2)
	// "false" < "true"
	assert.False(t, keys[0].Bool())
	assert.True(t, keys[1].Bool())
}

func TestCharArrayString(t *testing.T) {
	t.Parallel()
	s, ok := charArrayString([2]byte{'h', 'i'})
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	s, ok = charArrayString([2]rune{'h', 'i'})
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	_, ok = charArrayString([2]int{1, 2})
	assert.False(t, ok)
	_, ok = charArrayString("hi")
	assert.False(t, ok)
	_, ok = charArrayString(nil)
	assert.False(t, ok)
}

func TestLookupDelimsUnknownShape(t *testing.T) {
	t.Parallel()
	d := lookupDelims(Shape("ring"), Narrow)
	assert.Equal(t, defaultDelims[Narrow], d)
}

func TestPromoteFindsPointerReceiver(t *testing.T) {
	t.Parallel()
	// Set's methods have pointer receivers; promote must still find them
	// when the caller holds a dereferenced value.
	s := *NewSet(2, 1)
	e, ok := promote[Elementer](s)
	require.True(t, ok)
	var got []any
	for v := range e.Elements() {
		got = append(got, v)
	}
	assert.Equal(t, []any{1, 2}, got)
	assert.Equal(t, "{1, 2}", Sprint(s))
}

func TestElementsOfNilPointer(t *testing.T) {
	t.Parallel()
	count := 0
	for range elementsOf((*[]int)(nil)) {
		count++
	}
	assert.Zero(t, count)
}

func TestElementsOfNonContainer(t *testing.T) {
	t.Parallel()
	count := 0
	for range elementsOf(42) {
		count++
	}
	assert.Zero(t, count)
}

func TestElementsOfPointerToSlice(t *testing.T) {
	t.Parallel()
	v := []int{1, 2}
	var got []any
	for e := range elementsOf(&v) {
		got = append(got, e)
	}
	assert.Equal(t, []any{1, 2}, got)
}

func TestIsContainerTypeNil(t *testing.T) {
	t.Parallel()
	assert.False(t, isContainerType(nil))
}
