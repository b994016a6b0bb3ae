package chainmap

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable[V any](opts ...Option[V]) *table[V] {
	var tt table[V]
	if err := tt.init(opts...); err != nil {
		panic(err)
	}

	return &tt
}

// Every key lands in bucket 0.
func collisionHash(string, uintptr) uintptr {
	return 0
}

func TestTable_init(t *testing.T) {
	tt := newTable[int]()

	require.Len(t, tt.buckets, DefaultCapacity)
	require.Equal(t, uintptr(DefaultCapacity), tt.capacity)
	require.NotNil(t, tt.hashFunc)
	require.NotNil(t, tt.logger)

	tt = newTable(WithCapacity[int](3))
	require.Len(t, tt.buckets, 3)
}

func TestTable_init_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -16} {
		var tt table[int]
		require.ErrorIs(t, tt.init(WithCapacity[int](c)), ErrInvalidCapacity)
	}
}

func TestTable_insert(t *testing.T) {
	tt := newTable[string]()

	require.True(t, tt.insert("foo", "bar"))
	require.Equal(t, uintptr(1), tt.size)

	require.False(t, tt.insert("foo", "bar2"))
	require.Equal(t, uintptr(1), tt.size)

	v, ok := tt.get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar2", v)
}

func TestTable_insert_SkipsGrowth(t *testing.T) {
	tt := newTable(WithCapacity[int](4))

	for i := range 10 {
		require.True(t, tt.insert(strconv.Itoa(i), i))
	}

	// The bare path never resizes.
	require.Equal(t, uintptr(4), tt.capacity)
	require.Equal(t, uintptr(10), tt.size)
}

func TestTable_get_EmptyBucket(t *testing.T) {
	tt := newTable[int]()

	v, ok := tt.get("missing")
	require.False(t, ok)
	require.Zero(t, v)
	require.False(t, tt.delete("missing"))
}

func TestTable_Collisions(t *testing.T) {
	tt := newTable(WithHashFunc[string](collisionHash))

	for _, k := range []string{"A", "B", "C", "D"} {
		require.True(t, tt.set(k, "v"+k))
	}

	require.Len(t, tt.buckets[0], 4)

	// Delete the head of the chain; the tail moves into its place.
	require.True(t, tt.delete("A"))
	require.Len(t, tt.buckets[0], 3)

	for _, k := range []string{"B", "C", "D"} {
		v, ok := tt.get(k)
		require.Truef(t, ok, "lost %q after swap-and-pop", k)
		require.Equal(t, "v"+k, v)
	}

	_, ok := tt.get("A")
	require.False(t, ok)
}

func TestTable_NaturalCollisions(t *testing.T) {
	tt := newTable[int]()

	// All of these hash to bucket 1 at capacity 16.
	keys := []string{"a", "q", "A", "Q", "1", "!"}
	for i, k := range keys {
		require.Equal(t, uintptr(1), tt.index(k))
		require.True(t, tt.set(k, i))
	}

	require.Len(t, tt.buckets[1], len(keys))

	for i, k := range keys {
		v, ok := tt.get(k)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestTable_delete_Random(t *testing.T) {
	tt := newTable(WithCapacity[int](8))

	for i := range 40 {
		tt.set(strconv.Itoa(i), i*100)
	}

	deleted := make([]int, 0, 20)
	for len(deleted) < 20 {
		idx := rand.Intn(40)

		if tt.delete(strconv.Itoa(idx)) {
			deleted = append(deleted, idx)
		}
	}

	require.Equal(t, uintptr(20), tt.size)

	for idx := range 40 {
		val, ok := tt.get(strconv.Itoa(idx))
		if slices.Contains(deleted, idx) {
			require.False(t, ok)
			continue
		}

		require.True(t, ok)
		require.Equal(t, idx*100, val)
	}
}

func TestTable_Reset(t *testing.T) {
	tt := newTable[int]()

	for i := range 20 {
		tt.set(strconv.Itoa(i), i)
	}

	capacity := tt.capacity
	tt.Reset()

	require.Zero(t, tt.size)
	require.Equal(t, capacity, tt.capacity)

	for _, b := range tt.buckets {
		require.Empty(t, b)
	}
}

func TestTable_index_ReducesCustomHash(t *testing.T) {
	tt := newTable(WithHashFunc[int](func(string, uintptr) uintptr {
		return 1000
	}))

	require.Equal(t, uintptr(1000%DefaultCapacity), tt.index("x"))
	require.True(t, tt.set("x", 1))
}

func TestTable_each_Order(t *testing.T) {
	tt := newTable(WithCapacity[int](4), WithHashFunc[int](func(key string, capacity uintptr) uintptr {
		n, _ := strconv.Atoi(key)
		return uintptr(n) % capacity
	}))

	for _, k := range []string{"2", "1", "3", "5", "0"} {
		tt.insert(k, 0)
	}

	var got []string
	tt.each(func(k string, _ int) bool {
		got = append(got, k)
		return true
	})

	// Bucket order first, then chain order.
	require.Equal(t, []string{"0", "1", "5", "2", "3"}, got)

	got = got[:0]
	tt.each(func(k string, _ int) bool {
		got = append(got, k)
		return len(got) < 2
	})
	require.Equal(t, []string{"0", "1"}, got)
}
