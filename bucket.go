package chainmap

type entry[V any] struct {
	key   string
	value V
}

// bucket is a chain of entries sharing one hash index.
// A nil bucket is an empty chain.
type bucket[V any] []entry[V]

// find returns the position of key in the chain, or -1.
func (b bucket[V]) find(key string) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}

	return -1
}

// swapPop removes the entry at i by moving the last entry into its place.
// Chain order is not preserved.
func (b bucket[V]) swapPop(i int) bucket[V] {
	last := len(b) - 1
	b[i] = b[last]

	// Drop references held by the vacated slot.
	b[last] = entry[V]{}

	return b[:last]
}
