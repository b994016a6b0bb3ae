package chainmap

import (
	"iter"
	"unicode/utf8"
)

// Map is a string-keyed hash table with separate chaining.
// It grows by doubling once an insertion would push the load factor past
// MaxLoadFactor and never shrinks. Removal is O(1) once the entry is found,
// at the price of reordering its chain, so iteration order is not stable
// across removals.
//
// The zero value is an empty map with DefaultCapacity buckets.
// Map is not safe for concurrent use.
type Map[V any] struct {
	table[V]
}

// Entry is a key-value pair returned by Entries.
type Entry[V any] struct {
	Key   string
	Value V
}

// Returns a new map. Without WithCapacity it starts with DefaultCapacity buckets.
func New[V any](opts ...Option[V]) (*Map[V], error) {
	var m Map[V]
	if err := m.init(opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Stores a value for the key, overwriting any previous one.
// The table may grow before a new key is inserted.
func (m *Map[V]) Set(key string, value V) error {
	if !utf8.ValidString(key) {
		return ErrInvalidKey
	}

	m.set(key, value)

	return nil
}

// Returns the value for the key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.get(key)
}

func (m *Map[V]) Has(key string) bool {
	_, ok := m.get(key)
	return ok
}

// Removes the key. Returns false if it was absent.
func (m *Map[V]) Remove(key string) bool {
	return m.delete(key)
}

// Returns the number of stored entries.
func (m *Map[V]) Len() int {
	return int(m.size)
}

// Removes every entry, keeping the current capacity.
func (m *Map[V]) Clear() {
	m.Reset()
}

func (m *Map[V]) LoadFactor() float64 {
	return m.loadFactor()
}

func (m *Map[V]) Stats() Stats {
	return m.stats()
}

// All iterates over entries in bucket order, then chain order.
// The map must not be modified during iteration.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return m.each
}

func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.size)
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

func (m *Map[V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, v := range m.All() {
		values = append(values, v)
	}

	return values
}

func (m *Map[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, m.size)
	for k, v := range m.All() {
		entries = append(entries, Entry[V]{Key: k, Value: v})
	}

	return entries
}
