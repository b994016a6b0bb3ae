package chainmap

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrInvalidKey is returned by Set when the key is not valid UTF-8 text.
	ErrInvalidKey = errors.New("chainmap: invalid key")

	// ErrInvalidCapacity is returned by New for a non-positive capacity.
	ErrInvalidCapacity = errors.New("chainmap: capacity must be positive")
)

type table[V any] struct {
	buckets []bucket[V]

	capacity uintptr
	size     uintptr
	resizes  int

	hashFunc HashFunc
	logger   *zap.Logger

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

// Sets the initial number of buckets. Defaults to DefaultCapacity.
func WithCapacity[V any](capacity int) Option[V] {
	return func(t *table[V]) {
		if capacity <= 0 {
			// Caught by init.
			t.capacity = 0
			return
		}

		t.capacity = uintptr(capacity)
	}
}

// Sets the logger used for resize events. Defaults to a no-op logger.
func WithLogger[V any](l *zap.Logger) Option[V] {
	return func(t *table[V]) {
		t.logger = l
	}
}

func (t *table[V]) init(opts ...Option[V]) error {
	t.capacity = DefaultCapacity

	for _, opt := range opts {
		opt(t)
	}

	if t.capacity == 0 {
		return ErrInvalidCapacity
	}

	if t.hashFunc == nil {
		t.hashFunc = PolynomialHash
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}

	t.buckets = make([]bucket[V], t.capacity)

	return nil
}

// lazyInit sets up a zero-value table with default options.
func (t *table[V]) lazyInit() {
	if t.buckets == nil {
		// Defaults cannot fail.
		_ = t.init()
	}
}

// index reads the capacity once, so the whole hash computation sees the same
// modulus.
func (t *table[V]) index(key string) uintptr {
	t.lazyInit()
	capacity := t.capacity

	return t.hashFunc(key, capacity) % capacity
}

func (t *table[V]) get(key string) (V, bool) {
	idx := t.index(key)
	b := t.buckets[idx]

	if i := b.find(key); i >= 0 {
		return b[i].value, true
	}

	return t.emptyV, false
}

// insert stores or overwrites a value without checking the load factor.
// Returns whether a new entry was created.
func (t *table[V]) insert(key string, value V) bool {
	idx := t.index(key)
	b := t.buckets[idx]

	if i := b.find(key); i >= 0 {
		b[i].value = value
		return false
	}

	t.buckets[idx] = append(b, entry[V]{key: key, value: value})
	t.size++

	return true
}

// set is insert behind the resize gate. Updates of an existing key never
// grow the table.
func (t *table[V]) set(key string, value V) bool {
	idx := t.index(key)
	b := t.buckets[idx]

	if i := b.find(key); i >= 0 {
		b[i].value = value
		return false
	}

	if t.needsGrow() {
		t.grow()
		idx = t.index(key)
	}

	t.buckets[idx] = append(t.buckets[idx], entry[V]{key: key, value: value})
	t.size++

	return true
}

func (t *table[V]) delete(key string) bool {
	idx := t.index(key)
	b := t.buckets[idx]

	i := b.find(key)
	if i < 0 {
		return false
	}

	t.buckets[idx] = b.swapPop(i)
	t.size--

	return true
}

// Reset drops every entry. Capacity is kept.
func (t *table[V]) Reset() {
	clear(t.buckets)

	t.size = 0
}

func (t *table[V]) Capacity() int {
	t.lazyInit()

	return int(t.capacity)
}

// each walks entries in bucket order, then chain order, until yield
// returns false.
func (t *table[V]) each(yield func(key string, value V) bool) {
	for _, b := range t.buckets {
		for i := range b {
			if !yield(b[i].key, b[i].value) {
				return
			}
		}
	}
}
