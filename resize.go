package chainmap

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultCapacity = 16

	// MaxLoadFactor is the highest size/capacity ratio the table keeps after
	// an insertion, expressed below as maxLoadNum/maxLoadDen.
	MaxLoadFactor = 0.75

	maxLoadNum   = 3
	maxLoadDen   = 4
	growthFactor = 2
)

// needsGrow reports whether one more entry would push the load factor over
// MaxLoadFactor at the current capacity.
func (t *table[V]) needsGrow() bool {
	return (t.size+1)*maxLoadDen > t.capacity*maxLoadNum
}

// grow doubles the capacity and rehashes every entry into a fresh bucket
// array. The old array is dropped once all entries are moved.
func (t *table[V]) grow() {
	start := time.Now()

	var (
		old         = t.buckets
		oldCapacity = t.capacity
		newCapacity = oldCapacity * growthFactor
	)

	t.buckets = make([]bucket[V], newCapacity)
	t.capacity = newCapacity
	t.size = 0

	for _, b := range old {
		for i := range b {
			t.insert(b[i].key, b[i].value)
		}
	}

	t.resizes++

	t.logger.Debug("hash table resized",
		zap.Uint64("old_capacity", uint64(oldCapacity)),
		zap.Uint64("new_capacity", uint64(newCapacity)),
		zap.Uint64("size", uint64(t.size)),
		zap.Duration("elapsed", time.Since(start)),
	)
}
