package chainmap

import (
	"iter"
	"unicode/utf8"
)

// StringSet is a set of strings on top of the same chained table as Map.
// It only stores keys.
type StringSet struct {
	table[struct{}]
}

func NewSet(opts ...Option[struct{}]) (*StringSet, error) {
	var ss StringSet
	if err := ss.init(opts...); err != nil {
		return nil, err
	}

	return &ss, nil
}

// Adds a key to the set. Returns whether the key is new.
func (ss *StringSet) Add(key string) (bool, error) {
	if !utf8.ValidString(key) {
		return false, ErrInvalidKey
	}

	return ss.set(key, struct{}{}), nil
}

func (ss *StringSet) Has(key string) bool {
	_, ok := ss.get(key)
	return ok
}

func (ss *StringSet) Remove(key string) bool {
	return ss.delete(key)
}

func (ss *StringSet) Len() int {
	return int(ss.size)
}

// All iterates over members in bucket order.
func (ss *StringSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		ss.each(func(key string, _ struct{}) bool {
			return yield(key)
		})
	}
}
