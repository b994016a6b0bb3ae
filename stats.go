package chainmap

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float64

	// Number of times the table doubled since it was created.
	Resizes int

	UsedBuckets  int
	LongestChain int
}

func (t *table[V]) stats() Stats {
	t.lazyInit()

	s := Stats{
		Size:       int(t.size),
		Capacity:   int(t.capacity),
		LoadFactor: t.loadFactor(),
		Resizes:    t.resizes,
	}

	for _, b := range t.buckets {
		if len(b) == 0 {
			continue
		}

		s.UsedBuckets++
		s.LongestChain = max(s.LongestChain, len(b))
	}

	return s
}

func (t *table[V]) loadFactor() float64 {
	t.lazyInit()

	return float64(t.size) / float64(t.capacity)
}
