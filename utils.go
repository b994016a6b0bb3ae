package chainmap

// Returns the smallest capacity that holds n entries without growing.
// Non-positive n yields DefaultCapacity.
func CapacityFor(n int) int {
	if n <= 0 {
		return DefaultCapacity
	}

	return (n*maxLoadDen + maxLoadNum - 1) / maxLoadNum
}
