package arena

// SizeInUse returns the number of bytes consumed so far, including internal
// fragmentation due to alignment.
func (a *Fixed) SizeInUse() int {
	return a.off
}

// Remaining returns the number of bytes still available.
func (a *Fixed) Remaining() int {
	return a.capacity - a.off
}

// Capacity returns the total capacity recorded at construction.
func (a *Fixed) Capacity() int {
	return a.capacity
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Fixed) Utilization() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.off) / float64(a.capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Fixed) Metrics() Metrics {
	return Metrics{
		SizeInUse:   a.SizeInUse(),
		Remaining:   a.Remaining(),
		Capacity:    a.Capacity(),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	SizeInUse   int     `json:"size_in_use"`
	Remaining   int     `json:"remaining"`
	Capacity    int     `json:"capacity"`
	Utilization float64 `json:"utilization"`
}
