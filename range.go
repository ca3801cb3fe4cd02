package main

type scalar interface {
	~int32 | ~int64 | ~float64
}

// Range is an ordered pair of bounds. It is used both in pixel space and in
// sample-index space; converting between the two always goes through the
// current samples-per-line figure, never implicitly.
type Range[T scalar] struct {
	Min, Max T
}

func (r Range[T]) Length() T {
	return r.Max - r.Min
}

func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v < r.Max
}

// clampWindow intersects [start, end) with [0, count). An empty intersection
// comes back as start == end.
func clampWindow(start, end, count int64) (int64, int64) {
	if start < 0 {
		start = 0
	}
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}
	if end < start {
		end = start
	}
	return start, end
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
