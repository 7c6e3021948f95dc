package lattice

import "sort"

// axis is one dimension of the lattice: the ticks plus the extra upper
// boundary one cell past the last tick.
type axis struct {
	ticks []float64
	upper float64
	// pos maps every lattice value (ticks and upper) to its position;
	// upper sits at len(ticks).
	pos map[float64]int
}

func newAxis(ticks []float64, cellSize float64) axis {
	a := axis{
		ticks: append([]float64(nil), ticks...),
		upper: ticks[len(ticks)-1] + cellSize,
		pos:   make(map[float64]int, len(ticks)+1),
	}
	for i, t := range a.ticks {
		a.pos[t] = i
	}
	a.pos[a.upper] = len(a.ticks)

	return a
}

// lower returns the first tick.
func (a axis) lower() float64 { return a.ticks[0] }

// has reports whether v is a lattice value on this axis.
func (a axis) has(v float64) bool {
	_, ok := a.pos[v]
	return ok
}

// value returns the lattice value at position i, 0 ≤ i ≤ len(ticks).
func (a axis) value(i int) float64 {
	if i == len(a.ticks) {
		return a.upper
	}
	return a.ticks[i]
}

// step moves v by d cells. Lattice values resolve to the stored neighbour
// value so the result compares exactly equal to it; anything else falls back
// to plain arithmetic.
func (a axis) step(v float64, d int, cellSize float64) float64 {
	if d == 0 {
		return v
	}
	if i, ok := a.pos[v]; ok {
		if j := i + d; j >= 0 && j <= len(a.ticks) {
			return a.value(j)
		}
	}
	return v + float64(d)*cellSize
}

// snap maps v to the tick at or below it.
//
//   - v is a lattice value: unchanged.
//   - no tick below v: unchanged.
//   - between two ticks: the lower tick.
//   - between the last tick and upper: the last tick.
//   - anything above upper: unchanged.
//
// Complexity: O(log n).
func (a axis) snap(v float64) float64 {
	if a.has(v) {
		return v
	}
	i := sort.Search(len(a.ticks), func(i int) bool { return a.ticks[i] > v })
	switch {
	case i == 0:
		return v
	case i < len(a.ticks):
		return a.ticks[i-1]
	case v < a.upper:
		return a.ticks[len(a.ticks)-1]
	default:
		return v
	}
}
