package timeseries

import (
	"sort"

	"github.com/memtrack/memtrack/internal/model"
)

// Store is an append-only, time-ordered collection of memory samples for one
// monitoring run. Samples arrive in chronological order, so the primary
// sequence never needs re-sorting. The store is owned by a single goroutine
// and is not safe for concurrent use.
type Store struct {
	samples []model.Sample
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append records a new sample at the end of the series.
func (s *Store) Append(elapsed float64, memoryKB uint64) {
	s.samples = append(s.samples, model.Sample{Elapsed: elapsed, MemoryKB: memoryKB})
}

// Len returns the number of samples collected so far.
func (s *Store) Len() int {
	return len(s.samples)
}

// Samples returns a copy of the time-ordered series for the report sinks.
func (s *Store) Samples() []model.Sample {
	out := make([]model.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Mean returns the average memory in KB, or 0 for an empty series. A zero
// result also matches a legitimately observed 0 KB reading; callers that
// care about the difference check Len.
func (s *Store) Mean() float64 {
	if len(s.samples) == 0 {
		return 0
	}

	// uint64 holds thousands of samples of terabyte-scale KB counts
	// without overflowing.
	var sum uint64
	for _, sm := range s.samples {
		sum += sm.MemoryKB
	}
	return float64(sum) / float64(len(s.samples))
}

// Median returns the median memory in KB, or 0 for an empty series. It sorts
// a copy of the values so the time-ordered series stays untouched for the
// chart. An even count averages the two middle values.
func (s *Store) Median() float64 {
	if len(s.samples) == 0 {
		return 0
	}

	values := make([]uint64, len(s.samples))
	for i, sm := range s.samples {
		values[i] = sm.MemoryKB
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	mid := len(values) / 2
	if len(values)%2 == 0 {
		return float64(values[mid-1]+values[mid]) / 2
	}
	return float64(values[mid])
}

// Max returns the largest memory value in KB, or 0 for an empty series.
func (s *Store) Max() uint64 {
	var max uint64
	for _, sm := range s.samples {
		if sm.MemoryKB > max {
			max = sm.MemoryKB
		}
	}
	return max
}

// Min returns the smallest memory value in KB, or 0 for an empty series.
func (s *Store) Min() uint64 {
	if len(s.samples) == 0 {
		return 0
	}

	min := s.samples[0].MemoryKB
	for _, sm := range s.samples[1:] {
		if sm.MemoryKB < min {
			min = sm.MemoryKB
		}
	}
	return min
}

// LastElapsed returns the elapsed seconds of the final sample, or 0 for an
// empty series. The chart uses it as the x-axis upper bound.
func (s *Store) LastElapsed() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return s.samples[len(s.samples)-1].Elapsed
}

// Summary computes the statistics over the full series. It is recomputed
// fresh each call, which is fine for the sample counts a run produces.
func (s *Store) Summary() model.Summary {
	return model.Summary{
		Count:    s.Len(),
		MeanKB:   s.Mean(),
		MedianKB: s.Median(),
		MaxKB:    s.Max(),
		MinKB:    s.Min(),
	}
}
