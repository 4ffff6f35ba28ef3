// Package stats provides the streaming accumulators backing the
// aggregation engine. Accumulators hold constant state per metric, so
// aggregation memory is bounded by the number of groups, not records.
package stats

// Accumulator tracks a running sum and count for one metric. The
// count is per-metric: a record contributes only when the underlying
// field is present and valid, so denominators differ across metrics
// within the same group.
type Accumulator struct {
	sum   float64
	count int64
}

// Add folds one observation into the accumulator.
func (a *Accumulator) Add(v float64) {
	a.sum += v
	a.count++
}

// Count returns the number of contributing observations.
func (a *Accumulator) Count() int64 {
	return a.count
}

// Sum returns the running total.
func (a *Accumulator) Sum() float64 {
	return a.sum
}

// Mean returns the average and whether it is defined. A metric with
// no contributing observations has no mean; callers must preserve
// that absence rather than coerce it to zero.
func (a *Accumulator) Mean() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	return a.sum / float64(a.count), true
}

// MeanPtr returns the average as a pointer, nil when undefined. The
// pointer form feeds JSON output where absent and zero must stay
// distinguishable.
func (a *Accumulator) MeanPtr() *float64 {
	m, ok := a.Mean()
	if !ok {
		return nil
	}
	return &m
}

// Merge folds another accumulator into this one.
func (a *Accumulator) Merge(other Accumulator) {
	a.sum += other.sum
	a.count += other.count
}
