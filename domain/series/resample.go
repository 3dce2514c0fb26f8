package series

import (
	"math"
	"time"

	mstats "github.com/montanaflynn/stats"

	"github.com/ArtesiaWater/pastas/domain/core"
)

// Reducer defines how multiple samples falling on the same day collapse
// into a single daily value
type Reducer string

const (
	ReduceMean   Reducer = "mean"
	ReduceMedian Reducer = "median"
)

// FillMethod defines how missing days are assigned values after
// resampling. The set is closed; anything else is rejected by
// ParseFillMethod with an invalid-argument error.
type FillMethod string

const (
	FillNone     FillMethod = "none"   // Drop missing entries, no fill
	FillForward  FillMethod = "ffill"  // Forward-fill last observed value
	FillBackward FillMethod = "bfill"  // Backward-fill next observed value
	FillLinear   FillMethod = "linear" // Linear interpolation between observed values
)

// ParseFillMethod maps a method name onto the closed FillMethod set.
// The empty string means no fill.
func ParseFillMethod(method string) (FillMethod, error) {
	switch FillMethod(method) {
	case FillNone, FillMethod(""):
		return FillNone, nil
	case FillForward:
		return FillForward, nil
	case FillBackward:
		return FillBackward, nil
	case FillLinear:
		return FillLinear, nil
	default:
		return "", core.NewUnknownFillMethodError(method)
	}
}

// Grid is a series resampled onto a contiguous daily grid. Days without a
// source sample hold NaN until a fill method assigns them a value.
type Grid struct {
	Start  time.Time // first day, midnight UTC
	Values []float64 // one slot per day, NaN marks a missing day
}

// dayOf buckets a timestamp to its calendar day (midnight UTC)
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ResampleDaily buckets the series per calendar day and reduces each
// bucket with the given reducer. Days between the first and last sample
// that received no source point stay NaN.
func ResampleDaily(s Series, reduce Reducer) Grid {
	if s.IsEmpty() {
		return Grid{}
	}

	first := dayOf(s.Times[0])
	last := dayOf(s.Times[s.Len()-1])
	days := int(last.Sub(first).Hours()/24) + 1

	buckets := make([][]float64, days)
	for i, t := range s.Times {
		slot := int(dayOf(t).Sub(first).Hours() / 24)
		buckets[slot] = append(buckets[slot], s.Values[i])
	}

	values := make([]float64, days)
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			values[i] = math.NaN()
			continue
		}
		values[i] = reduceBucket(bucket, reduce)
	}

	return Grid{Start: first, Values: values}
}

func reduceBucket(bucket []float64, reduce Reducer) float64 {
	var v float64
	var err error
	switch reduce {
	case ReduceMedian:
		v, err = mstats.Median(bucket)
	default:
		v, err = mstats.Mean(bucket)
	}
	if err != nil {
		return math.NaN()
	}
	return v
}

// Fill applies the fill method to the grid's missing days and returns a
// new grid. limit caps the number of consecutive missing days assigned per
// gap; limit <= 0 fills without bound.
func (g Grid) Fill(method FillMethod, limit int) Grid {
	out := Grid{Start: g.Start, Values: make([]float64, len(g.Values))}
	copy(out.Values, g.Values)

	switch method {
	case FillForward:
		out.fillForward(limit)
	case FillBackward:
		out.fillBackward(limit)
	case FillLinear:
		out.fillLinear(limit)
	}
	return out
}

func (g *Grid) fillForward(limit int) {
	last := math.NaN()
	run := 0
	for i, v := range g.Values {
		if !math.IsNaN(v) {
			last = v
			run = 0
			continue
		}
		run++
		if !math.IsNaN(last) && (limit <= 0 || run <= limit) {
			g.Values[i] = last
		}
	}
}

func (g *Grid) fillBackward(limit int) {
	next := math.NaN()
	run := 0
	for i := len(g.Values) - 1; i >= 0; i-- {
		v := g.Values[i]
		if !math.IsNaN(v) {
			next = v
			run = 0
			continue
		}
		run++
		if !math.IsNaN(next) && (limit <= 0 || run <= limit) {
			g.Values[i] = next
		}
	}
}

// fillLinear interpolates interior gaps on the straight line between the
// surrounding observed days. Gaps after the last observed day propagate
// that day's value; gaps before the first observed day stay missing. Both
// follow the forward fill direction of the original interpolation
// primitive this mirrors.
func (g *Grid) fillLinear(limit int) {
	n := len(g.Values)
	i := 0
	// Skip the leading missing run, it has no left anchor.
	for i < n && math.IsNaN(g.Values[i]) {
		i++
	}
	for i < n {
		if !math.IsNaN(g.Values[i]) {
			i++
			continue
		}
		lo := i - 1 // last observed day
		hi := i
		for hi < n && math.IsNaN(g.Values[hi]) {
			hi++
		}
		fill := hi - i
		if limit > 0 && fill > limit {
			fill = limit
		}
		if hi == n {
			// Trailing gap: hold the last observed value.
			for k := 0; k < fill; k++ {
				g.Values[i+k] = g.Values[lo]
			}
			return
		}
		step := (g.Values[hi] - g.Values[lo]) / float64(hi-lo)
		for k := 0; k < fill; k++ {
			g.Values[i+k] = g.Values[lo] + step*float64(i+k-lo)
		}
		i = hi
	}
}

// Dropna converts the grid back to a series, dropping days that are still
// missing. Timestamps land on midnight UTC of each day.
func (g Grid) Dropna() Series {
	var out Series
	for i, v := range g.Values {
		if math.IsNaN(v) {
			continue
		}
		out.Times = append(out.Times, g.Start.AddDate(0, 0, i))
		out.Values = append(out.Values, v)
	}
	return out
}
