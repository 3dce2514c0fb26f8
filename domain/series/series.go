// Package series provides the time series value type consumed by the
// diagnostics engine, together with the resampling, gap-filling and
// seasonal-window logic the groundwater characteristic estimators depend on.
//
// A Series is an ordered sequence of (timestamp, value) pairs with strictly
// increasing, unique timestamps. Spacing may be irregular and gaps are
// missing timestamps, never sentinel values. Every transform returns a new
// Series; nothing in this package mutates a series in place.
package series

import (
	"errors"
	"math"
	"sort"
	"time"

	mstats "github.com/montanaflynn/stats"

	"github.com/ArtesiaWater/pastas/domain/core"
)

// Series represents a time series with parallel timestamp and value slices
type Series struct {
	Times  []time.Time
	Values []float64
}

// New creates a series from parallel slices
func New(times []time.Time, values []float64) (Series, error) {
	if len(times) != len(values) {
		return Series{}, errors.New("timestamps and values must have the same length")
	}
	return Series{Times: times, Values: values}, nil
}

// Len returns the number of samples
func (s Series) Len() int {
	return len(s.Values)
}

// IsEmpty reports whether the series has no samples
func (s Series) IsEmpty() bool {
	return len(s.Values) == 0
}

// Clip returns the sub-series with timestamps inside the window.
// A zero bound leaves that side unbounded.
func (s Series) Clip(w core.Window) Series {
	if w.IsUnbounded() {
		return s.copy()
	}
	// Timestamps are strictly increasing, so the window is a single run.
	lo := 0
	if !w.Tmin.IsZero() {
		lo = sort.Search(len(s.Times), func(i int) bool {
			return !s.Times[i].Before(w.Tmin)
		})
	}
	hi := len(s.Times)
	if !w.Tmax.IsZero() {
		hi = sort.Search(len(s.Times), func(i int) bool {
			return s.Times[i].After(w.Tmax)
		})
	}
	if lo >= hi {
		return Series{}
	}
	out := Series{
		Times:  make([]time.Time, hi-lo),
		Values: make([]float64, hi-lo),
	}
	copy(out.Times, s.Times[lo:hi])
	copy(out.Values, s.Values[lo:hi])
	return out
}

// At returns the value at an exact timestamp
func (s Series) At(t time.Time) (float64, bool) {
	i := sort.Search(len(s.Times), func(i int) bool {
		return !s.Times[i].Before(t)
	})
	if i < len(s.Times) && s.Times[i].Equal(t) {
		return s.Values[i], true
	}
	return math.NaN(), false
}

// Mean returns the arithmetic mean of the values, NaN for an empty series
func (s Series) Mean() float64 {
	m, err := mstats.Mean(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Normalize returns the series with its mean subtracted from every value
func (s Series) Normalize() Series {
	mean := s.Mean()
	out := Series{
		Times:  make([]time.Time, s.Len()),
		Values: make([]float64, s.Len()),
	}
	copy(out.Times, s.Times)
	for i, v := range s.Values {
		out.Values[i] = v - mean
	}
	return out
}

// Where returns the sub-series of samples for which pred holds
func (s Series) Where(pred func(time.Time) bool) Series {
	var out Series
	for i, t := range s.Times {
		if pred(t) {
			out.Times = append(out.Times, t)
			out.Values = append(out.Values, s.Values[i])
		}
	}
	return out
}

func (s Series) copy() Series {
	out := Series{
		Times:  make([]time.Time, s.Len()),
		Values: make([]float64, s.Len()),
	}
	copy(out.Times, s.Times)
	copy(out.Values, s.Values)
	return out
}
