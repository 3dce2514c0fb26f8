package core

import (
	"time"
)

// Window is an optional [Tmin, Tmax] time bound for a series request.
// A zero Tmin or Tmax leaves that side unbounded, so the zero Window
// selects the whole series.
type Window struct {
	Tmin time.Time
	Tmax time.Time
}

// NewWindow creates a window bounded on both sides
func NewWindow(tmin, tmax time.Time) Window {
	return Window{Tmin: tmin, Tmax: tmax}
}

// Since creates a window bounded only from below
func Since(tmin time.Time) Window {
	return Window{Tmin: tmin}
}

// Until creates a window bounded only from above
func Until(tmax time.Time) Window {
	return Window{Tmax: tmax}
}

// IsUnbounded reports whether the window selects everything
func (w Window) IsUnbounded() bool {
	return w.Tmin.IsZero() && w.Tmax.IsZero()
}

// Contains reports whether t falls inside the window (bounds inclusive)
func (w Window) Contains(t time.Time) bool {
	if !w.Tmin.IsZero() && t.Before(w.Tmin) {
		return false
	}
	if !w.Tmax.IsZero() && t.After(w.Tmax) {
		return false
	}
	return true
}

// String returns a human-readable representation of the window bounds
func (w Window) String() string {
	format := func(t time.Time) string {
		if t.IsZero() {
			return "…"
		}
		return t.Format("2006-01-02")
	}
	return "[" + format(w.Tmin) + ", " + format(w.Tmax) + "]"
}
