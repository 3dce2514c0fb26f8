package series

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ArtesiaWater/pastas/domain/core"
)

func TestResampleDaily_Reducers(t *testing.T) {
	d := day(2001, 6, 1)
	s := Series{
		Times: []time.Time{
			d.Add(6 * time.Hour),
			d.Add(12 * time.Hour),
			d.Add(18 * time.Hour),
		},
		Values: []float64{1, 2, 9},
	}

	if got := ResampleDaily(s, ReduceMean).Values[0]; got != 4 {
		t.Errorf("mean reducer: got %v, want 4", got)
	}
	if got := ResampleDaily(s, ReduceMedian).Values[0]; got != 2 {
		t.Errorf("median reducer: got %v, want 2", got)
	}
}

func TestResampleDaily_GapsStayMissing(t *testing.T) {
	s := Series{
		Times:  []time.Time{day(2001, 6, 1), day(2001, 6, 4)},
		Values: []float64{0, 3},
	}
	grid := ResampleDaily(s, ReduceMean)
	if len(grid.Values) != 4 {
		t.Fatalf("grid length = %d, want 4", len(grid.Values))
	}
	if !math.IsNaN(grid.Values[1]) || !math.IsNaN(grid.Values[2]) {
		t.Error("interior days without samples must stay NaN")
	}
}

func TestFill(t *testing.T) {
	// Days 1 and 5 observed, three missing days in between.
	src := Series{
		Times:  []time.Time{day(2001, 6, 1), day(2001, 6, 5)},
		Values: []float64{0, 4},
	}
	grid := ResampleDaily(src, ReduceMean)

	tests := []struct {
		name   string
		method FillMethod
		limit  int
		want   []float64 // NaN marks still-missing
	}{
		{"none leaves gap", FillNone, 0, []float64{0, nan(), nan(), nan(), 4}},
		{"ffill unlimited", FillForward, 0, []float64{0, 0, 0, 0, 4}},
		{"ffill limited", FillForward, 2, []float64{0, 0, 0, nan(), 4}},
		{"bfill unlimited", FillBackward, 0, []float64{0, 4, 4, 4, 4}},
		{"bfill limited", FillBackward, 1, []float64{0, nan(), nan(), 4, 4}},
		{"linear unlimited", FillLinear, 0, []float64{0, 1, 2, 3, 4}},
		{"linear limited", FillLinear, 2, []float64{0, 1, 2, nan(), 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grid.Fill(tt.method, tt.limit)
			for i, want := range tt.want {
				v := got.Values[i]
				if math.IsNaN(want) != math.IsNaN(v) || (!math.IsNaN(want) && v != want) {
					t.Errorf("day %d: got %v, want %v", i, v, want)
				}
			}
		})
	}
}

func TestFill_DoesNotMutateSource(t *testing.T) {
	src := Series{
		Times:  []time.Time{day(2001, 6, 1), day(2001, 6, 3)},
		Values: []float64{0, 2},
	}
	grid := ResampleDaily(src, ReduceMean)
	grid.Fill(FillForward, 0)
	if !math.IsNaN(grid.Values[1]) {
		t.Error("Fill must operate on a copy of the grid")
	}
}

func TestDropna(t *testing.T) {
	src := Series{
		Times:  []time.Time{day(2001, 6, 1), day(2001, 6, 3)},
		Values: []float64{0, 2},
	}
	out := ResampleDaily(src, ReduceMean).Dropna()
	if out.Len() != 2 {
		t.Fatalf("Dropna length = %d, want 2", out.Len())
	}
	if !out.Times[1].Equal(day(2001, 6, 3)) {
		t.Errorf("Dropna timestamp = %v, want %v", out.Times[1], day(2001, 6, 3))
	}
}

func TestParseFillMethod(t *testing.T) {
	for _, valid := range []string{"", "none", "ffill", "bfill", "linear"} {
		if _, err := ParseFillMethod(valid); err != nil {
			t.Errorf("ParseFillMethod(%q) unexpected error: %v", valid, err)
		}
	}

	_, err := ParseFillMethod("cubic")
	if !errors.Is(err, core.ErrUnknownFillMethod) {
		t.Errorf("ParseFillMethod(cubic) error = %v, want ErrUnknownFillMethod", err)
	}
}

func nan() float64 { return math.NaN() }
