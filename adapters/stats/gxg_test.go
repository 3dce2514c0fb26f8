package stats

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ArtesiaWater/pastas/domain/core"
	"github.com/ArtesiaWater/pastas/domain/model"
	"github.com/ArtesiaWater/pastas/domain/series"
)

// monthlyLevels builds complete daily coverage for the given years where
// every day's value equals its month number (1..12). The retained
// 14th/28th samples per year are then 1,1,2,2,...,12,12.
func monthlyLevels(years ...int) series.Series {
	var s series.Series
	for _, y := range years {
		t := day(y, time.January, 1)
		for t.Year() == y {
			s.Times = append(s.Times, t)
			s.Values = append(s.Values, float64(t.Month()))
			t = t.AddDate(0, 0, 1)
		}
	}
	return s
}

func gxgModel(obs series.Series) *fakeModel {
	return &fakeModel{
		obs:    obs,
		sim:    obs,
		res:    series.Series{},
		inn:    series.Series{},
		params: model.ParameterTable{},
	}
}

func obsOptions(output GXGOutput) GXGOptions {
	opts := DefaultGXGOptions()
	opts.Key = KeyObservations
	opts.Output = output
	return opts
}

func TestGHG_MonthlyLevels(t *testing.T) {
	s := New(gxgModel(monthlyLevels(2001, 2002)))

	// Top three retained values per year are 12, 12, 11.
	want := (12.0 + 12 + 11) / 3
	got, err := s.GHG(core.Window{}, obsOptions(OutputMean))
	if err != nil {
		t.Fatalf("GHG: %v", err)
	}
	if !almostEqual(got.Value, want) {
		t.Errorf("GHG = %v, want %v", got.Value, want)
	}
}

func TestGLG_MonthlyLevels(t *testing.T) {
	s := New(gxgModel(monthlyLevels(2001, 2002)))

	// Bottom three retained values per year are 1, 1, 2.
	want := (1.0 + 1 + 2) / 3
	got, err := s.GLG(core.Window{}, obsOptions(OutputMean))
	if err != nil {
		t.Fatalf("GLG: %v", err)
	}
	if !almostEqual(got.Value, want) {
		t.Errorf("GLG = %v, want %v", got.Value, want)
	}
}

func TestGVG_MonthlyLevels(t *testing.T) {
	s := New(gxgModel(monthlyLevels(2001)))

	// Spring samples per year: 14 Mar, 28 Mar, 14 Apr -> 3, 3, 4.
	want := (3.0 + 3 + 4) / 3
	got, err := s.GVG(core.Window{}, obsOptions(OutputMean))
	if err != nil {
		t.Fatalf("GVG: %v", err)
	}
	if !almostEqual(got.Value, want) {
		t.Errorf("GVG = %v, want %v", got.Value, want)
	}
}

func TestGHG_AtLeastGLG(t *testing.T) {
	s := New(gxgModel(monthlyLevels(2001, 2002, 2003)))
	w := core.Window{}

	ghg, err := s.GHG(w, obsOptions(OutputMean))
	if err != nil {
		t.Fatalf("GHG: %v", err)
	}
	glg, err := s.GLG(w, obsOptions(OutputMean))
	if err != nil {
		t.Fatalf("GLG: %v", err)
	}
	if ghg.Value < glg.Value {
		t.Errorf("GHG %v < GLG %v", ghg.Value, glg.Value)
	}
}

func TestGXG_YearlyOutput(t *testing.T) {
	s := New(gxgModel(monthlyLevels(2001, 2002)))

	yearly, err := s.GHG(core.Window{}, obsOptions(OutputYearly))
	if err != nil {
		t.Fatalf("GHG yearly: %v", err)
	}
	if yearly.Yearly.Len() != 2 {
		t.Fatalf("yearly output has %d entries, want one per calendar year (2)", yearly.Yearly.Len())
	}
	years := map[int]bool{}
	for _, ts := range yearly.Yearly.Times {
		if years[ts.Year()] {
			t.Errorf("duplicate yearly entry for %d", ts.Year())
		}
		years[ts.Year()] = true
	}

	// The mean output must equal the mean of the yearly series.
	mean, err := s.GHG(core.Window{}, obsOptions(OutputMean))
	if err != nil {
		t.Fatalf("GHG mean: %v", err)
	}
	if !almostEqual(mean.Value, yearly.Yearly.Mean()) {
		t.Errorf("mean output %v != mean of yearly values %v", mean.Value, yearly.Yearly.Mean())
	}
}

func TestGXG_InvalidOutput(t *testing.T) {
	s := New(gxgModel(monthlyLevels(2001)))
	opts := obsOptions("bogus")

	_, err := s.GHG(core.Window{}, opts)
	if !errors.Is(err, core.ErrInvalidOutput) {
		t.Errorf("GHG with bogus output: error = %v, want ErrInvalidOutput", err)
	}
}

func TestGXG_InvalidFillMethod(t *testing.T) {
	s := New(gxgModel(monthlyLevels(2001)))
	opts := obsOptions(OutputMean)
	opts.Fill = series.FillMethod("cubic")

	_, err := s.GHG(core.Window{}, opts)
	if !errors.Is(err, core.ErrUnknownFillMethod) {
		t.Errorf("GHG with cubic fill: error = %v, want ErrUnknownFillMethod", err)
	}
}

func TestGXG_NoSamplingDays(t *testing.T) {
	// Observations only on the 1st of each month, no fill: nothing lands
	// on a 14th or 28th, so the characteristic is undefined.
	var obs series.Series
	for m := time.January; m <= time.December; m++ {
		obs.Times = append(obs.Times, day(2001, m, 1))
		obs.Values = append(obs.Values, float64(m))
	}
	s := New(gxgModel(obs))
	opts := obsOptions(OutputMean)
	opts.Fill = series.FillNone

	got, err := s.GHG(core.Window{}, opts)
	if err != nil {
		t.Fatalf("GHG: %v", err)
	}
	if !math.IsNaN(got.Value) {
		t.Errorf("GHG without 14th/28th samples = %v, want NaN", got.Value)
	}
}

func TestQGVG(t *testing.T) {
	t.Run("no spring samples", func(t *testing.T) {
		obs := daily(day(2001, time.June, 1), 1, 2, 3)
		s := New(gxgModel(obs))
		got, err := s.QGVG(core.Window{}, KeyObservations)
		if err != nil {
			t.Fatalf("QGVG: %v", err)
		}
		if !math.IsNaN(got) {
			t.Errorf("QGVG without spring samples = %v, want NaN", got)
		}
	})

	t.Run("single spring sample", func(t *testing.T) {
		obs := series.Series{
			Times:  []time.Time{day(2001, time.January, 5), day(2001, time.April, 1), day(2001, time.July, 9)},
			Values: []float64{1, 5, 9},
		}
		s := New(gxgModel(obs))
		got, err := s.QGVG(core.Window{}, KeyObservations)
		if err != nil {
			t.Fatalf("QGVG: %v", err)
		}
		if got != 5 {
			t.Errorf("QGVG with one spring sample = %v, want exactly 5", got)
		}
	})
}

func TestQGHG_AtLeastQGLG(t *testing.T) {
	s := New(gxgModel(monthlyLevels(2001, 2002)))
	w := core.Window{}

	qghg, err := s.QGHG(w, KeyObservations)
	if err != nil {
		t.Fatalf("QGHG: %v", err)
	}
	qglg, err := s.QGLG(w, KeyObservations)
	if err != nil {
		t.Fatalf("QGLG: %v", err)
	}
	if qghg < qglg {
		t.Errorf("QGHG %v < QGLG %v", qghg, qglg)
	}
}

func TestDGHG_PerfectSimulationIsZero(t *testing.T) {
	// Simulated equals observed, so every difference characteristic is 0.
	s := New(gxgModel(monthlyLevels(2001)))
	w := core.Window{}

	for name, est := range map[string]func(core.Window) (float64, error){
		"DGHG": s.DGHG,
		"DGLG": s.DGLG,
		"DGVG": s.DGVG,
	} {
		got, err := est(w)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !almostEqual(got, 0) {
			t.Errorf("%s = %v, want 0", name, got)
		}
	}
}
