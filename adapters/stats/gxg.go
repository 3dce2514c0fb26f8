package stats

import (
	"math"
	"sort"
	"time"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/ArtesiaWater/pastas/domain/core"
	"github.com/ArtesiaWater/pastas/domain/series"
)

// The GXG family estimates the classic Dutch groundwater regime
// characteristics (GHG/GLG/GVG: highest, lowest and spring level). The
// classic method samples the series on the 14th and 28th of each month,
// aggregates per calendar year and averages the yearly values. The q_
// variants approximate the same characteristics with quantiles of the
// daily medians and do not care about series length.

// GXGOutput selects the shape of a classic GXG result
type GXGOutput string

const (
	OutputMean   GXGOutput = "mean"   // mean over the yearly values
	OutputYearly GXGOutput = "yearly" // one value per calendar year
)

// Quantiles of exceedance used by the q_ approximations
const (
	ghgQuantile = 0.94
	glgQuantile = 0.06
)

// GXGOptions configures the classic GXG worker
type GXGOptions struct {
	Key    SeriesKey
	Fill   series.FillMethod
	Limit  int // max consecutive days filled per gap, 0 = unlimited
	Output GXGOutput
}

// DefaultGXGOptions returns the conventional configuration: the simulated
// series, linear interpolation limited to 15 days, mean output.
func DefaultGXGOptions() GXGOptions {
	return GXGOptions{
		Key:    KeySimulated,
		Fill:   series.FillLinear,
		Limit:  15,
		Output: OutputMean,
	}
}

// GXGResult is either a scalar (Output == mean) or a yearly series
// (Output == yearly). When no samples remain after the 14th/28th filter
// the scalar is NaN and the yearly series is empty: the statistic is
// undefined for the window, which is not an error.
type GXGResult struct {
	Output GXGOutput
	Value  float64
	Yearly series.Series
}

// yearAggregator folds the retained samples of one calendar year into a
// single value
type yearAggregator func(series.Series) float64

// GHG is the classic "highest level" characteristic: per year the mean of
// the three largest retained values.
func (s *Statistics) GHG(w core.Window, opts GXGOptions) (GXGResult, error) {
	return s.gxg(meanHighest3, w, opts)
}

// GLG is the classic "lowest level" characteristic: per year the mean of
// the three smallest retained values.
func (s *Statistics) GLG(w core.Window, opts GXGOptions) (GXGResult, error) {
	return s.gxg(meanLowest3, w, opts)
}

// GVG is the classic "spring level" characteristic: per year the mean of
// the retained values between 14 March and 14 April, NaN for years
// without such values.
func (s *Statistics) GVG(w core.Window, opts GXGOptions) (GXGResult, error) {
	return s.gxg(meanSpring, w, opts)
}

// gxg is the worker behind the classic characteristics: resample the
// named series to daily means, fill gaps, keep the 14th and 28th of each
// month, aggregate per calendar year.
func (s *Statistics) gxg(agg yearAggregator, w core.Window, opts GXGOptions) (GXGResult, error) {
	switch opts.Output {
	case OutputMean, OutputYearly:
	default:
		return GXGResult{}, core.NewInvalidOutputError(string(opts.Output))
	}
	fill, err := series.ParseFillMethod(string(opts.Fill))
	if err != nil {
		return GXGResult{}, err
	}

	ser, err := s.ByKey(opts.Key, w)
	if err != nil {
		return GXGResult{}, err
	}

	grid := series.ResampleDaily(ser, series.ReduceMean)
	daily := grid.Fill(fill, opts.Limit).Dropna()

	sampled := daily.Where(series.Is14or28)
	if sampled.IsEmpty() {
		return GXGResult{Output: opts.Output, Value: math.NaN()}, nil
	}

	yearly := aggregateByYear(sampled, agg)
	if opts.Output == OutputYearly {
		return GXGResult{Output: opts.Output, Value: math.NaN(), Yearly: yearly}, nil
	}
	return GXGResult{Output: opts.Output, Value: nanMean(yearly.Values)}, nil
}

// QGHG approximates GHG as the 0.94 quantile of the daily medians.
// An empty key selects the simulated series.
func (s *Statistics) QGHG(w core.Window, key SeriesKey) (float64, error) {
	return s.dailyQuantile(w, key, ghgQuantile)
}

// QGLG approximates GLG as the 0.06 quantile of the daily medians
func (s *Statistics) QGLG(w core.Window, key SeriesKey) (float64, error) {
	return s.dailyQuantile(w, key, glgQuantile)
}

// QGVG approximates GVG as the median of the daily medians inside the
// spring window, NaN when the window holds none.
func (s *Statistics) QGVG(w core.Window, key SeriesKey) (float64, error) {
	daily, err := s.dailyMedians(w, key)
	if err != nil {
		return 0, err
	}
	spring := daily.Where(series.InSpring)
	if spring.IsEmpty() {
		return math.NaN(), nil
	}
	m, err := mstats.Median(spring.Values)
	if err != nil {
		return math.NaN(), nil
	}
	return m, nil
}

// DGHG is the simulated minus observed GHG approximation over the same
// window
func (s *Statistics) DGHG(w core.Window) (float64, error) {
	return s.diff(w, s.QGHG)
}

// DGLG is the simulated minus observed GLG approximation
func (s *Statistics) DGLG(w core.Window) (float64, error) {
	return s.diff(w, s.QGLG)
}

// DGVG is the simulated minus observed GVG approximation
func (s *Statistics) DGVG(w core.Window) (float64, error) {
	return s.diff(w, s.QGVG)
}

func (s *Statistics) diff(w core.Window, est func(core.Window, SeriesKey) (float64, error)) (float64, error) {
	sim, err := est(w, KeySimulated)
	if err != nil {
		return 0, err
	}
	obs, err := est(w, KeyObservations)
	if err != nil {
		return 0, err
	}
	return sim - obs, nil
}

func (s *Statistics) dailyMedians(w core.Window, key SeriesKey) (series.Series, error) {
	if key == "" {
		key = KeySimulated
	}
	ser, err := s.ByKey(key, w)
	if err != nil {
		return series.Series{}, err
	}
	return series.ResampleDaily(ser, series.ReduceMedian).Dropna(), nil
}

func (s *Statistics) dailyQuantile(w core.Window, key SeriesKey, q float64) (float64, error) {
	daily, err := s.dailyMedians(w, key)
	if err != nil {
		return 0, err
	}
	if daily.IsEmpty() {
		return math.NaN(), nil
	}
	sorted := make([]float64, daily.Len())
	copy(sorted, daily.Values)
	sort.Float64s(sorted)
	return stat.Quantile(q, stat.LinInterp, sorted, nil), nil
}

// Year aggregators

func meanHighest3(s series.Series) float64 {
	return meanExtreme(s.Values, 3, true)
}

func meanLowest3(s series.Series) float64 {
	return meanExtreme(s.Values, 3, false)
}

func meanSpring(s series.Series) float64 {
	spring := s.Where(series.InSpring)
	if spring.IsEmpty() {
		return math.NaN()
	}
	return spring.Mean()
}

// meanExtreme averages the k largest (or smallest) values; fewer than k
// values average whatever is present.
func meanExtreme(values []float64, k int, largest bool) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	if largest {
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	} else {
		sort.Float64s(sorted)
	}
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

// aggregateByYear folds the sampled series into one value per calendar
// year present in the input, stamped on 31 December of that year.
func aggregateByYear(s series.Series, agg yearAggregator) series.Series {
	var out series.Series
	i := 0
	for i < s.Len() {
		year := s.Times[i].Year()
		j := i
		for j < s.Len() && s.Times[j].Year() == year {
			j++
		}
		sub := series.Series{Times: s.Times[i:j], Values: s.Values[i:j]}
		out.Times = append(out.Times, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
		out.Values = append(out.Values, agg(sub))
		i = j
	}
	return out
}

// nanMean averages the finite entries; a NaN year (e.g. no spring values)
// does not poison the mean across years.
func nanMean(values []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
