// Package stats is the diagnostics engine for calibrated time series
// models. It derives goodness-of-fit statistics, information criteria and
// Dutch groundwater characteristics from the four series a model exposes
// (observations, simulated, residuals, innovations) and assembles them
// into labeled reports.
//
// Every estimator independently re-requests the series it needs for the
// given window; there is no caching or shared mutable state between calls,
// so an engine may serve concurrent report requests as long as its
// SeriesProvider is safe for concurrent reads.
//
// Degenerate inputs (an empty window, no spring samples, a zero
// denominator) yield NaN or an infinity, never an error. Errors are
// reserved for provider failures and invalid configuration.
package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"github.com/ArtesiaWater/pastas/domain/core"
	"github.com/ArtesiaWater/pastas/domain/model"
	"github.com/ArtesiaWater/pastas/domain/series"
)

// SeriesKey selects one of the four series a model exposes
type SeriesKey string

const (
	KeyObservations SeriesKey = "observations"
	KeySimulated    SeriesKey = "simulated"
	KeyResiduals    SeriesKey = "residuals"
	KeyInnovations  SeriesKey = "innovations"
)

type seriesFunc func(core.Window) (series.Series, error)

// Statistics computes diagnostics for a single calibrated model
type Statistics struct {
	provider model.SeriesProvider
	byKey    map[SeriesKey]seriesFunc
	registry map[Op]opSpec
}

// New creates a diagnostics engine for the given provider. The series-key
// lookup table and the statistic registry are built once here; unknown
// keys and identifiers are rejected at the boundary afterwards.
func New(provider model.SeriesProvider) *Statistics {
	s := &Statistics{provider: provider}
	s.byKey = map[SeriesKey]seriesFunc{
		KeyObservations: provider.Observations,
		KeySimulated:    provider.Simulated,
		KeyResiduals:    provider.Residuals,
		KeyInnovations:  provider.Innovations,
	}
	s.registry = buildRegistry(s)
	return s
}

// ByKey returns the named series over the window. Keys outside the closed
// SeriesKey set fail with an invalid-argument error naming the key.
func (s *Statistics) ByKey(key SeriesKey, w core.Window) (series.Series, error) {
	fn, ok := s.byKey[key]
	if !ok {
		return series.Series{}, core.NewUnknownSeriesKeyError(string(key))
	}
	return fn(w)
}

// NFree returns the model's free-parameter count
func (s *Statistics) NFree() int {
	return s.provider.Parameters().NFree()
}

// RMSE is the root mean squared error of the residuals,
// sqrt(sum(r²) / N).
func (s *Statistics) RMSE(w core.Window) (float64, error) {
	res, err := s.provider.Residuals(w)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sumSquares(res.Values) / float64(res.Len())), nil
}

// RMSI is the root mean squared error of the innovations,
// sqrt(sum(v²) / N).
func (s *Statistics) RMSI(w core.Window) (float64, error) {
	inn, err := s.provider.Innovations(w)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sumSquares(inn.Values) / float64(inn.Len())), nil
}

// SSE is the sum of squares of the residuals
func (s *Statistics) SSE(w core.Window) (float64, error) {
	res, err := s.provider.Residuals(w)
	if err != nil {
		return 0, err
	}
	return sumSquares(res.Values), nil
}

// AvgDev is the signed mean of the residuals
func (s *Statistics) AvgDev(w core.Window) (float64, error) {
	res, err := s.provider.Residuals(w)
	if err != nil {
		return 0, err
	}
	return res.Mean(), nil
}

// EVP is the explained variance percentage,
// max(0, (var(obs) − var(res)) / var(obs) · 100). A commonly used
// statistic for groundwater level models; a high EVP does not by itself
// indicate a good model.
func (s *Statistics) EVP(w core.Window) (float64, error) {
	res, err := s.provider.Residuals(w)
	if err != nil {
		return 0, err
	}
	obs, err := s.provider.Observations(w)
	if err != nil {
		return 0, err
	}
	varObs := populationVariance(obs.Values)
	varRes := populationVariance(res.Values)
	return math.Max(0, (varObs-varRes)/varObs*100), nil
}

// RSQ is the Pearson correlation between the simulated and observed
// series, evaluated only at timestamps present in the observations.
func (s *Statistics) RSQ(w core.Window) (float64, error) {
	sim, err := s.provider.Simulated(w)
	if err != nil {
		return 0, err
	}
	obs, err := s.provider.Observations(w)
	if err != nil {
		return 0, err
	}
	// Re-align the simulation to the observation index before correlating.
	simAligned, obsAligned := alignOn(sim, obs)
	return pearson(simAligned, obsAligned), nil
}

// RSQAdj is the R² adjusted for the number of free parameters,
// 1 − (N−1)/(N−Nparam) · SSR/TSS. The denominator is deliberately
// unguarded against Nparam ≥ N and may yield a non-finite value.
func (s *Statistics) RSQAdj(w core.Window) (float64, error) {
	obs, err := s.provider.Observations(w)
	if err != nil {
		return 0, err
	}
	res, err := s.provider.Residuals(w)
	if err != nil {
		return 0, err
	}
	n := float64(obs.Len())
	ssr := sumSquares(res.Values)
	tss := sumSquares(obs.Normalize().Values)
	return 1 - (n-1)/(n-float64(s.NFree()))*ssr/tss, nil
}

// BIC is the Bayesian information criterion,
// −2·ln(sum(v²)) + Nparam·ln(N), with N the number of innovations.
func (s *Statistics) BIC(w core.Window) (float64, error) {
	inn, err := s.provider.Innovations(w)
	if err != nil {
		return 0, err
	}
	nparam := float64(s.NFree())
	n := float64(inn.Len())
	return -2*math.Log(sumSquares(inn.Values)) + nparam*math.Log(n), nil
}

// AIC is the Akaike information criterion, −2·ln(sum(v²)) + 2·Nparam
func (s *Statistics) AIC(w core.Window) (float64, error) {
	inn, err := s.provider.Innovations(w)
	if err != nil {
		return 0, err
	}
	nparam := float64(s.NFree())
	return -2*math.Log(sumSquares(inn.Values)) + 2*nparam, nil
}

// Numeric helpers

func sumSquares(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v * v
	}
	return sum
}

// populationVariance matches the variance definition the EVP formula was
// written against (denominator N, not N−1). NaN for an empty input.
func populationVariance(values []float64) float64 {
	v, err := mstats.PopulationVariance(values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// alignOn pairs sim values with obs values at the observation timestamps.
// Observation timestamps the simulation does not cover are dropped.
func alignOn(sim, obs series.Series) ([]float64, []float64) {
	var x, y []float64
	for i, t := range obs.Times {
		v, ok := sim.At(t)
		if !ok {
			continue
		}
		x = append(x, v)
		y = append(y, obs.Values[i])
	}
	return x, y
}
