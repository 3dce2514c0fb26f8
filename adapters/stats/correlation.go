package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ArtesiaWater/pastas/domain/core"
)

// DefaultNLags is the number of lags the autocorrelation estimators
// compute when the caller passes nlags <= 0.
const DefaultNLags = 20

// DurbinWatson computes the lag-1 autocorrelation statistic of the
// innovations. A value near 2 indicates no remaining serial correlation.
func (s *Statistics) DurbinWatson(w core.Window) (float64, error) {
	return s.DurbinWatsonFor(w, KeyInnovations)
}

// DurbinWatsonFor computes the Durbin-Watson statistic for any of the
// four model series.
func (s *Statistics) DurbinWatsonFor(w core.Window, key SeriesKey) (float64, error) {
	ser, err := s.ByKey(key, w)
	if err != nil {
		return 0, err
	}
	return durbinWatson(ser.Values), nil
}

// ACF computes the autocorrelation of the innovations for lags 0..nlags.
// Irregular time steps between innovations are not accounted for; the
// estimate treats the series as equidistant, an accepted approximation.
func (s *Statistics) ACF(w core.Window, nlags int) ([]float64, error) {
	inn, err := s.provider.Innovations(w)
	if err != nil {
		return nil, err
	}
	if nlags <= 0 {
		nlags = DefaultNLags
	}
	return acf(inn.Values, nlags), nil
}

// PACF computes the partial autocorrelation of the innovations for lags
// 0..nlags via the Durbin-Levinson recursion. The same equidistance
// approximation as ACF applies.
func (s *Statistics) PACF(w core.Window, nlags int) ([]float64, error) {
	inn, err := s.provider.Innovations(w)
	if err != nil {
		return nil, err
	}
	if nlags <= 0 {
		nlags = DefaultNLags
	}
	return pacf(inn.Values, nlags), nil
}

// durbinWatson is sum(diff(e)²) / sum(e²)
func durbinWatson(e []float64) float64 {
	num := 0.0
	for i := 1; i < len(e); i++ {
		d := e[i] - e[i-1]
		num += d * d
	}
	return num / sumSquares(e)
}

// pearson is the correlation coefficient of two equal-length samples
func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// acf is the biased autocorrelation estimator: lagged products summed
// over the full sample, normalized by the total variance. Lag 0 is 1.
func acf(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return nil
	}

	out := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		out[k] = sum / variance
	}
	return out
}

// pacf runs the Durbin-Levinson recursion on the ACF
func pacf(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil
	}

	r := acf(values, maxLag)
	if r == nil {
		return nil
	}

	out := make([]float64, maxLag+1)
	out[0] = 1.0 // by definition

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}
	phi[1][1] = r[1]
	out[1] = r[1]

	for k := 2; k <= maxLag; k++ {
		num := r[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * r[k-j]
			den -= phi[k-1][j] * r[j]
		}
		if den == 0 {
			out[k] = 0
			continue
		}
		phi[k][k] = num / den
		out[k] = phi[k][k]
		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}
	return out
}
