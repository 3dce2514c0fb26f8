package model

import (
	"github.com/ArtesiaWater/pastas/domain/core"
	"github.com/ArtesiaWater/pastas/domain/series"
)

// SeriesProvider is the boundary to the calibrated time series model.
// The diagnostics engine only ever reads four already-computed series and
// the calibrated parameter table; how they were produced is not its
// concern. Implementations must be safe for concurrent reads.
type SeriesProvider interface {
	// Observations returns the observed series over the window
	Observations(w core.Window) (series.Series, error)
	// Simulated returns the simulated response over the window
	Simulated(w core.Window) (series.Series, error)
	// Residuals returns observed minus simulated, aligned by timestamp
	Residuals(w core.Window) (series.Series, error)
	// Innovations returns the residuals whitened by the noise model
	Innovations(w core.Window) (series.Series, error)
	// Parameters returns the calibrated parameter table
	Parameters() ParameterTable
}
