package stats

import (
	"github.com/ArtesiaWater/pastas/domain/core"
)

// Op identifies a registered scalar statistic
type Op string

const (
	OpEVP          Op = "evp"
	OpRMSE         Op = "rmse"
	OpRMSI         Op = "rmsi"
	OpSSE          Op = "sse"
	OpAvgDev       Op = "avg_dev"
	OpRSQ          Op = "rsq"
	OpRSQAdj       Op = "rsq_adj"
	OpBIC          Op = "bic"
	OpAIC          Op = "aic"
	OpDurbinWatson Op = "durbin_watson"

	OpQGHG Op = "q_ghg"
	OpQGLG Op = "q_glg"
	OpQGVG Op = "q_gvg"
	OpDGHG Op = "d_ghg"
	OpDGLG Op = "d_glg"
	OpDGVG Op = "d_gvg"
)

// Summary preset group names
const (
	groupBasic = "basic"
	groupDutch = "dutch"
)

type opFunc func(core.Window) (float64, error)

// opSpec ties a statistic identifier to its human-readable label, its
// summary group (empty for ungrouped statistics) and the function that
// computes it. canonical marks membership of the canonical operation
// table iterated by All.
type opSpec struct {
	label     string
	group     string
	canonical bool
	fn        opFunc
}

// buildRegistry maps every statistic identifier to its handler. Built
// once per engine; Summary, Many and All iterate this table instead of
// resolving names dynamically.
func buildRegistry(s *Statistics) map[Op]opSpec {
	dutch := func(label string, est func(core.Window, SeriesKey) (float64, error)) opSpec {
		return opSpec{label: label, group: groupDutch, fn: func(w core.Window) (float64, error) {
			return est(w, KeySimulated)
		}}
	}
	return map[Op]opSpec{
		OpEVP:    {label: "Explained variance percentage", group: groupBasic, canonical: true, fn: s.EVP},
		OpRMSE:   {label: "Root mean squared error", group: groupBasic, canonical: true, fn: s.RMSE},
		OpRMSI:   {label: "Root mean squared innovation", canonical: true, fn: s.RMSI},
		OpSSE:    {label: "Sum of squares of the error", canonical: true, fn: s.SSE},
		OpAvgDev: {label: "Average Deviation", group: groupBasic, canonical: true, fn: s.AvgDev},
		OpRSQ:    {label: "Pearson R^2", group: groupBasic, canonical: true, fn: s.RSQ},
		OpRSQAdj: {label: "Adjusted Pearson R^2", canonical: true, fn: s.RSQAdj},
		OpBIC:    {label: "Bayesian Information Criterion", group: groupBasic, canonical: true, fn: s.BIC},
		OpAIC:    {label: "Akaike Information Criterion", group: groupBasic, canonical: true, fn: s.AIC},

		OpDurbinWatson: {label: "Durbin Watson statistic", fn: s.DurbinWatson},

		OpQGHG: dutch("Gemiddeld Hoge Grondwaterstand", s.QGHG),
		OpQGLG: dutch("Gemiddeld Lage Grondwaterstand", s.QGLG),
		OpQGVG: dutch("Gemiddelde Voorjaarsgrondwaterstand", s.QGVG),
		OpDGHG: {label: "Verschil Gemiddeld Hoge Grondwaterstand", group: groupDutch, fn: s.DGHG},
		OpDGLG: {label: "Verschil Gemiddeld Lage Grondwaterstand", group: groupDutch, fn: s.DGLG},
		OpDGVG: {label: "Verschil Gemiddelde Voorjaarsgrondwaterstand", group: groupDutch, fn: s.DGVG},
	}
}

// Ops returns the canonical operation table, statistic identifier to
// human-readable label, for discovery by callers.
func (s *Statistics) Ops() map[Op]string {
	out := make(map[Op]string)
	for op, def := range s.registry {
		if def.canonical {
			out[op] = def.label
		}
	}
	return out
}

// Label returns the human-readable name of a registered statistic
func (s *Statistics) Label(op Op) (string, error) {
	def, ok := s.registry[op]
	if !ok {
		return "", core.NewUnknownStatisticError(string(op))
	}
	return def.label, nil
}

// Compute evaluates a single registered statistic over the window
func (s *Statistics) Compute(op Op, w core.Window) (float64, error) {
	def, ok := s.registry[op]
	if !ok {
		return 0, core.NewUnknownStatisticError(string(op))
	}
	return def.fn(w)
}
