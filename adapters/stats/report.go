package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ArtesiaWater/pastas/domain/core"
)

// Preset names a fixed selection of statistics for Summary
type Preset string

const (
	PresetBasic Preset = "basic"
	PresetDutch Preset = "dutch"
	PresetAll   Preset = "all" // every labeled statistic across all groups
)

// Report is a single-column table of labeled statistic values
type Report struct {
	ID        core.ReportID
	CreatedAt time.Time
	Rows      []Row
}

// Row is one labeled value of a report
type Row struct {
	Label string
	Value float64
}

// Get returns the value for a row label
func (r *Report) Get(label string) (float64, bool) {
	for _, row := range r.Rows {
		if row.Label == label {
			return row.Value, true
		}
	}
	return 0, false
}

// String renders the report as a two-column text table
func (r *Report) String() string {
	width := len("Statistic")
	for _, row := range r.Rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %12s\n", width, "Statistic", "Value")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%-*s  %12.6f\n", width, row.Label, row.Value)
	}
	return b.String()
}

// OpValue is one computed statistic of a Many call, keyed by identifier
type OpValue struct {
	Op    Op
	Value float64
}

// defaultManyOps is the statistic selection Many computes when the caller
// provides none
var defaultManyOps = []Op{OpEVP, OpRMSE, OpRMSI, OpDurbinWatson}

// Summary assembles the labeled statistics of a preset into a report.
// PresetAll covers every grouped statistic sorted by group, label and
// identifier; a named preset sorts by label and identifier.
func (s *Statistics) Summary(preset Preset, w core.Window) (*Report, error) {
	type entry struct {
		group string
		label string
		op    Op
	}

	var selected []entry
	switch preset {
	case PresetAll:
		for op, def := range s.registry {
			if def.group == "" {
				continue
			}
			selected = append(selected, entry{def.group, def.label, op})
		}
	case PresetBasic, PresetDutch:
		for op, def := range s.registry {
			if def.group != string(preset) {
				continue
			}
			selected = append(selected, entry{"", def.label, op})
		}
	default:
		return nil, core.NewUnknownPresetError(string(preset))
	}

	sort.Slice(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.group != b.group {
			return a.group < b.group
		}
		if a.label != b.label {
			return a.label < b.label
		}
		return a.op < b.op
	})

	report := &Report{ID: core.NewReportID(), CreatedAt: time.Now()}
	for _, e := range selected {
		value, err := s.Compute(e.op, w)
		if err != nil {
			return nil, err
		}
		report.Rows = append(report.Rows, Row{Label: e.label, Value: value})
	}
	return report, nil
}

// Many computes an ordered selection of statistics by identifier. An
// empty selection defaults to evp, rmse, rmsi and durbin_watson.
func (s *Statistics) Many(w core.Window, ops []Op) ([]OpValue, error) {
	if len(ops) == 0 {
		ops = defaultManyOps
	}
	out := make([]OpValue, 0, len(ops))
	for _, op := range ops {
		value, err := s.Compute(op, w)
		if err != nil {
			return nil, err
		}
		out = append(out, OpValue{Op: op, Value: value})
	}
	return out, nil
}

// All computes every statistic of the canonical operation table and
// returns an identifier-to-value mapping.
func (s *Statistics) All(w core.Window) (map[Op]float64, error) {
	out := make(map[Op]float64)
	for op, def := range s.registry {
		if !def.canonical {
			continue
		}
		value, err := def.fn(w)
		if err != nil {
			return nil, err
		}
		out[op] = value
	}
	return out, nil
}
