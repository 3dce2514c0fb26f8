package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArtesiaWater/pastas/domain/core"
)

func reportModel() *Statistics {
	m := withResiduals(daily(day(2001, 1, 1), 0.4, -0.2, 0.3, -0.1, 0.2, -0.3), 2)
	m.obs = monthlyLevels(2001, 2002)
	m.sim = m.obs
	return New(m)
}

func TestSummary_AllCoversNamedPresets(t *testing.T) {
	s := reportModel()
	w := core.Window{}

	all, err := s.Summary(PresetAll, w)
	require.NoError(t, err)
	basic, err := s.Summary(PresetBasic, w)
	require.NoError(t, err)
	dutch, err := s.Summary(PresetDutch, w)
	require.NoError(t, err)

	assert.Len(t, all.Rows, len(basic.Rows)+len(dutch.Rows))

	for _, named := range [][]Row{basic.Rows, dutch.Rows} {
		for _, row := range named {
			value, ok := all.Get(row.Label)
			require.True(t, ok, "summary(all) missing row %q", row.Label)
			assertSameValue(t, row.Value, value, row.Label)
		}
	}
}

func TestSummary_SortedByLabel(t *testing.T) {
	s := reportModel()

	basic, err := s.Summary(PresetBasic, core.Window{})
	require.NoError(t, err)
	require.NotEmpty(t, basic.Rows)

	for i := 1; i < len(basic.Rows); i++ {
		assert.LessOrEqual(t, basic.Rows[i-1].Label, basic.Rows[i].Label,
			"summary rows must be sorted by label")
	}
	assert.False(t, basic.ID.String() == "", "report must carry an ID")
}

func TestSummary_UnknownPreset(t *testing.T) {
	s := reportModel()
	_, err := s.Summary("fancy", core.Window{})
	assert.ErrorIs(t, err, core.ErrUnknownPreset)
}

func TestMany_MatchesIndependentCalls(t *testing.T) {
	s := reportModel()
	w := core.Window{}

	row, err := s.Many(w, []Op{OpEVP, OpRMSE})
	require.NoError(t, err)
	require.Len(t, row, 2)
	assert.Equal(t, OpEVP, row[0].Op)
	assert.Equal(t, OpRMSE, row[1].Op)

	evp, err := s.EVP(w)
	require.NoError(t, err)
	rmse, err := s.RMSE(w)
	require.NoError(t, err)
	assertSameValue(t, evp, row[0].Value, "evp")
	assertSameValue(t, rmse, row[1].Value, "rmse")
}

func TestMany_DefaultSelection(t *testing.T) {
	s := reportModel()

	row, err := s.Many(core.Window{}, nil)
	require.NoError(t, err)

	got := make([]Op, len(row))
	for i, ov := range row {
		got[i] = ov.Op
	}
	assert.Equal(t, []Op{OpEVP, OpRMSE, OpRMSI, OpDurbinWatson}, got)
}

func TestMany_UnknownStatistic(t *testing.T) {
	s := reportModel()
	_, err := s.Many(core.Window{}, []Op{OpRMSE, "nash_sutcliffe"})
	assert.ErrorIs(t, err, core.ErrUnknownStatistic)
}

func TestAll_CanonicalOps(t *testing.T) {
	s := reportModel()

	values, err := s.All(core.Window{})
	require.NoError(t, err)

	ops := s.Ops()
	assert.Len(t, ops, 9)
	assert.Len(t, values, len(ops))
	for op := range ops {
		_, ok := values[op]
		assert.True(t, ok, "All() missing canonical op %s", op)
	}
}

func TestLabel(t *testing.T) {
	s := reportModel()

	label, err := s.Label(OpRMSE)
	require.NoError(t, err)
	assert.Equal(t, "Root mean squared error", label)

	_, err = s.Label("bogus")
	assert.ErrorIs(t, err, core.ErrUnknownStatistic)
}

// assertSameValue compares statistic values, treating two NaNs as equal
func assertSameValue(t *testing.T, want, got float64, label string) {
	t.Helper()
	if want != got && !(want != want && got != got) {
		t.Errorf("%s: got %v, want %v", label, got, want)
	}
}
