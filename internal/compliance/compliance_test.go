package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
	"github.com/structcalc/isbeam/internal/shear"
)

func checkInputs() (section.Section, section.Materials, Options) {
	sec := section.Section{Width: 230, Depth: 500, EffectiveDepth: 450}
	mat := section.Materials{Concrete: is456.M20, Steel: is456.Fe415}
	opts := Options{Stirrup: shear.Stirrup{Area: 100, Steel: is456.Fe415}}
	return sec, mat, opts
}

func TestCheckAllPassGoverningByUtilization(t *testing.T) {
	sec, mat, opts := checkInputs()
	cases := []section.DesignCase{
		{ID: "gravity", Mu: 80, Vu: 80},
		{ID: "wind", Mu: 100, Vu: 150},
	}
	report, err := Check(sec, mat, cases, opts)
	require.NoError(t, err)

	assert.True(t, report.Pass)
	assert.Empty(t, report.Reasons)
	require.Len(t, report.Cases, 2)
	assert.Equal(t, "wind", report.GoverningCase, "the heavier case governs")
	assert.Equal(t, report.Cases[1].Utilization, report.Utilization)
	assert.Greater(t, report.Cases[1].Utilization, report.Cases[0].Utilization)
}

func TestCheckFailingCaseGoverns(t *testing.T) {
	sec, mat, opts := checkInputs()
	cases := []section.DesignCase{
		{ID: "service", Mu: 100, Vu: 150},
		{ID: "seismic", Mu: 100, Vu: 320}, // τv > τc,max
	}
	report, err := Check(sec, mat, cases, opts)
	require.NoError(t, err)

	assert.False(t, report.Pass)
	assert.Equal(t, "seismic", report.GoverningCase)
	assert.True(t, report.Cases[0].Pass)
	assert.False(t, report.Cases[1].Pass)
	require.NotEmpty(t, report.Reasons)
	assert.Contains(t, report.Reasons[0], "case seismic:")
	assert.Contains(t, report.Reasons[0], "τv>τc,max")
}

func TestCheckTieKeepsEarlierCase(t *testing.T) {
	sec, mat, opts := checkInputs()
	cases := []section.DesignCase{
		{ID: "first", Mu: 100, Vu: 150},
		{ID: "twin", Mu: 100, Vu: 150},
	}
	report, err := Check(sec, mat, cases, opts)
	require.NoError(t, err)
	assert.Equal(t, "first", report.GoverningCase)
}

func TestCheckCaseErrorIsIsolated(t *testing.T) {
	sec, mat, opts := checkInputs()
	cases := []section.DesignCase{
		{ID: "bad", Mu: -10, Vu: 50},
		{ID: "good", Mu: 100, Vu: 150},
	}
	report, err := Check(sec, mat, cases, opts)
	require.NoError(t, err, "a case-local error must not fail the whole check")

	assert.False(t, report.Pass)
	assert.NotEmpty(t, report.Cases[0].Err)
	assert.False(t, report.Cases[0].Pass)
	assert.True(t, report.Cases[1].Pass)
	assert.Equal(t, "bad", report.GoverningCase)
}

func TestCheckExplicitSteelRatio(t *testing.T) {
	sec, mat, opts := checkInputs()
	opts.TensionSteelRatio = 1.0
	cases := []section.DesignCase{{ID: "c1", Mu: 100, Vu: 150}}
	report, err := Check(sec, mat, cases, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.62, report.Cases[0].Shear.TauC, 1e-9)
}

func TestCheckRejectsBadInputs(t *testing.T) {
	sec, mat, opts := checkInputs()

	_, err := Check(sec, mat, nil, opts)
	require.Error(t, err)

	bad := sec
	bad.EffectiveDepth = sec.Depth
	var geomErr *section.GeometryError
	_, err = Check(bad, mat, []section.DesignCase{{ID: "c", Mu: 50, Vu: 50}}, opts)
	require.ErrorAs(t, err, &geomErr)
}
