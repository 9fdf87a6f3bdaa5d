package shear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
)

func bench() (section.Section, section.Materials, Stirrup) {
	sec := section.Section{Width: 230, Depth: 500, EffectiveDepth: 450}
	mat := section.Materials{Concrete: is456.M20, Steel: is456.Fe415}
	st := Stirrup{Area: 100, Steel: is456.Fe415} // 2-legged 8 mm
	return sec, mat, st
}

func TestDesignCapacityGovernedBenchmark(t *testing.T) {
	sec, mat, st := bench()
	r, err := Design(sec, mat, 150, 1.0, st)
	require.NoError(t, err)

	assert.InDelta(t, 1.449, r.TauV, 0.001)
	assert.InDelta(t, 0.62, r.TauC, 1e-9) // Table 19, M20 at 1.0%
	assert.InDelta(t, 2.8, r.TauCMax, 1e-9)
	assert.Equal(t, LimitCapacity, r.Governs)
	assert.InDelta(t, 189.3, r.Spacing, 0.2)
	assert.False(t, r.MinimumStirrups)
	assert.False(t, r.SectionInadequate)
	assert.True(t, r.Adequate)
}

func TestDesignSectionInadequate(t *testing.T) {
	sec, mat, st := bench()
	r, err := Design(sec, mat, 320, 1.0, st) // τv ≈ 3.09 > 2.8
	require.NoError(t, err)

	assert.True(t, r.SectionInadequate)
	assert.False(t, r.Adequate)
	assert.Zero(t, r.Spacing)
	require.NotEmpty(t, r.Reasons)
	assert.Contains(t, r.Reasons[0], "τv>τc,max")
}

func TestDesignMinimumStirrups(t *testing.T) {
	sec, mat, st := bench()
	r, err := Design(sec, mat, 40, 1.0, st) // τv ≈ 0.386 <= τc
	require.NoError(t, err)

	assert.True(t, r.MinimumStirrups)
	assert.Zero(t, r.Vus)
	// 0.87·415·100/(0.4·230) ≈ 392 mm, clamped by the 300 mm cap.
	assert.Equal(t, 300.0, r.Spacing)
	assert.Equal(t, LimitAbsolute, r.Governs)
	assert.True(t, r.Adequate)
}

func TestDesignDepthCapGoverns(t *testing.T) {
	// Shallow section: 0.75·d bites before the 300 mm cap.
	sec := section.Section{Width: 300, Depth: 350, EffectiveDepth: 300}
	mat := section.Materials{Concrete: is456.M25, Steel: is456.Fe415}
	st := Stirrup{Area: 157, Steel: is456.Fe415} // 2-legged 10 mm
	r, err := Design(sec, mat, 30, 0.5, st)
	require.NoError(t, err)

	assert.True(t, r.MinimumStirrups)
	assert.Equal(t, 0.75*300, r.Spacing)
	assert.Equal(t, LimitDepth, r.Governs)
}

func TestDesignSpacingDecreasesWithShear(t *testing.T) {
	sec, mat, st := bench()
	prev := 1e9
	for _, vu := range []float64{120, 150, 180, 220, 260} {
		r, err := Design(sec, mat, vu, 1.0, st)
		require.NoError(t, err)
		require.True(t, r.Adequate, "Vu=%.0f", vu)
		assert.Less(t, r.Spacing, prev, "Vu=%.0f", vu)
		prev = r.Spacing
	}
}

func TestDesignHigherSteelRatioRaisesTauC(t *testing.T) {
	sec, mat, st := bench()
	low, err := Design(sec, mat, 150, 0.5, st)
	require.NoError(t, err)
	high, err := Design(sec, mat, 150, 1.5, st)
	require.NoError(t, err)
	assert.Greater(t, high.TauC, low.TauC)
	assert.Greater(t, high.Spacing, low.Spacing)
}

func TestDesignRejectsInvalidInputs(t *testing.T) {
	sec, mat, st := bench()
	var rangeErr *is456.RangeError

	_, err := Design(sec, mat, -5, 1.0, st)
	require.ErrorAs(t, err, &rangeErr)

	_, err = Design(sec, mat, 150, -0.1, st)
	require.ErrorAs(t, err, &rangeErr)

	_, err = Design(sec, mat, 150, 1.0, Stirrup{Area: 0, Steel: is456.Fe415})
	require.ErrorAs(t, err, &rangeErr)

	_, err = Design(sec, mat, 150, 1.0, Stirrup{Area: 100, Steel: is456.SteelGrade(300)})
	require.ErrorAs(t, err, &rangeErr)
}
