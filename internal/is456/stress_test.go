package is456

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStressAtStrainElasticRange(t *testing.T) {
	// Below 0.8 fd the curve is linear elastic for every grade.
	got, err := StressAtStrain(Fe415, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 0.001*Es, got, 1e-6)

	got, err = StressAtStrain(Fe250, 0.0005)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got, 1e-6)
}

func TestStressAtStrainInelasticInterpolation(t *testing.T) {
	// Fe500 strain between the 0.90 fd and 0.95 fd breakpoints. The exact
	// value is what the doubly reinforced benchmark depends on.
	got, err := StressAtStrain(Fe500, 0.00265459)
	require.NoError(t, err)
	assert.InDelta(t, 408.46, got, 0.05)
}

func TestStressAtStrainClampsAtYield(t *testing.T) {
	fd := Fe415.Fd()
	got, err := StressAtStrain(Fe415, 0.01)
	require.NoError(t, err)
	assert.Equal(t, fd, got, "stress never extrapolates beyond 0.87 fy")

	got, err = StressAtStrain(Fe250, 0.02)
	require.NoError(t, err)
	assert.Equal(t, Fe250.Fd(), got)
}

func TestStressAtStrainMildSteelBilinear(t *testing.T) {
	fd := Fe250.Fd()
	yield := fd / Es
	got, err := StressAtStrain(Fe250, yield)
	require.NoError(t, err)
	assert.InDelta(t, fd, got, 1e-9)

	got, err = StressAtStrain(Fe250, yield/2)
	require.NoError(t, err)
	assert.InDelta(t, fd/2, got, 1e-9)
}

func TestStressAtStrainRejectsUnknownGrade(t *testing.T) {
	_, err := StressAtStrain(SteelGrade(550), 0.002)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestYieldStrain(t *testing.T) {
	assert.InDelta(t, 0.0038053, YieldStrain(Fe415), 1e-6)
	assert.InDelta(t, 0.0041750, YieldStrain(Fe500), 1e-6)
	assert.InDelta(t, Fe250.Fd()/Es, YieldStrain(Fe250), 1e-12)
}
