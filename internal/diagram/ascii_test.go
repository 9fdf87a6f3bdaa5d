package diagram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doublyData() SectionData {
	// Compression steel row inside the shaded compression zone, the normal
	// doubly reinforced arrangement.
	return SectionData{
		Width:        300,
		Depth:        500,
		Xu:           207,
		XuMax:        207,
		TensionDepth: 450,
		TensionArea:  1555.5,
		CompDepth:    50,
		CompArea:     296.3,
		EpsilonCU:    0.0035,
		EpsilonSc:    0.00265,
		BlockStress:  9.0,
	}
}

func TestDrawSectionEmitsValidUTF8(t *testing.T) {
	out := DrawSection(doublyData())
	require.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "●──●", "compression steel markers survive the shaded fill")
	assert.Contains(t, out, "●────●")
	assert.Contains(t, out, "N.A.")
}

func TestDrawSectionRowWidthsUniform(t *testing.T) {
	out := DrawSection(doublyData())
	want := -1
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "│")
		if len(parts) != 3 {
			continue
		}
		n := utf8.RuneCountInString(parts[1])
		if want < 0 {
			want = n
		}
		assert.Equal(t, want, n, "every body row spans the same rune width")
	}
	require.GreaterOrEqual(t, want, 0)
}

func TestDrawStrainContents(t *testing.T) {
	out := DrawStrain(doublyData())
	require.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "εcu = 0.0035")
	assert.Contains(t, out, "ε'sc")
}

func TestDrawStrainZeroNeutralAxis(t *testing.T) {
	data := doublyData()
	data.Xu = 0
	data.CompArea = 0

	var out string
	require.NotPanics(t, func() { out = DrawStrain(data) })
	assert.Contains(t, out, "strain diagram omitted")
	require.True(t, utf8.ValidString(out))
}
