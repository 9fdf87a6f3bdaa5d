package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/isbeam/internal/is456"
)

func validSection() Section {
	return Section{Width: 230, Depth: 500, EffectiveDepth: 450}
}

func TestSectionValidate(t *testing.T) {
	require.NoError(t, validSection().Validate())
}

func TestSectionValidateRejectsInconsistentDepths(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Section)
	}{
		{"zero width", func(s *Section) { s.Width = 0 }},
		{"effective depth equals overall depth", func(s *Section) { s.EffectiveDepth = s.Depth }},
		{"effective depth exceeds overall depth", func(s *Section) { s.EffectiveDepth = s.Depth + 10 }},
		{"compression depth beyond effective depth", func(s *Section) { s.CompSteelDepth = 460 }},
		{"negative compression depth", func(s *Section) { s.CompSteelDepth = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSection()
			tt.mutate(&s)
			var geomErr *GeometryError
			require.ErrorAs(t, s.Validate(), &geomErr)
		})
	}
}

func TestFlangedSectionValidate(t *testing.T) {
	s := Section{Width: 250, Depth: 550, EffectiveDepth: 500, FlangeWidth: 1000, FlangeDepth: 100}
	require.NoError(t, s.Validate())
	assert.True(t, s.Flanged())

	var geomErr *GeometryError

	narrow := s
	narrow.FlangeWidth = 200 // narrower than the web
	require.ErrorAs(t, narrow.Validate(), &geomErr)

	deep := s
	deep.FlangeDepth = 550 // flange as deep as the section
	require.ErrorAs(t, deep.Validate(), &geomErr)
}

func TestMaterialsValidate(t *testing.T) {
	require.NoError(t, Materials{Concrete: is456.M20, Steel: is456.Fe415}.Validate())

	var rangeErr *is456.RangeError
	require.ErrorAs(t, Materials{Concrete: is456.ConcreteGrade(22), Steel: is456.Fe415}.Validate(), &rangeErr)
	require.ErrorAs(t, Materials{Concrete: is456.M20, Steel: is456.SteelGrade(550)}.Validate(), &rangeErr)
}

func TestJobValidate(t *testing.T) {
	job := Job{
		Name:      "B-1",
		Section:   validSection(),
		Materials: Materials{Concrete: is456.M20, Steel: is456.Fe415},
		Cases:     []DesignCase{{ID: "DL+LL", Mu: 100, Vu: 120}},
	}
	require.NoError(t, job.Validate())

	job.Cases = nil
	require.Error(t, job.Validate())
}
