package flexure

import (
	"math"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
)

// CapacityResult holds the moment capacity of a rectangular section with
// provided reinforcement.
type CapacityResult struct {
	Mu    float64 `json:"mu"`     // design moment capacity (kN·m)
	Xu    float64 `json:"xu"`     // neutral axis depth (mm)
	XuMax float64 `json:"xu_max"` // limiting neutral axis depth (mm)

	Fsc       float64 `json:"fsc"`        // compression steel stress (N/mm²), zero if none
	EpsilonSc float64 `json:"epsilon_sc"` // compression steel strain, zero if none

	// OverReinforced is set when the provided steel pushes the neutral axis
	// beyond xu,max; the capacity is then reported at xu,max.
	OverReinforced bool `json:"over_reinforced"`
}

// Capacity computes the ultimate moment capacity of a rectangular section
// with provided tension steel ast and optional compression steel asc (mm²).
func Capacity(sec section.Section, mat section.Materials, ast, asc float64) (*CapacityResult, error) {
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if sec.Flanged() {
		return nil, section.NewGeometryError("capacity analysis supports rectangular sections only")
	}
	if ast <= 0 {
		return nil, &is456.RangeError{Field: "tension steel area", Value: ast, Allowed: "Ast > 0"}
	}
	if asc < 0 {
		return nil, &is456.RangeError{Field: "compression steel area", Value: asc, Allowed: "Asc >= 0"}
	}
	if asc > 0 && sec.CompSteelDepth <= 0 {
		return nil, section.NewGeometryError("compression steel depth (d') is required when Asc is provided")
	}

	ratio, err := is456.XuMaxRatio(mat.Steel)
	if err != nil {
		return nil, err
	}
	fck := mat.Concrete.Fck()
	fd := mat.Steel.Fd()
	b := sec.Width
	d := sec.EffectiveDepth
	dc := sec.CompSteelDepth

	r := &CapacityResult{XuMax: ratio * d}

	// Tension force assuming the steel reaches its design stress; under- and
	// normally-reinforced beams satisfy this at ultimate.
	xu := fd * ast / (is456.StressBlockForce * fck * b)
	fcc := is456.FlangeStress * fck
	var fsc float64

	if asc > 0 {
		// The compression steel stress depends on xu, which depends on the
		// stress: damped fixed-point iteration on force equilibrium.
		for i := 0; i < 50; i++ {
			epsSc := is456.EpsilonCU * (1 - dc/xu)
			if epsSc < 0 {
				epsSc = 0
			}
			fsc, err = is456.StressAtStrain(mat.Steel, epsSc)
			if err != nil {
				return nil, err
			}
			next := (fd*ast - (fsc-fcc)*asc) / (is456.StressBlockForce * fck * b)
			if next < 1 {
				next = 1
			}
			if math.Abs(next-xu) < 1e-6 {
				xu = next
				break
			}
			xu = (xu + next) / 2
		}
		r.EpsilonSc = is456.EpsilonCU * (1 - dc/xu)
		r.Fsc = fsc
	}

	if xu > r.XuMax {
		r.OverReinforced = true
		xu = r.XuMax
	}
	r.Xu = xu

	mu := limitingMoment(fck, b, xu, d)
	if asc > 0 {
		mu += (fsc - fcc) * asc * (d - dc)
	}
	r.Mu = mu / 1e6
	return r, nil
}
