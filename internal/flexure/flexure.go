// Package flexure designs beam reinforcement for factored moments using the
// IS 456:2000 limit state method.
package flexure

import (
	"fmt"
	"math"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
)

// Class identifies the flexural behaviour of a designed section.
type Class string

const (
	SinglyReinforced  Class = "singly-reinforced"
	DoublyReinforced  Class = "doubly-reinforced"
	FlangedNAInFlange Class = "flanged-na-in-flange"
	FlangedNAInWeb    Class = "flanged-na-in-web"
)

// Result holds the outcome of one flexure design call. All fields are
// populated on every call; quantities that do not apply to the
// classification are zero, never omitted.
type Result struct {
	Class Class `json:"class"`

	// Moments (kN·m)
	Mu    float64 `json:"mu"`
	MuLim float64 `json:"mu_lim"` // limiting moment of resistance

	// Neutral axis (mm)
	Xu    float64 `json:"xu"`
	XuMax float64 `json:"xu_max"`

	// Reinforcement (mm²)
	AstRequired float64 `json:"ast_required"`
	AscRequired float64 `json:"asc_required"` // zero when singly reinforced
	AstMin      float64 `json:"ast_min"`      // 0.85 b d / fy
	AstMax      float64 `json:"ast_max"`      // 0.04 b D

	// Compression steel diagnostics (zero when singly reinforced)
	Fsc       float64 `json:"fsc"`        // stress from the design curve (N/mm²)
	EpsilonSc float64 `json:"epsilon_sc"` // strain at the compression steel level

	// MinimumGoverns is set when the code minimum exceeds the computed
	// steel demand and AstRequired was raised to the minimum.
	MinimumGoverns bool `json:"minimum_governs"`

	Adequate bool     `json:"adequate"`
	Reasons  []string `json:"reasons"`
}

// OverReinforcedError reports a compression steel arrangement the limit
// strain diagram cannot accommodate (d' at or beyond the limiting neutral
// axis).
type OverReinforcedError struct {
	CompSteelDepth float64
	XuMax          float64
}

func (e *OverReinforcedError) Error() string {
	return fmt.Sprintf("over-reinforced beyond limit: compression steel depth %.2f mm is not inside the limiting neutral axis depth %.2f mm", e.CompSteelDepth, e.XuMax)
}

// Design computes the required reinforcement for a factored moment mu (kN·m).
// Geometry and material violations return hard errors; a section that merely
// exceeds the tension steel cap returns a Result with Adequate=false.
func Design(sec section.Section, mat section.Materials, mu float64) (*Result, error) {
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if mu < 0 {
		return nil, &is456.RangeError{Field: "factored moment", Value: mu, Allowed: "Mu >= 0"}
	}

	ratio, err := is456.XuMaxRatio(mat.Steel)
	if err != nil {
		return nil, err
	}
	xuMax := ratio * sec.EffectiveDepth

	r := &Result{
		Mu:     mu,
		XuMax:  xuMax,
		AstMin: 0.85 * sec.Width * sec.EffectiveDepth / mat.Steel.Fy(),
		AstMax: 0.04 * sec.Width * sec.Depth,
	}

	if sec.Flanged() {
		err = designFlanged(r, sec, mat, xuMax)
	} else {
		err = designRectangular(r, sec, mat, xuMax)
	}
	if err != nil {
		return nil, err
	}

	if r.AstRequired < r.AstMin {
		r.AstRequired = r.AstMin
		r.MinimumGoverns = true
	}

	r.Adequate = true
	if r.AstRequired > r.AstMax {
		r.Adequate = false
		r.Reasons = append(r.Reasons, fmt.Sprintf("flexure: Ast>Ast,max (required %.1f mm² > %.1f mm²)", r.AstRequired, r.AstMax))
	}
	return r, nil
}

// limitingMoment returns Mu,lim in N·mm for a rectangular compression zone
// of width b and neutral axis depth xu.
func limitingMoment(fck, b, xu, d float64) float64 {
	return is456.StressBlockForce * fck * b * xu * (d - is456.StressBlockLever*xu)
}

// smallerRoot solves a·x² + b·x + c = 0 for the smaller real root.
func smallerRoot(a, b, c float64) (float64, bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	return (-b - math.Sqrt(disc)) / (2 * a), true
}

// compressionSteel resolves the compression steel for an excess moment
// mu2 (N·mm) carried by the steel couple across the lever arm d-d'. The
// stress comes from the design stress-strain curve, not a linear elastic
// estimate, which overestimates stress in cold-worked bars.
func compressionSteel(r *Result, sec section.Section, mat section.Materials, mu2 float64) (asc, ast2 float64, err error) {
	dc := sec.CompSteelDepth
	if dc <= 0 {
		return 0, 0, section.NewGeometryError("compression steel depth (d') is required for a doubly reinforced design")
	}
	epsSc := is456.EpsilonCU * (1 - dc/r.XuMax)
	if epsSc <= 0 {
		return 0, 0, &OverReinforcedError{CompSteelDepth: dc, XuMax: r.XuMax}
	}
	fsc, err := is456.StressAtStrain(mat.Steel, epsSc)
	if err != nil {
		return 0, 0, err
	}
	fcc := is456.FlangeStress * mat.Concrete.Fck() // concrete displaced by the bars
	lever := sec.EffectiveDepth - dc

	r.EpsilonSc = epsSc
	r.Fsc = fsc
	asc = mu2 / ((fsc - fcc) * lever)
	ast2 = asc * (fsc - fcc) / mat.Steel.Fd()
	return asc, ast2, nil
}
