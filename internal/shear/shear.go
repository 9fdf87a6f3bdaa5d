// Package shear designs vertical stirrups for factored shear forces per
// IS 456:2000 Cl. 40.
package shear

import (
	"fmt"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
)

// Spacing caps of Cl. 26.5.1.5 for vertical stirrups.
const (
	maxSpacingRatio = 0.75  // of effective depth
	maxSpacingAbs   = 300.0 // mm
)

// Stirrup describes the stirrup arrangement assumed for spacing design.
// There are no implicit defaults; callers supply every field.
type Stirrup struct {
	Area  float64          `json:"area"`  // total area of all legs, Asv (mm²)
	Steel is456.SteelGrade `json:"steel"` // stirrup steel grade
}

func (s Stirrup) validate() error {
	if s.Area <= 0 {
		return &is456.RangeError{Field: "stirrup area", Value: s.Area, Allowed: "Asv > 0"}
	}
	if !s.Steel.Valid() {
		return &is456.RangeError{Field: "stirrup steel grade", Value: float64(s.Steel), Allowed: "Fe250, Fe415, Fe500"}
	}
	return nil
}

// SpacingLimit names the constraint that produced the reported spacing.
type SpacingLimit string

const (
	LimitCapacity SpacingLimit = "stirrup-capacity"
	LimitDepth    SpacingLimit = "0.75d"
	LimitAbsolute SpacingLimit = "300mm"
	LimitMinimum  SpacingLimit = "minimum-stirrups"
)

// Result holds the outcome of one shear design call. Every field reports on
// every call; Spacing is zero only when the section is inadequate.
type Result struct {
	// Stresses (N/mm²)
	TauV    float64 `json:"tau_v"`     // nominal shear stress Vu/(b·d)
	TauC    float64 `json:"tau_c"`     // design shear strength of concrete
	TauCMax float64 `json:"tau_c_max"` // ceiling no stirrups can raise

	Vus float64 `json:"vus"` // shear carried by stirrups (kN), zero when minimum governs

	Spacing float64      `json:"spacing"` // governing stirrup spacing (mm)
	Governs SpacingLimit `json:"governs"` // which limit set the spacing

	// MinimumStirrups is set when τv <= τc and only the minimum web
	// reinforcement rule applies.
	MinimumStirrups bool `json:"minimum_stirrups"`

	// SectionInadequate is set when τv exceeds τc,max: fatal for the case,
	// no stirrup spacing can remedy it.
	SectionInadequate bool `json:"section_inadequate"`

	Adequate bool     `json:"adequate"`
	Reasons  []string `json:"reasons"`
}

// Design computes the stirrup spacing for a factored shear vu (kN) given the
// provided tension steel percentage pt = 100·Ast/(b·d). pt must reflect the
// bars actually provided, not the required area, since τc depends on the
// chosen layout.
func Design(sec section.Section, mat section.Materials, vu, pt float64, st Stirrup) (*Result, error) {
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if err := st.validate(); err != nil {
		return nil, err
	}
	if vu < 0 {
		return nil, &is456.RangeError{Field: "factored shear", Value: vu, Allowed: "Vu >= 0"}
	}
	if pt < 0 {
		return nil, &is456.RangeError{Field: "tension steel percentage", Value: pt, Allowed: "pt >= 0"}
	}

	b := sec.Width // web width resists shear in flanged sections
	d := sec.EffectiveDepth

	tauC, err := is456.TauC(mat.Concrete, pt)
	if err != nil {
		return nil, err
	}
	tauCMax, err := is456.TauCMax(mat.Concrete)
	if err != nil {
		return nil, err
	}

	r := &Result{
		TauV:    vu * 1e3 / (b * d),
		TauC:    tauC,
		TauCMax: tauCMax,
	}

	if r.TauV > tauCMax {
		r.SectionInadequate = true
		r.Adequate = false
		r.Reasons = append(r.Reasons, fmt.Sprintf("shear: τv>τc,max (τv=%.3f N/mm² > τc,max=%.3f N/mm²)", r.TauV, tauCMax))
		return r, nil
	}

	fd := st.Steel.Fd()
	var solved float64
	if r.TauV <= tauC {
		// Concrete alone carries the shear; minimum web reinforcement
		// (Cl. 26.5.1.6) sets the spacing.
		r.MinimumStirrups = true
		solved = fd * st.Area / (0.4 * b)
		r.Governs = LimitMinimum
	} else {
		vusN := (r.TauV - tauC) * b * d
		r.Vus = vusN / 1e3
		solved = fd * st.Area * d / vusN
		r.Governs = LimitCapacity
	}

	r.Spacing = solved
	if depthCap := maxSpacingRatio * d; depthCap < r.Spacing {
		r.Spacing = depthCap
		r.Governs = LimitDepth
	}
	if maxSpacingAbs < r.Spacing {
		r.Spacing = maxSpacingAbs
		r.Governs = LimitAbsolute
	}

	r.Adequate = true
	return r, nil
}
