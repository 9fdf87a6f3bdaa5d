package section

import (
	"fmt"

	"github.com/structcalc/isbeam/internal/is456"
)

// Section describes a rectangular or flanged (T/L) beam cross section.
// All dimensions are in mm. For flanged sections Width is the web width and
// FlangeWidth/FlangeDepth describe the flange; both are zero for
// rectangular sections.
type Section struct {
	Width          float64 `json:"width"`                      // b (web width bw for flanged)
	Depth          float64 `json:"depth"`                      // D - overall depth
	EffectiveDepth float64 `json:"effective_depth"`            // d - to centroid of tension steel
	CompSteelDepth float64 `json:"comp_steel_depth,omitempty"` // d' - to centroid of compression steel
	FlangeWidth    float64 `json:"flange_width,omitempty"`     // bf
	FlangeDepth    float64 `json:"flange_depth,omitempty"`     // Df
}

// Flanged reports whether the section has a flange.
func (s Section) Flanged() bool { return s.FlangeWidth > 0 || s.FlangeDepth > 0 }

// Validate checks the section for internally consistent dimensions.
func (s Section) Validate() error {
	if s.Width <= 0 {
		return &GeometryError{fmt.Sprintf("width must be positive, got %.2f", s.Width)}
	}
	if s.Depth <= 0 {
		return &GeometryError{fmt.Sprintf("overall depth must be positive, got %.2f", s.Depth)}
	}
	if s.EffectiveDepth <= 0 {
		return &GeometryError{fmt.Sprintf("effective depth must be positive, got %.2f", s.EffectiveDepth)}
	}
	if s.EffectiveDepth >= s.Depth {
		return &GeometryError{fmt.Sprintf("effective depth (%.2f) must be less than overall depth (%.2f)", s.EffectiveDepth, s.Depth)}
	}
	if s.CompSteelDepth < 0 || (s.CompSteelDepth > 0 && s.CompSteelDepth >= s.EffectiveDepth) {
		return &GeometryError{fmt.Sprintf("compression steel depth (%.2f) must lie between zero and the effective depth (%.2f)", s.CompSteelDepth, s.EffectiveDepth)}
	}
	if s.Flanged() {
		if s.FlangeWidth < s.Width {
			return &GeometryError{fmt.Sprintf("flange width (%.2f) must not be less than web width (%.2f)", s.FlangeWidth, s.Width)}
		}
		if s.FlangeDepth <= 0 {
			return &GeometryError{fmt.Sprintf("flange depth must be positive, got %.2f", s.FlangeDepth)}
		}
		if s.FlangeDepth >= s.Depth {
			return &GeometryError{fmt.Sprintf("flange depth (%.2f) must be less than overall depth (%.2f)", s.FlangeDepth, s.Depth)}
		}
	}
	return nil
}

// Materials holds the concrete and steel grades for a design call.
type Materials struct {
	Concrete is456.ConcreteGrade `json:"concrete_grade"`
	Steel    is456.SteelGrade    `json:"steel_grade"`
}

// Validate rejects grades outside the supported enumerations.
func (m Materials) Validate() error {
	if !m.Concrete.Valid() {
		return &is456.RangeError{Field: "concrete grade", Value: float64(m.Concrete), Allowed: "M15, M20, M25, M30, M35, M40"}
	}
	if !m.Steel.Valid() {
		return &is456.RangeError{Field: "steel grade", Value: float64(m.Steel), Allowed: "Fe250, Fe415, Fe500"}
	}
	return nil
}

// DesignCase is one factored load case. Cases are immutable value objects
// created by the caller; the engine never mutates them.
type DesignCase struct {
	ID string  `json:"id"`
	Mu float64 `json:"mu"` // factored moment (kN·m)
	Vu float64 `json:"vu"` // factored shear (kN)
}
