// Package compliance runs flexure and shear checks across ordered load
// cases and aggregates them into a single governing verdict.
package compliance

import (
	"fmt"

	"github.com/structcalc/isbeam/internal/flexure"
	"github.com/structcalc/isbeam/internal/section"
	"github.com/structcalc/isbeam/internal/shear"
)

// Options configures a compliance check. All behaviour is explicit; there
// is no package-level default state.
type Options struct {
	Stirrup shear.Stirrup `json:"stirrup"`

	// TensionSteelRatio is the provided tension steel percentage used for
	// the τc lookup. When zero, the ratio implied by each case's required
	// steel is used as the converged assumption.
	TensionSteelRatio float64 `json:"tension_steel_ratio,omitempty"`
}

// CaseResult pairs one load case with its flexure and shear outcomes.
type CaseResult struct {
	Case        section.DesignCase `json:"case"`
	Flexure     *flexure.Result    `json:"flexure"`
	Shear       *shear.Result      `json:"shear"`
	Utilization float64            `json:"utilization"`
	Pass        bool               `json:"pass"`
	Reasons     []string           `json:"reasons"`
	Err         string             `json:"err,omitempty"` // hard error local to this case
}

// Report is the aggregated verdict for one section over all cases.
type Report struct {
	Cases         []CaseResult `json:"cases"`
	GoverningCase string       `json:"governing_case"`
	Utilization   float64      `json:"utilization"`
	Pass          bool         `json:"pass"`
	Reasons       []string     `json:"reasons"`
}

// Check designs every case against the section and picks the governing one:
// the highest-utilization failing case, or, when all pass, the highest
// utilization overall. Ties keep the earlier case. Cases are independent;
// no case observes another's intermediate state.
func Check(sec section.Section, mat section.Materials, cases []section.DesignCase, opts Options) (*Report, error) {
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no load cases given")
	}

	report := &Report{Pass: true}

	for _, dc := range cases {
		cr := runCase(sec, mat, dc, opts)
		if !cr.Pass {
			report.Pass = false
		}
		report.Cases = append(report.Cases, cr)
	}

	// Governing case: highest utilization among failing cases, or overall
	// when every case passes. A strict comparison keeps the earlier case on
	// ties.
	governing := -1
	for i, cr := range report.Cases {
		if !report.Pass && cr.Pass {
			continue
		}
		if governing < 0 || cr.Utilization > report.Cases[governing].Utilization {
			governing = i
		}
	}

	g := report.Cases[governing]
	report.GoverningCase = g.Case.ID
	report.Utilization = g.Utilization
	for _, cr := range report.Cases {
		if !cr.Pass {
			for _, reason := range cr.Reasons {
				report.Reasons = append(report.Reasons, fmt.Sprintf("case %s: %s", cr.Case.ID, reason))
			}
		}
	}
	return report, nil
}

func runCase(sec section.Section, mat section.Materials, dc section.DesignCase, opts Options) CaseResult {
	cr := CaseResult{Case: dc, Pass: true}

	fr, err := flexure.Design(sec, mat, dc.Mu)
	if err != nil {
		cr.Pass = false
		cr.Err = err.Error()
		cr.Reasons = append(cr.Reasons, "flexure: "+err.Error())
		return cr
	}
	cr.Flexure = fr
	if !fr.Adequate {
		cr.Pass = false
		cr.Reasons = append(cr.Reasons, fr.Reasons...)
	}

	pt := opts.TensionSteelRatio
	if pt == 0 {
		// assume the provided steel converges to the required area
		pt = 100 * fr.AstRequired / (sec.Width * sec.EffectiveDepth)
	}

	sr, err := shear.Design(sec, mat, dc.Vu, pt, opts.Stirrup)
	if err != nil {
		cr.Pass = false
		cr.Err = err.Error()
		cr.Reasons = append(cr.Reasons, "shear: "+err.Error())
		return cr
	}
	cr.Shear = sr
	if !sr.Adequate {
		cr.Pass = false
		cr.Reasons = append(cr.Reasons, sr.Reasons...)
	}

	cr.Utilization = utilization(fr, sr)
	return cr
}

// utilization is the worst demand/capacity ratio across the checks: tension
// steel demand against the 0.04·b·D cap, and nominal shear stress against
// τc,max.
func utilization(fr *flexure.Result, sr *shear.Result) float64 {
	u := 0.0
	if fr.AstMax > 0 {
		u = fr.AstRequired / fr.AstMax
	}
	if sr.TauCMax > 0 {
		if s := sr.TauV / sr.TauCMax; s > u {
			u = s
		}
	}
	return u
}
