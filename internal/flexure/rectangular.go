package flexure

import (
	"fmt"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
)

// designRectangular fills the result for a rectangular section. A moment at
// or below the limiting moment is singly reinforced: the comparison is
// non-strict so the boundary case never demands compression steel.
func designRectangular(r *Result, sec section.Section, mat section.Materials, xuMax float64) error {
	fck := mat.Concrete.Fck()
	b := sec.Width
	d := sec.EffectiveDepth

	muLimNmm := limitingMoment(fck, b, xuMax, d)
	r.MuLim = muLimNmm / 1e6
	muNmm := r.Mu * 1e6

	if muNmm <= muLimNmm {
		r.Class = SinglyReinforced
		ast, xu, err := solveSinglyAst(fck, mat.Steel.Fy(), b, d, muNmm)
		if err != nil {
			return err
		}
		r.AstRequired = ast
		r.Xu = xu
		return nil
	}

	// Doubly reinforced: the concrete block works at xu,max and the excess
	// moment goes to the steel couple.
	r.Class = DoublyReinforced
	r.Xu = xuMax

	asc, ast2, err := compressionSteel(r, sec, mat, muNmm-muLimNmm)
	if err != nil {
		return err
	}
	astLim := is456.StressBlockForce * fck * b * xuMax / mat.Steel.Fd()
	r.AscRequired = asc
	r.AstRequired = astLim + ast2
	return nil
}

// solveSinglyAst solves the moment equilibrium quadratic
//
//	Mu = 0.36 fck b xu (d - 0.42 xu)
//
// for the smaller (physically valid) neutral axis root and derives the
// tension steel from force equilibrium, so the stress block is the same one
// the limiting moment and the capacity analysis use.
func solveSinglyAst(fck, fy, b, d, muNmm float64) (ast, xu float64, err error) {
	if muNmm == 0 {
		return 0, 0, nil
	}
	qa := is456.StressBlockForce * is456.StressBlockLever * fck * b
	qb := -is456.StressBlockForce * fck * b * d
	xu, ok := smallerRoot(qa, qb, muNmm)
	if !ok || xu <= 0 {
		return 0, 0, fmt.Errorf("no physically valid neutral axis root for Mu=%.2f kN·m", muNmm/1e6)
	}
	ast = is456.StressBlockForce * fck * b * xu / (is456.SteelDesignFactor * fy)
	return ast, xu, nil
}
