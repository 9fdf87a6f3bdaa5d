package flexure

import (
	"fmt"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
)

// designFlanged fills the result for a T/L section per IS 456 Annex G-2.
//
// The decision tree is ordered: first test the moment capacity with the
// neutral axis at the flange/web boundary; only when the applied moment
// exceeds it do the web formulas apply. Reordering these checks changes the
// classification of boundary cases.
func designFlanged(r *Result, sec section.Section, mat section.Materials, xuMax float64) error {
	fck := mat.Concrete.Fck()
	fy := mat.Steel.Fy()
	bw := sec.Width
	bf := sec.FlangeWidth
	df := sec.FlangeDepth
	d := sec.EffectiveDepth
	muNmm := r.Mu * 1e6

	// Capacity with the neutral axis exactly at the underside of the flange.
	muBoundary := limitingMoment(fck, bf, df, d)

	if muNmm <= muBoundary {
		// Neutral axis within the flange: the section behaves as a
		// rectangle of the full flange width.
		r.Class = FlangedNAInFlange
		muLimNmm := limitingMoment(fck, bf, minf(xuMax, df), d)
		r.MuLim = muLimNmm / 1e6
		if muNmm > muLimNmm {
			// xu,max falls inside the flange and the moment exceeds the
			// singly reinforced limit there: steel couple carries the rest.
			r.Xu = xuMax
			asc, ast2, err := compressionSteel(r, sec, mat, muNmm-muLimNmm)
			if err != nil {
				return err
			}
			r.AscRequired = asc
			r.AstRequired = is456.StressBlockForce*fck*bf*xuMax/mat.Steel.Fd() + ast2
			return nil
		}
		ast, xu, err := solveSinglyAst(fck, fy, bf, d, muNmm)
		if err != nil {
			return err
		}
		r.AstRequired = ast
		r.Xu = xu
		return nil
	}

	// Neutral axis in the web.
	r.Class = FlangedNAInWeb
	yfLim := reducedFlangeDepth(xuMax, df)
	muLimNmm := limitingMoment(fck, bw, xuMax, d) + flangeMoment(fck, bf, bw, yfLim, d)
	r.MuLim = muLimNmm / 1e6

	if muNmm <= muLimNmm {
		xu, yf, err := solveFlangedXu(fck, bw, bf, df, d, muNmm)
		if err != nil {
			return err
		}
		r.Xu = xu
		r.AstRequired = (is456.StressBlockForce*fck*bw*xu + is456.FlangeStress*fck*(bf-bw)*yf) / mat.Steel.Fd()
		return nil
	}

	// Beyond the flanged limiting moment: excess goes to the steel couple.
	r.Xu = xuMax
	asc, ast2, err := compressionSteel(r, sec, mat, muNmm-muLimNmm)
	if err != nil {
		return err
	}
	astLim := (is456.StressBlockForce*fck*bw*xuMax + is456.FlangeStress*fck*(bf-bw)*yfLim) / mat.Steel.Fd()
	r.AscRequired = asc
	r.AstRequired = astLim + ast2
	return nil
}

// reducedFlangeDepth returns yf per Annex G-2.2.1: the full flange depth
// when the flange is shallow relative to the neutral axis, else the reduced
// depth 0.15 xu + 0.65 Df (capped at Df).
func reducedFlangeDepth(xu, df float64) float64 {
	if df <= 3.0/7.0*xu {
		return df
	}
	yf := 0.15*xu + 0.65*df
	return minf(yf, df)
}

// flangeMoment is the moment carried by the flange overhangs about the
// tension steel (N·mm).
func flangeMoment(fck, bf, bw, yf, d float64) float64 {
	return is456.FlangeStress * fck * (bf - bw) * yf * (d - yf/2)
}

// solveFlangedXu inverts the Annex G moment equation for xu. Both yf
// branches reduce to quadratics; the Df-constant branch is tried first and
// kept when its root satisfies the branch condition Df <= 3/7 xu.
func solveFlangedXu(fck, bw, bf, df, d, muNmm float64) (xu, yf float64, err error) {
	webA := is456.StressBlockForce * is456.StressBlockLever * fck * bw // 0.1512 fck bw
	webB := is456.StressBlockForce * fck * bw * d
	k1 := is456.FlangeStress * fck * (bf - bw)

	// Branch 1: yf = Df.
	mf := flangeMoment(fck, bf, bw, df, d)
	if x, ok := smallerRoot(webA, -webB, muNmm-mf); ok && x > 0 && df <= 3.0/7.0*x {
		return x, df, nil
	}

	// Branch 2: yf = 0.15 xu + 0.65 Df.
	const alpha = 0.15
	beta := 0.65 * df
	qa := webA + k1*alpha*alpha/2
	qb := -(webB + k1*alpha*d - k1*alpha*beta)
	qc := muNmm - k1*beta*d + k1*beta*beta/2
	x, ok := smallerRoot(qa, qb, qc)
	if !ok || x <= 0 {
		return 0, 0, fmt.Errorf("no physically valid neutral axis root for Mu=%.2f kN·m", muNmm/1e6)
	}
	return x, reducedFlangeDepth(x, df), nil
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
