package is456

// Design shear strength of concrete τc, IS 456 Table 19 (N/mm²).
// Rows are keyed by the tension steel percentage 100·Ast/(b·d), columns by
// concrete grade in the order of concreteGrades.

var tauCRatios = []float64{0.15, 0.25, 0.50, 0.75, 1.00, 1.25, 1.50, 1.75, 2.00, 2.25, 2.50, 2.75, 3.00}

var tauCTable = [][]float64{
	//     M15    M20    M25    M30    M35    M40
	{0.28, 0.28, 0.29, 0.29, 0.29, 0.30}, // 0.15
	{0.35, 0.36, 0.36, 0.37, 0.37, 0.38}, // 0.25
	{0.46, 0.48, 0.49, 0.50, 0.50, 0.51}, // 0.50
	{0.54, 0.56, 0.57, 0.59, 0.59, 0.60}, // 0.75
	{0.60, 0.62, 0.64, 0.66, 0.67, 0.68}, // 1.00
	{0.64, 0.67, 0.70, 0.71, 0.73, 0.74}, // 1.25
	{0.68, 0.72, 0.74, 0.76, 0.78, 0.79}, // 1.50
	{0.71, 0.75, 0.78, 0.80, 0.82, 0.84}, // 1.75
	{0.71, 0.79, 0.82, 0.84, 0.86, 0.88}, // 2.00
	{0.71, 0.81, 0.85, 0.88, 0.90, 0.92}, // 2.25
	{0.71, 0.82, 0.88, 0.91, 0.93, 0.95}, // 2.50
	{0.71, 0.82, 0.90, 0.94, 0.96, 0.98}, // 2.75
	{0.71, 0.82, 0.92, 0.96, 0.99, 1.01}, // 3.00
}

// Maximum shear stress τc,max, IS 456 Table 20 (N/mm²).
var tauCMaxTable = map[ConcreteGrade]float64{
	M15: 2.5,
	M20: 2.8,
	M25: 3.1,
	M30: 3.5,
	M35: 3.7,
	M40: 4.0,
}

func gradeColumn(g ConcreteGrade) (int, error) {
	for i, c := range concreteGrades {
		if g == c {
			return i, nil
		}
	}
	return 0, &RangeError{Field: "concrete grade", Value: float64(g), Allowed: "M15, M20, M25, M30, M35, M40"}
}

// interp1 interpolates y(x) on a piecewise-linear grid with ascending xs,
// clamping x to [xs[0], xs[last]]. Ratios outside the tabulated range take
// the boundary row by policy; grades never clamp.
func interp1(xs, ys []float64, x float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last]
	}
	i := 1
	for x > xs[i] {
		i++
	}
	frac := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + frac*(ys[i]-ys[i-1])
}

// TauC returns the design shear strength of concrete for a grade and a
// provided tension steel percentage pt = 100·Ast/(b·d). pt is clamped to the
// table range before interpolation.
func TauC(g ConcreteGrade, pt float64) (float64, error) {
	col, err := gradeColumn(g)
	if err != nil {
		return 0, err
	}
	ys := make([]float64, len(tauCRatios))
	for i, row := range tauCTable {
		ys[i] = row[col]
	}
	return interp1(tauCRatios, ys, pt), nil
}

// TauCMax returns the maximum permissible shear stress for a grade. A
// nominal shear stress above this cannot be remedied by stirrups.
func TauCMax(g ConcreteGrade) (float64, error) {
	v, ok := tauCMaxTable[g]
	if !ok {
		return 0, &RangeError{Field: "concrete grade", Value: float64(g), Allowed: "M15, M20, M25, M30, M35, M40"}
	}
	return v, nil
}
