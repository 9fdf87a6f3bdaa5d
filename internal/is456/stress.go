package is456

// Design stress-strain curves for reinforcement (SP:16 Table A).
//
// Cold-worked bars (Fe415, Fe500) are linear elastic up to 0.80 fd and then
// follow tabulated inelastic strain offsets up to the design stress
// fd = 0.87 fy. Mild steel (Fe250) is elastic-perfectly-plastic. Stress is
// never extrapolated beyond fd.

type curvePoint struct {
	strain float64
	stress float64
}

// Inelastic strain added to the elastic strain fs/Es at each stress level.
var inelasticOffsets = []struct {
	stressFrac float64
	offset     float64
}{
	{0.80, 0.0000},
	{0.85, 0.0001},
	{0.90, 0.0003},
	{0.95, 0.0007},
	{0.975, 0.0010},
	{1.00, 0.0020},
}

func steelCurve(s SteelGrade) []curvePoint {
	fd := s.Fd()
	if s == Fe250 {
		return []curvePoint{{0, 0}, {fd / Es, fd}}
	}
	pts := make([]curvePoint, 0, len(inelasticOffsets)+1)
	pts = append(pts, curvePoint{0, 0})
	for _, p := range inelasticOffsets {
		fs := p.stressFrac * fd
		pts = append(pts, curvePoint{fs/Es + p.offset, fs})
	}
	return pts
}

// StressAtStrain returns the design stress (N/mm²) in reinforcement at a
// given strain, interpolating between the nearest two tabulated points.
// Strains beyond the last point return fd; the curve is never extended.
func StressAtStrain(s SteelGrade, strain float64) (float64, error) {
	if !s.Valid() {
		return 0, &RangeError{Field: "steel grade", Value: float64(s), Allowed: "Fe250, Fe415, Fe500"}
	}
	pts := steelCurve(s)
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.strain
		ys[i] = p.stress
	}
	return interp1(xs, ys, strain), nil
}

// YieldStrain returns the strain at which the design stress fd is reached.
func YieldStrain(s SteelGrade) float64 {
	if s == Fe250 {
		return s.Fd() / Es
	}
	return s.Fd()/Es + 0.002
}
