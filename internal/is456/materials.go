package is456

// IS 456:2000 Material Constants (Limit State Method)

const (
	// Strain limits
	EpsilonCU = 0.0035 // Ultimate concrete compressive strain (Cl. 38.1)

	// Equivalent stress block factors (Cl. 38.1 / Annex G)
	StressBlockForce = 0.36 // Cu = 0.36 fck b xu
	StressBlockLever = 0.42 // lever arm reduction: d - 0.42 xu

	// Uniform concrete stress over the flange / displaced by compression
	// steel (Annex G-2.2, SP:16)
	FlangeStress = 0.446

	// Design steel stress factor: fd = fy / γms = 0.87 fy (Cl. 38.1)
	SteelDesignFactor = 0.87

	// Modulus of elasticity for steel (Cl. 5.6.3)
	Es = 200000.0 // N/mm²
)

// ConcreteGrade is a standard IS 456 concrete grade. The numeric value is
// the characteristic cube strength fck in N/mm².
type ConcreteGrade int

const (
	M15 ConcreteGrade = 15
	M20 ConcreteGrade = 20
	M25 ConcreteGrade = 25
	M30 ConcreteGrade = 30
	M35 ConcreteGrade = 35
	M40 ConcreteGrade = 40
)

// concreteGrades in ascending order; also the column order of Table 19/20.
var concreteGrades = []ConcreteGrade{M15, M20, M25, M30, M35, M40}

// Fck returns the characteristic compressive strength in N/mm².
func (g ConcreteGrade) Fck() float64 { return float64(g) }

// Valid reports whether the grade is in the supported enumeration.
func (g ConcreteGrade) Valid() bool {
	for _, c := range concreteGrades {
		if g == c {
			return true
		}
	}
	return false
}

// NewConcreteGrade validates a characteristic strength against the supported
// grades. Grades outside the table domain are rejected, never extrapolated.
func NewConcreteGrade(fck float64) (ConcreteGrade, error) {
	g := ConcreteGrade(fck)
	if float64(g) != fck || !g.Valid() {
		return 0, &RangeError{Field: "concrete grade", Value: fck, Allowed: "M15, M20, M25, M30, M35, M40"}
	}
	return g, nil
}

// SteelGrade is a standard IS 456 reinforcement grade. The numeric value is
// the characteristic yield strength fy in N/mm².
type SteelGrade int

const (
	Fe250 SteelGrade = 250
	Fe415 SteelGrade = 415
	Fe500 SteelGrade = 500
)

var steelGrades = []SteelGrade{Fe250, Fe415, Fe500}

// Fy returns the characteristic yield strength in N/mm².
func (s SteelGrade) Fy() float64 { return float64(s) }

// Fd returns the design stress 0.87 fy in N/mm².
func (s SteelGrade) Fd() float64 { return SteelDesignFactor * float64(s) }

// Valid reports whether the grade is in the supported enumeration.
func (s SteelGrade) Valid() bool {
	for _, g := range steelGrades {
		if s == g {
			return true
		}
	}
	return false
}

// NewSteelGrade validates a yield strength against the supported grades.
func NewSteelGrade(fy float64) (SteelGrade, error) {
	s := SteelGrade(fy)
	if float64(s) != fy || !s.Valid() {
		return 0, &RangeError{Field: "steel grade", Value: fy, Allowed: "Fe250, Fe415, Fe500"}
	}
	return s, nil
}

// XuMaxRatio returns the limiting neutral axis depth ratio xu,max/d
// (Cl. 38.1, Note).
func XuMaxRatio(s SteelGrade) (float64, error) {
	switch s {
	case Fe250:
		return 0.53, nil
	case Fe415:
		return 0.48, nil
	case Fe500:
		return 0.46, nil
	}
	return 0, &RangeError{Field: "steel grade", Value: float64(s), Allowed: "Fe250, Fe415, Fe500"}
}
