package is456

// LoadCombination represents an IS 456 limit-state load combination
// (Table 18, partial safety factors for loads).
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // DL
	Live       float64 // IL (imposed)
	Wind       float64 // WL
	Earthquake float64 // EL
}

// Combinations is the IS 456 Table 18 set for the limit state of collapse.
var Combinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5(DL + IL)",
		Dead:        1.5,
		Live:        1.5,
	},
	{
		ID:          "2",
		Description: "1.2(DL + IL + WL)",
		Dead:        1.2,
		Live:        1.2,
		Wind:        1.2,
	},
	{
		ID:          "3",
		Description: "1.2(DL + IL + EL)",
		Dead:        1.2,
		Live:        1.2,
		Earthquake:  1.2,
	},
	{
		ID:          "4",
		Description: "1.5(DL + WL)",
		Dead:        1.5,
		Wind:        1.5,
	},
	{
		ID:          "5",
		Description: "1.5(DL + EL)",
		Dead:        1.5,
		Earthquake:  1.5,
	},
	{
		ID:          "6",
		Description: "0.9DL + 1.5WL",
		Dead:        0.9,
		Wind:        1.5,
	},
	{
		ID:          "7",
		Description: "0.9DL + 1.5EL",
		Dead:        0.9,
		Earthquake:  1.5,
	},
}

// GravityCombinations is the subset for gravity-only beam design.
var GravityCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5(DL + IL)",
		Dead:        1.5,
		Live:        1.5,
	},
}

// Action holds an unfactored moment (kN·m) and shear (kN) from one load type.
type Action struct {
	Moment float64
	Shear  float64
}

// LoadActions holds unfactored actions from each load type.
type LoadActions struct {
	Dead       Action
	Live       Action
	Wind       Action
	Earthquake Action
}

// Factored returns the factored moment and shear for the combination.
func (lc LoadCombination) Factored(a LoadActions) (mu, vu float64) {
	mu = lc.Dead*a.Dead.Moment + lc.Live*a.Live.Moment +
		lc.Wind*a.Wind.Moment + lc.Earthquake*a.Earthquake.Moment
	vu = lc.Dead*a.Dead.Shear + lc.Live*a.Live.Shear +
		lc.Wind*a.Wind.Shear + lc.Earthquake*a.Earthquake.Shear
	return mu, vu
}

// Governing finds the combination producing the maximum factored moment.
// Ties keep the earlier combination.
func Governing(a LoadActions, combos []LoadCombination) (mu, vu float64, governing LoadCombination) {
	for i, combo := range combos {
		m, v := combo.Factored(a)
		if i == 0 || m > mu {
			mu, vu = m, v
			governing = combo
		}
	}
	return mu, vu, governing
}
