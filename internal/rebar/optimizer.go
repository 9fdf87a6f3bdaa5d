// Package rebar selects a buildable bar arrangement for a required steel
// area under constructability constraints.
package rebar

import (
	"fmt"
	"math"
	"sort"

	"github.com/structcalc/isbeam/internal/is456"
)

// defaultBarCeiling bounds the candidate enumeration when the caller does
// not set one. The search space stays finite by construction.
const defaultBarCeiling = 20

// Constraints holds every input the optimizer uses. There are no implicit
// defaults apart from the bar-count ceiling; concurrent callers cannot
// interfere with each other's assumptions.
type Constraints struct {
	Width         float64   `json:"width"`          // section width (mm)
	Cover         float64   `json:"cover"`          // clear cover to stirrup (mm)
	StirrupDia    float64   `json:"stirrup_dia"`    // stirrup bar diameter (mm)
	AggregateSize float64   `json:"aggregate_size"` // nominal maximum aggregate (mm)
	AllowedDias   []float64 `json:"allowed_dias"`   // permitted bar diameters (mm)
	MaxLayers     int       `json:"max_layers"`
	MinBars       int       `json:"min_bars"`
	MaxBars       int       `json:"max_bars,omitempty"` // 0 means defaultBarCeiling
}

func (c Constraints) validate() error {
	if c.Width <= 0 {
		return &is456.RangeError{Field: "width", Value: c.Width, Allowed: "width > 0"}
	}
	if c.Cover < 0 {
		return &is456.RangeError{Field: "cover", Value: c.Cover, Allowed: "cover >= 0"}
	}
	if c.StirrupDia < 0 {
		return &is456.RangeError{Field: "stirrup diameter", Value: c.StirrupDia, Allowed: "dia >= 0"}
	}
	if c.AggregateSize < 0 {
		return &is456.RangeError{Field: "aggregate size", Value: c.AggregateSize, Allowed: "size >= 0"}
	}
	if len(c.AllowedDias) == 0 {
		return &is456.RangeError{Field: "allowed diameters", Value: 0, Allowed: "at least one diameter"}
	}
	for _, dia := range c.AllowedDias {
		if dia <= 0 {
			return &is456.RangeError{Field: "bar diameter", Value: dia, Allowed: "dia > 0"}
		}
	}
	if c.MaxLayers < 1 {
		return &is456.RangeError{Field: "max layers", Value: float64(c.MaxLayers), Allowed: ">= 1"}
	}
	if c.MinBars < 1 {
		return &is456.RangeError{Field: "min bars", Value: float64(c.MinBars), Allowed: ">= 1"}
	}
	return nil
}

// Layout is a concrete bar arrangement. The optimizer holds no reference to
// a returned layout; the caller owns it exclusively.
type Layout struct {
	Diameter     float64   `json:"diameter"`      // bar diameter (mm)
	Count        int       `json:"count"`         // total bars
	Layers       int       `json:"layers"`        // layers used
	AreaProvided float64   `json:"area_provided"` // mm²
	PerLayer     []int     `json:"per_layer"`     // bars in each layer, fullest first
	Spacing      []float64 `json:"spacing"`       // clear spacing in each layer (mm)
}

// Infeasible is the structured failure when no candidate satisfies the
// constraints. It is a normal return value, not an error.
type Infeasible struct {
	Considered int    `json:"considered"` // candidates enumerated
	Reason     string `json:"reason"`
}

type candidate struct {
	dia      float64
	count    int
	layers   int
	area     float64
	perLayer []int
	spacing  []float64
}

// Optimize searches the bounded candidate space for the best buildable
// arrangement providing at least astRequired (mm²). Selection is a fixed
// lexicographic order over (provided area, layer count, bar count, bar
// diameter), so the result is independent of enumeration order.
func Optimize(astRequired float64, c Constraints) (*Layout, *Infeasible, error) {
	if err := c.validate(); err != nil {
		return nil, nil, err
	}
	if astRequired <= 0 {
		return nil, nil, &is456.RangeError{Field: "required steel area", Value: astRequired, Allowed: "Ast > 0"}
	}

	maxBars := c.MaxBars
	if maxBars == 0 {
		maxBars = defaultBarCeiling
	}
	if maxBars < c.MinBars {
		return nil, nil, &is456.RangeError{Field: "max bars", Value: float64(maxBars), Allowed: fmt.Sprintf(">= min bars (%d)", c.MinBars)}
	}

	dias := append([]float64(nil), c.AllowedDias...)
	sort.Float64s(dias)

	minClear := func(dia float64) float64 {
		// Cl. 26.3.2: not less than the bar diameter nor aggregate + 5 mm.
		return math.Max(dia, c.AggregateSize+5)
	}

	var (
		best        *candidate
		considered  int
		anyArea     bool // some candidate reached the required area
		tightestGap float64
	)
	tightestGap = math.Inf(-1)

	for _, dia := range dias {
		barArea := math.Pi / 4 * dia * dia
		for count := c.MinBars; count <= maxBars; count++ {
			for layers := 1; layers <= c.MaxLayers && layers <= count; layers++ {
				considered++
				area := float64(count) * barArea
				if area < astRequired {
					continue
				}
				anyArea = true

				perLayer := splitLayers(count, layers)
				spacing := make([]float64, layers)
				feasible := true
				for i, n := range perLayer {
					gap := clearSpacing(c, dia, n)
					spacing[i] = gap
					if gap < minClear(dia) {
						feasible = false
						if gap-minClear(dia) > tightestGap {
							tightestGap = gap - minClear(dia)
						}
					}
				}
				if !feasible {
					continue
				}

				cand := &candidate{dia: dia, count: count, layers: layers, area: area, perLayer: perLayer, spacing: spacing}
				if best == nil || cand.better(best) {
					best = cand
				}
			}
		}
	}

	if best == nil {
		reason := fmt.Sprintf("no diameter/count combination reaches the required area %.1f mm² within %d bars", astRequired, maxBars)
		if anyArea {
			reason = fmt.Sprintf("no width/diameter/count combination satisfies minimum clear spacing for width %.0f mm (closest shortfall %.1f mm)", c.Width, -tightestGap)
		}
		return nil, &Infeasible{Considered: considered, Reason: reason}, nil
	}

	return &Layout{
		Diameter:     best.dia,
		Count:        best.count,
		Layers:       best.layers,
		AreaProvided: best.area,
		PerLayer:     best.perLayer,
		Spacing:      best.spacing,
	}, nil, nil
}

// better is the lexicographic selection order. Candidates never tie on all
// four keys, so selection is deterministic.
func (a *candidate) better(b *candidate) bool {
	if a.area != b.area {
		return a.area < b.area
	}
	if a.layers != b.layers {
		return a.layers < b.layers
	}
	if a.count != b.count {
		return a.count < b.count
	}
	return a.dia < b.dia
}

// splitLayers distributes count bars over layers by ceiling division,
// fullest layers first.
func splitLayers(count, layers int) []int {
	per := make([]int, layers)
	remaining := count
	for i := 0; i < layers; i++ {
		n := (remaining + (layers - i - 1)) / (layers - i) // ceil
		per[i] = n
		remaining -= n
	}
	return per
}

// clearSpacing returns the horizontal clear gap between adjacent bars in a
// layer of n bars. A single bar has no adjacent gap; the usable width is
// returned so narrow sections still reject oversized bars.
func clearSpacing(c Constraints, dia float64, n int) float64 {
	usable := c.Width - 2*c.Cover - 2*c.StirrupDia
	if n <= 1 {
		return usable - dia
	}
	return (usable - float64(n)*dia) / float64(n-1)
}
