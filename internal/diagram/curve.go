package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/structcalc/isbeam/internal/is456"
)

// DrawSteelCurve plots the design stress-strain curve of a reinforcement
// grade as a terminal chart.
func DrawSteelCurve(steel is456.SteelGrade) (string, error) {
	const samples = 60
	maxStrain := 1.25 * is456.YieldStrain(steel)

	data := make([]float64, samples+1)
	for i := 0; i <= samples; i++ {
		strain := maxStrain * float64(i) / samples
		stress, err := is456.StressAtStrain(steel, strain)
		if err != nil {
			return "", err
		}
		data[i] = stress
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(14),
		asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("Fe%d design stress (N/mm²) vs strain, 0 to %.4f", int(steel), maxStrain)),
	)
	return graph, nil
}
