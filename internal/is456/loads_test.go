package is456

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoredGravity(t *testing.T) {
	actions := LoadActions{
		Dead: Action{Moment: 50, Shear: 60},
		Live: Action{Moment: 30, Shear: 35},
	}
	mu, vu := Combinations[0].Factored(actions)
	assert.InDelta(t, 120.0, mu, 1e-9) // 1.5(50+30)
	assert.InDelta(t, 142.5, vu, 1e-9) // 1.5(60+35)
}

func TestGoverningPicksMaxMoment(t *testing.T) {
	actions := LoadActions{
		Dead:       Action{Moment: 50, Shear: 40},
		Live:       Action{Moment: 30, Shear: 20},
		Earthquake: Action{Moment: 60, Shear: 80},
	}
	mu, vu, governing := Governing(actions, Combinations)
	// 1.2(DL+IL+EL) = 168 beats 1.5(DL+EL) = 165 and 1.5(DL+IL) = 120.
	assert.Equal(t, "3", governing.ID)
	assert.InDelta(t, 168.0, mu, 1e-9)
	assert.InDelta(t, 168.0, vu, 1e-9)
}

func TestGoverningTieKeepsEarlierCombination(t *testing.T) {
	// Dead load only: 1.5D appears in combinations 1 and 4; the earlier wins.
	actions := LoadActions{Dead: Action{Moment: 100}}
	_, _, governing := Governing(actions, Combinations)
	assert.Equal(t, "1", governing.ID)
}
