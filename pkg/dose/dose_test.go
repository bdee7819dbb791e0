package dose

import (
	"testing"

	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/stretchr/testify/assert"
)

var greens = &model.Product{
	ID:                  "leafy_greens",
	Category:            model.CategoryFood,
	LeadContentPpm:      0.02,
	DefaultServingGrams: 85,
	ExposureRoute:       model.RouteIngestion,
}

func TestLeadUgPerServing(t *testing.T) {
	tests := []struct {
		name     string
		override *model.LeadOverride
		amount   float64
		want     float64
	}{
		{"product default", nil, 85, 0.02 * 85},
		{"ppm override", model.OverridePPM(1.5), 10, 15},
		{"ug override ignores amount", model.OverrideUgPerServing(4.2), 1000, 4.2},
		{"zero amount", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &model.ExposureInput{
				Product:          greens,
				AmountGrams:      tt.amount,
				FrequencyPerWeek: 7,
				Override:         tt.override,
			}
			assert.InDelta(t, tt.want, LeadUgPerServing(e), 1e-12)
		})
	}
}

func TestPPM(t *testing.T) {
	e := &model.ExposureInput{Product: greens}
	assert.Equal(t, 0.02, PPM(e))

	e.Override = model.OverridePPM(3)
	assert.Equal(t, 3.0, PPM(e))

	e.Override = model.OverrideUgPerServing(9)
	assert.Equal(t, 0.02, PPM(e))

	assert.Equal(t, 0.0, PPM(&model.ExposureInput{}))
}

func TestDailyIntakeUg(t *testing.T) {
	e := &model.ExposureInput{
		Product:          greens,
		AmountGrams:      85,
		FrequencyPerWeek: 7,
	}
	assert.InDelta(t, 1.7, DailyIntakeUg(e), 1e-12)

	// once a month
	e.FrequencyPerWeek = 0.25
	assert.InDelta(t, 1.7*0.25/7, DailyIntakeUg(e), 1e-12)

	e.FrequencyPerWeek = 0
	assert.Equal(t, 0.0, DailyIntakeUg(e))
}

func TestUnitModeEquivalence(t *testing.T) {
	ppm := &model.ExposureInput{
		Product:          greens,
		AmountGrams:      40,
		FrequencyPerWeek: 3,
		Override:         model.OverridePPM(greens.LeadContentPpm),
	}
	ug := &model.ExposureInput{
		Product:          greens,
		AmountGrams:      40,
		FrequencyPerWeek: 3,
		Override:         model.OverrideUgPerServing(greens.LeadContentPpm * 40),
	}
	assert.Equal(t, LeadUgPerServing(ppm), LeadUgPerServing(ug))
	assert.Equal(t, DailyIntakeUg(ppm), DailyIntakeUg(ug))
}
