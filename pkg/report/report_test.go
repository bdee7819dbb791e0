package report

import (
	"encoding/json"
	"testing"

	"github.com/mchmarny/leadcalc/pkg/calc"
	"github.com/mchmarny/leadcalc/pkg/catalog"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/params"
	"github.com/mchmarny/leadcalc/pkg/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew_AdultGreens(t *testing.T) {
	p, err := model.NewProfile("adult", "us", nil)
	require.NoError(t, err)
	greens, ok := catalog.Find("leafy_greens")
	require.True(t, ok)

	e := &model.ExposureInput{Product: greens, AmountGrams: 85, FrequencyPerWeek: 7}
	r := New(params.ResolveProfile(p), calc.Calculate(e, p), greens.ExposureRoute)

	assert.Equal(t, risk.TierLow, r.TotalRisk)
	assert.Equal(t, risk.TierLow, r.ContributionRisk)
	assert.Equal(t, "Minimal contribution", r.ContributionLabel)
	assert.InDelta(t, 0.3886, r.PercentOfReference, 1e-4)
	assert.False(t, r.ExceedsWHOAction)
	assert.InDelta(t, 20.0, r.Breakdown.AbsorptionPercent, 1e-9)
	assert.Equal(t, 0.04, r.Breakdown.BKSF)
	assert.Equal(t, "+0.01", r.Display.Contribution)
	assert.Equal(t, "0.71", r.Display.Estimated)
	assert.Equal(t, "1.700", r.Display.Intake)
	assert.Equal(t, "0.340", r.Display.Absorbed)
}

func TestNew_InfantKohl(t *testing.T) {
	p, err := model.NewProfile("infant", "us", nil)
	require.NoError(t, err)
	kohl, ok := catalog.Find("kohl_surma")
	require.True(t, ok)

	e := &model.ExposureInput{
		Product:          kohl,
		AmountGrams:      0.02,
		FrequencyPerWeek: 1,
		Override:         model.OverridePPM(50000),
	}
	r := New(params.ResolveProfile(p), calc.Calculate(e, p), kohl.ExposureRoute)

	assert.Equal(t, risk.TierHigh, r.ContributionRisk)
	assert.Equal(t, risk.TierHigh, r.TotalRisk)
	assert.True(t, r.ExceedsWHOAction)
	assert.Equal(t, "+17.9", r.Display.Contribution)
}

func TestNew_MixedRoutes(t *testing.T) {
	p := &model.Profile{AgeGroup: model.AgeGroupChild, Country: model.CountryUS}
	r := New(params.ResolveProfile(p), calc.CalculateCumulative(nil, p), model.RouteDermal, model.RouteIngestion)
	assert.Equal(t, 0.0, r.Breakdown.AbsorptionPercent)
	assert.Equal(t, risk.TierLow, r.ContributionRisk)
}

func TestReport_Encoding(t *testing.T) {
	p := &model.Profile{AgeGroup: model.AgeGroupAdult, Country: model.CountryIndia}
	r := New(params.ResolveProfile(p), calc.CalculateCumulative(nil, p))

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"total_risk":"elevated"`)
	assert.Contains(t, string(b), `"contribution_risk":"low"`)

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(y), "total_risk: elevated")
}
