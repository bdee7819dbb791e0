// Package calc estimates blood lead levels from product exposures.
//
// The model is the steady-state form of the EPA dose equation
//
//	ΔPbB = Σ(C × IR × AF × BKSF × EF/AT)
//
// with chronic daily exposure (EF/AT = 1), which collapses to the daily
// absorbed dose multiplied by the biokinetic slope factor.
package calc

import (
	"math"

	"github.com/mchmarny/leadcalc/pkg/dose"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/params"
)

const (
	// z-score of the 95th percentile; low/high bound a 90% log-normal interval
	zScore90 = 1.645
)

// Calculate estimates the blood lead level for a single exposure.
func Calculate(e *model.ExposureInput, p *model.Profile) model.CalculationResult {
	mp := params.ResolveProfile(p)
	intake, absorbed := absorb(e, mp)
	return result(mp, intake, absorbed)
}

// CalculateCumulative estimates the blood lead level for concurrent exposures.
// Daily intake and absorbed doses are summed across exposures first, then the
// slope factor and baseline are applied once to the total.
func CalculateCumulative(es []*model.ExposureInput, p *model.Profile) model.CalculationResult {
	mp := params.ResolveProfile(p)

	var totalIntake, totalAbsorbed float64
	for _, e := range es {
		intake, absorbed := absorb(e, mp)
		totalIntake += intake
		totalAbsorbed += absorbed
	}

	return result(mp, totalIntake, totalAbsorbed)
}

// absorb returns the daily intake and daily absorbed dose (µg/day) of e.
func absorb(e *model.ExposureInput, mp model.ModelParameters) (intake, absorbed float64) {
	intake = dose.DailyIntakeUg(e)
	route := model.RouteIngestion
	if e.Product != nil {
		route = e.Product.ExposureRoute
	}
	return intake, intake * mp.AbsorptionFractions.For(route)
}

func result(mp model.ModelParameters, intake, absorbed float64) model.CalculationResult {
	contribution := absorbed * mp.BKSF
	estimated := mp.BaselineBloodLead + contribution

	return model.CalculationResult{
		BloodLeadContributionUgDl: contribution,
		EstimatedBloodLeadUgDl:    estimated,
		Range:                     Interval(estimated, mp.GSD),
		ExceedsCDCReference:       estimated > mp.CDCReferenceLevel,
		CDCReferenceLevel:         mp.CDCReferenceLevel,
		ReferenceThresholds:       params.Thresholds(mp.CDCReferenceLevel),
		DailyLeadIntakeUg:         intake,
		DailyAbsorbedLeadUg:       absorbed,
	}
}

// Interval returns the 5th and 95th percentile of a log-normal distribution
// with geometric mean estimate and geometric standard deviation gsd.
func Interval(estimate, gsd float64) model.Range {
	logGSD := math.Log(gsd)
	return model.Range{
		Low:  estimate * math.Exp(-zScore90*logGSD),
		High: estimate * math.Exp(zScore90*logGSD),
	}
}
