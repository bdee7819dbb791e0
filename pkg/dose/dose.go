// Package dose normalizes exposure descriptions into micrograms of lead.
package dose

import (
	"github.com/mchmarny/leadcalc/pkg/model"
)

const (
	daysPerWeek = 7
)

// LeadUgPerServing returns the lead (µg) in one serving or use.
// A µg-per-serving override is returned as is, independent of serving mass.
// Otherwise the concentration (override ppm or product default) is multiplied
// by the amount in grams.
func LeadUgPerServing(e *model.ExposureInput) float64 {
	if o := e.Override; o != nil && o.Unit == model.LeadUnitUgPerServing {
		return o.Value
	}
	return PPM(e) * e.AmountGrams
}

// PPM returns the concentration applied to the exposure. It is only
// meaningful when the exposure is not overridden with a per-serving dose.
func PPM(e *model.ExposureInput) float64 {
	if o := e.Override; o != nil && o.Unit == model.LeadUnitPPM {
		return o.Value
	}
	if e.Product == nil {
		return 0
	}
	return e.Product.LeadContentPpm
}

// DailyIntakeUg converts the per-serving dose and weekly frequency into a
// daily intake (µg/day). Fractional frequencies are kept as is.
func DailyIntakeUg(e *model.ExposureInput) float64 {
	return LeadUgPerServing(e) * e.FrequencyPerWeek / daysPerWeek
}
