package params

import (
	"github.com/mchmarny/leadcalc/pkg/model"
)

// Resolve assembles the coefficient set for an age group and country.
// A nil bodyWeightKg falls back to the age group default; a supplied value is
// kept verbatim. Inputs are expected to come from the closed enumerations,
// see model.NewProfile.
func Resolve(age model.AgeGroup, country model.Country, bodyWeightKg *float64) model.ModelParameters {
	weight := DefaultBodyWeight(age)
	if bodyWeightKg != nil {
		weight = *bodyWeightKg
	}

	return model.ModelParameters{
		BaselineBloodLead: baselineBloodLead[country][age],
		BKSF:              slopeFactors[age],
		AbsorptionFractions: model.AbsorptionFractions{
			Ingestion:  absorptionFractions[model.RouteIngestion][age],
			Dermal:     absorptionFractions[model.RouteDermal][age],
			Inhalation: absorptionFractions[model.RouteInhalation][age],
		},
		GSD:               geometricStdDevs[age],
		CDCReferenceLevel: cdcReferenceLevels[age],
		BodyWeightKg:      weight,
		CountryName:       CountryName(country),
	}
}

// ResolveProfile is Resolve for a profile.
func ResolveProfile(p *model.Profile) model.ModelParameters {
	return Resolve(p.AgeGroup, p.Country, p.BodyWeightKg)
}
