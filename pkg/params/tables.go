package params

import (
	"github.com/mchmarny/leadcalc/pkg/model"
)

// Reference values follow the EPA Adult Lead Methodology and NHANES
// population data. All levels are µg/dL.
const (
	// WHOActionLevel is the level at which public health action is recommended.
	WHOActionLevel = 5.0
	// WHOElevatedLevel is the historical elevated blood lead threshold.
	WHOElevatedLevel = 10.0
)

var (
	countryNames = map[model.Country]string{
		model.CountryUS:    "United States",
		model.CountryUK:    "United Kingdom",
		model.CountryEU:    "European Union",
		model.CountryIndia: "India",
		model.CountryChina: "China",
		model.CountryOther: "Other",
	}

	// kg
	defaultBodyWeights = map[model.AgeGroup]float64{
		model.AgeGroupInfant:   7.5,
		model.AgeGroupToddler:  12,
		model.AgeGroupChild:    22,
		model.AgeGroupAdult:    70,
		model.AgeGroupPregnant: 70,
	}

	baselineBloodLead = map[model.Country]map[model.AgeGroup]float64{
		model.CountryUS: {
			model.AgeGroupInfant:   0.5,
			model.AgeGroupToddler:  0.7,
			model.AgeGroupChild:    0.6,
			model.AgeGroupAdult:    0.7,
			model.AgeGroupPregnant: 0.5,
		},
		model.CountryUK: {
			model.AgeGroupInfant:   0.8,
			model.AgeGroupToddler:  1.0,
			model.AgeGroupChild:    0.9,
			model.AgeGroupAdult:    1.0,
			model.AgeGroupPregnant: 0.7,
		},
		model.CountryEU: {
			model.AgeGroupInfant:   0.7,
			model.AgeGroupToddler:  0.9,
			model.AgeGroupChild:    0.8,
			model.AgeGroupAdult:    0.9,
			model.AgeGroupPregnant: 0.6,
		},
		model.CountryIndia: {
			model.AgeGroupInfant:   3.0,
			model.AgeGroupToddler:  4.0,
			model.AgeGroupChild:    3.5,
			model.AgeGroupAdult:    4.0,
			model.AgeGroupPregnant: 3.0,
		},
		model.CountryChina: {
			model.AgeGroupInfant:   2.5,
			model.AgeGroupToddler:  3.5,
			model.AgeGroupChild:    3.0,
			model.AgeGroupAdult:    3.5,
			model.AgeGroupPregnant: 2.5,
		},
		model.CountryOther: {
			model.AgeGroupInfant:   1.5,
			model.AgeGroupToddler:  2.0,
			model.AgeGroupChild:    1.8,
			model.AgeGroupAdult:    2.0,
			model.AgeGroupPregnant: 1.5,
		},
	}

	// CDC blood lead reference value, 3.5 for all ages since 2021.
	cdcReferenceLevels = map[model.AgeGroup]float64{
		model.AgeGroupInfant:   3.5,
		model.AgeGroupToddler:  3.5,
		model.AgeGroupChild:    3.5,
		model.AgeGroupAdult:    3.5,
		model.AgeGroupPregnant: 3.5,
	}

	// µg/dL blood lead per µg/day absorbed
	slopeFactors = map[model.AgeGroup]float64{
		model.AgeGroupInfant:   0.25,
		model.AgeGroupToddler:  0.20,
		model.AgeGroupChild:    0.16,
		model.AgeGroupAdult:    0.04,
		model.AgeGroupPregnant: 0.04,
	}

	absorptionFractions = map[model.ExposureRoute]map[model.AgeGroup]float64{
		model.RouteIngestion: {
			model.AgeGroupInfant:   0.50,
			model.AgeGroupToddler:  0.50,
			model.AgeGroupChild:    0.45,
			model.AgeGroupAdult:    0.20,
			model.AgeGroupPregnant: 0.20,
		},
		// intact skin
		model.RouteDermal: {
			model.AgeGroupInfant:   0.01,
			model.AgeGroupToddler:  0.01,
			model.AgeGroupChild:    0.01,
			model.AgeGroupAdult:    0.01,
			model.AgeGroupPregnant: 0.01,
		},
		model.RouteInhalation: {
			model.AgeGroupInfant:   0.40,
			model.AgeGroupToddler:  0.40,
			model.AgeGroupChild:    0.35,
			model.AgeGroupAdult:    0.30,
			model.AgeGroupPregnant: 0.30,
		},
	}

	geometricStdDevs = map[model.AgeGroup]float64{
		model.AgeGroupInfant:   1.8,
		model.AgeGroupToddler:  1.8,
		model.AgeGroupChild:    1.7,
		model.AgeGroupAdult:    1.7,
		model.AgeGroupPregnant: 1.7,
	}
)

// CountryName returns the display name of c.
func CountryName(c model.Country) string {
	return countryNames[c]
}

// DefaultBodyWeight returns the reference body weight (kg) for age.
func DefaultBodyWeight(age model.AgeGroup) float64 {
	return defaultBodyWeights[age]
}

// Thresholds returns the reference levels reported with every result.
func Thresholds(cdc float64) model.ReferenceThresholds {
	return model.ReferenceThresholds{
		CDC:         cdc,
		WHOAction:   WHOActionLevel,
		WHOElevated: WHOElevatedLevel,
	}
}
