// Package risk classifies blood lead estimates into qualitative tiers.
//
// Two classifications share the same ordinal scale but answer different
// questions: ClassifyContribution rates how much a single exposure adds
// relative to the CDC reference level, ClassifyTotal rates the overall
// estimated level. They use different denominators and breakpoints and are
// not interchangeable.
package risk

import (
	"strings"

	"github.com/pkg/errors"
)

// Tier is an ordinal risk level.
type Tier int

const (
	TierLow Tier = iota
	TierModerate
	TierElevated
	TierHigh
)

const (
	hundredPercent = 100

	contributionModeratePercent = 1
	contributionElevatedPercent = 5
	contributionHighPercent     = 15

	totalModerateRatio = 0.5
	totalElevatedRatio = 1.0
	totalHighRatio     = 2.0
)

var (
	tierNames = map[Tier]string{
		TierLow:      "low",
		TierModerate: "moderate",
		TierElevated: "elevated",
		TierHigh:     "high",
	}

	contributionLabels = map[Tier]string{
		TierLow:      "Minimal contribution",
		TierModerate: "Moderate contribution",
		TierElevated: "Significant contribution",
		TierHigh:     "High contribution - consider reducing",
	}

	errInvalidTier = errors.New("invalid risk tier")
)

func (t Tier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}
	return "unknown"
}

// MarshalText encodes the tier by name for JSON and YAML output.
func (t Tier) MarshalText() ([]byte, error) {
	s, ok := tierNames[t]
	if !ok {
		return nil, errors.Wrapf(errInvalidTier, "%d", int(t))
	}
	return []byte(s), nil
}

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(b)))
	for k, name := range tierNames {
		if name == v {
			*t = k
			return nil
		}
	}
	return errors.Wrapf(errInvalidTier, "%q", string(b))
}

// ContributionLabel describes a contribution tier for display.
func ContributionLabel(t Tier) string {
	return contributionLabels[t]
}

// PercentOfReference expresses a contribution as a percentage of the CDC
// reference level.
func PercentOfReference(contributionUgDl, cdcReferenceUgDl float64) float64 {
	return contributionUgDl * hundredPercent / cdcReferenceUgDl
}

// ClassifyContribution rates the blood lead added by an exposure:
// under 1% of the reference is low, under 5% moderate, under 15% elevated,
// anything above is high.
func ClassifyContribution(contributionUgDl, cdcReferenceUgDl float64) Tier {
	pct := PercentOfReference(contributionUgDl, cdcReferenceUgDl)
	switch {
	case pct < contributionModeratePercent:
		return TierLow
	case pct < contributionElevatedPercent:
		return TierModerate
	case pct < contributionHighPercent:
		return TierElevated
	default:
		return TierHigh
	}
}

// ClassifyTotal rates the total estimated blood lead level: under half the
// reference is low, under the reference moderate, under twice the reference
// elevated, anything above is high.
func ClassifyTotal(totalUgDl, cdcReferenceUgDl float64) Tier {
	ratio := totalUgDl / cdcReferenceUgDl
	switch {
	case ratio < totalModerateRatio:
		return TierLow
	case ratio < totalElevatedRatio:
		return TierModerate
	case ratio < totalHighRatio:
		return TierElevated
	default:
		return TierHigh
	}
}
