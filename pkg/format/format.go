// Package format renders numeric results for display.
package format

import (
	"fmt"
)

const (
	belowDisplayLimit = 0.01
	twoDecimalLimit   = 1

	// BelowLimit is shown for values too small to display.
	BelowLimit = "< 0.01"
)

// BloodLead formats a blood lead level (µg/dL): values under 0.01 display
// as "< 0.01", values under 1 with two decimals, the rest with one.
func BloodLead(v float64) string {
	switch {
	case v < belowDisplayLimit:
		return BelowLimit
	case v < twoDecimalLimit:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

// Intake formats a daily dose (µg/day).
func Intake(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// Percent formats a percentage with one decimal place.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
