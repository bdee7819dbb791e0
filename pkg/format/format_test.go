package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBloodLead(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "< 0.01"},
		{0.0099, "< 0.01"},
		{-2, "< 0.01"},
		{0.0136, "0.01"},
		{0.7136, "0.71"},
		{0.999, "1.00"},
		{1, "1.0"},
		{18.357, "18.4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BloodLead(tt.in), "input %v", tt.in)
	}
}

func TestIntake(t *testing.T) {
	assert.Equal(t, "1.700", Intake(1.7))
	assert.Equal(t, "142.857", Intake(1000.0/7))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "20.4", Percent(20.388))
}
