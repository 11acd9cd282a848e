package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAdaptive() AdaptiveConfig {
	return AdaptiveConfig{
		InitialStrength:   0.5,
		BaseGain:          0.15,
		GainDecay:         0.5,
		Penalty:           0.15,
		GrowthBase:        1.5,
		GrowthStep:        0.2,
		GrowthMax:         2.7,
		MaxIntervalDays:   60,
		WeaknessThreshold: 0.4,
		Timezone:          "UTC",
	}
}

func TestValidateAdaptive_AcceptsDefaults(t *testing.T) {
	a := validAdaptive()
	require.NoError(t, validateAdaptive(&a))
}

func TestValidateAdaptive_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AdaptiveConfig)
	}{
		{"growth_base not above 1", func(a *AdaptiveConfig) { a.GrowthBase = 1.0 }},
		{"max_interval below 1", func(a *AdaptiveConfig) { a.MaxIntervalDays = 0 }},
		{"threshold at 0", func(a *AdaptiveConfig) { a.WeaknessThreshold = 0 }},
		{"threshold at 1", func(a *AdaptiveConfig) { a.WeaknessThreshold = 1 }},
		{"bogus timezone", func(a *AdaptiveConfig) { a.Timezone = "Mars/Olympus" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validAdaptive()
			tc.mutate(&a)
			assert.Error(t, validateAdaptive(&a))
		})
	}
}
