package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "avsar/pkg/domain-errors"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	assert.Equal(t, 0.45, w.Skills)
	assert.Equal(t, 0.20, w.Qualifications)
	assert.Equal(t, 0.20, w.Location)
	assert.Equal(t, 0.15, w.Sector)
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{"defaults", DefaultWeights(), false},
		{"alternate valid split", Weights{Skills: 0.25, Qualifications: 0.25, Location: 0.25, Sector: 0.25}, false},
		{"sum short", Weights{Skills: 0.45, Qualifications: 0.20, Location: 0.20, Sector: 0.10}, true},
		{"sum over", Weights{Skills: 0.50, Qualifications: 0.25, Location: 0.20, Sector: 0.15}, true},
		{"negative component", Weights{Skills: 1.10, Qualifications: -0.10, Location: 0, Sector: 0}, true},
		{"component above one", Weights{Skills: 1.5, Qualifications: -0.5, Location: 0, Sector: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DefaultWeights(), cfg.Weights)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, "avsar.audit", cfg.KafkaTopic)
}

func TestFromEnv_WeightOverrides(t *testing.T) {
	t.Setenv("MATCH_WEIGHT_SKILLS", "0.25")
	t.Setenv("MATCH_WEIGHT_QUALIFICATIONS", "0.25")
	t.Setenv("MATCH_WEIGHT_LOCATION", "0.25")
	t.Setenv("MATCH_WEIGHT_SECTOR", "0.25")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Weights.Skills)
}

func TestFromEnv_RejectsUnbalancedWeights(t *testing.T) {
	t.Setenv("MATCH_WEIGHT_SKILLS", "0.90")

	_, err := FromEnv()
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestFromEnv_RejectsMalformedWeight(t *testing.T) {
	t.Setenv("MATCH_WEIGHT_SKILLS", "lots")

	_, err := FromEnv()
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestFromEnv_Flags(t *testing.T) {
	t.Setenv("AVSAR_ADDR", ":9999")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.True(t, cfg.SeedDemoData)
}
