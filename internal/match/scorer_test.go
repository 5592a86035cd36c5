package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avsar/internal/platform/config"
	dErrors "avsar/pkg/domain-errors"
)

func TestNewScorer_RejectsBadWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights config.Weights
	}{
		{
			name:    "sum below one",
			weights: config.Weights{Skills: 0.45, Qualifications: 0.20, Location: 0.20, Sector: 0.10},
		},
		{
			name:    "sum above one",
			weights: config.Weights{Skills: 0.50, Qualifications: 0.25, Location: 0.20, Sector: 0.15},
		},
		{
			name:    "negative weight",
			weights: config.Weights{Skills: 1.20, Qualifications: -0.20, Location: 0, Sector: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScorer(tt.weights)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func TestScorer_WeightedSum(t *testing.T) {
	scorer, err := NewScorer(config.DefaultWeights())
	require.NoError(t, err)

	fs := FeatureSet{
		SkillOverlap:         2.0 / 3.0,
		QualificationOverlap: 1,
		LocationMatch:        1,
		SectorMatch:          0,
	}
	score := scorer.Score(fs)

	want := 0.45*(2.0/3.0) + 0.20*1 + 0.20*1 + 0.15*0
	assert.Equal(t, want, score.Overall)
	assert.Equal(t, fs.SkillOverlap, score.Skills)
	assert.Equal(t, fs.QualificationOverlap, score.Qualification)
	assert.Equal(t, fs.LocationMatch, score.Location)
	assert.Equal(t, fs.SectorMatch, score.Sector)
}

func TestScorer_OverallBounds(t *testing.T) {
	scorer, err := NewScorer(config.DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, 0.0, scorer.Score(FeatureSet{}).Overall)
	assert.InDelta(t, 1.0, scorer.Score(FeatureSet{
		SkillOverlap:         1,
		QualificationOverlap: 1,
		LocationMatch:        1,
		SectorMatch:          1,
	}).Overall, 1e-12)
}

func TestScorer_Deterministic(t *testing.T) {
	scorer, err := NewScorer(config.DefaultWeights())
	require.NoError(t, err)

	fs := FeatureSet{SkillOverlap: 0.4, QualificationOverlap: 0.5, LocationMatch: 1, SectorMatch: 0}
	first := scorer.Score(fs)
	for range 100 {
		assert.Equal(t, first, scorer.Score(fs))
	}
}
