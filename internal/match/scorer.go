package match

import (
	"avsar/internal/platform/config"
)

// Score is the published compatibility score with its per-factor breakdown.
// Overall is the exact weighted sum of the four factors, each in [0,1], so
// Overall itself is in [0,1]. Deterministic given identical inputs.
type Score struct {
	Overall       float64
	Skills        float64
	Qualification float64
	Location      float64
	Sector        float64
}

// Scorer combines a feature set into a score using configured weights.
// Weights are validated at configuration load; a set not summing to 1.0 never
// reaches here.
type Scorer struct {
	weights config.Weights
}

func NewScorer(weights config.Weights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights}, nil
}

// Score computes the weighted linear combination. Zero overlap on a non-empty
// skill requirement drags the score down hard; skill fit is the primary
// gating factor.
func (s *Scorer) Score(fs FeatureSet) Score {
	return Score{
		Overall: s.weights.Skills*fs.SkillOverlap +
			s.weights.Qualifications*fs.QualificationOverlap +
			s.weights.Location*fs.LocationMatch +
			s.weights.Sector*fs.SectorMatch,
		Skills:        fs.SkillOverlap,
		Qualification: fs.QualificationOverlap,
		Location:      fs.LocationMatch,
		Sector:        fs.SectorMatch,
	}
}
