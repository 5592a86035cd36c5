package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"avsar/internal/profile"
)

func TestExtract_SkillOverlap(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		required []string
		want     float64
	}{
		{
			name:     "partial coverage",
			skills:   []string{"React", "Node.js"},
			required: []string{"React", "Node.js", "SQL"},
			want:     2.0 / 3.0,
		},
		{
			name:     "full coverage",
			skills:   []string{"Python", "SQL"},
			required: []string{"Python", "SQL"},
			want:     1,
		},
		{
			name:     "no coverage",
			skills:   []string{"Marketing"},
			required: []string{"Python", "SQL"},
			want:     0,
		},
		{
			name:     "no requirement excludes nobody",
			skills:   []string{"Python"},
			required: nil,
			want:     1,
		},
		{
			name:     "comparison ignores case and whitespace",
			skills:   []string{" python ", "SQL"},
			required: []string{"Python", "sql"},
			want:     1,
		},
		{
			name:     "candidate extras never exceed full score",
			skills:   []string{"Python", "SQL", "Go", "Rust"},
			required: []string{"Python"},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &profile.Candidate{Skills: tt.skills}
			p := &profile.Posting{RequiredSkills: tt.required}
			fs := Extract(c, p)
			assert.InDelta(t, tt.want, fs.SkillOverlap, 1e-12)
		})
	}
}

func TestExtract_QualificationOverlap(t *testing.T) {
	tests := []struct {
		name      string
		quals     []string
		preferred []string
		want      float64
	}{
		{
			name:      "no preference is neutral",
			quals:     []string{"B.Tech"},
			preferred: nil,
			want:      1,
		},
		{
			name:      "half covered",
			quals:     []string{"B.Tech"},
			preferred: []string{"B.Tech", "MBA"},
			want:      0.5,
		},
		{
			name:      "none covered",
			quals:     []string{"B.Com"},
			preferred: []string{"B.Tech", "MBA"},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &profile.Candidate{Qualifications: tt.quals}
			p := &profile.Posting{PreferredQualifications: tt.preferred}
			fs := Extract(c, p)
			assert.InDelta(t, tt.want, fs.QualificationOverlap, 1e-12)
		})
	}
}

func TestExtract_LocationMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate *profile.Candidate
		posting   *profile.Posting
		want      float64
	}{
		{
			name:      "remote posting always matches",
			candidate: &profile.Candidate{LocationPreference: []string{"Chennai"}},
			posting:   &profile.Posting{Location: "Delhi", RemoteAllowed: true},
			want:      1,
		},
		{
			name:      "posting in preferred city",
			candidate: &profile.Candidate{LocationPreference: []string{"Mumbai", "Pune"}},
			posting:   &profile.Posting{Location: "Pune"},
			want:      1,
		},
		{
			name:      "posting in current city",
			candidate: &profile.Candidate{CurrentLocation: "Bangalore"},
			posting:   &profile.Posting{Location: "Bangalore"},
			want:      1,
		},
		{
			name:      "no overlap and not remote",
			candidate: &profile.Candidate{CurrentLocation: "Jaipur", LocationPreference: []string{"Jaipur"}},
			posting:   &profile.Posting{Location: "Hyderabad"},
			want:      0,
		},
		{
			name:      "posting without location and not remote",
			candidate: &profile.Candidate{LocationPreference: []string{"Delhi"}},
			posting:   &profile.Posting{},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := Extract(tt.candidate, tt.posting)
			assert.Equal(t, tt.want, fs.LocationMatch)
		})
	}
}

func TestExtract_SectorMatch(t *testing.T) {
	tests := []struct {
		name      string
		preferred []string
		sector    string
		want      float64
	}{
		{name: "no preference is neutral", preferred: nil, sector: "Technology", want: 1},
		{name: "preferred sector", preferred: []string{"Finance", "Technology"}, sector: "technology", want: 1},
		{name: "other sector", preferred: []string{"Finance"}, sector: "Healthcare", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &profile.Candidate{PreferredSectors: tt.preferred}
			p := &profile.Posting{Sector: tt.sector}
			fs := Extract(c, p)
			assert.Equal(t, tt.want, fs.SectorMatch)
		})
	}
}

func TestExtract_AllFactorsBounded(t *testing.T) {
	c := &profile.Candidate{
		Skills:             []string{"Python", "SQL"},
		Qualifications:     []string{"B.Tech"},
		LocationPreference: []string{"Delhi"},
		CurrentLocation:    "Delhi",
		PreferredSectors:   []string{"Technology"},
	}
	p := &profile.Posting{
		RequiredSkills:          []string{"Python", "Go", "Rust"},
		PreferredQualifications: []string{"MBA"},
		Location:                "Mumbai",
		Sector:                  "Finance",
	}
	fs := Extract(c, p)
	for name, v := range map[string]float64{
		"skill":         fs.SkillOverlap,
		"qualification": fs.QualificationOverlap,
		"location":      fs.LocationMatch,
		"sector":        fs.SectorMatch,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}
