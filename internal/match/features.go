package match

import (
	"strings"

	"avsar/internal/profile"
)

// FeatureSet holds the normalized per-pair comparison values consumed by the
// scorer. Every factor is in [0,1].
type FeatureSet struct {
	SkillOverlap         float64
	QualificationOverlap float64
	LocationMatch        float64
	SectorMatch          float64
}

// Extract derives the feature set for one (candidate, posting) pair. Pure
// function: no I/O, no side effects. Missing optional fields degrade to
// neutral values, never to a failure.
func Extract(c *profile.Candidate, p *profile.Posting) FeatureSet {
	return FeatureSet{
		SkillOverlap:         skillOverlap(c.Skills, p.RequiredSkills),
		QualificationOverlap: qualificationOverlap(c.Qualifications, p.PreferredQualifications),
		LocationMatch:        locationMatch(c, p),
		SectorMatch:          sectorMatch(c.PreferredSectors, p.Sector),
	}
}

// skillOverlap is the share of required skills the candidate covers. A
// posting with no explicit requirement excludes nobody on this axis.
func skillOverlap(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 1
	}
	have := toSet(candidateSkills)
	matched := 0
	for _, skill := range requiredSkills {
		if have[normalizeTag(skill)] {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkills))
}

// qualificationOverlap is neutral (1) when the posting states no preference.
func qualificationOverlap(candidateQuals, preferredQuals []string) float64 {
	if len(preferredQuals) == 0 {
		return 1
	}
	have := toSet(candidateQuals)
	matched := 0
	for _, q := range preferredQuals {
		if have[normalizeTag(q)] {
			matched++
		}
	}
	return float64(matched) / float64(len(preferredQuals))
}

// locationMatch is satisfied by remote postings, or by the posting location
// appearing in the candidate's preferences or current location.
func locationMatch(c *profile.Candidate, p *profile.Posting) float64 {
	if p.RemoteAllowed {
		return 1
	}
	loc := normalizeTag(p.Location)
	if loc == "" {
		return 0
	}
	if normalizeTag(c.CurrentLocation) == loc {
		return 1
	}
	for _, pref := range c.LocationPreference {
		if normalizeTag(pref) == loc {
			return 1
		}
	}
	return 0
}

// sectorMatch is neutral (1) when the candidate states no sector preference.
func sectorMatch(preferredSectors []string, sector string) float64 {
	if len(preferredSectors) == 0 {
		return 1
	}
	want := normalizeTag(sector)
	for _, s := range preferredSectors {
		if normalizeTag(s) == want {
			return 1
		}
	}
	return 0
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[normalizeTag(t)] = true
	}
	return set
}
