package profile

import "time"

// Category is the reservation category used for equity-aware tie-breaking.
// It never excludes a candidate from matching.
type Category string

const (
	CategoryGeneral Category = "General"
	CategoryOBC     Category = "OBC"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
)

// DistrictType classifies the candidate's home district.
type DistrictType string

const (
	DistrictUrban        DistrictType = "Urban"
	DistrictRural        DistrictType = "Rural"
	DistrictAspirational DistrictType = "Aspirational"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryGeneral, CategoryOBC, CategorySC, CategoryST:
		return true
	}
	return false
}

// ValidDistrictType reports whether d is one of the known district types.
func ValidDistrictType(d DistrictType) bool {
	switch d {
	case DistrictUrban, DistrictRural, DistrictAspirational:
		return true
	}
	return false
}

// Candidate is a registered individual seeking an internship placement.
// Profile fields change only through re-registration, never through matching.
type Candidate struct {
	ID    string
	Name  string
	Email string
	Phone string

	Skills             []string
	Qualifications     []string
	LocationPreference []string
	CurrentLocation    string

	Category          Category
	DistrictType      DistrictType
	PastParticipation bool
	ExperienceMonths  int
	PreferredSectors  []string
	Languages         []string

	RegisteredAt time.Time
}

// Posting is a registered internship opportunity with bounded seats.
// Remaining capacity is tracked by the allocation store, not here; Capacity is
// the immutable total ever offered.
type Posting struct {
	ID           string
	CompanyName  string
	ContactEmail string
	ContactPhone string

	InternshipTitle string
	Description     string

	RequiredSkills          []string
	PreferredQualifications []string
	Location                string
	Sector                  string

	Capacity       int
	DurationMonths int
	StipendRange   string
	RemoteAllowed  bool

	RegisteredAt time.Time
}
