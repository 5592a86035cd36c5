package registration

import (
	"context"
	"fmt"
)

// SeedDemoData loads a small demo dataset through the normal registration
// path so every invariant (validation, capacity seeding, audit) applies to
// seeded entities too. Enabled with SEED_DEMO_DATA=true.
func SeedDemoData(ctx context.Context, svc *Service) error {
	candidates := []CandidateInput{
		{
			Name:               "Arjun Sharma",
			Email:              "arjun.sharma@email.com",
			Phone:              "+91-9876543210",
			Skills:             []string{"Python", "Machine Learning", "Data Analysis", "SQL", "Django"},
			Qualifications:     []string{"B.Tech Computer Science"},
			LocationPreference: []string{"Delhi", "Bangalore", "Mumbai"},
			CurrentLocation:    "Delhi",
			Category:           "General",
			DistrictType:       "Urban",
			ExperienceMonths:   6,
			PreferredSectors:   []string{"Technology", "Data Science"},
			Languages:          []string{"English", "Hindi"},
		},
		{
			Name:               "Priya Patel",
			Email:              "priya.patel@email.com",
			Phone:              "+91-9876543211",
			Skills:             []string{"Digital Marketing", "Content Writing", "Social Media", "SEO", "Analytics"},
			Qualifications:     []string{"MBA Marketing"},
			LocationPreference: []string{"Gujarat", "Mumbai", "Pune"},
			CurrentLocation:    "Ahmedabad",
			Category:           "OBC",
			DistrictType:       "Rural",
			ExperienceMonths:   12,
			PreferredSectors:   []string{"Marketing", "E-commerce"},
			Languages:          []string{"English", "Hindi", "Gujarati"},
		},
		{
			Name:               "Raj Kumar Singh",
			Email:              "raj.kumar@email.com",
			Phone:              "+91-9876543212",
			Skills:             []string{"Financial Analysis", "Excel", "Power BI", "Risk Management", "Investment"},
			Qualifications:     []string{"B.Com", "CFA Level 1"},
			LocationPreference: []string{"Bihar", "Delhi", "Kolkata"},
			CurrentLocation:    "Patna",
			Category:           "SC",
			DistrictType:       "Aspirational",
			PastParticipation:  true,
			ExperienceMonths:   3,
			PreferredSectors:   []string{"Finance", "Banking"},
			Languages:          []string{"English", "Hindi"},
		},
		{
			Name:               "Ananya Reddy",
			Email:              "ananya.reddy@email.com",
			Phone:              "+91-9876543213",
			Skills:             []string{"UI/UX Design", "Figma", "Adobe Creative Suite", "Prototyping", "User Research"},
			Qualifications:     []string{"B.Des Interaction Design"},
			LocationPreference: []string{"Bangalore", "Hyderabad", "Chennai"},
			CurrentLocation:    "Hyderabad",
			Category:           "General",
			DistrictType:       "Urban",
			ExperienceMonths:   8,
			PreferredSectors:   []string{"Design", "Technology"},
			Languages:          []string{"English", "Telugu", "Hindi"},
		},
	}

	industries := []IndustryInput{
		{
			CompanyName:             "TechCorp India",
			ContactEmail:            "hr@techcorp.com",
			InternshipTitle:         "Data Science Intern",
			Description:             "Work on ML models and data analytics projects",
			RequiredSkills:          []string{"Python", "Machine Learning", "Data Analysis", "Statistics"},
			PreferredQualifications: []string{"B.Tech", "M.Tech", "MCA"},
			Location:                "Delhi",
			Sector:                  "Technology",
			Capacity:                5,
			DurationMonths:          6,
			StipendRange:            "₹25,000 - ₹35,000",
			RemoteAllowed:           true,
		},
		{
			CompanyName:             "FinanceHub Solutions",
			ContactEmail:            "careers@financehub.com",
			InternshipTitle:         "Financial Analyst Intern",
			Description:             "Support investment research and financial modeling",
			RequiredSkills:          []string{"Financial Analysis", "Excel", "Risk Management", "Investment"},
			PreferredQualifications: []string{"B.Com", "MBA Finance", "CA"},
			Location:                "Mumbai",
			Sector:                  "Finance",
			Capacity:                3,
			DurationMonths:          4,
			StipendRange:            "₹20,000 - ₹30,000",
		},
		{
			CompanyName:             "Creative Design Studio",
			ContactEmail:            "hello@creativestudio.com",
			InternshipTitle:         "UX Design Intern",
			Description:             "Design user interfaces for mobile and web applications",
			RequiredSkills:          []string{"UI/UX Design", "Figma", "Prototyping", "User Research"},
			PreferredQualifications: []string{"B.Des", "M.Des", "Diploma in Design"},
			Location:                "Bangalore",
			Sector:                  "Design",
			Capacity:                2,
			DurationMonths:          5,
			StipendRange:            "₹18,000 - ₹28,000",
			RemoteAllowed:           true,
		},
		{
			CompanyName:             "Digital Marketing Pro",
			ContactEmail:            "jobs@digitalmarketingpro.com",
			InternshipTitle:         "Digital Marketing Intern",
			Description:             "Manage social media campaigns and content creation",
			RequiredSkills:          []string{"Digital Marketing", "Social Media", "Content Writing", "SEO"},
			PreferredQualifications: []string{"MBA Marketing", "BBA", "Mass Communication"},
			Location:                "Ahmedabad",
			Sector:                  "Marketing",
			Capacity:                4,
			DurationMonths:          3,
			StipendRange:            "₹15,000 - ₹25,000",
			RemoteAllowed:           true,
		},
	}

	for _, in := range candidates {
		if _, err := svc.RegisterCandidate(ctx, in); err != nil {
			return fmt.Errorf("seed candidate %q: %w", in.Name, err)
		}
	}
	for _, in := range industries {
		if _, err := svc.RegisterIndustry(ctx, in); err != nil {
			return fmt.Errorf("seed industry %q: %w", in.CompanyName, err)
		}
	}
	return nil
}
