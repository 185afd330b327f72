package scoring

// Recommendation tier boundaries.
const (
	maintenanceFloor = 80
	improvementFloor = 60
)

var maintenanceTips = []string{
	"Your resume covers the fundamentals well. Keep contact details current.",
	"Refresh recent roles with measurable outcomes before each application.",
	"Tailor the skills list to each posting rather than growing it.",
}

var improvementTips = []string{
	"Add any missing contact details: name, email, phone and location.",
	"Expand your work experience entries with concrete responsibilities.",
	"List more of the skills you use day to day in a dedicated section.",
	"Work relevant industry keywords into your experience descriptions.",
}

var restructuringTips = []string{
	"Restructure the document with clear Experience, Education and Skills headings.",
	"Add a contact block with your name, email, phone and location at the top.",
	"Describe at least two or three roles, each with what you did and achieved.",
	"Include your education history with degree and institution.",
	"Add a skills section listing tools and competencies, separated by commas.",
	"Use standard section names so applicant tracking systems can parse the document.",
}

// tipsFor returns the recommendation list for a score. Callers get a copy.
func tipsFor(score int) []string {
	var src []string
	switch {
	case score >= maintenanceFloor:
		src = maintenanceTips
	case score >= improvementFloor:
		src = improvementTips
	default:
		src = restructuringTips
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
