package matching

// Question identifiers scored by the engine. Submissions may carry
// additional questions; the engine ignores anything not listed here.
const (
	QuestionMajor          = "major"
	QuestionInterests      = "interests"
	QuestionGoals          = "goals"
	QuestionTimeCommitment = "time-commitment"
	QuestionExperience     = "experience"
)

// majorCategories maps each recognized major bucket to the club
// categories considered academically relevant for it.
var majorCategories = map[string][]string{
	"computer-science": {"Computer Science", "Artificial Intelligence", "Cybersecurity", "Data Science", "Hackathons", "Game Development"},
	"business":         {"Student Government", "Social Impact"},
	"design":           {"Design", "Game Development"},
	"engineering":      {"Computer Science", "Artificial Intelligence", "Blockchain & Cryptocurrency", "Quantum Computing"},
	"life-sciences":    {"Data Science", "Social Impact"},
	"social-sciences":  {"Diversity & Inclusion", "Social Impact", "Student Government"},
	"other":            {"Design", "Social Impact", "Diversity & Inclusion"},
}

// csCoreCategories are the categories that earn the full major score
// for a computer-science major; any other table hit earns the base score.
var csCoreCategories = []string{"Computer Science", "Artificial Intelligence", "Cybersecurity"}

// crossDisciplineCategories earn a flat bonus for any major that did
// not already match through the table.
var crossDisciplineCategories = []string{"Diversity & Inclusion", "Social Impact"}

// interestTags maps each recognized interest to the club tags it
// should resonate with. Each distinct tag overlap is worth
// pointsPerInterestTag.
var interestTags = map[string][]string{
	"programming":      {"programming", "hackathons", "ai", "blockchain", "cybersecurity"},
	"networking":       {"networking", "professional-development", "diversity"},
	"leadership":       {"student-government", "professional-development", "mentorship"},
	"research":         {"research", "ai", "quantum-computing", "data-science"},
	"creative":         {"ux-ui", "design", "game-development", "visual-design"},
	"entrepreneurship": {"hackathons", "blockchain", "innovation"},
	"social-impact":    {"social-good", "diversity", "community-service", "nonprofit"},
	"competition":      {"competition", "hackathons", "ctf", "programming"},
	"mentorship":       {"mentorship", "diversity", "professional-development"},
	"volunteering":     {"social-good", "community-service", "nonprofit"},
}

// interestCategoryBonuses award extra points when an interest lines up
// directly with a club's category rather than just its tags.
var interestCategoryBonuses = map[string][]string{
	"programming":   {"Computer Science", "Artificial Intelligence", "Hackathons"},
	"social-impact": {"Social Impact"},
}

// goalCategories maps each recognized goal to the club categories that
// serve it; each hit is worth pointsPerGoalCategory.
var goalCategories = map[string][]string{
	"career-preparation": {"Computer Science", "Data Science", "Cybersecurity", "Diversity & Inclusion"},
	"networking":         {"Diversity & Inclusion", "Student Government", "Hackathons"},
	"skill-building":     {"Computer Science", "Artificial Intelligence", "Design", "Game Development"},
	"leadership":         {"Student Government", "Hackathons", "Social Impact"},
	"portfolio":          {"Design", "Game Development", "Social Impact", "Hackathons"},
	"fun":                {"Game Development", "Hackathons", "Design"},
	"research":           {"Artificial Intelligence", "Quantum Computing", "Data Science"},
}

// goalSkillKeywords maps goals to keywords checked (case-insensitively)
// against the club's offered skills; a hit is worth pointsPerGoalSkill.
// Goals without an entry score on categories alone.
var goalSkillKeywords = map[string][]string{
	"career-preparation": {"Professional Networking", "Interview Preparation", "Career Development"},
	"skill-building":     {"Programming", "Design", "Technical", "Development"},
	"leadership":         {"Leadership", "Management", "Public Speaking"},
	"portfolio":          {"Portfolio", "Project", "Development"},
}

// timeCompatibility maps the user's weekly-availability bucket to the
// club-side descriptor words it is compatible with. Descriptors are
// substring-checked against the club's free-text time commitment.
var timeCompatibility = map[string][]string{
	"low":    {"Low", "Medium"},
	"medium": {"Low", "Medium", "High"},
	"high":   {"Medium", "High"},
}
