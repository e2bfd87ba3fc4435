package matching

import (
	"testing"

	"github.com/venusmail/clubmatch/internal/domain/catalog"
)

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

func clubByID(t *testing.T, c *catalog.Catalog, id string) catalog.Club {
	t.Helper()
	club, ok := c.ByID(id)
	if !ok {
		t.Fatalf("club %q not in catalog", id)
	}
	return club
}

func TestMajorScore(t *testing.T) {
	c := mustCatalog(t)

	cases := []struct {
		name  string
		major string
		club  string
		want  int
	}{
		{"cs major with core cs club", "computer-science", "acm", 25},
		{"cs major with core ai club", "computer-science", "ai", 25},
		{"cs major with core security club", "computer-science", "cyber", 25},
		{"cs major with non-core table hit", "computer-science", "hack", 20},
		{"cs major cross-discipline fallback", "computer-science", "blackInTech", 10},
		{"design major with design club", "design", "design", 20},
		{"design major with game dev club", "design", "vgdc", 20},
		{"business major cross-discipline fallback", "business", "blackInTech", 10},
		{"unknown major with cs club", "nursing", "acm", 0},
		{"unknown major cross-discipline fallback", "nursing", "wics", 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := majorScore(clubByID(t, c, tc.club), tc.major)
			if got != tc.want {
				t.Errorf("majorScore(%s, %s) = %d, want %d", tc.club, tc.major, got, tc.want)
			}
		})
	}
}

func TestInterestScore(t *testing.T) {
	c := mustCatalog(t)

	cases := []struct {
		name      string
		interests []string
		club      string
		want      int
	}{
		{"single tag overlap plus category bonus", []string{"programming"}, "acm", 8},
		{"two interests accumulate", []string{"programming", "competition"}, "acm", 14},
		{"tag overlap without bonus", []string{"programming"}, "cyber", 3},
		{"no overlap", []string{"creative"}, "cyber", 0},
		{"mentorship against diversity club", []string{"mentorship"}, "wics", 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := interestScore(clubByID(t, c, tc.club), tc.interests)
			if got != tc.want {
				t.Errorf("interestScore(%s, %v) = %d, want %d", tc.club, tc.interests, got, tc.want)
			}
		})
	}
}

func TestInterestScoreCappedAtMax(t *testing.T) {
	club := catalog.Club{
		ID:       "synthetic",
		Category: "Computer Science",
		Tags:     []string{"programming", "hackathons", "ai", "blockchain", "cybersecurity"},
	}
	interests := []string{"programming", "competition", "entrepreneurship", "research"}

	// Uncapped this would be 35 (20 + 6 + 6 + 3).
	if got := interestScore(club, interests); got != maxInterestScore {
		t.Errorf("interestScore = %d, want cap %d", got, maxInterestScore)
	}
}

func TestGoalScore(t *testing.T) {
	c := mustCatalog(t)

	cases := []struct {
		name  string
		goals []string
		club  string
		want  int
	}{
		{"category hit only", []string{"career-preparation"}, "acm", 4},
		{"category and skill keyword", []string{"career-preparation"}, "blackInTech", 6},
		{"no relevance", []string{"research"}, "icssc", 0},
		{"multiple goals accumulate", []string{"skill-building", "portfolio"}, "vgdc", 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := goalScore(clubByID(t, c, tc.club), tc.goals)
			if got != tc.want {
				t.Errorf("goalScore(%s, %v) = %d, want %d", tc.club, tc.goals, got, tc.want)
			}
		})
	}
}

func TestGoalScoreCappedAtMax(t *testing.T) {
	club := catalog.Club{
		ID:       "synthetic",
		Category: "Hackathons",
		SkillsOffered: []string{
			"Professional Networking",
			"Leadership Development",
			"Project Portfolio",
		},
	}
	allGoals := []string{
		"career-preparation", "networking", "skill-building",
		"leadership", "portfolio", "fun", "research",
	}

	// Uncapped this would be 24 (16 from categories + 8 from skills).
	if got := goalScore(club, allGoals); got != maxGoalScore {
		t.Errorf("goalScore = %d, want cap %d", got, maxGoalScore)
	}
}

func TestTimeScore(t *testing.T) {
	c := mustCatalog(t)

	cases := []struct {
		name       string
		commitment string
		club       string
		want       int
	}{
		{"medium user always earns full score on a hit", "medium", "acm", 15},
		{"low user partially fits medium club", "low", "acm", 12},
		{"high user partially fits low-medium club", "high", "blackInTech", 12},
		{"low user cannot fit high club", "low", "commit-the-change", 0},
		{"unknown bucket scores zero", "weekends-only", "acm", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := timeScore(clubByID(t, c, tc.club), tc.commitment)
			if got != tc.want {
				t.Errorf("timeScore(%s, %s) = %d, want %d", tc.club, tc.commitment, got, tc.want)
			}
		})
	}
}

func TestExperienceScore(t *testing.T) {
	c := mustCatalog(t)

	cases := []struct {
		name       string
		experience string
		club       string
		want       int
	}{
		{"beginner with all-levels club", "beginner", "acm", 10},
		{"beginner with open club", "beginner", "icssc", 8},
		{"beginner with advanced club", "beginner", "commit-the-change", 3},
		{"intermediate exact", "intermediate", "quantum", 10},
		{"intermediate adjacent", "intermediate", "data", 7},
		{"intermediate fallback", "intermediate", "icssc", 5},
		{"advanced with intermediate club", "advanced", "quantum", 10},
		{"advanced mismatch", "advanced", "icssc", 4},
		{"unknown bucket gets neutral score", "expert", "acm", 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := experienceScore(clubByID(t, c, tc.club), tc.experience)
			if got != tc.want {
				t.Errorf("experienceScore(%s, %s) = %d, want %d", tc.club, tc.experience, got, tc.want)
			}
		})
	}
}
