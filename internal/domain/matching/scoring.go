package matching

import (
	"strings"

	"github.com/venusmail/clubmatch/internal/domain/catalog"
)

// Component score caps and point values. Every component is
// independently non-negative and capped, so a total can never exceed
// the sum of the caps (100).
const (
	// Major alignment (max 25).
	majorCoreScore  = 25 // computer-science major hitting a CS-core category
	majorTableScore = 20 // any other table hit
	majorCrossScore = 10 // cross-disciplinary bonus categories

	// Interest alignment (max 30).
	maxInterestScore      = 30
	pointsPerInterestTag  = 3
	interestCategoryBonus = 5

	// Goal alignment (max 20).
	maxGoalScore          = 20
	pointsPerGoalCategory = 4
	pointsPerGoalSkill    = 2

	// Time-commitment compatibility (max 15).
	timeExactScore   = 15 // "medium" users fit every club bucket
	timePartialScore = 12

	// Experience-level compatibility (max 10).
	expFullScore     = 10
	expOpenScore     = 8
	expAdjacentScore = 7
	expDefaultScore  = 5
	expAdvMismatch   = 4
	expBegMismatch   = 3
)

func majorScore(club catalog.Club, major string) int {
	for _, category := range majorCategories[major] {
		if category == club.Category {
			if major == "computer-science" && containsString(csCoreCategories, club.Category) {
				return majorCoreScore
			}
			return majorTableScore
		}
	}
	if containsString(crossDisciplineCategories, club.Category) {
		return majorCrossScore
	}
	return 0
}

func interestScore(club catalog.Club, interests []string) int {
	score := 0
	for _, interest := range interests {
		relevant := interestTags[interest]
		for _, tag := range club.Tags {
			if containsString(relevant, tag) {
				score += pointsPerInterestTag
			}
		}
		if containsString(interestCategoryBonuses[interest], club.Category) {
			score += interestCategoryBonus
		}
	}
	return minInt(score, maxInterestScore)
}

func goalScore(club catalog.Club, goals []string) int {
	score := 0
	for _, goal := range goals {
		if containsString(goalCategories[goal], club.Category) {
			score += pointsPerGoalCategory
		}
		// Skill keywords are checked independently of the category hit.
		if offersAnySkill(club.SkillsOffered, goalSkillKeywords[goal]) {
			score += pointsPerGoalSkill
		}
	}
	return minInt(score, maxGoalScore)
}

func timeScore(club catalog.Club, commitment string) int {
	clubTime := strings.ToLower(club.TimeCommitment)
	for _, compatible := range timeCompatibility[commitment] {
		if strings.Contains(clubTime, strings.ToLower(compatible)) {
			// Medium availability fits every club bucket, so it earns
			// the full component score; low/high are partial fits.
			if commitment == "medium" {
				return timeExactScore
			}
			return timePartialScore
		}
	}
	return 0
}

func experienceScore(club catalog.Club, experience string) int {
	level := strings.ToLower(club.MembershipLevel)
	switch experience {
	case "beginner":
		switch {
		case strings.Contains(level, "beginner") || strings.Contains(level, "all"):
			return expFullScore
		case strings.Contains(level, "open"):
			return expOpenScore
		default:
			return expBegMismatch
		}
	case "intermediate":
		switch {
		case strings.Contains(level, "intermediate") || strings.Contains(level, "all"):
			return expFullScore
		case strings.Contains(level, "beginner") || strings.Contains(level, "advanced"):
			return expAdjacentScore
		default:
			return expDefaultScore
		}
	case "advanced":
		switch {
		case strings.Contains(level, "advanced") || strings.Contains(level, "intermediate"):
			return expFullScore
		case strings.Contains(level, "all"):
			return expOpenScore
		default:
			return expAdvMismatch
		}
	default:
		return expDefaultScore
	}
}

// offersAnySkill reports whether any offered skill contains any of the
// given keywords, case-insensitively.
func offersAnySkill(skills, keywords []string) bool {
	for _, skill := range skills {
		lowered := strings.ToLower(skill)
		for _, kw := range keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
