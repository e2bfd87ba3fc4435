// Package matching implements the club compatibility scoring engine:
// pure functions that convert one user's survey answers into a ranked
// list of club recommendations.
//
// The engine is deterministic and stateless; it performs no I/O and
// never mutates its inputs, so any number of scoring runs may share a
// catalog concurrently without coordination.
package matching

import (
	"fmt"
	"sort"

	"github.com/venusmail/clubmatch/internal/domain/catalog"
)

// DefaultTopN is the number of clubs persisted per match record.
const DefaultTopN = 3

// Reason thresholds. These are shared between scoring and reason
// generation so the two cannot drift apart.
const (
	majorPerfectThreshold   = 15 // above this, the major is a direct fit
	majorCrossThreshold     = 5  // above this, a cross-discipline fit
	interestStrongThreshold = 20
	interestSharedThreshold = 10
	goalReasonThreshold     = 10
	timeReasonThreshold     = 10
	experienceThreshold     = 5
)

// ClubMatch pairs a club with its compatibility score and the
// human-readable reasons the score was awarded. Reasons follow
// component evaluation order, not score magnitude.
type ClubMatch struct {
	Club         catalog.Club
	Score        int
	MatchReasons []string
}

// ScoreClub computes the compatibility score between one club and one
// answer set. Components whose driving answer is absent or empty
// contribute 0 and add no reason.
func ScoreClub(club catalog.Club, answers AnswerSet) ClubMatch {
	score := 0
	var reasons []string

	if a, ok := answers[QuestionMajor]; ok {
		if major := a.single(); major != "" {
			s := majorScore(club, major)
			score += s
			if s > majorPerfectThreshold {
				reasons = append(reasons, fmt.Sprintf("Perfect major match for %s", major))
			} else if s > majorCrossThreshold {
				reasons = append(reasons, fmt.Sprintf("Good cross-discipline fit for %s", major))
			}
		}
	}

	if a, ok := answers[QuestionInterests]; ok {
		if interests := a.multi(); len(interests) > 0 {
			s := interestScore(club, interests)
			score += s
			if s > interestStrongThreshold {
				reasons = append(reasons, "Strong interest alignment")
			} else if s > interestSharedThreshold {
				reasons = append(reasons, "Some shared interests")
			}
		}
	}

	if a, ok := answers[QuestionGoals]; ok {
		if goals := a.multi(); len(goals) > 0 {
			s := goalScore(club, goals)
			score += s
			if s > goalReasonThreshold {
				reasons = append(reasons, "Matches your career goals")
			}
		}
	}

	if a, ok := answers[QuestionTimeCommitment]; ok {
		if commitment := a.single(); commitment != "" {
			s := timeScore(club, commitment)
			score += s
			if s > timeReasonThreshold {
				reasons = append(reasons, "Perfect time commitment match")
			}
		}
	}

	if a, ok := answers[QuestionExperience]; ok {
		if experience := a.single(); experience != "" {
			s := experienceScore(club, experience)
			score += s
			if s > experienceThreshold {
				reasons = append(reasons, "Great for your experience level")
			}
		}
	}

	return ClubMatch{Club: club, Score: score, MatchReasons: reasons}
}

// ScoreAllClubs scores every club in the catalog against the answer
// set, returning exactly one ClubMatch per club in catalog order.
// Zero-score entries are included; filtering is the caller's job.
func ScoreAllClubs(clubs []catalog.Club, answers AnswerSet) []ClubMatch {
	scored := make([]ClubMatch, len(clubs))
	for i, club := range clubs {
		scored[i] = ScoreClub(club, answers)
	}
	return scored
}

// TopMatches returns the n highest-scoring matches, score-descending.
// The sort is stable, so ties keep catalog order. The input slice is
// not mutated.
func TopMatches(scored []ClubMatch, n int) []ClubMatch {
	if n <= 0 {
		return nil
	}
	ranked := make([]ClubMatch, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// GenerateMatches scores the catalog and projects the top-n club IDs,
// score-descending. This is the orchestration entry point for callers
// that only need identifiers to persist or display.
func GenerateMatches(clubs []catalog.Club, answers AnswerSet, n int) []string {
	top := TopMatches(ScoreAllClubs(clubs, answers), n)
	ids := make([]string, len(top))
	for i, m := range top {
		ids[i] = m.Club.ID
	}
	return ids
}
