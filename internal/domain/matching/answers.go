package matching

import "github.com/venusmail/clubmatch/internal/domain/model"

// Answer holds one resolved survey response. Single-choice answers set
// Value; multiple-choice answers set Values.
type Answer struct {
	Value  string
	Values []string
}

// single returns the answer as a single choice. A multiple-choice
// answer degrades to its first selection rather than failing.
func (a Answer) single() string {
	if a.Value != "" {
		return a.Value
	}
	if len(a.Values) > 0 {
		return a.Values[0]
	}
	return ""
}

// multi returns the answer as a selection list. A single-choice answer
// degrades to a one-element list.
func (a Answer) multi() []string {
	if len(a.Values) > 0 {
		return a.Values
	}
	if a.Value != "" {
		return []string{a.Value}
	}
	return nil
}

// AnswerSet maps question IDs to resolved answers for one user.
type AnswerSet map[string]Answer

// NewAnswerSet resolves submitted answers into a lookup set. When a
// question ID repeats within a submission, the last answer wins.
func NewAnswerSet(answers []model.SurveyAnswer) AnswerSet {
	set := make(AnswerSet, len(answers))
	for _, a := range answers {
		set[a.QuestionID] = Answer{Value: a.Value, Values: a.Values}
	}
	return set
}
