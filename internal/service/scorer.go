package service

import "github.com/lshigami/Pangolins/internal/model"

// ScoreSelection applies the exact-match rule: a selection is correct iff
// the set of selected answer IDs equals the set of the question's correct
// answer IDs. Extra selections (including IDs that do not belong to the
// question at all) and missing correct answers both fail. No partial credit.
func ScoreSelection(question *model.Question, selectedIDs []uint) bool {
	correctIDs := question.CorrectAnswerIDs()
	if len(correctIDs) == 0 {
		return false
	}
	correct := make(map[uint]bool, len(correctIDs))
	for _, id := range correctIDs {
		correct[id] = true
	}

	selected := make(map[uint]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	if len(selected) != len(correct) {
		return false
	}
	for id := range correct {
		if !selected[id] {
			return false
		}
	}
	return true
}
