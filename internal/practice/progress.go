package practice

import (
	"fmt"
	"time"
)

// Weight adjustment per answer. Asymmetric: a correct answer lowers priority
// a little, a mistake raises it more, emphasizing error-driven repetition.
const (
	CorrectDelta   = -1
	IncorrectDelta = 2
)

// AnswerDelta returns the weight adjustment for an answer outcome.
func AnswerDelta(correct bool) int {
	if correct {
		return CorrectDelta
	}
	return IncorrectDelta
}

// RecordAnswer folds an answer outcome into the user's progress for a word.
// The store performs the clamp-and-average update atomically; referential
// errors for unknown word ids surface unchanged from the store.
func RecordAnswer(store ProgressStore, userID int64, wordID int, correct bool, now time.Time) error {
	if wordID <= 0 {
		return fmt.Errorf("invalid word id %d", wordID)
	}
	if now.IsZero() {
		now = time.Now()
	}
	return store.UpsertAnswer(userID, wordID, AnswerDelta(correct), correct, now)
}
