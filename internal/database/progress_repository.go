package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/example/polbot/pkg/models"
)

// ProgressRepository handles database operations for per-user word progress
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// GetByUserAndWord returns the progress row for a (user, word) pair, or nil
// if the word has never been practiced by that user.
func (r *ProgressRepository) GetByUserAndWord(userID int64, wordID int) (*models.UserWordProgress, error) {
	var progress models.UserWordProgress
	query := DB.Rebind("SELECT * FROM user_word_progress WHERE user_id = ? AND word_id = ?")
	err := DB.Get(&progress, query, userID, wordID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %v", err)
	}
	return &progress, nil
}

// GetAllForUser returns every progress row for a user
func (r *ProgressRepository) GetAllForUser(userID int64) ([]models.UserWordProgress, error) {
	var rows []models.UserWordProgress
	query := DB.Rebind("SELECT * FROM user_word_progress WHERE user_id = ? ORDER BY weight DESC")
	err := DB.Select(&rows, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress rows: %v", err)
	}
	return rows, nil
}

// UpsertAnswer creates the progress row if absent and applies one answer
// outcome in a single transaction: weight is shifted by delta and clamped,
// accuracy is folded into the running average, last_practiced is stamped.
// Concurrent answers for the same pair serialize on the row.
func (r *ProgressRepository) UpsertAnswer(userID int64, wordID int, delta int, correct bool, now time.Time) error {
	observed := 0.0
	if correct {
		observed = 1.0
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	insert := "INSERT OR IGNORE INTO user_word_progress (user_id, word_id, weight) VALUES (?, ?, ?)"
	clamp := fmt.Sprintf("MIN(%d, MAX(%d, weight + ?))", models.MaxWeight, models.MinWeight)
	if DB.DriverName() == "postgres" {
		insert = "INSERT INTO user_word_progress (user_id, word_id, weight) VALUES (?, ?, ?) ON CONFLICT (user_id, word_id) DO NOTHING"
		clamp = fmt.Sprintf("LEAST(%d, GREATEST(%d, weight + ?))", models.MaxWeight, models.MinWeight)
	}

	if _, err := tx.Exec(tx.Rebind(insert), userID, wordID, models.DefaultWeight); err != nil {
		return fmt.Errorf("failed to ensure progress row: %v", err)
	}

	update := fmt.Sprintf(`
		UPDATE user_word_progress SET
			weight = %s,
			accuracy = CASE WHEN accuracy IS NULL THEN ? ELSE (1.0 - ?) * accuracy + ? * ? END,
			last_practiced = ?,
			updated_at = ?
		WHERE user_id = ? AND word_id = ?
	`, clamp)
	_, err = tx.Exec(
		tx.Rebind(update),
		delta,
		observed,
		models.AccuracyAlpha,
		models.AccuracyAlpha,
		observed,
		now,
		now,
		userID,
		wordID,
	)
	if err != nil {
		return fmt.Errorf("failed to record answer: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}

// CountDue returns how many answerable words the user has either never
// practiced or last practiced before the cutoff. Used for reminders.
func (r *ProgressRepository) CountDue(userID int64, cutoff time.Time) (int, error) {
	query := DB.Rebind(`
		SELECT COUNT(*)
		FROM words w
		LEFT JOIN user_word_progress p ON p.word_id = w.id AND p.user_id = ?
		WHERE w.voc <> '' AND w.meaning <> ''
		  AND (p.last_practiced IS NULL OR p.last_practiced < ?)
	`)
	var count int
	err := DB.Get(&count, query, userID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to count due words: %v", err)
	}
	return count, nil
}
