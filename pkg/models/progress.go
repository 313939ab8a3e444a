package models

import (
	"database/sql"
	"time"
)

// Invariants of a progress row. Weight is always clamped to
// [MinWeight, MaxWeight]; accuracy is an exponential moving average with
// smoothing factor AccuracyAlpha, seeded by the first observation.
const (
	DefaultWeight = 10
	MinWeight     = 1
	MaxWeight     = 999
	AccuracyAlpha = 0.2
)

// UserWordProgress tracks one user's mastery of one word. Rows are created
// lazily on the first recorded answer.
type UserWordProgress struct {
	ID            int             `json:"id" db:"id"`
	UserID        int64           `json:"user_id" db:"user_id"`
	WordID        int             `json:"word_id" db:"word_id"`
	Weight        int             `json:"weight" db:"weight"`
	Accuracy      sql.NullFloat64 `json:"accuracy" db:"accuracy"`
	LastPracticed sql.NullTime    `json:"last_practiced" db:"last_practiced"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
