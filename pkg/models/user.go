package models

import "time"

// User represents an application user. Authentication is handled by the
// surrounding layer; the core only needs the id and notification settings.
type User struct {
	ID                  int64     `json:"id" db:"id"`
	Username            string    `json:"username" db:"username"`
	ChatID              int64     `json:"chat_id" db:"chat_id"` // Telegram chat for reminders, 0 if none
	WordsPerDay         int       `json:"words_per_day" db:"words_per_day"`
	NotificationHour    int       `json:"notification_hour" db:"notification_hour"`
	NotificationEnabled bool      `json:"notification_enabled" db:"notification_enabled"`
	IsAdmin             bool      `json:"is_admin" db:"is_admin"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
