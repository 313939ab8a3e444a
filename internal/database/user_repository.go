package database

import (
	"database/sql"
	"fmt"

	"github.com/example/polbot/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByID returns a user by ID
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	query := DB.Rebind("SELECT * FROM users WHERE id = ?")
	err := DB.Get(&user, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %v", err)
	}
	return &user, nil
}

// GetOrCreate returns the user with the given username, creating one with
// default settings if it doesn't exist yet.
func (r *UserRepository) GetOrCreate(username string) (*models.User, error) {
	var user models.User
	query := DB.Rebind("SELECT * FROM users WHERE username = ?")
	err := DB.Get(&user, query, username)
	if err == nil {
		return &user, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	if DB.DriverName() == "postgres" {
		err = DB.QueryRow(
			"INSERT INTO users (username) VALUES ($1) RETURNING id",
			username,
		).Scan(&user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %v", err)
		}
	} else {
		result, err := DB.Exec("INSERT INTO users (username) VALUES (?)", username)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert ID: %v", err)
		}
		user.ID = id
	}

	err = DB.Get(&user, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %v", err)
	}
	return &user, nil
}

// UpdateChatID links a Telegram chat to the user for notifications
func (r *UserRepository) UpdateChatID(id int64, chatID int64) error {
	query := DB.Rebind("UPDATE users SET chat_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")
	_, err := DB.Exec(query, chatID, id)
	if err != nil {
		return fmt.Errorf("failed to update chat ID: %v", err)
	}
	return nil
}

// GetUsersForNotification returns users who should be reminded at the given
// hour: notifications enabled, matching hour, and a linked chat.
func (r *UserRepository) GetUsersForNotification(hour int) ([]models.User, error) {
	boolTrue := "1"
	if DB.DriverName() == "postgres" {
		boolTrue = "true"
	}
	query := DB.Rebind(fmt.Sprintf(`
		SELECT * FROM users
		WHERE notification_enabled = %s AND notification_hour = ? AND chat_id <> 0
	`, boolTrue))

	var users []models.User
	err := DB.Select(&users, query, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for notification: %v", err)
	}
	return users, nil
}
