// Package notify delivers practice reminders over Telegram.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/polbot/internal/database"
)

// TelegramNotifier sends reminder messages to users with a linked chat.
type TelegramNotifier struct {
	api   *tgbotapi.BotAPI
	users *database.UserRepository
}

// NewTelegramNotifier creates a notifier using the given bot token.
func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %v", err)
	}
	return &TelegramNotifier{
		api:   api,
		users: database.NewUserRepository(),
	}, nil
}

// SendReminder tells the user how many words are waiting for practice.
func (n *TelegramNotifier) SendReminder(userID int64, count int) error {
	user, err := n.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user.ChatID == 0 {
		return fmt.Errorf("user %d has no linked chat", userID)
	}

	msg := tgbotapi.NewMessage(user.ChatID,
		fmt.Sprintf("Masz %d %s do powtórki. Powodzenia!", count, wordForm(count)))
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %v", err)
	}
	return nil
}

// wordForm picks the Polish plural form of "słowo" for a count.
func wordForm(count int) string {
	if count == 1 {
		return "słowo"
	}
	last := count % 10
	lastTwo := count % 100
	if last >= 2 && last <= 4 && (lastTwo < 12 || lastTwo > 14) {
		return "słowa"
	}
	return "słów"
}
