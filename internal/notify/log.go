package notify

import "log"

// LogNotifier writes reminders to the process log. Used when no Telegram
// token is configured.
type LogNotifier struct{}

// SendReminder logs the reminder instead of delivering it.
func (LogNotifier) SendReminder(userID int64, count int) error {
	log.Printf("Reminder for user %d: %d words due for practice", userID, count)
	return nil
}
