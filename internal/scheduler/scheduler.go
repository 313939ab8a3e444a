package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/polbot/internal/database"
	"github.com/example/polbot/internal/forms"
)

// Default bounds of the daily window in which reminders may be sent
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
}

// Notifier interface for sending notifications
type Notifier interface {
	SendReminder(userID int64, count int) error
}

// New creates a new scheduler instance
func New(notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check for users who need a practice reminder
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)

	// Nightly pass to generate declension tables for newly imported words
	s.scheduler.Every(1).Day().At("03:00").Do(s.runFormsBackfill)

	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// hourFromEnv reads an hour override from the environment, falling back to
// def when unset or out of range.
func hourFromEnv(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return def
}

// checkAndSendReminders checks for users who need reminders and sends them
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	startHour := hourFromEnv("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := hourFromEnv("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	userRepo := database.NewUserRepository()
	progressRepo := database.NewProgressRepository()

	users, err := userRepo.GetUsersForNotification(currentHour)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	cutoff := time.Now().AddDate(0, 0, -1)
	for _, user := range users {
		count, err := progressRepo.CountDue(user.ID, cutoff)
		if err != nil {
			log.Printf("Error counting due words for user %d: %v", user.ID, err)
			continue
		}
		if count == 0 {
			continue
		}
		if count > user.WordsPerDay {
			count = user.WordsPerDay
		}
		if err := s.notifier.SendReminder(user.ID, count); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.ID, err)
		}
	}
}

// runFormsBackfill generates missing declension tables for stored words
func (s *Scheduler) runFormsBackfill() {
	result, err := forms.Backfill(database.NewWordRepository())
	if err != nil {
		log.Printf("Forms backfill failed: %v", err)
		return
	}
	log.Printf("Forms backfill: %d words processed, %d nouns and %d adjectives filled, %d errors",
		result.Processed, result.NounsFilled, result.AdjectivesFilled, result.Errors)
}

// RunManualCheck forces a reminder check for a specific user
func (s *Scheduler) RunManualCheck(userID int64) error {
	progressRepo := database.NewProgressRepository()
	count, err := progressRepo.CountDue(userID, time.Now().AddDate(0, 0, -1))
	if err != nil {
		return err
	}
	if count > 0 {
		return s.notifier.SendReminder(userID, count)
	}
	return nil
}
