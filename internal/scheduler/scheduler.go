// Package scheduler wires the daily maintenance jobs onto a gocron
// scheduler: the midnight reset shortly after day rollover and the
// morning review reminders.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"wordvault/internal/service"

	"github.com/go-co-op/gocron"
)

const (
	dailyResetAt = "00:01"
	remindersAt  = "09:01"
)

type Scheduler struct {
	scheduler   *gocron.Scheduler
	maintenance service.MaintenanceService
	logger      *slog.Logger
}

func New(maintenance service.MaintenanceService, location *time.Location, logger *slog.Logger) *Scheduler {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler:   gocron.NewScheduler(location),
		maintenance: maintenance,
		logger:      logger,
	}
}

// Start registers the jobs and runs the scheduler asynchronously.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Day().At(dailyResetAt).Do(s.runDailyReset); err != nil {
		return err
	}
	if _, err := s.scheduler.Every(1).Day().At(remindersAt).Do(s.runReminders); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "daily_reset_at", dailyResetAt, "reminders_at", remindersAt)
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runDailyReset() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := s.maintenance.DailyReset(ctx); err != nil {
		s.logger.Error("Daily reset job failed", "error", err)
	}
}

func (s *Scheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := s.maintenance.SendReminders(ctx); err != nil {
		s.logger.Error("Reminder job failed", "error", err)
	}
}
