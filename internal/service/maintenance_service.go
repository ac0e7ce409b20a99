package service

import (
	"context"
	"time"

	"wordvault/internal/events"
	"wordvault/internal/middleware"
	"wordvault/internal/repository"

	"gorm.io/gorm"
)

// MaintenanceService runs the scheduled jobs: the midnight reset and the
// morning reminders.
type MaintenanceService interface {
	// DailyReset clears every user's daily flags, clears the group
	// per-day fields, and recomputes all summaries.
	DailyReset(ctx context.Context) error
	// SendReminders pings every user with a push token who still has
	// reviews waiting.
	SendReminders(ctx context.Context) error
}

type maintenanceService struct {
	db        *gorm.DB
	profRepo  repository.ProfileRepository
	stateRepo repository.WordStateRepository
	groups    GroupService
	progress  ProgressService
	notifier  Notifier
	bus       *events.Bus
}

func NewMaintenanceService(
	db *gorm.DB,
	profRepo repository.ProfileRepository,
	stateRepo repository.WordStateRepository,
	groups GroupService,
	progress ProgressService,
	notifier Notifier,
	bus *events.Bus,
) MaintenanceService {
	return &maintenanceService{
		db:        db,
		profRepo:  profRepo,
		stateRepo: stateRepo,
		groups:    groups,
		progress:  progress,
		notifier:  notifier,
		bus:       bus,
	}
}

func (s *maintenanceService) DailyReset(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("Daily reset starting")

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.profRepo.ResetDailyFlags(ctx, tx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error("Daily reset failed clearing profile flags", "error", err)
		return err
	}

	if err := s.groups.ResetDailyFlags(ctx); err != nil {
		logger.Error("Daily reset failed clearing group flags", "error", err)
		return err
	}

	if err := s.progress.RecomputeAll(ctx); err != nil {
		logger.Error("Daily reset recompute reported failures", "error", err)
		// Flags are already reset; a partial recompute self-heals on the
		// next state change.
	}

	s.bus.Publish(ctx, events.Event{Topic: events.TopicDailyReset})
	logger.Info("Daily reset finished")
	return nil
}

func (s *maintenanceService) SendReminders(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	profiles, err := s.profRepo.ListWithPushToken(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list reminder targets", "error", err)
		return err
	}

	now := time.Now()
	sent := 0
	for _, profile := range profiles {
		due, err := s.stateRepo.CountDue(ctx, s.db, profile.UserID, now)
		if err != nil {
			logger.Error("Failed to count due words for reminder", "user_id", profile.UserID, "error", err)
			continue
		}
		if due == 0 {
			continue
		}
		if err := s.notifier.SendReminder(ctx, profile.PushToken, profile.Nickname, int(due)); err != nil {
			logger.Error("Failed to send reminder", "user_id", profile.UserID, "error", err)
			continue
		}
		sent++
	}

	logger.Info("Reminders sent", "targets", len(profiles), "sent", sent)
	return nil
}
