package service

import (
	"context"
	"errors"

	"wordvault/internal/config"
	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/repository"

	"gorm.io/gorm"
)

// UserService manages user profiles.
type UserService interface {
	Register(ctx context.Context, userID string, req *model.RegisterProfileRequest) (*model.UserProfile, error)
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	Patch(ctx context.Context, userID string, req *model.PatchProfileRequest) (*model.UserProfile, error)
}

type userService struct {
	db       *gorm.DB
	profRepo repository.ProfileRepository
	cfg      *config.Config
}

func NewUserService(db *gorm.DB, profRepo repository.ProfileRepository, cfg *config.Config) UserService {
	return &userService{db: db, profRepo: profRepo, cfg: cfg}
}

func (s *userService) Register(ctx context.Context, userID string, req *model.RegisterProfileRequest) (*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	goal := req.DailyWordGoal
	if goal < s.cfg.App.MinDailyGoal || goal > s.cfg.App.MaxDailyGoal {
		return nil, model.NewAppError("INVALID_GOAL", "The daily word goal is out of range.", "daily_word_goal", model.ErrInvalidInput)
	}

	profile := &model.UserProfile{
		UserID:        userID,
		Nickname:      req.Nickname,
		Email:         req.Email,
		DailyWordGoal: goal,
	}
	if err := s.profRepo.Save(ctx, s.db, profile); err != nil {
		logger.Error("Failed to save profile", "error", err)
		return nil, model.StoreError("Failed to save the profile.", err)
	}

	logger.Info("Profile registered", "nickname", req.Nickname, "goal", goal)
	return profile, nil
}

func (s *userService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	profile, err := s.profRepo.Find(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROFILE_NOT_FOUND", "The profile does not exist.", "", model.ErrNotFound)
		}
		logger.Error("Failed to load profile", "error", err)
		return nil, model.StoreError("Failed to load the profile.", err)
	}
	return profile, nil
}

func (s *userService) Patch(ctx context.Context, userID string, req *model.PatchProfileRequest) (*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	updates := make(map[string]interface{})
	if req.Nickname != nil {
		updates["nickname"] = *req.Nickname
	}
	if req.DailyWordGoal != nil {
		if *req.DailyWordGoal < s.cfg.App.MinDailyGoal || *req.DailyWordGoal > s.cfg.App.MaxDailyGoal {
			return nil, model.NewAppError("INVALID_GOAL", "The daily word goal is out of range.", "daily_word_goal", model.ErrInvalidInput)
		}
		updates["daily_word_goal"] = *req.DailyWordGoal
	}
	if req.PushToken != nil {
		updates["push_token"] = *req.PushToken
	}

	if err := s.profRepo.Update(ctx, s.db, userID, updates); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROFILE_NOT_FOUND", "The profile does not exist.", "", model.ErrNotFound)
		}
		logger.Error("Failed to update profile", "error", err)
		return nil, model.StoreError("Failed to update the profile.", err)
	}

	return s.Get(ctx, userID)
}
