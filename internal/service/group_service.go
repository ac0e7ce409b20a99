package service

import (
	"context"
	"errors"
	"time"

	"wordvault/internal/config"
	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GroupService runs the study-group lifecycle and keeps the member
// progress snapshots in sync.
type GroupService interface {
	Create(ctx context.Context, userID, title, password string) (*model.StudyGroup, error)
	Join(ctx context.Context, userID, title, password string) (*model.StudyGroup, error)
	// Leave removes the caller. A sole owner takes the group down with
	// them; an owner with members hands ownership to another member.
	Leave(ctx context.Context, userID string, groupID uuid.UUID) error
	// Kick removes another member. Owner only.
	Kick(ctx context.Context, ownerID string, groupID uuid.UUID, targetUserID string) error
	MyGroups(ctx context.Context, userID string) ([]*model.GroupSummaryResponse, error)
	Details(ctx context.Context, userID string, groupID uuid.UUID) (*model.GroupDetailResponse, error)
	SyncMemberSnapshots(ctx context.Context, userID string, summary *model.ProgressSummary) error
	// ResetDailyFlags clears the per-day member fields everywhere. The
	// midnight sweep calls it.
	ResetDailyFlags(ctx context.Context) error
}

type groupService struct {
	db        *gorm.DB
	groupRepo repository.GroupRepository
	profRepo  repository.ProfileRepository
	sumRepo   repository.SummaryRepository
	cfg       *config.Config
}

func NewGroupService(
	db *gorm.DB,
	groupRepo repository.GroupRepository,
	profRepo repository.ProfileRepository,
	sumRepo repository.SummaryRepository,
	cfg *config.Config,
) GroupService {
	return &groupService{
		db:        db,
		groupRepo: groupRepo,
		profRepo:  profRepo,
		sumRepo:   sumRepo,
		cfg:       cfg,
	}
}

func (s *groupService) Create(ctx context.Context, userID, title, password string) (*model.StudyGroup, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	profile, err := s.profRepo.Find(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROFILE_REQUIRED", "Register a profile before creating a group.", "", model.ErrNotFound)
		}
		logger.Error("Failed to load profile for group create", "error", err)
		return nil, model.StoreError("Failed to create the group.", err)
	}

	if _, err := s.groupRepo.FindByTitle(ctx, s.db, title); err == nil {
		return nil, model.NewAppError("GROUP_TITLE_TAKEN", "A group with this title already exists.", "title", model.ErrConflict)
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to check group title", "error", err)
		return nil, model.StoreError("Failed to create the group.", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash group password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the group.", "", err)
	}

	now := time.Now()
	group := &model.StudyGroup{
		GroupID:       uuid.New(),
		Title:         title,
		PasswordHash:  string(hash),
		OwnerID:       userID,
		OwnerNickname: profile.Nickname,
		MemberCount:   1,
		MaxMembers:    s.cfg.App.GroupMaxMembers,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.groupRepo.Create(ctx, tx, group); err != nil {
			return err
		}
		member := s.seedMember(ctx, group.GroupID, userID, profile.Nickname, model.RoleOwner, now)
		return s.groupRepo.AddMember(ctx, tx, member)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("GROUP_TITLE_TAKEN", "A group with this title already exists.", "title", model.ErrConflict)
		}
		logger.Error("Failed to create group", "error", err)
		return nil, model.StoreError("Failed to create the group.", err)
	}

	logger.Info("Group created", "group_id", group.GroupID, "title", title)
	return group, nil
}

func (s *groupService) Join(ctx context.Context, userID, title, password string) (*model.StudyGroup, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	profile, err := s.profRepo.Find(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROFILE_REQUIRED", "Register a profile before joining a group.", "", model.ErrNotFound)
		}
		logger.Error("Failed to load profile for group join", "error", err)
		return nil, model.StoreError("Failed to join the group.", err)
	}

	found, err := s.groupRepo.FindByTitle(ctx, s.db, title)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("GROUP_NOT_FOUND", "No group with this title exists.", "title", model.ErrNotFound)
		}
		logger.Error("Failed to find group by title", "error", err)
		return nil, model.StoreError("Failed to join the group.", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		return nil, model.NewAppError("GROUP_PASSWORD_MISMATCH", "The group password does not match.", "password", model.ErrForbidden)
	}

	var group *model.StudyGroup
	now := time.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group, err = s.groupRepo.FindByIDForUpdate(ctx, tx, found.GroupID)
		if err != nil {
			return err
		}
		if group.MemberCount >= group.MaxMembers {
			return model.NewAppError("GROUP_FULL", "The group is full.", "", model.ErrGroupFull)
		}
		if _, err := s.groupRepo.FindMember(ctx, tx, group.GroupID, userID); err == nil {
			return model.NewAppError("ALREADY_MEMBER", "You are already in this group.", "", model.ErrConflict)
		} else if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		member := s.seedMember(ctx, group.GroupID, userID, profile.Nickname, model.RoleMember, now)
		if err := s.groupRepo.AddMember(ctx, tx, member); err != nil {
			return err
		}
		group.MemberCount++
		return s.groupRepo.Update(ctx, tx, group.GroupID, map[string]interface{}{
			"member_count": group.MemberCount,
		})
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		logger.Error("Failed to join group", "error", err)
		return nil, model.StoreError("Failed to join the group.", err)
	}

	logger.Info("Joined group", "group_id", group.GroupID, "title", title)
	return group, nil
}

// seedMember builds a membership row primed with the user's current
// summary, so the room shows real numbers before the first sync.
func (s *groupService) seedMember(ctx context.Context, groupID uuid.UUID, userID, nickname string, role model.GroupRole, now time.Time) *model.GroupMember {
	member := &model.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		Nickname: nickname,
		Role:     role,
		SyncedAt: now,
	}
	if summary, err := s.sumRepo.Find(ctx, s.db, userID); err == nil {
		member.HasStudiedToday = summary.HasStudiedToday
		member.ProgressRate = summary.ProgressRate
		counts := summary.StageCounts()
		member.Stage0, member.Stage1, member.Stage2, member.Stage3 = counts[0], counts[1], counts[2], counts[3]
		member.Stage4, member.Stage5, member.Stage6 = counts[4], counts[5], counts[6]
	}
	return member
}

func (s *groupService) Leave(ctx context.Context, userID string, groupID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "group_id", groupID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group, err := s.groupRepo.FindByIDForUpdate(ctx, tx, groupID)
		if err != nil {
			return err
		}
		member, err := s.groupRepo.FindMember(ctx, tx, groupID, userID)
		if err != nil {
			return err
		}

		if member.Role == model.RoleOwner {
			members, err := s.groupRepo.ListMembers(ctx, tx, groupID)
			if err != nil {
				return err
			}
			if len(members) <= 1 {
				// The last person out turns off the lights.
				return s.groupRepo.Delete(ctx, tx, groupID)
			}

			var successor *model.GroupMember
			for _, m := range members {
				if m.UserID != userID {
					successor = m
					break
				}
			}
			if err := s.groupRepo.RemoveMember(ctx, tx, groupID, userID); err != nil {
				return err
			}
			if err := s.groupRepo.Update(ctx, tx, groupID, map[string]interface{}{
				"owner_id":       successor.UserID,
				"owner_nickname": successor.Nickname,
				"member_count":   group.MemberCount - 1,
			}); err != nil {
				return err
			}
			return tx.WithContext(ctx).Model(&model.GroupMember{}).
				Where("group_id = ? AND user_id = ?", groupID, successor.UserID).
				Update("role", model.RoleOwner).Error
		}

		if err := s.groupRepo.RemoveMember(ctx, tx, groupID, userID); err != nil {
			return err
		}
		return s.groupRepo.Update(ctx, tx, groupID, map[string]interface{}{
			"member_count": group.MemberCount - 1,
		})
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("GROUP_NOT_FOUND", "The group or membership does not exist.", "", model.ErrNotFound)
		}
		logger.Error("Failed to leave group", "error", err)
		return model.StoreError("Failed to leave the group.", err)
	}

	logger.Info("Left group")
	return nil
}

func (s *groupService) Kick(ctx context.Context, ownerID string, groupID uuid.UUID, targetUserID string) error {
	logger := middleware.GetLogger(ctx).With("user_id", ownerID, "group_id", groupID, "target", targetUserID)

	if ownerID == targetUserID {
		return model.NewAppError("INVALID_REQUEST", "Use leave to remove yourself.", "", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group, err := s.groupRepo.FindByIDForUpdate(ctx, tx, groupID)
		if err != nil {
			return err
		}
		if group.OwnerID != ownerID {
			return model.NewAppError("NOT_GROUP_OWNER", "Only the owner can remove members.", "", model.ErrForbidden)
		}
		if err := s.groupRepo.RemoveMember(ctx, tx, groupID, targetUserID); err != nil {
			return err
		}
		return s.groupRepo.Update(ctx, tx, groupID, map[string]interface{}{
			"member_count": group.MemberCount - 1,
		})
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("GROUP_NOT_FOUND", "The group or membership does not exist.", "", model.ErrNotFound)
		}
		logger.Error("Failed to kick member", "error", err)
		return model.StoreError("Failed to remove the member.", err)
	}

	logger.Info("Member kicked")
	return nil
}

func (s *groupService) MyGroups(ctx context.Context, userID string) ([]*model.GroupSummaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	memberships, err := s.groupRepo.ListMemberships(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list memberships", "error", err)
		return nil, model.StoreError("Failed to load your groups.", err)
	}

	summaries := make([]*model.GroupSummaryResponse, 0, len(memberships))
	for _, m := range memberships {
		group, err := s.groupRepo.FindByID(ctx, s.db, m.GroupID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Membership points at a missing group, skipping", "group_id", m.GroupID)
				continue
			}
			logger.Error("Failed to load group", "error", err, "group_id", m.GroupID)
			return nil, model.StoreError("Failed to load your groups.", err)
		}
		summaries = append(summaries, &model.GroupSummaryResponse{
			GroupID:       group.GroupID,
			Title:         group.Title,
			OwnerNickname: group.OwnerNickname,
			MemberCount:   group.MemberCount,
			MaxMembers:    group.MaxMembers,
			Role:          m.Role,
		})
	}
	return summaries, nil
}

func (s *groupService) Details(ctx context.Context, userID string, groupID uuid.UUID) (*model.GroupDetailResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "group_id", groupID)

	group, err := s.groupRepo.FindByID(ctx, s.db, groupID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("GROUP_NOT_FOUND", "The group does not exist.", "", model.ErrNotFound)
		}
		logger.Error("Failed to load group", "error", err)
		return nil, model.StoreError("Failed to load the group.", err)
	}

	// Only members see the room.
	if _, err := s.groupRepo.FindMember(ctx, s.db, groupID, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_A_MEMBER", "You are not a member of this group.", "", model.ErrForbidden)
		}
		logger.Error("Failed to check membership", "error", err)
		return nil, model.StoreError("Failed to load the group.", err)
	}

	members, err := s.groupRepo.ListMembers(ctx, s.db, groupID)
	if err != nil {
		logger.Error("Failed to list group members", "error", err)
		return nil, model.StoreError("Failed to load the group.", err)
	}

	detail := &model.GroupDetailResponse{
		GroupID:     group.GroupID,
		Title:       group.Title,
		OwnerID:     group.OwnerID,
		MemberCount: group.MemberCount,
		MaxMembers:  group.MaxMembers,
		Members:     make([]model.GroupMember, 0, len(members)),
	}
	for _, m := range members {
		detail.Members = append(detail.Members, *m)
	}
	return detail, nil
}

func (s *groupService) SyncMemberSnapshots(ctx context.Context, userID string, summary *model.ProgressSummary) error {
	counts := summary.StageCounts()
	return s.groupRepo.UpdateMemberSnapshots(ctx, s.db, userID, map[string]interface{}{
		"has_studied_today": summary.HasStudiedToday,
		"progress_rate":     summary.ProgressRate,
		"stage0":            counts[0],
		"stage1":            counts[1],
		"stage2":            counts[2],
		"stage3":            counts[3],
		"stage4":            counts[4],
		"stage5":            counts[5],
		"stage6":            counts[6],
		"synced_at":         time.Now(),
	})
}

func (s *groupService) ResetDailyFlags(ctx context.Context) error {
	return s.groupRepo.ResetDailyMemberFlags(ctx, s.db)
}
