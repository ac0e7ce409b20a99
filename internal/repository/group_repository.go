//go:generate mockery --name GroupRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"wordvault/internal/middleware"
	"wordvault/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository stores study groups and their membership snapshots.
type GroupRepository interface {
	Create(ctx context.Context, tx *gorm.DB, group *model.StudyGroup) error
	FindByID(ctx context.Context, db *gorm.DB, groupID uuid.UUID) (*model.StudyGroup, error)
	FindByTitle(ctx context.Context, db *gorm.DB, title string) (*model.StudyGroup, error)
	// FindByIDForUpdate locks the group row for the rest of the
	// transaction. Join and leave serialize on this lock.
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) (*model.StudyGroup, error)
	Update(ctx context.Context, tx *gorm.DB, groupID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) error

	AddMember(ctx context.Context, tx *gorm.DB, member *model.GroupMember) error
	RemoveMember(ctx context.Context, tx *gorm.DB, groupID uuid.UUID, userID string) error
	FindMember(ctx context.Context, db *gorm.DB, groupID uuid.UUID, userID string) (*model.GroupMember, error)
	ListMembers(ctx context.Context, db *gorm.DB, groupID uuid.UUID) ([]*model.GroupMember, error)
	ListMemberships(ctx context.Context, db *gorm.DB, userID string) ([]*model.GroupMember, error)
	// UpdateMemberSnapshots applies the same snapshot update to every
	// membership row of one user, across all their groups.
	UpdateMemberSnapshots(ctx context.Context, tx *gorm.DB, userID string, updates map[string]interface{}) error
	// ResetDailyMemberFlags clears the per-day snapshot fields of all
	// members everywhere.
	ResetDailyMemberFlags(ctx context.Context, tx *gorm.DB) error
}

type gormGroupRepository struct{}

func NewGormGroupRepository() GroupRepository {
	return &gormGroupRepository{}
}

func (r *gormGroupRepository) Create(ctx context.Context, tx *gorm.DB, group *model.StudyGroup) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating group in DB", "error", result.Error, "title", group.Title)
		return fmt.Errorf("gormGroupRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormGroupRepository) FindByID(ctx context.Context, db *gorm.DB, groupID uuid.UUID) (*model.StudyGroup, error) {
	logger := middleware.GetLogger(ctx)
	var group model.StudyGroup
	result := db.WithContext(ctx).Where("group_id = ?", groupID).First(&group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding group by ID in DB", "error", result.Error, "group_id", groupID.String())
		return nil, fmt.Errorf("gormGroupRepository.FindByID: %w", result.Error)
	}
	return &group, nil
}

func (r *gormGroupRepository) FindByTitle(ctx context.Context, db *gorm.DB, title string) (*model.StudyGroup, error) {
	logger := middleware.GetLogger(ctx)
	var group model.StudyGroup
	result := db.WithContext(ctx).Where("title = ?", title).First(&group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding group by title in DB", "error", result.Error, "title", title)
		return nil, fmt.Errorf("gormGroupRepository.FindByTitle: %w", result.Error)
	}
	return &group, nil
}

func (r *gormGroupRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) (*model.StudyGroup, error) {
	logger := middleware.GetLogger(ctx)
	var group model.StudyGroup
	// sqlite rejects FOR UPDATE, so the lock is postgres-only. In-memory
	// sqlite tests serialize through the database file anyway.
	query := tx.WithContext(ctx).Where("group_id = ?", groupID)
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	result := query.First(&group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error locking group row in DB", "error", result.Error, "group_id", groupID.String())
		return nil, fmt.Errorf("gormGroupRepository.FindByIDForUpdate: %w", result.Error)
	}
	return &group, nil
}

func (r *gormGroupRepository) Update(ctx context.Context, tx *gorm.DB, groupID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.StudyGroup{}).Where("group_id = ?", groupID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating group in DB", "error", result.Error, "group_id", groupID.String())
		return fmt.Errorf("gormGroupRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGroupRepository) Delete(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("group_id = ?", groupID).Delete(&model.GroupMember{}).Error; err != nil {
		logger.Error("Error deleting group members in DB", "error", err, "group_id", groupID.String())
		return fmt.Errorf("gormGroupRepository.Delete members: %w", err)
	}
	result := tx.WithContext(ctx).Where("group_id = ?", groupID).Delete(&model.StudyGroup{})
	if result.Error != nil {
		logger.Error("Error deleting group in DB", "error", result.Error, "group_id", groupID.String())
		return fmt.Errorf("gormGroupRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGroupRepository) AddMember(ctx context.Context, tx *gorm.DB, member *model.GroupMember) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error adding group member in DB", "error", result.Error, "group_id", member.GroupID.String(), "user_id", member.UserID)
		return fmt.Errorf("gormGroupRepository.AddMember: %w", result.Error)
	}
	return nil
}

func (r *gormGroupRepository) RemoveMember(ctx context.Context, tx *gorm.DB, groupID uuid.UUID, userID string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("group_id = ? AND user_id = ?", groupID, userID).Delete(&model.GroupMember{})
	if result.Error != nil {
		logger.Error("Error removing group member in DB", "error", result.Error, "group_id", groupID.String(), "user_id", userID)
		return fmt.Errorf("gormGroupRepository.RemoveMember: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGroupRepository) FindMember(ctx context.Context, db *gorm.DB, groupID uuid.UUID, userID string) (*model.GroupMember, error) {
	logger := middleware.GetLogger(ctx)
	var member model.GroupMember
	result := db.WithContext(ctx).Where("group_id = ? AND user_id = ?", groupID, userID).First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding group member in DB", "error", result.Error, "group_id", groupID.String(), "user_id", userID)
		return nil, fmt.Errorf("gormGroupRepository.FindMember: %w", result.Error)
	}
	return &member, nil
}

func (r *gormGroupRepository) ListMembers(ctx context.Context, db *gorm.DB, groupID uuid.UUID) ([]*model.GroupMember, error) {
	logger := middleware.GetLogger(ctx)
	var members []*model.GroupMember
	result := db.WithContext(ctx).Where("group_id = ?", groupID).Order("created_at ASC").Find(&members)
	if result.Error != nil {
		logger.Error("Error listing group members in DB", "error", result.Error, "group_id", groupID.String())
		return nil, fmt.Errorf("gormGroupRepository.ListMembers: %w", result.Error)
	}
	return members, nil
}

func (r *gormGroupRepository) ListMemberships(ctx context.Context, db *gorm.DB, userID string) ([]*model.GroupMember, error) {
	logger := middleware.GetLogger(ctx)
	var memberships []*model.GroupMember
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&memberships)
	if result.Error != nil {
		logger.Error("Error listing group memberships in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormGroupRepository.ListMemberships: %w", result.Error)
	}
	return memberships, nil
}

func (r *gormGroupRepository) UpdateMemberSnapshots(ctx context.Context, tx *gorm.DB, userID string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.GroupMember{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating member snapshots in DB", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormGroupRepository.UpdateMemberSnapshots: %w", result.Error)
	}
	return nil
}

func (r *gormGroupRepository) ResetDailyMemberFlags(ctx context.Context, tx *gorm.DB) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.GroupMember{}).
		Where("has_studied_today = ? OR today_wrong_count > 0", true).
		Updates(map[string]interface{}{
			"has_studied_today": false,
			"today_wrong_count": 0,
		})
	if result.Error != nil {
		logger.Error("Error resetting member daily flags in DB", "error", result.Error)
		return fmt.Errorf("gormGroupRepository.ResetDailyMemberFlags: %w", result.Error)
	}
	return nil
}
