// internal/model/group.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type GroupRole string

const (
	RoleOwner  GroupRole = "owner"
	RoleMember GroupRole = "member"
)

// StudyGroup is a password-protected room whose members see each other's
// daily progress.
type StudyGroup struct {
	GroupID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"group_id"`
	Title        string    `gorm:"not null;uniqueIndex" json:"title"`
	PasswordHash string    `gorm:"not null" json:"-"`
	OwnerID      string    `gorm:"not null" json:"owner_id"`
	OwnerNickname string   `gorm:"not null" json:"owner_nickname"`
	MemberCount  int       `gorm:"not null;default:0" json:"member_count"`
	MaxMembers   int       `gorm:"not null" json:"max_members"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (StudyGroup) TableName() string {
	return "study_groups"
}

// GroupMember is one user's membership row plus the progress snapshot the
// fan-out sync keeps current.
type GroupMember struct {
	GroupID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"group_id"`
	UserID          string    `gorm:"primaryKey" json:"user_id"`
	Nickname        string    `gorm:"not null" json:"nickname"`
	Role            GroupRole `gorm:"not null;default:member" json:"role"`
	HasStudiedToday bool      `gorm:"not null;default:false" json:"has_studied_today"`
	ProgressRate    float64   `gorm:"not null;default:0" json:"progress_rate"`
	TodayWrongCount int       `gorm:"not null;default:0" json:"today_wrong_count"`
	Stage0          int       `gorm:"not null;default:0" json:"stage_0"`
	Stage1          int       `gorm:"not null;default:0" json:"stage_1"`
	Stage2          int       `gorm:"not null;default:0" json:"stage_2"`
	Stage3          int       `gorm:"not null;default:0" json:"stage_3"`
	Stage4          int       `gorm:"not null;default:0" json:"stage_4"`
	Stage5          int       `gorm:"not null;default:0" json:"stage_5"`
	Stage6          int       `gorm:"not null;default:0" json:"stage_6"`
	SyncedAt        time.Time `json:"synced_at"`
	CreatedAt       time.Time `json:"joined_at"`
}

func (GroupMember) TableName() string {
	return "group_members"
}

// CreateGroupRequest makes the caller the owner of a new group.
type CreateGroupRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=4,max=30"`
}

// JoinGroupRequest enters an existing group by title and password.
type JoinGroupRequest struct {
	Title    string `json:"title" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GroupSummaryResponse is one row of the caller's group list.
type GroupSummaryResponse struct {
	GroupID       uuid.UUID `json:"group_id"`
	Title         string    `json:"title"`
	OwnerNickname string    `json:"owner_nickname"`
	MemberCount   int       `json:"member_count"`
	MaxMembers    int       `json:"max_members"`
	Role          GroupRole `json:"role"`
}

// GroupDetailResponse is a group with its member snapshots.
type GroupDetailResponse struct {
	GroupID     uuid.UUID     `json:"group_id"`
	Title       string        `json:"title"`
	OwnerID     string        `json:"owner_id"`
	MemberCount int           `json:"member_count"`
	MaxMembers  int           `json:"max_members"`
	Members     []GroupMember `json:"members"`
}
