package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanCommentModel is teacher feedback pinned to one day of a weekly plan.
// No uniqueness: several teachers (or the same teacher repeatedly) may
// comment on the same day. Authorship is immutable after creation.
type PlanCommentModel struct {
	PlanCommentID     uuid.UUID      `gorm:"column:plan_comment_id;type:uuid;primaryKey" json:"plan_comment_id"`
	PlanCommentPlanID uuid.UUID      `gorm:"column:plan_comment_plan_id;type:uuid;not null;index" json:"plan_comment_plan_id"`
	PlanCommentTargetDate datatypes.Date `gorm:"column:plan_comment_target_date;not null;index" json:"plan_comment_target_date"`

	PlanCommentAuthorUserID uuid.UUID `gorm:"column:plan_comment_author_user_id;type:uuid;not null;index" json:"plan_comment_author_user_id"`
	PlanCommentContent      string    `gorm:"column:plan_comment_content;type:text;not null" json:"plan_comment_content"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PlanCommentModel) TableName() string {
	return "plan_comments"
}

func (m *PlanCommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PlanCommentID == uuid.Nil {
		m.PlanCommentID = uuid.New()
	}
	return nil
}

// TargetDateTime is the target date as a plain time.Time (midnight UTC).
func (m *PlanCommentModel) TargetDateTime() time.Time {
	t := time.Time(m.PlanCommentTargetDate)
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
