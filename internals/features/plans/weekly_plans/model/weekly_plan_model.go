package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan statuses. There is no delete/archive: published is terminal, and
// publishing does not freeze the tasks/comments underneath.
const (
	PlanStatusDraft     = "draft"
	PlanStatusPublished = "published"
)

// WeeklyPlanModel is the weekly to-do list for one student and one calendar
// week. Identity is (student_id, week_start) where week_start is always a
// Monday; the composite unique index is what turns a duplicate create into a
// conflict instead of a silent second row.
type WeeklyPlanModel struct {
	WeeklyPlanID        uuid.UUID      `gorm:"column:weekly_plan_id;type:uuid;primaryKey" json:"weekly_plan_id"`
	WeeklyPlanStudentID uuid.UUID      `gorm:"column:weekly_plan_student_id;type:uuid;not null;uniqueIndex:idx_weekly_plan_student_week" json:"weekly_plan_student_id"`
	WeeklyPlanWeekStart datatypes.Date `gorm:"column:weekly_plan_week_start;not null;uniqueIndex:idx_weekly_plan_student_week" json:"weekly_plan_week_start"`

	WeeklyPlanStatus string `gorm:"column:weekly_plan_status;type:varchar(12);not null;default:draft" json:"weekly_plan_status"`
	WeeklyPlanNotes  string `gorm:"column:weekly_plan_notes;type:text" json:"weekly_plan_notes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WeeklyPlanModel) TableName() string {
	return "weekly_plans"
}

func (m *WeeklyPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeeklyPlanID == uuid.Nil {
		m.WeeklyPlanID = uuid.New()
	}
	return nil
}

// WeekStartTime is the week start as a plain time.Time (midnight UTC).
func (m *WeeklyPlanModel) WeekStartTime() time.Time {
	t := time.Time(m.WeeklyPlanWeekStart)
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
