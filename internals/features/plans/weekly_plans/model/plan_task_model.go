package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanTaskModel is one to-do item on one day of a weekly plan.
//
// plan_task_display_order is unique and densely packed 1..N within
// (plan_id, target_date); it is the render/execution order for that day.
// plan_task_ordering_version is the optimistic-concurrency token for a
// day's ordering: every task of a day carries the same version, a reorder
// must present the version it observed and bumps it on success.
type PlanTaskModel struct {
	PlanTaskID     uuid.UUID      `gorm:"column:plan_task_id;type:uuid;primaryKey" json:"plan_task_id"`
	PlanTaskPlanID uuid.UUID      `gorm:"column:plan_task_plan_id;type:uuid;not null;index" json:"plan_task_plan_id"`
	PlanTaskTargetDate datatypes.Date `gorm:"column:plan_task_target_date;not null;index" json:"plan_task_target_date"`

	PlanTaskContent     string `gorm:"column:plan_task_content;type:text;not null" json:"plan_task_content"`
	PlanTaskIsCompleted bool   `gorm:"column:plan_task_is_completed;not null;default:false" json:"plan_task_is_completed"`

	PlanTaskDisplayOrder    int `gorm:"column:plan_task_display_order;not null" json:"plan_task_display_order"`
	PlanTaskOrderingVersion int `gorm:"column:plan_task_ordering_version;not null;default:1" json:"plan_task_ordering_version"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PlanTaskModel) TableName() string {
	return "plan_tasks"
}

func (m *PlanTaskModel) BeforeCreate(tx *gorm.DB) error {
	if m.PlanTaskID == uuid.Nil {
		m.PlanTaskID = uuid.New()
	}
	return nil
}

// TargetDateTime is the target date as a plain time.Time (midnight UTC).
func (m *PlanTaskModel) TargetDateTime() time.Time {
	t := time.Time(m.PlanTaskTargetDate)
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
