package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel mirrors the student directory owned by the enrollment
// service. This backend reads it for names, enrollment status and the
// student/parent viewer check; it never mutates it.
type StudentModel struct {
	StudentID     uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	StudentUserID uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;index" json:"student_user_id"`

	// Parent account allowed to view + self-check this student's plan (nullable).
	StudentParentUserID *uuid.UUID `gorm:"column:student_parent_user_id;type:uuid;index" json:"student_parent_user_id,omitempty"`

	StudentDisplayName      string `gorm:"column:student_display_name;type:varchar(120);not null" json:"student_display_name"`
	StudentEnrollmentStatus string `gorm:"column:student_enrollment_status;type:varchar(20);not null;default:enrolled" json:"student_enrollment_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
