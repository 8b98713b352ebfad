package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TeacherAssignmentModel links a teacher to a student. Role "mentor" may
// edit the weekly plan, role "instructor" may only comment. Owned by the
// admin console's applicant/assignment flow; consumed read-only here to
// derive permissions.
type TeacherAssignmentModel struct {
	TeacherAssignmentID            uuid.UUID `gorm:"column:teacher_assignment_id;type:uuid;primaryKey" json:"teacher_assignment_id"`
	TeacherAssignmentTeacherUserID uuid.UUID `gorm:"column:teacher_assignment_teacher_user_id;type:uuid;not null;index:idx_assignment_teacher_student" json:"teacher_assignment_teacher_user_id"`
	TeacherAssignmentStudentID     uuid.UUID `gorm:"column:teacher_assignment_student_id;type:uuid;not null;index:idx_assignment_teacher_student" json:"teacher_assignment_student_id"`

	TeacherAssignmentRole   string `gorm:"column:teacher_assignment_role;type:varchar(20);not null" json:"teacher_assignment_role"`
	TeacherAssignmentStatus string `gorm:"column:teacher_assignment_status;type:varchar(20);not null;default:active" json:"teacher_assignment_status"`

	// Subjects covered by this assignment, e.g. {matematika,fisika}.
	TeacherAssignmentSubjects pq.StringArray `gorm:"column:teacher_assignment_subjects;type:text[]" json:"teacher_assignment_subjects,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeacherAssignmentModel) TableName() string {
	return "teacher_assignments"
}

func (m *TeacherAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherAssignmentID == uuid.Nil {
		m.TeacherAssignmentID = uuid.New()
	}
	return nil
}
