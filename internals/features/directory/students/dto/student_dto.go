package dto

import (
	"github.com/google/uuid"

	model "tutorku_backend/internals/features/directory/students/model"
)

/* ===================== RESPONSES ===================== */

// StudentLite is the read-only directory shape embedded in plan views.
type StudentLite struct {
	StudentID        uuid.UUID `json:"student_id"`
	DisplayName      string    `json:"display_name"`
	EnrollmentStatus string    `json:"enrollment_status"`
}

func ToStudentLite(m *model.StudentModel) StudentLite {
	return StudentLite{
		StudentID:        m.StudentID,
		DisplayName:      m.StudentDisplayName,
		EnrollmentStatus: m.StudentEnrollmentStatus,
	}
}

// AssignmentResponse is the teacher's view of one of their assignments.
type AssignmentResponse struct {
	AssignmentID uuid.UUID   `json:"assignment_id"`
	Student      StudentLite `json:"student"`
	Role         string      `json:"role"`
	Status       string      `json:"status"`
	Subjects     []string    `json:"subjects"`
}
