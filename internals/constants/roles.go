package constants

import "fmt"

// Global roles carried in the access token. The set is closed on purpose:
// permission rules switch over these exhaustively, so a new role has to be
// added here first.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Assignment roles (teacher ↔ student link).
const (
	AssignmentRoleMentor     = "mentor"     // owns the weekly plan
	AssignmentRoleInstructor = "instructor" // comment-only
)

// Assignment statuses.
const (
	AssignmentStatusActive = "active"
	AssignmentStatusEnded  = "ended"
)

// Student enrollment statuses.
const (
	EnrollmentEnrolled  = "enrolled"
	EnrollmentPaused    = "paused"
	EnrollmentWithdrawn = "withdrawn"
)

// Role-error message templates
const (
	ErrOnlyTeachersCanAccess = "Only teachers or admins may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	ViewerRoles = []string{
		RoleStudent,
		RoleParent,
	}
)
