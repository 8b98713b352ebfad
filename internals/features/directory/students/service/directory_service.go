package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	model "tutorku_backend/internals/features/directory/students/model"
)

var ErrStudentNotFound = errors.New("student not found")

// FindStudent loads one student from the directory.
func FindStudent(db *gorm.DB, studentID uuid.UUID) (*model.StudentModel, error) {
	var st model.StudentModel
	if err := db.Where("student_id = ?", studentID).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &st, nil
}

// FindActiveAssignment returns the teacher's active assignment to the given
// student, or (nil, nil) when there is none. An ended assignment counts as
// none: permissions must drop the moment an assignment is closed.
func FindActiveAssignment(db *gorm.DB, teacherUserID, studentID uuid.UUID) (*model.TeacherAssignmentModel, error) {
	var asg model.TeacherAssignmentModel
	err := db.
		Where("teacher_assignment_teacher_user_id = ?", teacherUserID).
		Where("teacher_assignment_student_id = ?", studentID).
		Where("teacher_assignment_status = ?", constants.AssignmentStatusActive).
		First(&asg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asg, nil
}

// ListAssignmentsForTeacher lists a teacher's active assignments with the
// student rows preloaded by a second query (teacher home screen).
func ListAssignmentsForTeacher(db *gorm.DB, teacherUserID uuid.UUID) ([]model.TeacherAssignmentModel, []model.StudentModel, error) {
	var asgs []model.TeacherAssignmentModel
	if err := db.
		Where("teacher_assignment_teacher_user_id = ?", teacherUserID).
		Where("teacher_assignment_status = ?", constants.AssignmentStatusActive).
		Order("created_at ASC").
		Find(&asgs).Error; err != nil {
		return nil, nil, err
	}
	if len(asgs) == 0 {
		return asgs, nil, nil
	}

	ids := make([]uuid.UUID, 0, len(asgs))
	for _, a := range asgs {
		ids = append(ids, a.TeacherAssignmentStudentID)
	}
	var students []model.StudentModel
	if err := db.Where("student_id IN ?", ids).Find(&students).Error; err != nil {
		return nil, nil, err
	}
	return asgs, students, nil
}

// IsViewerOfStudent reports whether the user account is the student himself
// or the student's parent. Used for the read + self-check routes.
func IsViewerOfStudent(st *model.StudentModel, userID uuid.UUID) bool {
	if st == nil {
		return false
	}
	if st.StudentUserID == userID {
		return true
	}
	return st.StudentParentUserID != nil && *st.StudentParentUserID == userID
}
