package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	dto "tutorku_backend/internals/features/directory/students/dto"
	service "tutorku_backend/internals/features/directory/students/service"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type StudentController struct{ DB *gorm.DB }

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/u/students/:student_id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	st, err := service.FindStudent(ctl.DB, studentID)
	if err != nil {
		if err == service.ErrStudentNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	// Viewers may only read their own directory entry; staff may read any.
	switch actor.Role {
	case constants.RoleStudent, constants.RoleParent:
		if !service.IsViewerOfStudent(st, actor.ID) {
			return helper.JsonError(c, fiber.StatusForbidden, "Not your student record")
		}
	}

	return helper.JsonOK(c, "", dto.ToStudentLite(st))
}

// GET /api/t/my-students
func (ctl *StudentController) ListMine(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	asgs, students, err := service.ListAssignmentsForTeacher(ctl.DB, actor.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assignments")
	}

	byID := make(map[uuid.UUID]dto.StudentLite, len(students))
	for i := range students {
		byID[students[i].StudentID] = dto.ToStudentLite(&students[i])
	}

	out := make([]dto.AssignmentResponse, 0, len(asgs))
	for _, a := range asgs {
		out = append(out, dto.AssignmentResponse{
			AssignmentID: a.TeacherAssignmentID,
			Student:      byID[a.TeacherAssignmentStudentID],
			Role:         a.TeacherAssignmentRole,
			Status:       a.TeacherAssignmentStatus,
			Subjects:     a.TeacherAssignmentSubjects,
		})
	}
	return helper.JsonList(c, "", out)
}
