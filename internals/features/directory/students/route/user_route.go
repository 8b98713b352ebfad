package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "tutorku_backend/internals/features/directory/students/controller"
)

// StudentUserRoutes: any authenticated role (viewer reads own record only)
func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/:student_id", ctl.GetByID)
}

// StudentTeacherRoutes: teacher/admin only
func StudentTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	r.Get("/my-students", ctl.ListMine)
}
