package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentRoute "tutorku_backend/internals/features/directory/students/route"
)

func DirectoryUserRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentUserRoutes(r, db)
}

func DirectoryTeacherRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentTeacherRoutes(r, db)
}
