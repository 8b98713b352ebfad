package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planRoute "tutorku_backend/internals/features/plans/weekly_plans/route"
)

func PlanUserRoutes(r fiber.Router, db *gorm.DB) {
	planRoute.PlanUserRoutes(r, db)
}

func PlanTeacherRoutes(r fiber.Router, db *gorm.DB) {
	planRoute.PlanTeacherRoutes(r, db)
}
