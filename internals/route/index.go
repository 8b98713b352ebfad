package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	authMiddleware "tutorku_backend/internals/middlewares/auth"
	routeDetails "tutorku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	secret := os.Getenv("JWT_SECRET")

	// ===================== PRIVATE (any authenticated role) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              secret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.PlanUserRoutes(user, db)
	routeDetails.DirectoryUserRoutes(user, db)

	// ===================== TEACHER / ADMIN =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              secret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles(constants.TeacherAndAbove...),
	)
	routeDetails.PlanTeacherRoutes(teacher, db)
	routeDetails.DirectoryTeacherRoutes(teacher, db)
}
