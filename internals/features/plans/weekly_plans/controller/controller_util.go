package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	directoryService "tutorku_backend/internals/features/directory/students/service"
	service "tutorku_backend/internals/features/plans/weekly_plans/service"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/helpers/weekdate"
)

var validatePlans = validator.New()

// jsonServiceError maps the engine's error taxonomy onto HTTP. Validation
// and permission rejections surface verbatim; anything unknown becomes an
// opaque 500 (raw store errors never reach the caller).
func jsonServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPlanAlreadyExists):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrStaleReorder):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, directoryService.ErrStudentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrOutOfWeekRange),
		errors.Is(err, service.ErrIncompleteReorderSet),
		errors.Is(err, service.ErrInvalidPlanStatus),
		errors.Is(err, service.ErrEmptyContent):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	default:
		log.Printf("[ERROR] weekly_plans: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal error")
	}
}

func parseDateParam(raw string) (time.Time, error) {
	return time.Parse(weekdate.DateLayout, raw)
}
