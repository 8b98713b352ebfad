package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	directoryService "tutorku_backend/internals/features/directory/students/service"
	dto "tutorku_backend/internals/features/plans/weekly_plans/dto"
	service "tutorku_backend/internals/features/plans/weekly_plans/service"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
	"tutorku_backend/internals/helpers/weekdate"
)

type PlanController struct{ DB *gorm.DB }

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db}
}

// GET /api/u/plans/:student_id/:week
// :week is a yyyy-MM-dd week identifier; anything unparseable means "this
// week". A missing plan is a valid view (plan: null, 7 empty slots).
func (ctl *PlanController) GetWeek(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	// Student/parent viewers only see their own student's week.
	switch actor.Role {
	case constants.RoleStudent, constants.RoleParent:
		st, err := directoryService.FindStudent(ctl.DB, studentID)
		if err != nil {
			return jsonServiceError(c, err)
		}
		if !directoryService.IsViewerOfStudent(st, actor.ID) {
			return helper.JsonError(c, fiber.StatusForbidden, "Not your student record")
		}
	}

	view, err := service.AssembleWeek(ctl.DB, studentID, c.Params("week"), actor)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToWeekViewResponse(view))
}

// POST /api/t/plans/:student_id/:week
// Creates the plan for that week; 409 when it already exists.
func (ctl *PlanController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	// Body is optional: an empty POST creates a draft with no notes.
	var req dto.CreatePlanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
		}
	}
	if err := validatePlans.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	caps, err := service.ResolveCapabilities(ctl.DB, actor, studentID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !caps.CanAddTasks {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to create this student's plan")
	}

	weekStart := weekdate.ParseWeekIdentifier(c.Params("week"))
	plan, err := service.CreatePlan(ctl.DB, studentID, weekStart, req.Status, req.Notes)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Plan created", dto.ToPlanResponse(plan))
}

// PATCH /api/t/plans/:plan_id/notes
func (ctl *PlanController) UpdateNotes(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	planID, err := uuid.Parse(c.Params("plan_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var req dto.UpdatePlanNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validatePlans.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	plan, err := service.FindPlanByID(ctl.DB, planID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	caps, err := service.ResolveCapabilities(ctl.DB, actor, plan.WeeklyPlanStudentID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !caps.CanEditTasks {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to edit this plan")
	}

	updated, err := service.UpdatePlanNotes(ctl.DB, planID, req.Notes)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Notes updated", dto.ToPlanResponse(updated))
}

// POST /api/t/plans/:plan_id/publish
// Idempotent: publishing a published plan is a no-op.
func (ctl *PlanController) Publish(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	planID, err := uuid.Parse(c.Params("plan_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	plan, err := service.FindPlanByID(ctl.DB, planID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	caps, err := service.ResolveCapabilities(ctl.DB, actor, plan.WeeklyPlanStudentID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !caps.CanPublish {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to publish this plan")
	}

	published, err := service.PublishPlan(ctl.DB, planID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Plan published", dto.ToPlanResponse(published))
}
