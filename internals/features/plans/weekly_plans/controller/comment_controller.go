package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tutorku_backend/internals/features/plans/weekly_plans/dto"
	service "tutorku_backend/internals/features/plans/weekly_plans/service"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type PlanCommentController struct{ DB *gorm.DB }

func NewPlanCommentController(db *gorm.DB) *PlanCommentController {
	return &PlanCommentController{DB: db}
}

// POST /api/t/plans/:plan_id/comments
func (ctl *PlanCommentController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	planID, err := uuid.Parse(c.Params("plan_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var req dto.CreateCommentRequest
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
	if !caps.CanAddComments {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to comment on this plan")
	}

	targetDate, err := parseDateParam(req.TargetDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid target date")
	}
	cm, err := service.AddComment(ctl.DB, planID, targetDate, actor.ID, req.Content)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Comment added", dto.ToCommentResponse(cm))
}

// PUT /api/t/plan-comments/:comment_id
// Author-only; admins may edit any comment (explicit override).
func (ctl *PlanCommentController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validatePlans.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	cm, err := service.UpdateComment(ctl.DB, commentID, actor.ID, actor.IsAdmin(), req.Content)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Comment updated", dto.ToCommentResponse(cm))
}

// DELETE /api/t/plan-comments/:comment_id
func (ctl *PlanCommentController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	if err := service.DeleteComment(ctl.DB, commentID, actor.ID, actor.IsAdmin()); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Comment deleted", fiber.Map{"comment_id": commentID})
}
