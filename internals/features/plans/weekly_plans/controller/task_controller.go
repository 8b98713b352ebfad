package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	directoryService "tutorku_backend/internals/features/directory/students/service"
	dto "tutorku_backend/internals/features/plans/weekly_plans/dto"
	service "tutorku_backend/internals/features/plans/weekly_plans/service"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type PlanTaskController struct{ DB *gorm.DB }

func NewPlanTaskController(db *gorm.DB) *PlanTaskController {
	return &PlanTaskController{DB: db}
}

// capsForPlan: load the plan, then evaluate the actor's capabilities against
// its student. Every task mutation starts here.
func (ctl *PlanTaskController) capsForPlan(c *fiber.Ctx, planID uuid.UUID) (service.CapabilitySet, error) {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return service.CapabilitySet{}, err
	}
	plan, err := service.FindPlanByID(ctl.DB, planID)
	if err != nil {
		return service.CapabilitySet{}, err
	}
	caps, err := service.ResolveCapabilities(ctl.DB, actor, plan.WeeklyPlanStudentID)
	if err != nil {
		return service.CapabilitySet{}, err
	}
	return caps, nil
}

// POST /api/t/plans/:plan_id/tasks
func (ctl *PlanTaskController) Create(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("plan_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validatePlans.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	caps, err := ctl.capsForPlan(c, planID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !caps.CanAddTasks {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to add tasks")
	}

	targetDate, err := parseDateParam(req.TargetDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid target date")
	}
	task, err := service.AddTask(ctl.DB, planID, targetDate, req.Content)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Task added", dto.ToTaskResponse(task))
}

// PUT /api/t/plan-tasks/:task_id
func (ctl *PlanTaskController) Update(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validatePlans.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	task, err := service.FindTaskByID(ctl.DB, taskID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	caps, err := ctl.capsForPlan(c, task.PlanTaskPlanID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !caps.CanEditTasks {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to edit tasks")
	}

	var targetDate *time.Time
	if req.TargetDate != nil {
		d, err := parseDateParam(*req.TargetDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid target date")
		}
		targetDate = &d
	}
	updated, err := service.UpdateTask(ctl.DB, taskID, req.Content, targetDate)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Task updated", dto.ToTaskResponse(updated))
}

// DELETE /api/t/plan-tasks/:task_id
func (ctl *PlanTaskController) Delete(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	task, err := service.FindTaskByID(ctl.DB, taskID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	caps, err := ctl.capsForPlan(c, task.PlanTaskPlanID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !caps.CanDeleteTasks {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to delete tasks")
	}

	if err := service.DeleteTask(ctl.DB, taskID); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Task deleted", fiber.Map{"task_id": taskID})
}

// PUT /api/t/plans/:plan_id/tasks/reorder
func (ctl *PlanTaskController) Reorder(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("plan_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var req dto.ReorderTasksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validatePlans.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	caps, err := ctl.capsForPlan(c, planID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !caps.CanReorderTasks {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to reorder tasks")
	}

	targetDate, err := parseDateParam(req.TargetDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid target date")
	}
	tasks, err := service.ReorderTasks(ctl.DB, planID, targetDate, req.OrderedTaskIDs, req.OrderingVersion)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Tasks reordered", dto.ToTaskResponses(tasks))
}

// PATCH /api/u/plan-tasks/:task_id/toggle
// The student (or parent) self-check: flips completion on the viewer's own
// plan only. Orthogonal to the teacher/admin matrix.
func (ctl *PlanTaskController) Toggle(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	task, err := service.FindTaskByID(ctl.DB, taskID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	plan, err := service.FindPlanByID(ctl.DB, task.PlanTaskPlanID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	caps, err := service.ResolveCapabilities(ctl.DB, actor, plan.WeeklyPlanStudentID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !caps.CanToggleOwnTask {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to toggle tasks")
	}

	st, err := directoryService.FindStudent(ctl.DB, plan.WeeklyPlanStudentID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if !directoryService.IsViewerOfStudent(st, actor.ID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not your plan")
	}

	toggled, err := service.ToggleTaskCompletion(ctl.DB, taskID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Task toggled", dto.ToTaskResponse(toggled))
}
