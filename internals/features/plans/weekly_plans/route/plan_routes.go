package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planCtl "tutorku_backend/internals/features/plans/weekly_plans/controller"
)

// PlanUserRoutes: any authenticated role. Viewers read their own week and
// self-check tasks; teachers/admins get the same view with their
// capabilities attached.
func PlanUserRoutes(r fiber.Router, db *gorm.DB) {
	plan := planCtl.NewPlanController(db)
	task := planCtl.NewPlanTaskController(db)

	plans := r.Group("/plans")
	plans.Get("/:student_id/:week", plan.GetWeek)

	tasks := r.Group("/plan-tasks")
	tasks.Patch("/:task_id/toggle", task.Toggle)
}

// PlanTeacherRoutes: teacher/admin only (mounted behind the role guard);
// per-student rights are decided by the capability set, not the route.
func PlanTeacherRoutes(r fiber.Router, db *gorm.DB) {
	plan := planCtl.NewPlanController(db)
	task := planCtl.NewPlanTaskController(db)
	comment := planCtl.NewPlanCommentController(db)

	plans := r.Group("/plans")
	// static-suffix routes first: POST /plans/:student_id/:week would
	// otherwise swallow /plans/:plan_id/publish etc.
	plans.Post("/:plan_id/publish", plan.Publish)
	plans.Post("/:plan_id/tasks", task.Create)
	plans.Post("/:plan_id/comments", comment.Create)
	plans.Put("/:plan_id/tasks/reorder", task.Reorder)
	plans.Patch("/:plan_id/notes", plan.UpdateNotes)
	plans.Post("/:student_id/:week", plan.Create)

	tasks := r.Group("/plan-tasks")
	tasks.Put("/:task_id", task.Update)
	tasks.Delete("/:task_id", task.Delete)

	comments := r.Group("/plan-comments")
	comments.Put("/:comment_id", comment.Update)
	comments.Delete("/:comment_id", comment.Delete)
}
