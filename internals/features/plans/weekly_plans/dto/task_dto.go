package dto

import (
	"github.com/google/uuid"

	model "tutorku_backend/internals/features/plans/weekly_plans/model"
	"tutorku_backend/internals/helpers/weekdate"
)

/* ===================== REQUESTS ===================== */

type CreateTaskRequest struct {
	TargetDate string `json:"target_date" validate:"required,datetime=2006-01-02"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}

// Update (partial): only the supplied fields change. Moving the task to a
// different day of the same week is allowed.
type UpdateTaskRequest struct {
	TargetDate *string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Content    *string `json:"content" validate:"omitempty,min=1,max=2000"`
}

// Reorder: the id list must contain exactly the tasks of target_date, and
// ordering_version must be the version the caller saw when it loaded the
// day (stale versions are rejected instead of silently winning).
type ReorderTasksRequest struct {
	TargetDate      string      `json:"target_date" validate:"required,datetime=2006-01-02"`
	OrderedTaskIDs  []uuid.UUID `json:"ordered_task_ids" validate:"required,min=1"`
	OrderingVersion int         `json:"ordering_version" validate:"required,min=1"`
}

/* ===================== RESPONSES ===================== */

type TaskResponse struct {
	TaskID          uuid.UUID `json:"task_id"`
	PlanID          uuid.UUID `json:"plan_id"`
	TargetDate      string    `json:"target_date"`
	Content         string    `json:"content"`
	IsCompleted     bool      `json:"is_completed"`
	DisplayOrder    int       `json:"display_order"`
	OrderingVersion int       `json:"ordering_version"`
}

func ToTaskResponse(m *model.PlanTaskModel) TaskResponse {
	return TaskResponse{
		TaskID:          m.PlanTaskID,
		PlanID:          m.PlanTaskPlanID,
		TargetDate:      weekdate.FormatDate(m.TargetDateTime()),
		Content:         m.PlanTaskContent,
		IsCompleted:     m.PlanTaskIsCompleted,
		DisplayOrder:    m.PlanTaskDisplayOrder,
		OrderingVersion: m.PlanTaskOrderingVersion,
	}
}

func ToTaskResponses(ms []model.PlanTaskModel) []TaskResponse {
	out := make([]TaskResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToTaskResponse(&ms[i]))
	}
	return out
}
