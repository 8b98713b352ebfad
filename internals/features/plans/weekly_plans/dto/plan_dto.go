package dto

import (
	"github.com/google/uuid"

	studentDTO "tutorku_backend/internals/features/directory/students/dto"
	model "tutorku_backend/internals/features/plans/weekly_plans/model"
	service "tutorku_backend/internals/features/plans/weekly_plans/service"
	"tutorku_backend/internals/helpers/weekdate"
)

/* ===================== REQUESTS ===================== */

// Create: student id and week come from the URL, the actor from the token.
type CreatePlanRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=draft published"`
	Notes  string `json:"notes" validate:"omitempty,max=4000"`
}

type UpdatePlanNotesRequest struct {
	Notes string `json:"notes" validate:"max=4000"`
}

/* ===================== RESPONSES ===================== */

type PlanResponse struct {
	PlanID    uuid.UUID `json:"plan_id"`
	StudentID uuid.UUID `json:"student_id"`
	WeekStart string    `json:"week_start"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

func ToPlanResponse(m *model.WeeklyPlanModel) PlanResponse {
	return PlanResponse{
		PlanID:    m.WeeklyPlanID,
		StudentID: m.WeeklyPlanStudentID,
		WeekStart: weekdate.FormatDate(m.WeekStartTime()),
		Status:    m.WeeklyPlanStatus,
		Notes:     m.WeeklyPlanNotes,
		CreatedAt: m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: m.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// DaySlot is one of the 7 slots of the week view. Empty days keep empty
// arrays so clients can render the grid without special cases.
type DaySlot struct {
	Date      string            `json:"date"`
	DayOfWeek string            `json:"day_of_week"`
	Tasks     []TaskResponse    `json:"tasks"`
	Comments  []CommentResponse `json:"comments"`
}

// WeekViewResponse: plan is null while the week has not been created yet —
// callers treat that as "show the create button", never as an error.
type WeekViewResponse struct {
	Plan          *PlanResponse          `json:"plan"`
	Student       studentDTO.StudentLite `json:"student"`
	WeekStartDate string                 `json:"week_start_date"`
	Days          []DaySlot              `json:"days"`
	Permissions   service.CapabilitySet  `json:"permissions"`
}

func ToWeekViewResponse(v *service.WeekView) WeekViewResponse {
	out := WeekViewResponse{
		Student:       studentDTO.ToStudentLite(v.Student),
		WeekStartDate: weekdate.FormatDate(v.WeekStart),
		Days:          make([]DaySlot, 0, len(v.Days)),
		Permissions:   v.Capabilities,
	}
	if v.Plan != nil {
		p := ToPlanResponse(v.Plan)
		out.Plan = &p
	}
	for _, d := range v.Days {
		slot := DaySlot{
			Date:      weekdate.FormatDate(d.Date),
			DayOfWeek: d.Label,
			Tasks:     make([]TaskResponse, 0, len(d.Tasks)),
			Comments:  make([]CommentResponse, 0, len(d.Comments)),
		}
		for i := range d.Tasks {
			slot.Tasks = append(slot.Tasks, ToTaskResponse(&d.Tasks[i]))
		}
		for i := range d.Comments {
			slot.Comments = append(slot.Comments, ToCommentResponse(&d.Comments[i]))
		}
		out.Days = append(out.Days, slot)
	}
	return out
}
