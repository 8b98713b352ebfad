package dto

import (
	"github.com/google/uuid"

	model "tutorku_backend/internals/features/plans/weekly_plans/model"
	"tutorku_backend/internals/helpers/weekdate"
)

/* ===================== REQUESTS ===================== */

// Create: the author is always the actor from the token, never the body.
type CreateCommentRequest struct {
	TargetDate string `json:"target_date" validate:"required,datetime=2006-01-02"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

/* ===================== RESPONSES ===================== */

type CommentResponse struct {
	CommentID    uuid.UUID `json:"comment_id"`
	PlanID       uuid.UUID `json:"plan_id"`
	TargetDate   string    `json:"target_date"`
	AuthorUserID uuid.UUID `json:"author_user_id"`
	Content      string    `json:"content"`
	CreatedAt    string    `json:"created_at"`
}

func ToCommentResponse(m *model.PlanCommentModel) CommentResponse {
	return CommentResponse{
		CommentID:    m.PlanCommentID,
		PlanID:       m.PlanCommentPlanID,
		TargetDate:   weekdate.FormatDate(m.TargetDateTime()),
		AuthorUserID: m.PlanCommentAuthorUserID,
		Content:      m.PlanCommentContent,
		CreatedAt:    m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
