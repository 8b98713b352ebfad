package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "tutorku_backend/internals/features/plans/weekly_plans/model"
	"tutorku_backend/internals/helpers/weekdate"
)

// ListComments returns a plan's comments, optionally narrowed to one day,
// oldest first.
func ListComments(db *gorm.DB, planID uuid.UUID, date *time.Time) ([]model.PlanCommentModel, error) {
	var comments []model.PlanCommentModel
	err := withReadRetry(func() error {
		q := db.Where("plan_comment_plan_id = ?", planID)
		if date != nil {
			q = q.Where("plan_comment_target_date = ?", datatypes.Date(weekdate.DateOnly(*date)))
		}
		return q.Order("created_at ASC").Find(&comments).Error
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// FindCommentByID loads a comment or fails with ErrCommentNotFound.
func FindCommentByID(db *gorm.DB, commentID uuid.UUID) (*model.PlanCommentModel, error) {
	var cm model.PlanCommentModel
	err := withReadRetry(func() error {
		return db.Where("plan_comment_id = ?", commentID).First(&cm).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &cm, nil
}

// AddComment appends teacher feedback to one day of the plan. No
// uniqueness: the same author may comment on the same day repeatedly.
// Content is trimmed and must not be empty afterwards.
func AddComment(db *gorm.DB, planID uuid.UUID, targetDate time.Time, authorUserID uuid.UUID, content string) (*model.PlanCommentModel, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	plan, err := FindPlanByID(db, planID)
	if err != nil {
		return nil, err
	}
	if !weekdate.InWeek(targetDate, plan.WeekStartTime()) {
		return nil, ErrOutOfWeekRange
	}

	cm := model.PlanCommentModel{
		PlanCommentPlanID:       planID,
		PlanCommentTargetDate:   datatypes.Date(weekdate.DateOnly(targetDate)),
		PlanCommentAuthorUserID: authorUserID,
		PlanCommentContent:      content,
	}
	if err := db.Create(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

// UpdateComment rewrites a comment's content. Only the author may edit it;
// the admin override is explicit, not a general rule. Authorship itself
// never changes.
func UpdateComment(db *gorm.DB, commentID, actorUserID uuid.UUID, actorIsAdmin bool, content string) (*model.PlanCommentModel, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	cm, err := FindCommentByID(db, commentID)
	if err != nil {
		return nil, err
	}
	if !actorIsAdmin && cm.PlanCommentAuthorUserID != actorUserID {
		return nil, ErrPermissionDenied
	}
	if err := db.Model(cm).Update("plan_comment_content", content).Error; err != nil {
		return nil, err
	}
	cm.PlanCommentContent = content
	return cm, nil
}

// DeleteComment removes a comment under the same author-or-admin rule as
// UpdateComment.
func DeleteComment(db *gorm.DB, commentID, actorUserID uuid.UUID, actorIsAdmin bool) error {
	cm, err := FindCommentByID(db, commentID)
	if err != nil {
		return err
	}
	if !actorIsAdmin && cm.PlanCommentAuthorUserID != actorUserID {
		return ErrPermissionDenied
	}
	return db.Delete(&model.PlanCommentModel{}, "plan_comment_id = ?", commentID).Error
}
