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

// GetPlan looks up the plan for (student, week start). An absent plan is a
// normal result, not an error: the caller gets (nil, nil) and renders an
// empty week.
func GetPlan(db *gorm.DB, studentID uuid.UUID, weekStart time.Time) (*model.WeeklyPlanModel, error) {
	var plan model.WeeklyPlanModel
	err := withReadRetry(func() error {
		return db.
			Where("weekly_plan_student_id = ?", studentID).
			Where("weekly_plan_week_start = ?", datatypes.Date(weekdate.DateOnly(weekStart))).
			First(&plan).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// FindPlanByID loads a plan or fails with ErrPlanNotFound.
func FindPlanByID(db *gorm.DB, planID uuid.UUID) (*model.WeeklyPlanModel, error) {
	var plan model.WeeklyPlanModel
	err := withReadRetry(func() error {
		return db.Where("weekly_plan_id = ?", planID).First(&plan).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// CreatePlan creates the plan for (student, week start). Both draft and
// published are valid initial states. The (student, week) unique index is
// the authority on duplicates: no pre-check, a constraint violation comes
// back as ErrPlanAlreadyExists.
func CreatePlan(db *gorm.DB, studentID uuid.UUID, weekStart time.Time, status, notes string) (*model.WeeklyPlanModel, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		status = model.PlanStatusDraft
	}
	if status != model.PlanStatusDraft && status != model.PlanStatusPublished {
		return nil, ErrInvalidPlanStatus
	}

	ws := weekdate.NormalizeToWeekStart(weekStart)
	plan := model.WeeklyPlanModel{
		WeeklyPlanStudentID: studentID,
		WeeklyPlanWeekStart: datatypes.Date(ws),
		WeeklyPlanStatus:    status,
		WeeklyPlanNotes:     strings.TrimSpace(notes),
	}
	if err := db.Create(&plan).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPlanAlreadyExists
		}
		return nil, err
	}
	return &plan, nil
}

// PublishPlan transitions draft → published. Publishing an already
// published plan is a no-op, and there is no way back to draft. Publishing
// freezes nothing: tasks and comments stay editable.
func PublishPlan(db *gorm.DB, planID uuid.UUID) (*model.WeeklyPlanModel, error) {
	plan, err := FindPlanByID(db, planID)
	if err != nil {
		return nil, err
	}
	if plan.WeeklyPlanStatus == model.PlanStatusPublished {
		return plan, nil
	}
	if err := db.Model(plan).
		Update("weekly_plan_status", model.PlanStatusPublished).Error; err != nil {
		return nil, err
	}
	plan.WeeklyPlanStatus = model.PlanStatusPublished
	return plan, nil
}

// UpdatePlanNotes replaces the free-text notes of a plan.
func UpdatePlanNotes(db *gorm.DB, planID uuid.UUID, notes string) (*model.WeeklyPlanModel, error) {
	plan, err := FindPlanByID(db, planID)
	if err != nil {
		return nil, err
	}
	notes = strings.TrimSpace(notes)
	if err := db.Model(plan).Update("weekly_plan_notes", notes).Error; err != nil {
		return nil, err
	}
	plan.WeeklyPlanNotes = notes
	return plan, nil
}
