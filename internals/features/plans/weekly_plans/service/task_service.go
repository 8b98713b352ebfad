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

// ListTasks returns a plan's tasks, optionally narrowed to one day, ordered
// by day then display order.
func ListTasks(db *gorm.DB, planID uuid.UUID, date *time.Time) ([]model.PlanTaskModel, error) {
	var tasks []model.PlanTaskModel
	err := withReadRetry(func() error {
		q := db.Where("plan_task_plan_id = ?", planID)
		if date != nil {
			q = q.Where("plan_task_target_date = ?", datatypes.Date(weekdate.DateOnly(*date)))
		}
		return q.Order("plan_task_target_date ASC, plan_task_display_order ASC").Find(&tasks).Error
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindTaskByID loads a task or fails with ErrTaskNotFound.
func FindTaskByID(db *gorm.DB, taskID uuid.UUID) (*model.PlanTaskModel, error) {
	var task model.PlanTaskModel
	err := withReadRetry(func() error {
		return db.Where("plan_task_id = ?", taskID).First(&task).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// AddTask appends a task to one day of the plan. Display order is
// max(existing)+1 for that day, 1 when the day is still empty. Content is
// trimmed and must not be empty afterwards (the DTO min-length check alone
// would let whitespace through).
func AddTask(db *gorm.DB, planID uuid.UUID, targetDate time.Time, content string) (*model.PlanTaskModel, error) {
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

	day := datatypes.Date(weekdate.DateOnly(targetDate))
	task := model.PlanTaskModel{
		PlanTaskPlanID:     planID,
		PlanTaskTargetDate: day,
		PlanTaskContent:    content,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&model.PlanTaskModel{}).
			Where("plan_task_plan_id = ? AND plan_task_target_date = ?", planID, day).
			Select("COALESCE(MAX(plan_task_display_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		task.PlanTaskDisplayOrder = maxOrder + 1
		version, err := dayOrderingVersion(tx, planID, day)
		if err != nil {
			return err
		}
		task.PlanTaskOrderingVersion = version
		return tx.Create(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask rewrites content and/or moves the task to another day of the
// same week. A moved task goes to the end of its new day and its old day is
// re-packed so display orders stay dense.
func UpdateTask(db *gorm.DB, taskID uuid.UUID, content *string, targetDate *time.Time) (*model.PlanTaskModel, error) {
	if content != nil {
		trimmed := strings.TrimSpace(*content)
		if trimmed == "" {
			return nil, ErrEmptyContent
		}
		content = &trimmed
	}
	task, err := FindTaskByID(db, taskID)
	if err != nil {
		return nil, err
	}
	plan, err := FindPlanByID(db, task.PlanTaskPlanID)
	if err != nil {
		return nil, err
	}

	if targetDate != nil && !weekdate.InWeek(*targetDate, plan.WeekStartTime()) {
		return nil, ErrOutOfWeekRange
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if content != nil {
			updates["plan_task_content"] = *content
		}

		if targetDate != nil && !weekdate.SameDate(*targetDate, task.TargetDateTime()) {
			oldDay := task.PlanTaskTargetDate
			newDay := datatypes.Date(weekdate.DateOnly(*targetDate))

			var maxOrder int
			if err := tx.Model(&model.PlanTaskModel{}).
				Where("plan_task_plan_id = ? AND plan_task_target_date = ?", task.PlanTaskPlanID, newDay).
				Select("COALESCE(MAX(plan_task_display_order), 0)").
				Scan(&maxOrder).Error; err != nil {
				return err
			}
			version, err := dayOrderingVersion(tx, task.PlanTaskPlanID, newDay)
			if err != nil {
				return err
			}
			updates["plan_task_target_date"] = newDay
			updates["plan_task_display_order"] = maxOrder + 1
			updates["plan_task_ordering_version"] = version

			if err := tx.Model(task).Updates(updates).Error; err != nil {
				return err
			}
			return repackDay(tx, task.PlanTaskPlanID, oldDay)
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(task).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return FindTaskByID(db, taskID)
}

// DeleteTask removes a task and re-packs its day back to 1..N.
func DeleteTask(db *gorm.DB, taskID uuid.UUID) error {
	task, err := FindTaskByID(db, taskID)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PlanTaskModel{}, "plan_task_id = ?", taskID).Error; err != nil {
			return err
		}
		return repackDay(tx, task.PlanTaskPlanID, task.PlanTaskTargetDate)
	})
}

// ReorderTasks rewrites a day's display orders to the 1-based position of
// each id in orderedIDs. The id set must match the day's tasks exactly (no
// partial reorders), and observedVersion must equal the day's current
// ordering version or the write is rejected as stale — last-writer-wins
// would silently drop a concurrent teacher's reorder.
func ReorderTasks(db *gorm.DB, planID uuid.UUID, targetDate time.Time, orderedIDs []uuid.UUID, observedVersion int) ([]model.PlanTaskModel, error) {
	plan, err := FindPlanByID(db, planID)
	if err != nil {
		return nil, err
	}
	if !weekdate.InWeek(targetDate, plan.WeekStartTime()) {
		return nil, ErrOutOfWeekRange
	}
	day := datatypes.Date(weekdate.DateOnly(targetDate))

	err = db.Transaction(func(tx *gorm.DB) error {
		var existing []model.PlanTaskModel
		if err := tx.
			Where("plan_task_plan_id = ? AND plan_task_target_date = ?", planID, day).
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) != len(orderedIDs) {
			return ErrIncompleteReorderSet
		}
		byID := make(map[uuid.UUID]struct{}, len(existing))
		current := 1
		for _, t := range existing {
			byID[t.PlanTaskID] = struct{}{}
			if t.PlanTaskOrderingVersion > current {
				current = t.PlanTaskOrderingVersion
			}
		}
		for _, id := range orderedIDs {
			if _, ok := byID[id]; !ok {
				return ErrIncompleteReorderSet
			}
			delete(byID, id) // also catches duplicate ids in the payload
		}

		if observedVersion != current {
			return ErrStaleReorder
		}

		next := current + 1
		for pos, id := range orderedIDs {
			if err := tx.Model(&model.PlanTaskModel{}).
				Where("plan_task_id = ?", id).
				Updates(map[string]interface{}{
					"plan_task_display_order":    pos + 1,
					"plan_task_ordering_version": next,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d := weekdate.DateOnly(targetDate)
	return ListTasks(db, planID, &d)
}

// ToggleTaskCompletion flips is_completed. Toggling twice restores the
// original state.
func ToggleTaskCompletion(db *gorm.DB, taskID uuid.UUID) (*model.PlanTaskModel, error) {
	task, err := FindTaskByID(db, taskID)
	if err != nil {
		return nil, err
	}
	newVal := !task.PlanTaskIsCompleted
	if err := db.Model(task).Update("plan_task_is_completed", newVal).Error; err != nil {
		return nil, err
	}
	task.PlanTaskIsCompleted = newVal
	return task, nil
}

// dayOrderingVersion: the current ordering version of (plan, day); 1 when
// the day has no tasks yet.
func dayOrderingVersion(tx *gorm.DB, planID uuid.UUID, day datatypes.Date) (int, error) {
	var version int
	if err := tx.Model(&model.PlanTaskModel{}).
		Where("plan_task_plan_id = ? AND plan_task_target_date = ?", planID, day).
		Select("COALESCE(MAX(plan_task_ordering_version), 1)").
		Scan(&version).Error; err != nil {
		return 0, err
	}
	if version < 1 {
		version = 1
	}
	return version, nil
}

// repackDay rewrites a day's display orders to dense 1..N, keeping the
// current relative order.
func repackDay(tx *gorm.DB, planID uuid.UUID, day datatypes.Date) error {
	var tasks []model.PlanTaskModel
	if err := tx.
		Where("plan_task_plan_id = ? AND plan_task_target_date = ?", planID, day).
		Order("plan_task_display_order ASC").
		Find(&tasks).Error; err != nil {
		return err
	}
	for i, t := range tasks {
		if t.PlanTaskDisplayOrder == i+1 {
			continue
		}
		if err := tx.Model(&model.PlanTaskModel{}).
			Where("plan_task_id = ?", t.PlanTaskID).
			Update("plan_task_display_order", i+1).Error; err != nil {
			return err
		}
	}
	return nil
}
