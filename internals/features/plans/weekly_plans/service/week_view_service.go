package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	directoryModel "tutorku_backend/internals/features/directory/students/model"
	directoryService "tutorku_backend/internals/features/directory/students/service"
	model "tutorku_backend/internals/features/plans/weekly_plans/model"
	helperAuth "tutorku_backend/internals/helpers/auth"
	"tutorku_backend/internals/helpers/weekdate"
)

// WeekView is the fully composed per-week view handed to the caller: the
// plan (nil when not yet created — a normal state, not an error), the
// student, exactly 7 day-slots and the caller's capability set. It is never
// partially populated.
type WeekView struct {
	Plan         *model.WeeklyPlanModel
	Student      *directoryModel.StudentModel
	WeekStart    time.Time
	Days         []WeekViewDay
	Capabilities CapabilitySet
}

// WeekViewDay is one of the 7 day-slots. Days without tasks or comments are
// present with empty slices, never omitted.
type WeekViewDay struct {
	Date     time.Time
	Label    string
	Tasks    []model.PlanTaskModel
	Comments []model.PlanCommentModel
}

// AssembleWeek resolves the week identifier (leniently: a bad identifier
// means "this week"), loads the plan and, when it exists, its tasks and
// comments, buckets everything into the 7 day-slots and attaches the
// actor's capabilities.
func AssembleWeek(db *gorm.DB, studentID uuid.UUID, rawWeek string, actor helperAuth.Actor) (*WeekView, error) {
	weekStart := weekdate.ParseWeekIdentifier(rawWeek)
	days, err := weekdate.WeekDates(weekStart)
	if err != nil {
		return nil, err
	}

	student, err := directoryService.FindStudent(db, studentID)
	if err != nil {
		return nil, err
	}

	caps, err := ResolveCapabilities(db, actor, studentID)
	if err != nil {
		return nil, err
	}

	view := &WeekView{
		Student:      student,
		WeekStart:    weekStart,
		Days:         make([]WeekViewDay, 0, weekdate.DaysPerWeek),
		Capabilities: caps,
	}
	for _, d := range days {
		view.Days = append(view.Days, WeekViewDay{
			Date:     d.Date,
			Label:    d.Label,
			Tasks:    []model.PlanTaskModel{},
			Comments: []model.PlanCommentModel{},
		})
	}

	plan, err := GetPlan(db, studentID, weekStart)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return view, nil
	}
	view.Plan = plan

	tasks, err := ListTasks(db, plan.WeeklyPlanID, nil)
	if err != nil {
		return nil, err
	}
	comments, err := ListComments(db, plan.WeeklyPlanID, nil)
	if err != nil {
		return nil, err
	}

	slot := func(date time.Time) *WeekViewDay {
		for i := range view.Days {
			if weekdate.SameDate(view.Days[i].Date, date) {
				return &view.Days[i]
			}
		}
		return nil
	}
	for _, t := range tasks {
		if s := slot(t.TargetDateTime()); s != nil {
			s.Tasks = append(s.Tasks, t)
		}
	}
	for _, cm := range comments {
		if s := slot(cm.TargetDateTime()); s != nil {
			s.Comments = append(s.Comments, cm)
		}
	}

	return view, nil
}

// ResolveCapabilities evaluates the permission rule table for an actor and
// a target student. Only teachers need the assignment lookup; everyone else
// is decided by role alone.
func ResolveCapabilities(db *gorm.DB, actor helperAuth.Actor, studentID uuid.UUID) (CapabilitySet, error) {
	var asg *directoryModel.TeacherAssignmentModel
	if actor.Role == constants.RoleTeacher {
		found, err := directoryService.FindActiveAssignment(db, actor.ID, studentID)
		if err != nil {
			return CapabilitySet{}, err
		}
		asg = found
	}
	return Capabilities(actor.Role, asg), nil
}
