package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/constants"
	helperAuth "tutorku_backend/internals/helpers/auth"
	"tutorku_backend/internals/helpers/weekdate"
)

func TestAssembleWeek(t *testing.T) {
	t.Run("no plan yet: null plan, 7 empty slots", func(t *testing.T) {
		db := newTestDB(t)
		st := seedStudent(t, db)
		teacher := uuid.New()
		seedAssignment(t, db, teacher, st.StudentID, constants.AssignmentRoleMentor, constants.AssignmentStatusActive)

		actor := helperAuth.Actor{ID: teacher, Role: constants.RoleTeacher}
		view, err := AssembleWeek(db, st.StudentID, weekdate.FormatDate(testWeekStart), actor)
		require.NoError(t, err)

		assert.Nil(t, view.Plan)
		assert.Equal(t, st.StudentID, view.Student.StudentID)
		assert.Equal(t, testWeekStart, view.WeekStart)
		require.Len(t, view.Days, weekdate.DaysPerWeek)
		for i, day := range view.Days {
			assert.Equal(t, testWeekStart.AddDate(0, 0, i), day.Date)
			assert.NotEmpty(t, day.Label)
			assert.NotNil(t, day.Tasks)
			assert.Empty(t, day.Tasks)
			assert.NotNil(t, day.Comments)
			assert.Empty(t, day.Comments)
		}
		// mentor sees full edit capabilities even on an uncreated week
		assert.True(t, view.Capabilities.CanAddTasks)
		assert.True(t, view.Capabilities.CanPublish)
	})

	t.Run("tasks and comments land in their day slots", func(t *testing.T) {
		db := newTestDB(t)
		st := seedStudent(t, db)
		plan := seedPlan(t, db, st.StudentID)

		monday := testWeekStart
		thursday := monday.AddDate(0, 0, 3)
		seedTasks(t, db, plan.WeeklyPlanID, monday, "a", "b")
		seedTasks(t, db, plan.WeeklyPlanID, thursday, "c")
		_, err := AddComment(db, plan.WeeklyPlanID, thursday, uuid.New(), "semangat")
		require.NoError(t, err)

		actor := helperAuth.Actor{ID: uuid.New(), Role: constants.RoleAdmin}
		view, err := AssembleWeek(db, st.StudentID, weekdate.FormatDate(monday), actor)
		require.NoError(t, err)
		require.NotNil(t, view.Plan)
		assert.Equal(t, plan.WeeklyPlanID, view.Plan.WeeklyPlanID)

		require.Len(t, view.Days, weekdate.DaysPerWeek)
		assert.Len(t, view.Days[0].Tasks, 2)
		assert.Equal(t, "a", view.Days[0].Tasks[0].PlanTaskContent)
		assert.Equal(t, "b", view.Days[0].Tasks[1].PlanTaskContent)
		assert.Len(t, view.Days[3].Tasks, 1)
		assert.Len(t, view.Days[3].Comments, 1)
		assert.Empty(t, view.Days[1].Tasks)
		assert.Empty(t, view.Days[6].Tasks)
	})

	t.Run("lenient week identifier falls back to the current week", func(t *testing.T) {
		db := newTestDB(t)
		st := seedStudent(t, db)

		actor := helperAuth.Actor{ID: st.StudentUserID, Role: constants.RoleStudent}
		view, err := AssembleWeek(db, st.StudentID, "next-week-maybe", actor)
		require.NoError(t, err)
		assert.True(t, weekdate.IsWeekStart(view.WeekStart))
		assert.True(t, view.Capabilities.CanToggleOwnTask)
		assert.False(t, view.Capabilities.CanAddTasks)
	})

	t.Run("unknown student", func(t *testing.T) {
		db := newTestDB(t)
		actor := helperAuth.Actor{ID: uuid.New(), Role: constants.RoleAdmin}
		_, err := AssembleWeek(db, uuid.New(), weekdate.FormatDate(testWeekStart), actor)
		assert.Error(t, err)
	})
}

func TestResolveCapabilities(t *testing.T) {
	db := newTestDB(t)
	st := seedStudent(t, db)
	mentor := uuid.New()
	instructor := uuid.New()
	former := uuid.New()
	seedAssignment(t, db, mentor, st.StudentID, constants.AssignmentRoleMentor, constants.AssignmentStatusActive)
	seedAssignment(t, db, instructor, st.StudentID, constants.AssignmentRoleInstructor, constants.AssignmentStatusActive)
	seedAssignment(t, db, former, st.StudentID, constants.AssignmentRoleMentor, constants.AssignmentStatusEnded)

	cases := []struct {
		name  string
		actor helperAuth.Actor
		want  CapabilitySet
	}{
		{"mentor", helperAuth.Actor{ID: mentor, Role: constants.RoleTeacher}, fullCaps},
		{"instructor", helperAuth.Actor{ID: instructor, Role: constants.RoleTeacher},
			CapabilitySet{CanAddComments: true, CanEditComments: true}},
		{"ended assignment", helperAuth.Actor{ID: former, Role: constants.RoleTeacher}, CapabilitySet{}},
		{"unrelated teacher", helperAuth.Actor{ID: uuid.New(), Role: constants.RoleTeacher}, CapabilitySet{}},
		{"admin", helperAuth.Actor{ID: uuid.New(), Role: constants.RoleAdmin}, fullCaps},
		{"parent", helperAuth.Actor{ID: uuid.New(), Role: constants.RoleParent},
			CapabilitySet{CanToggleOwnTask: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveCapabilities(db, tc.actor, st.StudentID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
