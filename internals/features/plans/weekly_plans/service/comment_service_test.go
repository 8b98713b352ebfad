package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	db := newTestDB(t)
	st := seedStudent(t, db)
	plan := seedPlan(t, db, st.StudentID)
	author := uuid.New()

	t.Run("pins the comment to a day of the week", func(t *testing.T) {
		cm, err := AddComment(db, plan.WeeklyPlanID, testWeekStart.AddDate(0, 0, 3), author, "tambah latihan soal")
		require.NoError(t, err)
		assert.Equal(t, author, cm.PlanCommentAuthorUserID)
		assert.Equal(t, "tambah latihan soal", cm.PlanCommentContent)
		assert.True(t, cm.TargetDateTime().Equal(testWeekStart.AddDate(0, 0, 3)))
	})

	t.Run("same author may comment the same day twice", func(t *testing.T) {
		day := testWeekStart
		_, err := AddComment(db, plan.WeeklyPlanID, day, author, "pertama")
		require.NoError(t, err)
		_, err = AddComment(db, plan.WeeklyPlanID, day, author, "kedua")
		require.NoError(t, err)

		comments, err := ListComments(db, plan.WeeklyPlanID, &day)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		// oldest first
		assert.Equal(t, "pertama", comments[0].PlanCommentContent)
		assert.Equal(t, "kedua", comments[1].PlanCommentContent)
	})

	t.Run("date outside the week", func(t *testing.T) {
		_, err := AddComment(db, plan.WeeklyPlanID, testWeekStart.AddDate(0, 0, 7), author, "telat")
		assert.ErrorIs(t, err, ErrOutOfWeekRange)
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, err := AddComment(db, uuid.New(), testWeekStart, author, "x")
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("whitespace-only content is rejected before storing", func(t *testing.T) {
		day := testWeekStart.AddDate(0, 0, 5)
		for _, content := range []string{"", " \t ", "\n"} {
			_, err := AddComment(db, plan.WeeklyPlanID, day, author, content)
			assert.ErrorIs(t, err, ErrEmptyContent, "content=%q", content)
		}
		comments, err := ListComments(db, plan.WeeklyPlanID, &day)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestUpdateComment(t *testing.T) {
	db := newTestDB(t)
	st := seedStudent(t, db)
	plan := seedPlan(t, db, st.StudentID)
	author := uuid.New()
	stranger := uuid.New()

	cm, err := AddComment(db, plan.WeeklyPlanID, testWeekStart, author, "draf")
	require.NoError(t, err)

	t.Run("author may edit", func(t *testing.T) {
		updated, err := UpdateComment(db, cm.PlanCommentID, author, false, "revisi")
		require.NoError(t, err)
		assert.Equal(t, "revisi", updated.PlanCommentContent)
		// authorship never changes
		assert.Equal(t, author, updated.PlanCommentAuthorUserID)
	})

	t.Run("non-author is denied", func(t *testing.T) {
		_, err := UpdateComment(db, cm.PlanCommentID, stranger, false, "vandal")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin override", func(t *testing.T) {
		updated, err := UpdateComment(db, cm.PlanCommentID, stranger, true, "dimoderasi")
		require.NoError(t, err)
		assert.Equal(t, "dimoderasi", updated.PlanCommentContent)
		assert.Equal(t, author, updated.PlanCommentAuthorUserID)
	})

	t.Run("whitespace-only content is rejected", func(t *testing.T) {
		_, err := UpdateComment(db, cm.PlanCommentID, author, false, "   ")
		assert.ErrorIs(t, err, ErrEmptyContent)

		kept, err := FindCommentByID(db, cm.PlanCommentID)
		require.NoError(t, err)
		assert.Equal(t, "dimoderasi", kept.PlanCommentContent)
	})
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	st := seedStudent(t, db)
	plan := seedPlan(t, db, st.StudentID)
	author := uuid.New()
	stranger := uuid.New()

	cm, err := AddComment(db, plan.WeeklyPlanID, testWeekStart, author, "sekali pakai")
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteComment(db, cm.PlanCommentID, stranger, false), ErrPermissionDenied)
	require.NoError(t, DeleteComment(db, cm.PlanCommentID, author, false))

	_, err = FindCommentByID(db, cm.PlanCommentID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.ErrorIs(t, DeleteComment(db, cm.PlanCommentID, author, false), ErrCommentNotFound)
}
