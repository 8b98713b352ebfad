package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tutorku_backend/internals/constants"
	directoryModel "tutorku_backend/internals/features/directory/students/model"
	model "tutorku_backend/internals/features/plans/weekly_plans/model"
	routes "tutorku_backend/internals/features/plans/weekly_plans/route"
	middleware "tutorku_backend/internals/middlewares/auth"
)

const testSecret = "unit-test-secret"

// monday / wednesday of the fixed week the endpoint tests use
const (
	testWeek    = "2024-06-03"
	testWeekDay = "2024-06-05"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&directoryModel.StudentModel{},
		&directoryModel.TeacherAssignmentModel{},
		&model.WeeklyPlanModel{},
		&model.PlanTaskModel{},
		&model.PlanCommentModel{},
	))

	app := fiber.New()
	jwtOpts := middleware.AuthJWTOpts{Secret: testSecret}

	user := app.Group("/api/u", middleware.AuthJWT(jwtOpts))
	routes.PlanUserRoutes(user, db)

	teacher := app.Group("/api/t",
		middleware.AuthJWT(jwtOpts),
		middleware.RequireRoles(constants.TeacherAndAbove...),
	)
	routes.PlanTeacherRoutes(teacher, db)

	return app, db
}

func bearer(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   userID.String(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body any) (int, map[string]any) {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	if resp.Header.Get(fiber.HeaderContentType) != "" {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp.StatusCode, out
}

func seedStudentRow(t *testing.T, db *gorm.DB) *directoryModel.StudentModel {
	t.Helper()
	st := directoryModel.StudentModel{
		StudentUserID:           uuid.New(),
		StudentDisplayName:      "Siti Rahma",
		StudentEnrollmentStatus: constants.EnrollmentEnrolled,
	}
	require.NoError(t, db.Create(&st).Error)
	return &st
}

func seedMentor(t *testing.T, db *gorm.DB, studentID uuid.UUID) uuid.UUID {
	t.Helper()
	teacherID := uuid.New()
	require.NoError(t, db.Create(&directoryModel.TeacherAssignmentModel{
		TeacherAssignmentTeacherUserID: teacherID,
		TeacherAssignmentStudentID:     studentID,
		TeacherAssignmentRole:          constants.AssignmentRoleMentor,
		TeacherAssignmentStatus:        constants.AssignmentStatusActive,
	}).Error)
	return teacherID
}

func dataOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", body)
	return data
}

func TestGetWeekEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	st := seedStudentRow(t, db)
	teacherID := seedMentor(t, db, st.StudentID)

	t.Run("mentor sees an uncreated week as null plan with 7 slots", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/u/plans/%s/%s", st.StudentID, testWeek),
			bearer(t, teacherID, constants.RoleTeacher), nil)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		data := dataOf(t, body)
		assert.Nil(t, data["plan"])
		assert.Equal(t, testWeek, data["week_start_date"])

		days, ok := data["days"].([]any)
		require.True(t, ok)
		require.Len(t, days, 7)
		first := days[0].(map[string]any)
		assert.Equal(t, testWeek, first["date"])
		assert.Len(t, first["tasks"], 0)
		assert.Len(t, first["comments"], 0)

		perms := data["permissions"].(map[string]any)
		assert.Equal(t, true, perms["can_add_tasks"])
		assert.Equal(t, true, perms["can_publish"])
	})

	t.Run("the student views their own week read-only", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/u/plans/%s/%s", st.StudentID, testWeek),
			bearer(t, st.StudentUserID, constants.RoleStudent), nil)

		require.Equal(t, http.StatusOK, status)
		perms := dataOf(t, body)["permissions"].(map[string]any)
		assert.Equal(t, false, perms["can_add_tasks"])
		assert.Equal(t, true, perms["can_toggle_own_task"])
	})

	t.Run("a student cannot view another student's week", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/u/plans/%s/%s", st.StudentID, testWeek),
			bearer(t, uuid.New(), constants.RoleStudent), nil)

		require.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "FORBIDDEN", body["error_code"])
	})

	t.Run("no token", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/u/plans/%s/%s", st.StudentID, testWeek), "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("unknown student", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/u/plans/%s/%s", uuid.New(), testWeek),
			bearer(t, teacherID, constants.RoleTeacher), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCreatePlanEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	st := seedStudentRow(t, db)
	teacherID := seedMentor(t, db, st.StudentID)
	auth := bearer(t, teacherID, constants.RoleTeacher)
	path := fmt.Sprintf("/api/t/plans/%s/%s", st.StudentID, testWeekDay)

	t.Run("empty body creates a draft on the normalized monday", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, path, auth, nil)
		require.Equal(t, http.StatusCreated, status)
		data := dataOf(t, body)
		assert.Equal(t, "draft", data["status"])
		assert.Equal(t, testWeek, data["week_start"])
	})

	t.Run("second create for the same week is a conflict", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, path, auth, nil)
		require.Equal(t, http.StatusConflict, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "CONFLICT", body["error_code"])
	})

	t.Run("student role never reaches the handler", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, path,
			bearer(t, st.StudentUserID, constants.RoleStudent), nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("unassigned teacher is rejected by capabilities", func(t *testing.T) {
		other := seedStudentRow(t, db)
		status, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/t/plans/%s/%s", other.StudentID, testWeek), auth, nil)
		assert.Equal(t, http.StatusForbidden, status)
	})
}

func TestTaskEndpoints(t *testing.T) {
	app, db := newTestApp(t)
	st := seedStudentRow(t, db)
	teacherID := seedMentor(t, db, st.StudentID)
	auth := bearer(t, teacherID, constants.RoleTeacher)

	status, body := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/t/plans/%s/%s", st.StudentID, testWeek), auth, nil)
	require.Equal(t, http.StatusCreated, status)
	planID := dataOf(t, body)["plan_id"].(string)
	tasksPath := fmt.Sprintf("/api/t/plans/%s/tasks", planID)

	var taskIDs []string
	t.Run("tasks get sequential display orders", func(t *testing.T) {
		for i, content := range []string{"baca bab 1", "latihan soal"} {
			status, body := doJSON(t, app, http.MethodPost, tasksPath, auth,
				fiber.Map{"target_date": testWeekDay, "content": content})
			require.Equal(t, http.StatusCreated, status)
			data := dataOf(t, body)
			assert.Equal(t, float64(i+1), data["display_order"])
			taskIDs = append(taskIDs, data["task_id"].(string))
		}
	})

	t.Run("task outside the plan week is unprocessable", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, tasksPath, auth,
			fiber.Map{"target_date": "2024-06-10", "content": "minggu depan"})
		require.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	})

	t.Run("stale reorder version is a conflict", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut,
			fmt.Sprintf("/api/t/plans/%s/tasks/reorder", planID), auth,
			fiber.Map{
				"target_date":      testWeekDay,
				"ordered_task_ids": []string{taskIDs[1], taskIDs[0]},
				"ordering_version": 5,
			})
		require.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "CONFLICT", body["error_code"])
	})

	t.Run("current version reorder succeeds", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut,
			fmt.Sprintf("/api/t/plans/%s/tasks/reorder", planID), auth,
			fiber.Map{
				"target_date":      testWeekDay,
				"ordered_task_ids": []string{taskIDs[1], taskIDs[0]},
				"ordering_version": 1,
			})
		require.Equal(t, http.StatusOK, status)
		list := body["data"].([]any)
		require.Len(t, list, 2)
		first := list[0].(map[string]any)
		assert.Equal(t, "latihan soal", first["content"])
		assert.Equal(t, float64(1), first["display_order"])
		assert.Equal(t, float64(2), first["ordering_version"])
	})

	t.Run("student toggles their own task, teacher cannot", func(t *testing.T) {
		togglePath := fmt.Sprintf("/api/u/plan-tasks/%s/toggle", taskIDs[0])

		status, body := doJSON(t, app, http.MethodPatch, togglePath,
			bearer(t, st.StudentUserID, constants.RoleStudent), nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, dataOf(t, body)["is_completed"])

		status, _ = doJSON(t, app, http.MethodPatch, togglePath, auth, nil)
		assert.Equal(t, http.StatusForbidden, status)

		// a different student's account is rejected even with the capability
		status, _ = doJSON(t, app, http.MethodPatch, togglePath,
			bearer(t, uuid.New(), constants.RoleStudent), nil)
		assert.Equal(t, http.StatusForbidden, status)
	})
}
