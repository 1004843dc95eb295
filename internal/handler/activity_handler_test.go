package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities-api/internal/dto"
	"github.com/mergington/activities-api/internal/handler"
	"github.com/mergington/activities-api/internal/models"
	"github.com/mergington/activities-api/internal/repository"
	"github.com/mergington/activities-api/internal/service"
)

type mockActivityService struct {
	lastFilter repository.ActivityFilter
	listResult map[string]dto.ActivityDetail
	days       []string
	err        error
}

func (m *mockActivityService) List(_ context.Context, filter repository.ActivityFilter) (map[string]dto.ActivityDetail, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.listResult, nil
}

func (m *mockActivityService) Days(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.days, nil
}

type mockEnrollmentService struct {
	lastActivity string
	lastEmail    string
	lastTeacher  string
	message      string
	err          error
}

func (m *mockEnrollmentService) Signup(_ context.Context, activityName, email, teacherUsername string) (string, error) {
	m.lastActivity = activityName
	m.lastEmail = email
	m.lastTeacher = teacherUsername
	if m.err != nil {
		return "", m.err
	}
	return m.message, nil
}

func (m *mockEnrollmentService) Unregister(_ context.Context, activityName, email, teacherUsername string) (string, error) {
	m.lastActivity = activityName
	m.lastEmail = email
	m.lastTeacher = teacherUsername
	if m.err != nil {
		return "", m.err
	}
	return m.message, nil
}

func newActivityApp(activities *mockActivityService, enrollment *mockEnrollmentService) *fiber.App {
	app := fiber.New()
	logger := zerolog.New(io.Discard)
	validate := validator.New(validator.WithRequiredStructEnabled())
	handler.NewActivityHandler(activities, enrollment, validate, logger).Register(app.Group("/activities"))
	return app
}

func performRequest(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func detailOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var payload struct {
		Detail string `json:"detail"`
	}
	decodeResponse(t, resp, &payload)
	return payload.Detail
}

func TestActivityHandlerListReturnsBareMapping(t *testing.T) {
	activities := &mockActivityService{listResult: map[string]dto.ActivityDetail{
		"Chess Club": {
			Description: "Learn strategies and compete in chess tournaments",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Monday", "Friday"}, StartTime: "15:15", EndTime: "16:45",
			},
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
	}}
	app := newActivityApp(activities, &mockEnrollmentService{})

	resp := performRequest(t, app, http.MethodGet, "/activities?day=Monday&start_time=09:00&end_time=17:00")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, repository.ActivityFilter{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}, activities.lastFilter)

	var payload map[string]dto.ActivityDetail
	decodeResponse(t, resp, &payload)
	require.Len(t, payload, 1)
	require.Equal(t, 12, payload["Chess Club"].MaxParticipants)
	require.Equal(t, "15:15", payload["Chess Club"].ScheduleDetails.StartTime)
}

func TestActivityHandlerDaysReturnsBareArray(t *testing.T) {
	activities := &mockActivityService{days: []string{"Friday", "Monday", "Tuesday"}}
	app := newActivityApp(activities, &mockEnrollmentService{})

	resp := performRequest(t, app, http.MethodGet, "/activities/days")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var days []string
	decodeResponse(t, resp, &days)
	require.Equal(t, []string{"Friday", "Monday", "Tuesday"}, days)
}

func TestActivityHandlerSignupSuccess(t *testing.T) {
	enrollment := &mockEnrollmentService{message: "Signed up daniel@mergington.edu for Chess Club"}
	app := newActivityApp(&mockActivityService{}, enrollment)

	resp := performRequest(t, app, http.MethodPost, "/activities/Chess%20Club/signup?email=daniel@mergington.edu&teacher_username=mchen")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload dto.MessageResponse
	decodeResponse(t, resp, &payload)
	require.Equal(t, "Signed up daniel@mergington.edu for Chess Club", payload.Message)

	require.Equal(t, "Chess Club", enrollment.lastActivity, "path segment is unescaped")
	require.Equal(t, "daniel@mergington.edu", enrollment.lastEmail)
	require.Equal(t, "mchen", enrollment.lastTeacher)
}

func TestActivityHandlerSignupErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"missing teacher", service.ErrAuthenticationRequired, fiber.StatusUnauthorized, "Authentication required for this action"},
		{"unknown teacher", service.ErrInvalidTeacher, fiber.StatusUnauthorized, "Invalid teacher credentials"},
		{"unknown activity", service.ErrActivityNotFound, fiber.StatusNotFound, "Activity not found"},
		{"duplicate signup", service.ErrAlreadySignedUp, fiber.StatusBadRequest, "Already signed up for this activity"},
		{"update race", service.ErrUpdateFailed, fiber.StatusInternalServerError, "Failed to update activity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newActivityApp(&mockActivityService{}, &mockEnrollmentService{err: tc.err})

			resp := performRequest(t, app, http.MethodPost, "/activities/Chess%20Club/signup?email=x@mergington.edu&teacher_username=mchen")
			require.Equal(t, tc.status, resp.StatusCode)
			require.Equal(t, tc.detail, detailOf(t, resp))
		})
	}
}

func TestActivityHandlerUnregisterNotRegistered(t *testing.T) {
	app := newActivityApp(&mockActivityService{}, &mockEnrollmentService{err: service.ErrNotRegistered})

	resp := performRequest(t, app, http.MethodPost, "/activities/Chess%20Club/unregister?email=x@mergington.edu&teacher_username=mchen")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Not registered for this activity", detailOf(t, resp))
}

func TestActivityHandlerRejectsInvalidEmail(t *testing.T) {
	enrollment := &mockEnrollmentService{message: "unused"}
	app := newActivityApp(&mockActivityService{}, enrollment)

	for _, target := range []string{
		"/activities/Chess%20Club/signup?teacher_username=mchen",
		"/activities/Chess%20Club/signup?email=not-an-email&teacher_username=mchen",
	} {
		resp := performRequest(t, app, http.MethodPost, target)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Invalid email address", detailOf(t, resp))
	}

	require.Empty(t, enrollment.lastActivity, "service never called for invalid input")
}
