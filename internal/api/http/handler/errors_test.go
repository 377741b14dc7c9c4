package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medorahq/medora_backend/internal/service/appointment"
	"github.com/medorahq/medora_backend/internal/service/reminder"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

// mapErr exercises an error mapper through a real fiber request cycle and
// returns the resulting status and error code.
func mapErr(t *testing.T, fn func(fiber.Ctx, error) error, err error) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return fn(c, err)
	})

	resp, terr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, terr)
	defer resp.Body.Close()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body.Code
}

func TestMapReminderError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not scheduled is a bad request", reminder.ErrNotScheduled, http.StatusBadRequest, "BAD_REQUEST"},
		{"duplicate rule conflicts", reminder.ErrDuplicateRule, http.StatusConflict, "CONFLICT"},
		{"missing reminder", reminder.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"appointment in past", reminder.ErrAppointmentInPast, http.StatusBadRequest, "BAD_REQUEST"},
		{"cross tenant", authorize.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := mapErr(t, mapReminderError, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestMapAppointmentError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"illegal transition is a bad request", appointment.ErrBadTransition, http.StatusBadRequest, "BAD_REQUEST"},
		{"overlap conflicts", appointment.ErrConflict, http.StatusConflict, "CONFLICT"},
		{"invalid interval", appointment.ErrInvalidInterval, http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid status", appointment.ErrInvalidStatus, http.StatusBadRequest, "BAD_REQUEST"},
		{"missing appointment", appointment.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := mapErr(t, mapAppointmentError, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
