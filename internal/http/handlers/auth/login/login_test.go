package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
	"github.com/magabrotheeeer/loyalty-userapp/internal/session"
	"github.com/magabrotheeeer/loyalty-userapp/internal/validation"
)

type FlowMock struct {
	mock.Mock
}

func (m *FlowMock) Submit(ctx context.Context, creds models.Credentials, ui session.UI) error {
	args := m.Called(ctx, creds, ui)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	creds := models.Credentials{Email: "jane@example.com", Password: "secret"}

	tests := []struct {
		name           string
		requestBody    any
		mockErr        error
		mockUI         func(ui session.UI)
		wantStatusCode int
		wantStatus     string
		wantError      string
		wantLocation   string
		wantNotice     string
	}{
		{
			name:        "valid login",
			requestBody: creds,
			mockUI: func(ui session.UI) {
				ui.SetSubmitting(true)
				defer ui.SetSubmitting(false)
				ui.Notify(session.Notification{Title: "Login successful", Status: session.StatusSuccess})
				ui.Navigate(session.RouteHome)
			},
			wantStatusCode: http.StatusSeeOther,
			wantStatus:     "OK",
			wantLocation:   "/user",
			wantNotice:     "Login successful",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "invalid request body",
		},
		{
			name:           "validation error",
			requestBody:    models.Credentials{Email: "jane@example.com"},
			mockErr:        validation.Errors{"password": "Password is required"},
			mockUI:         func(ui session.UI) { ui.Notify(session.Notification{Title: "Login failed"}) },
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     "Error",
			wantError:      "password: Password is required",
			wantNotice:     "Login failed",
		},
		{
			name:           "rejected by server",
			requestBody:    creds,
			mockErr:        &gateway.HTTPError{Status: http.StatusUnauthorized},
			mockUI:         func(ui session.UI) { ui.Notify(session.Notification{Title: "Login failed"}) },
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     "Error",
			wantError:      "invalid credentials",
			wantNotice:     "Login failed",
		},
		{
			name:           "server unreachable",
			requestBody:    creds,
			mockErr:        &gateway.TransportError{Err: errors.New("connection refused")},
			mockUI:         func(ui session.UI) { ui.Notify(session.Notification{Title: "Login failed"}) },
			wantStatusCode: http.StatusBadGateway,
			wantStatus:     "Error",
			wantError:      "points service unavailable",
			wantNotice:     "Login failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := new(FlowMock)
			handler := New(newNoopLogger(), flow)

			if tt.mockUI != nil {
				flow.On("Submit", mock.Anything, tt.requestBody, mock.Anything).
					Run(func(args mock.Arguments) { tt.mockUI(args.Get(2).(session.UI)) }).
					Return(tt.mockErr).Once()
			}

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got["status"])
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Nil(t, got["error"])
			}
			if tt.wantNotice != "" {
				notice, ok := got["notification"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, tt.wantNotice, notice["title"])
			} else {
				assert.Nil(t, got["notification"])
			}

			uiState, ok := got["ui"].(map[string]any)
			if tt.mockUI == nil {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				assert.Equal(t, false, uiState["submitting"])
				assert.Equal(t, tt.wantLocation != "", uiState["navigated"])
			}

			flow.AssertExpectations(t)
		})
	}
}

func TestLoginHandler_Form(t *testing.T) {
	handler := New(newNoopLogger(), new(FlowMock))
	rec := httptest.NewRecorder()

	handler.Form(rec, httptest.NewRequest(http.MethodGet, "/user/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"action":"/user/login"`)
	assert.Contains(t, rec.Body.String(), `"name":"password"`)
}
