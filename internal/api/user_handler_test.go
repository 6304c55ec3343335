package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfeed/quillfeed-api/internal/domain"
)

func sampleUser() *domain.User {
	return &domain.User{
		Username:  "tickle122",
		Name:      "Tom Tickle",
		AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/d/d6/Mr-Tickle-9a.png",
	}
}

func TestListUsers(t *testing.T) {
	t.Run("returns_users", func(t *testing.T) {
		userStore := &MockUserStore{
			GetAllFn: func(ctx context.Context) ([]*domain.User, error) {
				return []*domain.User{sampleUser()}, nil
			},
		}
		handler := NewUserHandler(userStore, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()
		handler.ListUsers(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var payload struct {
			Users []domain.User `json:"users"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		require.Len(t, payload.Users, 1)
		assert.Equal(t, "tickle122", payload.Users[0].Username)
	})

	t.Run("empty_table_yields_empty_array", func(t *testing.T) {
		handler := NewUserHandler(&MockUserStore{}, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()
		handler.ListUsers(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"users": []}`, rr.Body.String())
	})
}

func TestGetUserByUsername(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		userStore      *MockUserStore
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:     "found",
			username: "tickle122",
			userStore: &MockUserStore{
				GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
					return sampleUser(), nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not_found",
			username:       "nobody",
			userStore:      &MockUserStore{},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(tt.userStore, testLogger())

			req := newRequestWithPathParam(t, http.MethodGet, "/api/users/"+tt.username, "username", tt.username, "")
			rr := httptest.NewRecorder()
			handler.GetUserByUsername(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeErrorBody(t, rr))
				return
			}

			var payload struct {
				User domain.User `json:"user"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
			assert.Equal(t, "Tom Tickle", payload.User.Name)
		})
	}
}
