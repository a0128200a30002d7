package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/epetrov2017/parkspot/internal/models"
	"github.com/epetrov2017/parkspot/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return(&models.UserDB{ID: 1, Username: "john"}, "token123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "missing fields",
			body:          `{"username":"john"}`,
			mockSetup:     func(m *MockLoginer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username and password are required",
		},
		{
			name:          "invalid JSON",
			body:          `not json`,
			mockSetup:     func(m *MockLoginer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username and password are required",
		},
		{
			name: "unknown user",
			body: `{"username":"ghost","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost", "secret").
					Return(nil, "", services.ErrUserDoesNotExist)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid username or password",
		},
		{
			name: "wrong password",
			body: `{"username":"john","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid username or password",
		},
		{
			name: "internal error",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return(nil, "", errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp LoginErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Login successful", resp.Message)
				assert.Equal(t, "token123", resp.Token)
				assert.NotNil(t, resp.User)
			}
		})
	}
}
