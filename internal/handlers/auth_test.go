package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
	"github.com/sbilibin2017/gw-media-channels/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := RegisterRequest{Name: "John", Email: "john@example.com", Password: "secret123", Phone: "555"}

	tests := []struct {
		name            string
		body            interface{}
		rawBody         string
		mockSetup       func(m *MockRegisterer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John", "john@example.com", "secret123", "555").
					Return(&models.User{ID: 1, Name: "John", Email: "john@example.com", PasswordHash: "hash"}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "User registered",
		},
		{
			name: "email already in use",
			body: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrEmailInUse)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Email already in use",
		},
		{
			name: "internal server error",
			body: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
		{
			name:            "invalid json",
			rawBody:         "{invalid json}",
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:         "invalid email",
			body:         RegisterRequest{Name: "John", Email: "nope", Password: "secret123", Phone: "555"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing password",
			body:         RegisterRequest{Name: "John", Email: "john@example.com", Phone: "555"},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc, testBaseURL)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.rawBody))
			} else {
				req = jsonRequest(t, http.MethodPost, "/api/auth/register", tt.body)
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decode(t, rr)
			assert.Equal(t, tt.expectedCode == http.StatusOK, resp.Success)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
			assert.NotContains(t, rr.Body.String(), "hash")
			assert.NotContains(t, rr.Body.String(), "database failure")
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectToken  string
	}{
		{
			name: "success",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret123").
					Return("tok", &models.User{ID: 1, Email: "john@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  "tok",
		},
		{
			name: "invalid credentials",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc, testBaseURL)(rr, jsonRequest(t, http.MethodPost, "/api/auth/login",
				LoginRequest{Email: "john@example.com", Password: "secret123"}))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decode(t, rr)
			if tt.expectToken == "" {
				assert.Equal(t, "Invalid credentials", resp.Message)
				return
			}
			var data LoginData
			require.NoError(t, json.Unmarshal(resp.Data, &data))
			assert.Equal(t, tt.expectToken, data.Token)
			assert.Equal(t, int64(1), data.User.ID)
		})
	}
}
