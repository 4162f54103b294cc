package handlers

import (
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

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	image := "users/User-1.png"

	tests := []struct {
		name         string
		userID       int64
		mockSetup    func(m *MockUserGetter)
		expectedCode int
	}{
		{
			name:   "found",
			userID: 1,
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(1)).
					Return(&models.User{ID: 1, Name: "Alice", UserImage: &image, PasswordHash: "hash"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "gone",
			userID: 2,
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(2)).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "no identity",
			mockSetup:    func(m *MockUserGetter) {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/getUser", nil)
			if tt.userID > 0 {
				req = withUser(req, tt.userID)
			}
			rr := httptest.NewRecorder()
			NewGetUserHandler(mockSvc, testBaseURL)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var user models.User
			require.NoError(t, json.Unmarshal(decode(t, rr).Data, &user))
			assert.Equal(t, testBaseURL+"/uploads/users/User-1.png", *user.UserImage)
			assert.NotContains(t, rr.Body.String(), "hash")
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileUpdater(ctrl)
	name := "Alicia"

	mockSvc.EXPECT().
		UpdateProfile(gomock.Any(), int64(1), models.ProfileUpdate{Name: &name}).
		Return(&models.User{ID: 1, Name: name}, nil)

	rr := httptest.NewRecorder()
	NewUpdateUserHandler(mockSvc, testBaseURL)(rr, withUser(jsonRequest(t, http.MethodPost, "/api/updateUser",
		map[string]string{"name": name}), 1))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User updated successfully", decode(t, rr).Message)
}

func TestChannelHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := ChannelRequest{Name: "Alice Radio", MediaLinks: []string{"https://a.example"}}

	tests := []struct {
		name         string
		create       bool
		body         ChannelRequest
		mockSetup    func(m *MockChannelSaver)
		expectedCode int
	}{
		{
			name:   "create",
			create: true,
			body:   body,
			mockSetup: func(m *MockChannelSaver) {
				m.EXPECT().CreateChannel(gomock.Any(), int64(1), models.Channel{
					Name: "Alice Radio", MediaLinks: models.Links{"https://a.example"},
				}).Return(&models.User{ID: 1}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "create twice",
			create: true,
			body:   body,
			mockSetup: func(m *MockChannelSaver) {
				m.EXPECT().CreateChannel(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrChannelExists)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "update missing channel",
			body: body,
			mockSetup: func(m *MockChannelSaver) {
				m.EXPECT().UpdateChannel(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrChannelNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad link",
			create:       true,
			body:         ChannelRequest{Name: "Alice Radio", MediaLinks: []string{"not a url"}},
			mockSetup:    func(m *MockChannelSaver) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing name",
			body:         ChannelRequest{},
			mockSetup:    func(m *MockChannelSaver) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockChannelSaver(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewUpdateChannelHandler(mockSvc, testBaseURL)
			if tt.create {
				handler = NewCreateChannelHandler(mockSvc, testBaseURL)
			}

			rr := httptest.NewRecorder()
			handler(rr, withUser(jsonRequest(t, http.MethodPost, "/api/createChannel", tt.body), 1))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminUserHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockAppUserLister(ctrl)
	dashboard := NewMockDashboardReader(ctrl)

	lister.EXPECT().ListAppUsers(gomock.Any()).Return([]models.User{{ID: 1}, {ID: 2}}, nil)
	dashboard.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("db down"))

	rr := httptest.NewRecorder()
	NewGetAppUsersHandler(lister, testBaseURL)(rr, httptest.NewRequest(http.MethodGet, "/api/getAppUsers", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var users []models.User
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &users))
	assert.Len(t, users, 2)

	rr = httptest.NewRecorder()
	NewDashboardHandler(dashboard)(rr, httptest.NewRequest(http.MethodGet, "/api/dashboardData", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decode(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, "Server error", resp.Message)
}
