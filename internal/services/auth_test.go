package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
	"github.com/sbilibin2017/gw-media-channels/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := services.NewMockCredentials(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockCreds, mockTokens)

	tests := []struct {
		name         string
		email        string
		existingUser *models.User
		lookupErr    error
		createErr    error
		wantErr      error
	}{
		{
			name:  "successful registration",
			email: "alice@example.com",
		},
		{
			name:         "email already in use",
			email:        "bob@example.com",
			existingUser: &models.User{ID: 2},
			wantErr:      services.ErrEmailInUse,
		},
		{
			name:      "lookup error",
			email:     "eve@example.com",
			lookupErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "create error",
			email:     "carol@example.com",
			createErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCreds.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.lookupErr)

			if tt.existingUser == nil && tt.lookupErr == nil {
				mockCreds.EXPECT().
					Create(gomock.Any(), gomock.Any(), "pass123").
					DoAndReturn(func(_ context.Context, u *models.User, _ string) (*models.User, error) {
						assert.Equal(t, models.RoleAppUser, u.Role)
						if tt.createErr != nil {
							return nil, tt.createErr
						}
						out := *u
						out.ID = 1
						return &out, nil
					})
			}

			user, err := svc.Register(context.Background(), "Name", " "+tt.email+" ", "pass123", "555")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := services.NewMockCredentials(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockCreds, mockTokens)

	alice := &models.User{ID: 7, Email: "alice@example.com"}

	tests := []struct {
		name      string
		user      *models.User
		authErr   error
		jwtErr    error
		wantErr   error
		wantToken string
	}{
		{name: "successful login", user: alice, wantToken: "token123"},
		{name: "invalid credentials", authErr: services.ErrInvalidCredentials, wantErr: services.ErrInvalidCredentials},
		{name: "token error", user: alice, jwtErr: errors.New("jwt error"), wantErr: errors.New("jwt error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCreds.EXPECT().
				Authenticate(gomock.Any(), "alice@example.com", "secret").
				Return(tt.user, tt.authErr)

			if tt.authErr == nil {
				mockTokens.EXPECT().
					Generate(gomock.Any(), int64(7)).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), "alice@example.com", "secret")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, alice, user)
		})
	}
}
