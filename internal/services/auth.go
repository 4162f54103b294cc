package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
)

// Credentials defines the credential operations the auth flow needs.
type Credentials interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// TokenIssuer issues bearer tokens for an authenticated user.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	credentials Credentials
	tokens      TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(credentials Credentials, tokens TokenIssuer) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokens:      tokens,
	}
}

// Register creates an appUser account.
func (svc *AuthService) Register(ctx context.Context, name, email, password, phone string) (*models.User, error) {
	email = strings.TrimSpace(email)

	existing, err := svc.credentials.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already in use", "email", email)
		return nil, ErrEmailInUse
	}

	return svc.credentials.Create(ctx, &models.User{
		Name:  strings.TrimSpace(name),
		Email: email,
		Phone: phone,
		Role:  models.RoleAppUser,
	}, password)
}

// Login verifies credentials and returns a token together with the user.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := svc.credentials.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}
	return token, user, nil
}
