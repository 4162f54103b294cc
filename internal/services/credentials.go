package services

//go:generate mockgen -source=credentials.go -destination=credentials_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// UserLookup defines read operations on stored users.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserCreator persists a new user row.
type UserCreator interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// CredentialStore owns password hashing: callers hand it plaintext and it
// only ever persists or compares bcrypt hashes.
type CredentialStore struct {
	lookup  UserLookup
	creator UserCreator
	cost    int
}

// NewCredentialStore creates a CredentialStore hashing with bcrypt.DefaultCost.
func NewCredentialStore(lookup UserLookup, creator UserCreator) *CredentialStore {
	return &CredentialStore{
		lookup:  lookup,
		creator: creator,
		cost:    bcrypt.DefaultCost,
	}
}

func (s *CredentialStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.lookup.GetByEmail(ctx, email)
}

func (s *CredentialStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.lookup.GetByID(ctx, id)
}

// Create hashes password and persists user with the hash.
func (s *CredentialStore) Create(ctx context.Context, user *models.User, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	toSave := *user
	toSave.PasswordHash = string(hash)

	created, err := s.creator.Create(ctx, &toSave)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailInUse
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	return created, nil
}

// Authenticate returns the user whose email and password match.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (s *CredentialStore) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.lookup.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
