package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrChannelExists   = errors.New("channel already exists")
	ErrChannelNotFound = errors.New("channel not found")
	ErrValidation      = errors.New("validation failed")
	ErrForbidden       = errors.New("forbidden")
)

// UserStore defines the user reads and writes behind profile operations.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	Dashboard(ctx context.Context) (*models.DashboardCounts, error)
	UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) (*models.User, error)
	UpdateChannel(ctx context.Context, id int64, ch models.Channel) (*models.User, error)
}

// MediaInvalidator drops cached media listings.
type MediaInvalidator interface {
	InvalidateMedia()
}

// UserService serves profile, channel and moderation-dashboard operations.
type UserService struct {
	store UserStore
	media MediaInvalidator
}

func NewUserService(store UserStore, media MediaInvalidator) *UserService {
	return &UserService{store: store, media: media}
}

// GetUser returns ErrUserNotFound when the user no longer exists.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// RequirePrivileged returns ErrForbidden unless the user holds a moderation role.
// The role is read from storage on every call so demotions apply immediately.
func (s *UserService) RequirePrivileged(ctx context.Context, id int64) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !models.IsPrivilegedRole(user.Role) {
		return ErrForbidden
	}
	return nil
}

func (s *UserService) ListAppUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListByRole(ctx, models.RoleAppUser)
	if err != nil {
		logger.Log.Errorw("failed to list app users", "err", err)
		return nil, err
	}
	return users, nil
}

func (s *UserService) Dashboard(ctx context.Context) (*models.DashboardCounts, error) {
	counts, err := s.store.Dashboard(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load dashboard", "err", err)
		return nil, err
	}
	return counts, nil
}

// UpdateProfile applies upd. Media listings embed the uploader name, so a
// successful update drops them from the cache.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}

	user, err := s.store.UpdateProfile(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	s.media.InvalidateMedia()
	return user, nil
}

// CreateChannel sets up the user's channel. A user has at most one channel.
func (s *UserService) CreateChannel(ctx context.Context, id int64, ch models.Channel) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.HasChannel() {
		return nil, ErrChannelExists
	}
	return s.saveChannel(ctx, id, ch)
}

// UpdateChannel replaces the metadata of an existing channel.
func (s *UserService) UpdateChannel(ctx context.Context, id int64, ch models.Channel) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.HasChannel() {
		return nil, ErrChannelNotFound
	}
	return s.saveChannel(ctx, id, ch)
}

func (s *UserService) saveChannel(ctx context.Context, id int64, ch models.Channel) (*models.User, error) {
	ch.Name = strings.TrimSpace(ch.Name)
	if ch.Name == "" {
		return nil, fmt.Errorf("%w: channel name is required", ErrValidation)
	}
	if ch.MediaLinks == nil {
		ch.MediaLinks = models.Links{}
	}

	user, err := s.store.UpdateChannel(ctx, id, ch)
	if err != nil {
		logger.Log.Errorw("failed to save channel", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
