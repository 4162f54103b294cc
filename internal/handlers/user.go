package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/middlewares"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
)

type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type AppUserLister interface {
	ListAppUsers(ctx context.Context) ([]models.User, error)
}

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) (*models.User, error)
}

type ChannelSaver interface {
	CreateChannel(ctx context.Context, id int64, ch models.Channel) (*models.User, error)
	UpdateChannel(ctx context.Context, id int64, ch models.Channel) (*models.User, error)
}

type DashboardReader interface {
	Dashboard(ctx context.Context) (*models.DashboardCounts, error)
}

// UpdateUserRequest represents the JSON body for profile updates.
// Omitted fields are left unchanged.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=255"`
	Phone  *string `json:"phone" validate:"omitempty,max=50"`
	Gender *string `json:"gender" validate:"omitempty,max=50"`
	About  *string `json:"about"`
}

// ChannelRequest represents the JSON body for channel create and update.
// swagger:model ChannelRequest
type ChannelRequest struct {
	// required: true
	// default: My Channel
	Name        string   `json:"channel_name" validate:"required,max=255"`
	Description *string  `json:"channel_description"`
	MediaLinks  []string `json:"channel_media_links" validate:"omitempty,dive,url"`
}

// currentUserID reads the id bound by the auth middleware. A handler mounted
// without the middleware answers 401.
func currentUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		logger.Log.Errorw("handler reached without authenticated user", "uri", r.RequestURI)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return id, ok
}

// NewGetUserHandler returns the authenticated user's profile.
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response{data=models.User}
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /getUser [get]
func NewGetUserHandler(svc UserGetter, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "User retrieved successfully", userView(baseURL, user))
	}
}

// NewGetAppUsersHandler lists users with the appUser role.
// @Summary List app users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response{data=[]models.User}
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /getAppUsers [get]
func NewGetAppUsersHandler(svc AppUserLister, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListAppUsers(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "Users retrieved successfully", usersView(baseURL, users))
	}
}

// NewUpdateUserHandler updates the authenticated user's profile.
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateUserRequest body handlers.UpdateUserRequest true "Profile fields"
// @Success 200 {object} handlers.Response{data=models.User}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /updateUser [post]
func NewUpdateUserHandler(svc ProfileUpdater, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req UpdateUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, models.ProfileUpdate{
			Name:   req.Name,
			Phone:  req.Phone,
			Gender: req.Gender,
			About:  req.About,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "User updated successfully", userView(baseURL, user))
	}
}

// NewCreateChannelHandler creates the authenticated user's channel.
// @Summary Create channel
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param channelRequest body handlers.ChannelRequest true "Channel"
// @Success 201 {object} handlers.Response{data=models.User}
// @Failure 400 {object} handlers.ErrorResponse "Channel already exists / invalid request"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /createChannel [post]
func NewCreateChannelHandler(svc ChannelSaver, baseURL string) http.HandlerFunc {
	return channelHandler(baseURL, http.StatusCreated, "Channel created successfully", svc.CreateChannel)
}

// NewUpdateChannelHandler updates the authenticated user's channel.
// @Summary Update channel
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param channelRequest body handlers.ChannelRequest true "Channel"
// @Success 200 {object} handlers.Response{data=models.User}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Channel not found"
// @Router /updateChannel [post]
func NewUpdateChannelHandler(svc ChannelSaver, baseURL string) http.HandlerFunc {
	return channelHandler(baseURL, http.StatusOK, "Channel updated successfully", svc.UpdateChannel)
}

func channelHandler(
	baseURL string,
	status int,
	message string,
	save func(ctx context.Context, id int64, ch models.Channel) (*models.User, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req ChannelRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := save(r.Context(), userID, models.Channel{
			Name:        req.Name,
			Description: req.Description,
			MediaLinks:  models.Links(req.MediaLinks),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, status, message, userView(baseURL, user))
	}
}

// NewDashboardHandler returns moderation counters.
// @Summary Dashboard counters
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response{data=models.DashboardCounts}
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /dashboardData [get]
func NewDashboardHandler(svc DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.Dashboard(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "Dashboard data retrieved successfully", counts)
	}
}
