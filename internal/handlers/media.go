package handlers

//go:generate mockgen -source=media.go -destination=media_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-media-channels/internal/models"
	"github.com/sbilibin2017/gw-media-channels/internal/storage"
)

type MediaCreator interface {
	CreateMedia(ctx context.Context, media *models.Media, banner, audio *storage.Upload) (*models.Media, error)
}

type MediaLister interface {
	GetMedia(ctx context.Context, filter models.MediaFilter) ([]models.Media, bool, error)
}

type UserMediaLister interface {
	ListUserMedia(ctx context.Context, userID int64) ([]models.Media, error)
}

type MediaStatusUpdater interface {
	UpdateMediaStatus(ctx context.Context, id int64, status int) (*models.Media, error)
}

// MediaStatusRequest represents the JSON body of a moderation action.
// swagger:model MediaStatusRequest
type MediaStatusRequest struct {
	// 0 hidden, 1 approved, 2 pending
	// required: true
	Status *int `json:"media_status" validate:"required,oneof=0 1 2"`
}

// NewCreateMediaHandler uploads a media record with optional banner and audio files.
// @Summary Upload media
// @Description The record starts pending moderation.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category_id formData int false "Category ID"
// @Param duration formData string false "Duration"
// @Param language formData string false "Language"
// @Param tags formData string false "Tags"
// @Param cast formData string false "Cast"
// @Param crew formData string false "Crew"
// @Param release_date formData string false "RFC 3339 or YYYY-MM-DD"
// @Param banner formData file false "jpeg or png banner"
// @Param audio formData file false "mp3 or wav audio"
// @Success 201 {object} handlers.Response{data=models.Media}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /createMedia [post]
func NewCreateMediaHandler(svc MediaCreator, maxBytes int64, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		if !parseMultipart(w, r, maxBytes, 2) {
			return
		}

		title := formString(r, "title")
		if title == nil {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}
		categoryID, err := formInt64(r, "category_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		releaseDate, err := parseReleaseDate(formString(r, "release_date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "release_date must be RFC 3339 or YYYY-MM-DD")
			return
		}

		banner, bannerCloser, err := formFile(r, "banner", maxBytes)
		if err != nil {
			writeError(w, http.StatusBadRequest, "File upload error: "+err.Error())
			return
		}
		defer bannerCloser.Close()

		audio, audioCloser, err := formFile(r, "audio", maxBytes)
		if err != nil {
			writeError(w, http.StatusBadRequest, "File upload error: "+err.Error())
			return
		}
		defer audioCloser.Close()

		m := &models.Media{
			UserID:      userID,
			Title:       *title,
			Description: formString(r, "description"),
			CategoryID:  categoryID,
			Duration:    formString(r, "duration"),
			Language:    formString(r, "language"),
			Tags:        formString(r, "tags"),
			Cast:        formString(r, "cast"),
			Crew:        formString(r, "crew"),
			ReleaseDate: releaseDate,
		}

		created, err := svc.CreateMedia(r.Context(), m, banner, audio)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusCreated, "Media uploaded successfully", mediaView(baseURL, created))
	}
}

var errInvalidDate = errors.New("invalid date")

func parseReleaseDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, errInvalidDate
}

// NewGetMediaHandler lists media through the cache.
// @Summary List media
// @Description Approved media by default; include_all=true (privileged only) adds pending and hidden media.
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param category_id query int false "Category filter"
// @Param include_all query bool false "Include every status"
// @Success 200 {object} handlers.Response{data=[]models.Media}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /getMedia [get]
func NewGetMediaHandler(svc MediaLister, checker PrivilegeChecker, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter models.MediaFilter
		if raw := r.URL.Query().Get("category_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				writeError(w, http.StatusBadRequest, "Invalid category id")
				return
			}
			filter.CategoryID = &id
		}

		includeAll, ok := requireIncludeAll(w, r, checker)
		if !ok {
			return
		}
		filter.IncludeAll = includeAll

		items, cached, err := svc.GetMedia(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeListing(w, "Media retrieved successfully", mediaListView(baseURL, items), cached)
	}
}

// NewGetUserMediaHandler lists the authenticated user's uploads in every status.
// @Summary My uploads
// @Tags media
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response{data=[]models.Media}
// @Failure 401 {object} handlers.ErrorResponse
// @Router /getUserMedia [get]
func NewGetUserMediaHandler(svc UserMediaLister, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		items, err := svc.ListUserMedia(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "Media retrieved successfully", mediaListView(baseURL, items))
	}
}

// NewUpdateMediaStatusHandler applies a moderation decision.
// @Summary Moderate media
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Param mediaStatusRequest body handlers.MediaStatusRequest true "New status"
// @Success 200 {object} handlers.Response{data=models.Media}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Media not found"
// @Router /updateMediaStatus/{id} [put]
func NewUpdateMediaStatusHandler(svc MediaStatusUpdater, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid media id")
			return
		}

		var req MediaStatusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		updated, err := svc.UpdateMediaStatus(r.Context(), id, *req.Status)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "Media status updated successfully", mediaView(baseURL, updated))
	}
}
