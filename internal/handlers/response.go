package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/services"
	"github.com/sbilibin2017/gw-media-channels/internal/storage"
)

var validate = validator.New()

// Response is the envelope of every JSON response.
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	Success bool `json:"success"`
	// Human readable outcome
	Message string `json:"message,omitempty"`
	// Payload
	Data interface{} `json:"data,omitempty"`
	// Set on listing responses; true when served from cache
	Cached *bool `json:"cached,omitempty"`
}

// ErrorResponse is the envelope of every error response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`
	// default: Unauthorized
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeOK(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data})
}

func writeListing(w http.ResponseWriter, message string, data interface{}, cached bool) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data, Cached: &cached})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// decodeAndValidate decodes a JSON body into dst and runs struct validation.
// It writes the 400 response itself and reports whether the caller may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return validateStruct(w, dst)
}

func validateStruct(w http.ResponseWriter, v interface{}) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, validationMessage(ve))
		return false
	}
	writeError(w, http.StatusBadRequest, "Invalid request")
	return false
}

func validationMessage(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, strings.ToLower(e.Field())+": "+e.Tag())
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

// writeServiceError maps service and storage errors onto HTTP statuses.
// Anything unrecognized is an upstream failure: logged, answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrUnsupportedType),
		errors.Is(err, storage.ErrTooLarge):
		writeError(w, http.StatusBadRequest, "File upload error: "+err.Error())
	case errors.Is(err, services.ErrEmailInUse):
		writeError(w, http.StatusBadRequest, "Email already in use")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrChannelExists):
		writeError(w, http.StatusBadRequest, "Channel already exists")
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrChannelNotFound):
		writeError(w, http.StatusNotFound, "Channel not found")
	case errors.Is(err, services.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, services.ErrMediaNotFound):
		writeError(w, http.StatusNotFound, "Media not found")
	default:
		logger.Log.Errorw("internal server error", "method", r.Method, "uri", r.RequestURI, "err", err)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// queryBool reads an optional boolean query parameter.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
