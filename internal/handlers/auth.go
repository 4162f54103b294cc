package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-media-channels/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password, phone string) (*models.User, error)
}

// Loginer defines the interface for authenticating users.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name" validate:"required,max=255"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`

	// Phone
	// required: true
	// default: +15550100
	Phone string `json:"phone" validate:"required,max=50"`
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// LoginData is the payload of a successful login.
// swagger:model LoginData
type LoginData struct {
	// Bearer token valid for one hour
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an appUser account. The password is hashed before storing and never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.Response "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already in use / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "User registered", userView(baseURL, user))
	}
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Verifies credentials and returns a bearer token together with the user.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Credentials"
// @Success 200 {object} handlers.Response{data=handlers.LoginData} "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "Login successful", LoginData{Token: token, User: userView(baseURL, user)})
	}
}
