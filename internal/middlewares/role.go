package middlewares

//go:generate mockgen -source=role.go -destination=role_mock.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/services"
)

// PrivilegeChecker resolves whether a user may moderate.
type PrivilegeChecker interface {
	RequirePrivileged(ctx context.Context, userID int64) error
}

// RequirePrivileged rejects callers without a moderation role with 403.
// It must run after AuthMiddleware.
func RequirePrivileged(checker PrivilegeChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			err := checker.RequirePrivileged(r.Context(), userID)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			default:
				logger.Log.Errorw("failed to check privileges", "user_id", userID, "err", err)
				writeError(w, http.StatusInternalServerError, "Server error")
			}
		})
	}
}
