package middleware

import (
	"net/http"

	"seat-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminKey allows the request through only when X-Admin-Key matches keyHash
// (bcrypt). An empty keyHash closes the admin routes entirely.
func AdminKey(keyHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				utils.ResponseError(w, http.StatusForbidden, "Admin access disabled", nil)
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				utils.ResponseError(w, http.StatusUnauthorized, "Missing admin key", nil)
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.Warn("Admin check: invalid key",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseError(w, http.StatusForbidden, "Admin access required", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
