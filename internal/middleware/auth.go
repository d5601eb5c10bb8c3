package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/httpx"
)

const ContextUserIDKey = "userID"

// RequireAuth verifies the Bearer token and stashes the user id in the
// request context. Every failure mode is the same 401 to the caller.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			httpx.Abort(ctx, http.StatusUnauthorized, "Authorization token is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.Abort(ctx, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		userID, err := tokens.Verify(parts[1])

		if err != nil {
			httpx.Abort(ctx, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx.Set(ContextUserIDKey, userID)
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint)
	return userID, ok
}
