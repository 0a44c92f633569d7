package middleware

import (
	"net/http"

	"github.com/bingoboard-dev/bingoboard/internal/types"
	"github.com/gin-gonic/gin"
)

// AdminMiddleware gates reporting endpoints on the is_admin flag. It must run
// after AuthMiddleware; the flag is checked per request, there is no separate
// elevated-session concept.
func AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		user, ok := value.(AuthenticatedUser)

		if !ok || !user.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		ctx.Next()
	}
}
