package middleware

import (
	"net/http"
	"strings"

	"github.com/bingoboard-dev/bingoboard/internal/auth"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthenticatedUser struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Handle  *string `json:"handle"`
	Email   string  `json:"email"`
	IsAdmin bool    `json:"is_admin"`
}

// AuthMiddleware resolves the bearer token to a user and stores the identity
// in the request context for downstream authorization.
func AuthMiddleware(st *store.Store, tokens *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := tokens.Verify(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := st.UserByID(userID)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:      user.ID,
			Name:    user.Name,
			Handle:  user.Handle,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		})
		ctx.Next()
	}
}
