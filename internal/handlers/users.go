package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/types"
	"github.com/bingoboard-dev/bingoboard/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UsersHandler struct {
	store *store.Store
}

func NewUsersHandler(st *store.Store) *UsersHandler {
	return &UsersHandler{store: st}
}

// List is the user directory, caller excluded.
func (h *UsersHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	users, err := h.store.ListUsersExcept(userID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list users")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for i := range users {
		response = append(response, types.NewUserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"users": response})
}

// Search looks a user up by exact email or handle, caller excluded.
func (h *UsersHandler) Search(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := strings.TrimSpace(ctx.Query("email"))

	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter email is required"})
		return
	}

	user, err := h.store.UserByIdentifier(query)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to search user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user.ID == userID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}
