package handlers

import (
	"errors"
	"net/http"

	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/types"
	"github.com/bingoboard-dev/bingoboard/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnalyticsResponse struct {
	Users    int64 `json:"users"` // admins excluded
	Cards    int64 `json:"cards"`
	Groups   int64 `json:"groups"`
	Comments int64 `json:"comments"` // card and group comments combined
}

type AdminUserDetailResponse struct {
	User        types.UserResponse `json:"user"`
	Card        *CardResponse      `json:"card"`
	Groups      []string           `json:"groups"`
	FriendCount int64              `json:"friend_count"`
}

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

func (h *AdminHandler) Analytics(ctx *gin.Context) {
	users, err := h.store.CountNonAdminUsers()

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to count users")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cards, err := h.store.CountCards()

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to count cards")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	groups, err := h.store.CountGroups()

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to count groups")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	comments, err := h.store.CountAllComments()

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to count comments")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, AnalyticsResponse{
		Users:    users,
		Cards:    cards,
		Groups:   groups,
		Comments: comments,
	})
}

func (h *AdminHandler) ListUsers(ctx *gin.Context) {
	users, err := h.store.ListUsers()

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

// UserDetail assembles card, groups and friend count for one user. Each
// sub-lookup is best-effort: a failure degrades its field to empty/zero
// instead of failing the whole request.
func (h *AdminHandler) UserDetail(ctx *gin.Context) {
	userID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UserByID(userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	detail := AdminUserDetailResponse{
		User:   types.NewUserResponse(user),
		Groups: []string{},
	}

	if card, err := h.store.CardByOwner(userID); err == nil {
		response := newCardResponse(card)
		detail.Card = &response
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Get().Warn().Err(err).Uint("user_id", userID).Msg("card lookup degraded")
	}

	if groups, err := h.store.GroupNamesFor(userID); err == nil {
		detail.Groups = groups
	} else {
		logger.Get().Warn().Err(err).Uint("user_id", userID).Msg("group lookup degraded")
	}

	if count, err := h.store.CountAcceptedFriends(userID); err == nil {
		detail.FriendCount = count
	} else {
		logger.Get().Warn().Err(err).Uint("user_id", userID).Msg("friend count degraded")
	}

	ctx.JSON(http.StatusOK, detail)
}
