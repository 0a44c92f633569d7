package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReactionRequest struct {
	CommentID uint   `json:"comment_id" binding:"required"`
	Emoji     string `json:"emoji" binding:"required"`
}

type ReactionResponse struct {
	ID        uint      `json:"id"`
	CommentID uint      `json:"comment_id"`
	User      Friend    `json:"user"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

type ReactionsHandler struct {
	store *store.Store
}

func NewReactionsHandler(st *store.Store) *ReactionsHandler {
	return &ReactionsHandler{store: st}
}

// Add reacts to a comment. A user may react once per emoji per comment, but
// with any number of distinct emoji; the unique triple rejects duplicates.
func (h *ReactionsHandler) Add(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ReactionRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment id and emoji are required"})
		return
	}

	if _, err := h.store.CommentByID(req.CommentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch comment")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	reaction := models.Reaction{
		CommentID: req.CommentID,
		UserID:    userID,
		Emoji:     req.Emoji,
	}

	if err := h.store.CreateReaction(&reaction); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Reaction already exists"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to create reaction")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": reaction.ID})
}

func (h *ReactionsHandler) Remove(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ReactionRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment id and emoji are required"})
		return
	}

	deleted, err := h.store.DeleteReaction(req.CommentID, userID, req.Emoji)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to delete reaction")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if deleted == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Reaction not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *ReactionsHandler) List(ctx *gin.Context) {
	commentID, err := utils.ParamID(ctx, "commentId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reactions, err := h.store.ReactionsForComment(commentID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list reactions")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]ReactionResponse, 0, len(reactions))

	for i := range reactions {
		response = append(response, ReactionResponse{
			ID:        reactions[i].ID,
			CommentID: reactions[i].CommentID,
			User:      newFriend(&reactions[i].User),
			Emoji:     reactions[i].Emoji,
			CreatedAt: reactions[i].CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"reactions": response})
}
