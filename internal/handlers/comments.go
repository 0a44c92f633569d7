package handlers

import (
	"net/http"
	"time"

	"github.com/bingoboard-dev/bingoboard/internal/authz"
	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/utils"
	"github.com/gin-gonic/gin"
)

type PostCommentRequest struct {
	CardOwnerID uint   `json:"card_owner_id" binding:"required"`
	Row         *int   `json:"row" binding:"required"`
	Col         *int   `json:"col" binding:"required"`
	Text        string `json:"text" binding:"required"`
	Private     bool   `json:"private"`
}

type CommentResponse struct {
	ID          uint      `json:"id"`
	Author      Friend    `json:"author"`
	CardOwnerID uint      `json:"card_owner_id"`
	Row         int       `json:"row"`
	Col         int       `json:"col"`
	Text        string    `json:"text"`
	Private     bool      `json:"private"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentsHandler struct {
	store *store.Store
	rules *authz.Rules
}

func NewCommentsHandler(st *store.Store, rules *authz.Rules) *CommentsHandler {
	return &CommentsHandler{store: st, rules: rules}
}

func newCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		Author:      newFriend(&comment.Author),
		CardOwnerID: comment.CardOwnerID,
		Row:         comment.Row,
		Col:         comment.Col,
		Text:        comment.Text,
		Private:     comment.Private,
		CreatedAt:   comment.CreatedAt,
	}
}

// Post attaches a comment to a cell of another user's card (or the caller's
// own). Commenting on someone else's card needs an accepted friendship. The
// coordinates are not checked against the card's current grid.
func (h *CommentsHandler) Post(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req PostCommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Card owner, row, col and text are required"})
		return
	}

	if req.CardOwnerID != userID {
		friends, err := h.rules.IsAcceptedFriend(userID, req.CardOwnerID)

		if err != nil {
			logger.Get().Error().Err(err).Msg("failed to check friendship")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !friends {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Only accepted friends can comment on this card"})
			return
		}
	}

	comment := models.Comment{
		AuthorID:    userID,
		CardOwnerID: req.CardOwnerID,
		Row:         *req.Row,
		Col:         *req.Col,
		Text:        req.Text,
		Private:     req.Private,
	}

	if err := h.store.CreateComment(&comment); err != nil {
		logger.Get().Error().Err(err).Msg("failed to create comment")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": comment.ID})
}

// List returns the comments on a card, optionally narrowed to one cell, with
// the private-visibility filter applied before anything leaves the handler.
func (h *CommentsHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cardOwnerID, err := utils.ParamID(ctx, "cardOwnerId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed, err := h.rules.CanViewCard(userID, cardOwnerID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to check friendship")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !allowed {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only accepted friends can view these comments"})
		return
	}

	var comments []models.Comment

	if ctx.Param("row") != "" {
		row, err := utils.ParamInt(ctx, "row")

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		col, err := utils.ParamInt(ctx, "col")

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		comments, err = h.store.CommentsForCell(cardOwnerID, row, col)

		if err != nil {
			logger.Get().Error().Err(err).Msg("failed to list comments")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	} else {
		comments, err = h.store.CommentsForCard(cardOwnerID)

		if err != nil {
			logger.Get().Error().Err(err).Msg("failed to list comments")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	visible := authz.FilterComments(comments, userID, cardOwnerID)

	response := make([]CommentResponse, 0, len(visible))

	for i := range visible {
		response = append(response, newCommentResponse(&visible[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": response})
}

// Delete removes the caller's own comment. The delete is scoped by id and
// author together, so a foreign comment matches zero rows and reports as not
// found rather than leaking its existence.
func (h *CommentsHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	commentID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.store.DeleteCommentByAuthor(commentID, userID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to delete comment")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if deleted == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
