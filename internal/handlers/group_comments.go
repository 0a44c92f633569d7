package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/bingoboard-dev/bingoboard/internal/authz"
	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostGroupCommentRequest struct {
	Text    string `json:"text" binding:"required"`
	Private bool   `json:"private"`
}

type GroupCommentResponse struct {
	ID        uint      `json:"id"`
	GroupID   uint      `json:"group_id"`
	Author    Friend    `json:"author"`
	Text      string    `json:"text"`
	Private   bool      `json:"private"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupReactionRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

type GroupCommentsHandler struct {
	store *store.Store
	rules *authz.Rules
}

func NewGroupCommentsHandler(st *store.Store, rules *authz.Rules) *GroupCommentsHandler {
	return &GroupCommentsHandler{store: st, rules: rules}
}

// Post adds a comment in the group feed. Accepted members only.
func (h *GroupCommentsHandler) Post(ctx *gin.Context) {
	userID, groupID, ok := h.requireMember(ctx)

	if !ok {
		return
	}

	var req PostGroupCommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	comment := models.GroupComment{
		GroupID:  groupID,
		AuthorID: userID,
		Text:     req.Text,
		Private:  req.Private,
	}

	if err := h.store.CreateGroupComment(&comment); err != nil {
		logger.Get().Error().Err(err).Msg("failed to create group comment")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": comment.ID})
}

// List returns the group's comments with the private filter applied; the
// group creator is the context owner for private visibility.
func (h *GroupCommentsHandler) List(ctx *gin.Context) {
	userID, groupID, ok := h.requireMember(ctx)

	if !ok {
		return
	}

	group, err := h.store.GroupByID(groupID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to fetch group")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	comments, err := h.store.GroupComments(groupID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list group comments")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	visible := authz.FilterGroupComments(comments, userID, group.CreatorID)

	response := make([]GroupCommentResponse, 0, len(visible))

	for i := range visible {
		response = append(response, GroupCommentResponse{
			ID:        visible[i].ID,
			GroupID:   visible[i].GroupID,
			Author:    newFriend(&visible[i].Author),
			Text:      visible[i].Text,
			Private:   visible[i].Private,
			CreatedAt: visible[i].CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": response})
}

// Delete removes the caller's own group comment; scoped by id and author.
func (h *GroupCommentsHandler) Delete(ctx *gin.Context) {
	userID, _, ok := h.requireMember(ctx)

	if !ok {
		return
	}

	commentID, err := utils.ParamID(ctx, "commentId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.store.DeleteGroupCommentByAuthor(commentID, userID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to delete group comment")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if deleted == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddReaction mirrors card-comment reactions with the group-scoped unique
// triple.
func (h *GroupCommentsHandler) AddReaction(ctx *gin.Context) {
	userID, groupID, ok := h.requireMember(ctx)

	if !ok {
		return
	}

	commentID, err := utils.ParamID(ctx, "commentId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req GroupReactionRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Emoji is required"})
		return
	}

	comment, err := h.store.GroupCommentByID(commentID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch group comment")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if comment.GroupID != groupID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	reaction := models.GroupCommentReaction{
		GroupCommentID: commentID,
		UserID:         userID,
		Emoji:          req.Emoji,
	}

	if err := h.store.CreateGroupCommentReaction(&reaction); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Reaction already exists"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to create group reaction")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": reaction.ID})
}

func (h *GroupCommentsHandler) RemoveReaction(ctx *gin.Context) {
	userID, _, ok := h.requireMember(ctx)

	if !ok {
		return
	}

	commentID, err := utils.ParamID(ctx, "commentId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req GroupReactionRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Emoji is required"})
		return
	}

	deleted, err := h.store.DeleteGroupCommentReaction(commentID, userID, req.Emoji)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to delete group reaction")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if deleted == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Reaction not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *GroupCommentsHandler) requireMember(ctx *gin.Context) (uint, uint, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, 0, false
	}

	groupID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, false
	}

	member, err := h.rules.IsGroupMember(userID, groupID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to check membership")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return 0, 0, false
	}

	if !member {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Group members only"})
		return 0, 0, false
	}

	return userID, groupID, true
}
