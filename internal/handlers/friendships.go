package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bingoboard-dev/bingoboard/internal/authz"
	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SendFriendRequestRequest struct {
	Identifier string `json:"identifier" binding:"required"` // email or handle
}

type FriendRequestResponse struct {
	ID        uint      `json:"id"`
	From      Friend    `json:"from"`
	CreatedAt time.Time `json:"created_at"`
}

type Friend struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Handle *string `json:"handle"`
	Email  string  `json:"email"`
}

type FriendResponse struct {
	FriendshipID uint   `json:"friendship_id"`
	Friend       Friend `json:"friend"`
}

type FriendshipsHandler struct {
	store *store.Store
	rules *authz.Rules
}

func NewFriendshipsHandler(st *store.Store, rules *authz.Rules) *FriendshipsHandler {
	return &FriendshipsHandler{store: st, rules: rules}
}

func newFriend(user *models.User) Friend {
	return Friend{
		ID:     user.ID,
		Name:   user.Name,
		Handle: user.Handle,
		Email:  user.Email,
	}
}

// SendRequest creates a pending friendship toward a user resolved by email or
// handle. A row in either direction, pending or accepted, blocks the request;
// after a decline the row is gone, so re-requesting is allowed.
func (h *FriendshipsHandler) SendRequest(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SendFriendRequestRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifier is required"})
		return
	}

	target, err := h.store.UserByIdentifier(strings.TrimSpace(req.Identifier))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to resolve friend request target")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if target.ID == userID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a friend request to yourself"})
		return
	}

	exists, err := h.rules.HasAnyFriendship(userID, target.ID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to check existing friendship")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if exists {
		ctx.JSON(http.StatusConflict, gin.H{"error": "Friendship already exists"})
		return
	}

	friendship := models.Friendship{
		RequesterID: userID,
		AddresseeID: target.ID,
		Status:      models.FriendshipStatusPending,
	}

	if err := h.store.CreateFriendship(&friendship); err != nil {
		// Racing identical requests both pass the check; the pair index
		// rejects the loser and that is an expected Conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Friendship already exists"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to create friendship")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":     friendship.ID,
		"status": friendship.Status,
	})
}

// ListRequests returns pending requests addressed to the caller.
func (h *FriendshipsHandler) ListRequests(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	requests, err := h.store.PendingRequestsFor(userID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list friend requests")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]FriendRequestResponse, 0, len(requests))

	for i := range requests {
		response = append(response, FriendRequestResponse{
			ID:        requests[i].ID,
			From:      newFriend(&requests[i].Requester),
			CreatedAt: requests[i].CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"requests": response})
}

// Accept promotes a pending request to accepted. Only the stored addressee
// may accept; re-accepting is harmless and not rejected.
func (h *FriendshipsHandler) Accept(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	requestID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	friendship, err := h.store.FriendshipByID(requestID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch friendship")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if friendship.AddresseeID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the addressee can accept a friend request"})
		return
	}

	friendship.Status = models.FriendshipStatusAccepted

	if err := h.store.SaveFriendship(friendship); err != nil {
		logger.Get().Error().Err(err).Msg("failed to accept friendship")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":     friendship.ID,
		"status": friendship.Status,
	})
}

// List returns the other party of every accepted row touching the caller.
func (h *FriendshipsHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	friendships, err := h.store.AcceptedFriendshipsOf(userID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list friends")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]FriendResponse, 0, len(friendships))

	for i := range friendships {
		// Pick whichever side isn't the caller.
		other := &friendships[i].Requester
		if friendships[i].RequesterID == userID {
			other = &friendships[i].Addressee
		}

		response = append(response, FriendResponse{
			FriendshipID: friendships[i].ID,
			Friend:       newFriend(other),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"friends": response})
}

// Remove deletes the row outright. Either party may remove; declining a
// pending request is the same hard delete.
func (h *FriendshipsHandler) Remove(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	friendshipID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	friendship, err := h.store.FriendshipByID(friendshipID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Friendship not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch friendship")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if friendship.RequesterID != userID && friendship.AddresseeID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not a party to this friendship"})
		return
	}

	if err := h.store.DeleteFriendship(friendship); err != nil {
		logger.Get().Error().Err(err).Msg("failed to delete friendship")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
