package handlers

import (
	"encoding/json"
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

type CardCell struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type SaveCardRequest struct {
	Size       int          `json:"size" binding:"required"`
	Grid       [][]CardCell `json:"grid" binding:"required"`
	Completion [][]bool     `json:"completion" binding:"required"`
}

type CardResponse struct {
	ID         uint            `json:"id"`
	OwnerID    uint            `json:"owner_id"`
	Size       int             `json:"size"`
	Grid       json.RawMessage `json:"grid"`
	Completion json.RawMessage `json:"completion"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CardsHandler struct {
	store *store.Store
	rules *authz.Rules
}

func NewCardsHandler(st *store.Store, rules *authz.Rules) *CardsHandler {
	return &CardsHandler{store: st, rules: rules}
}

func newCardResponse(card *models.Card) CardResponse {
	return CardResponse{
		ID:         card.ID,
		OwnerID:    card.OwnerID,
		Size:       card.Size,
		Grid:       json.RawMessage(card.Grid),
		Completion: json.RawMessage(card.Completion),
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
}

// Save upserts the caller's card. The grid and completion payloads are stored
// as opaque JSON; their dimensions are not checked against the declared size.
func (h *CardsHandler) Save(ctx *gin.Context) {
	var req SaveCardRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Size, grid and completion are required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	grid, err := json.Marshal(req.Grid)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid grid format"})
		return
	}

	completion, err := json.Marshal(req.Completion)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid completion format"})
		return
	}

	card, err := h.store.UpsertCard(userID, req.Size, grid, completion)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to save card")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save card"})
		return
	}

	ctx.JSON(http.StatusOK, newCardResponse(card))
}

func (h *CardsHandler) GetOwn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	card, err := h.store.CardByOwner(userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch card")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, newCardResponse(card))
}

// GetByOwner returns another user's card. The owner always passes; everyone
// else needs an accepted friendship.
func (h *CardsHandler) GetByOwner(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ownerID, err := utils.ParamID(ctx, "userId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed, err := h.rules.CanViewCard(userID, ownerID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to check friendship")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !allowed {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only accepted friends can view this card"})
		return
	}

	card, err := h.store.CardByOwner(ownerID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch card")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, newCardResponse(card))
}

// Delete removes the caller's card; deleting a card that never existed is not
// an error.
func (h *CardsHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.store.DeleteCardByOwner(userID); err != nil {
		logger.Get().Error().Err(err).Msg("failed to delete card")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
