package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bingoboard-dev/bingoboard/internal/auth"
	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/types"
	"github.com/bingoboard-dev/bingoboard/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Handle   string `json:"handle"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Handle          string `json:"handle"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"omitempty,min=8"`
}

type AuthHandler struct {
	store  *store.Store
	tokens *auth.TokenManager
}

func NewAuthHandler(st *store.Store, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: st, tokens: tokens}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Handle = strings.TrimSpace(req.Handle)

	if taken, err := h.store.EmailInUse(req.Email, 0); err != nil {
		logger.Get().Error().Err(err).Msg("failed to check existing email")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	} else if taken {
		ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}

	if req.Handle != "" {
		if taken, err := h.store.HandleInUse(req.Handle, 0); err != nil {
			logger.Get().Error().Err(err).Msg("failed to check existing handle")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		} else if taken {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Handle already exists"})
			return
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to hash password")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}

	if req.Handle != "" {
		newUser.Handle = &req.Handle
	}

	if err := h.store.CreateUser(&newUser); err != nil {
		// Two racing registrations can both pass the pre-check; the unique
		// index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to create user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := h.tokens.Generate(newUser.ID, newUser.Email)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to generate token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  types.NewUserResponse(&newUser),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.store.UserByEmail(req.Email)

	if err != nil {
		// Same message as a wrong password so the response does not reveal
		// whether the email exists.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to generate token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  types.NewUserResponse(user),
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:      currentUser.ID,
			Name:    currentUser.Name,
			Handle:  currentUser.Handle,
			Email:   currentUser.Email,
			IsAdmin: currentUser.IsAdmin,
		},
	})
}

func (h *AuthHandler) UpdateProfile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.store.UserByID(currentUser.ID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to fetch user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}

	if req.Handle != "" {
		handle := strings.TrimSpace(req.Handle)

		if taken, err := h.store.HandleInUse(handle, user.ID); err != nil {
			logger.Get().Error().Err(err).Msg("failed to check existing handle")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		} else if taken {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Handle already exists"})
			return
		}

		updates["handle"] = handle
	}

	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))

		if taken, err := h.store.EmailInUse(email, user.ID); err != nil {
			logger.Get().Error().Err(err).Msg("failed to check existing email")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		} else if taken {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}

		updates["email"] = email
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Current password is required to change password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)

		if err != nil {
			logger.Get().Error().Err(err).Msg("failed to hash new password")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		updates["password_hash"] = string(passwordHash)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := h.store.UpdateUser(user, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email or handle already exists"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to update user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	updated, err := h.store.UserByID(user.ID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to refresh user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.NewUserResponse(updated),
	})
}
