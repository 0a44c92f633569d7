package types

import "github.com/bingoboard-dev/bingoboard/internal/models"

// UserResponse is the public user projection. The password hash never leaves
// the models package through any response type.
type UserResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Handle  *string `json:"handle"`
	Email   string  `json:"email"`
	IsAdmin bool    `json:"is_admin"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Handle:  user.Handle,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}
