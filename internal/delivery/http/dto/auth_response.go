package dto

import (
	"time"

	"github.com/google/uuid"

	"talentmatch/internal/domain/user"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt,
	}
}

func NewAuthResponse(u user.User, access, refresh string) AuthResponse {
	return AuthResponse{
		User:         NewUserResponse(u),
		AccessToken:  access,
		RefreshToken: refresh,
	}
}
