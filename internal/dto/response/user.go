package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type UserResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		Role:           string(user.Role),
		CreatedAt:      user.CreatedAt,
	}
}
