package response

import (
	"time"

	"movie-review/internal/data/entity"
)

// ReviewResponse carries the review joined with the author's public profile
// fields.
type ReviewResponse struct {
	ID                 int64     `json:"id"`
	MovieID            int64     `json:"movieId"`
	UserID             int64     `json:"userId"`
	Username           string    `json:"username"`
	UserProfilePicture string    `json:"userProfilePicture"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment"`
	CreatedAt          time.Time `json:"createdAt"`
}

func ReviewToResponse(review *entity.Review, author *entity.User) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}

	if author != nil {
		resp.Username = author.Username
		resp.UserProfilePicture = author.ProfilePicture
	}

	return resp
}
