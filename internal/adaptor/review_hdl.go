package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /movies/{id}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	movieID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Create(r.Context(), userID, movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response)
}

// ListByMovie handles GET /movies/{id}/reviews
func (h *ReviewHandler) ListByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.ListByMovie(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "list movie reviews")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// ListByUser handles GET /users/{id}/reviews
func (h *ReviewHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list user reviews")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - movie not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyReviewed):
		h.log.Warn(operation+" failed - duplicate review", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
