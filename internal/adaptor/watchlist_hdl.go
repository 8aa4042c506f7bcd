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

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /users/{id}/watchlist
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	response, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list watchlist")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// Add handles POST /users/{id}/watchlist
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	var req request.AddWatchlistRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Add(r.Context(), userID, req.MovieID)
	if err != nil {
		h.handleServiceError(w, err, "add to watchlist")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response)
}

// Remove handles DELETE /users/{id}/watchlist/{movieId}
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	movieID, ok := parseIDParam(w, r, "movieId")
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), userID, movieID); err != nil {
		h.handleServiceError(w, err, "remove from watchlist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeOwner checks that the authenticated caller owns the watchlist
// named by the path. Watchlists are private, unlike review listings.
func (h *WatchlistHandler) authorizeOwner(w http.ResponseWriter, r *http.Request) (int64, bool) {
	pathUserID, ok := parseIDParam(w, r, "id")
	if !ok {
		return 0, false
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return 0, false
	}

	if callerID != pathUserID {
		h.log.Warn("Watchlist access denied",
			zap.Int64("caller_id", callerID),
			zap.Int64("path_user_id", pathUserID),
		)
		utils.ResponseForbidden(w, "Cannot access another user's watchlist")
		return 0, false
	}

	return pathUserID, true
}

func (h *WatchlistHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound),
		errors.Is(err, usecase.ErrNotInWatchlist):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyInWatchlist):
		h.log.Warn(operation+" failed - duplicate entry", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
