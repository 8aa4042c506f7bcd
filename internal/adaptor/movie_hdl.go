package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /movies with search, genre, year, sortBy, page and limit
// query parameters.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year := 0
	if raw := q.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	query := repository.MovieQuery{
		Search: q.Get("search"),
		Genre:  q.Get("genre"),
		Year:   year,
		SortBy: q.Get("sortBy"),
		Page:   utils.ParseInt(q.Get("page"), repository.DefaultPage),
		Limit:  utils.ParseInt(q.Get("limit"), repository.DefaultLimit),
	}

	response, err := h.service.List(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err, "list movies")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// Featured handles GET /movies/featured
func (h *MovieHandler) Featured(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Featured(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get featured movies")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// GetByID handles GET /movies/{id}
func (h *MovieHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.GetByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// Create handles POST /admin/movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response)
}

// Update handles PUT /admin/movies/{id}
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	movieID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req request.MovieUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Update(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidReleaseYear):
		h.log.Warn(operation+" failed - invalid release year", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parseIDParam reads a positive int64 path parameter, writing a 400 on
// malformed input.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid "+name+" parameter", nil)
		return 0, false
	}
	return id, true
}
