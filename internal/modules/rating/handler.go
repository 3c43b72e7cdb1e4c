package rating

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamevault/internal/pkg/response"
	"gamevault/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the rating endpoints on an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/user/games/favorites/rate", h.Rate)
	rg.PATCH("/user/games/favorites/rate/remove", h.RemoveRating)
}

func (h *Handler) Rate(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req RateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	if err := h.service.SetRating(c.Request.Context(), userID, req.GameID, req.Rating); err != nil {
		h.respondRatingError(c, err, req.GameID, req.Rating)
		return
	}

	response.Success(c, http.StatusOK,
		fmt.Sprintf("Game with game_id %d was rated with %d points.", req.GameID, *req.Rating), nil)
}

func (h *Handler) RemoveRating(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req RemoveRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	if err := h.service.RemoveRating(c.Request.Context(), userID, req.GameID); err != nil {
		h.respondRatingError(c, err, req.GameID, nil)
		return
	}

	response.Success(c, http.StatusOK,
		fmt.Sprintf("Rating of game with game_id %d was reset to default.", req.GameID), nil)
}

func (h *Handler) respondRatingError(c *gin.Context, err error, gameID int64, rating *int16) {
	switch {
	case errors.Is(err, ErrFavoriteNotFound):
		response.Error(c, http.StatusNotFound,
			fmt.Sprintf("Favorite game with game_id %d not found.", gameID))
	case errors.Is(err, ErrRatingUnchanged):
		if rating == nil {
			response.Error(c, http.StatusBadRequest,
				fmt.Sprintf("Rating of favorite game with game_id %d already has the default value.", gameID))
		} else {
			response.Error(c, http.StatusBadRequest,
				fmt.Sprintf("Favorite game with game_id %d is already rated with %d points.", gameID, *rating))
		}
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to update rating.")
	}
}
