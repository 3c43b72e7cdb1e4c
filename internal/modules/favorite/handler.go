package favorite

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamevault/internal/pkg/response"
	"gamevault/internal/pkg/validator"
	"gamevault/internal/rawg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the favorites endpoints on an authenticated
// group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/user/games/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("", h.Store)
		favorites.DELETE("", h.Destroy)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	games, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNoFavorites) {
			response.Error(c, http.StatusNotFound, "User has no favorites.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load favorites.")
		return
	}

	response.Success(c, http.StatusOK, "Success.", gin.H{"favorites": games})
}

func (h *Handler) Store(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req StoreFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	_, err := h.service.Add(c.Request.Context(), userID, req.GameID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyFavorite):
			response.Error(c, http.StatusBadRequest,
				fmt.Sprintf("Game with game_id %d is already in favorites.", req.GameID))
		case errors.Is(err, ErrGameNotFound):
			response.Error(c, http.StatusNotFound,
				fmt.Sprintf("Game with game_id %d not found in the catalog.", req.GameID))
		default:
			respondUpstreamOrInternal(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK,
		fmt.Sprintf("Game with game_id %d stored in favorites.", req.GameID), nil)
}

func (h *Handler) Destroy(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req DestroyFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, req.GameID); err != nil {
		if errors.Is(err, ErrFavoriteNotFound) {
			response.Error(c, http.StatusNotFound,
				fmt.Sprintf("Game with game_id %d not found in favorites.", req.GameID))
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to remove favorite.")
		return
	}

	response.Success(c, http.StatusOK,
		fmt.Sprintf("Game with game_id %d removed from favorites.", req.GameID), nil)
}

func respondUpstreamOrInternal(c *gin.Context, err error) {
	var ue *rawg.UpstreamError
	if errors.As(err, &ue) {
		response.Error(c, ue.StatusCode, ue.Reason)
		return
	}
	response.Error(c, http.StatusInternalServerError, "Failed to store favorite.")
}
