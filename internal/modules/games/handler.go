package games

import (
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes mounts the public catalog endpoints; the caller wraps
// the group in the rate limiter.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
	rg.GET("/filter", h.Filter)
	rg.GET("/:game_id", h.RetrieveDetails)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchGamesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters.")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	result, err := h.service.Search(c.Request.Context(), req.Q)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	message := "Games were loaded via api."
	if result.FromCache {
		message = "Games were loaded from the cache."
	}
	response.Success(c, http.StatusOK, message, gin.H{"games": result.Games})
}

func (h *Handler) Filter(c *gin.Context) {
	var req FilterGamesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters.")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}
	if req.Empty() {
		response.ValidationError(c, map[string]string{
			"filter": "at least one of release_date, platform, genre is required",
		})
		return
	}

	result, err := h.service.Filter(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	message := "Games were loaded via api."
	if result.FromCache {
		message = "Games were loaded from the cache."
	}
	response.Success(c, http.StatusOK, message, gin.H{"games": result.Games})
}

func (h *Handler) RetrieveDetails(c *gin.Context) {
	externalID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Id must be numeric.")
		return
	}

	result, err := h.service.RetrieveDetails(c.Request.Context(), externalID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	message := "Game details stored to the database."
	if result.FromCache {
		message = "Game details were loaded from the database."
	}
	response.Success(c, http.StatusOK, message, gin.H{"data": result.Game})
}

// respondUpstreamError passes catalog status and reason through
// unchanged; anything else is an internal failure.
func respondUpstreamError(c *gin.Context, err error) {
	var ue *rawg.UpstreamError
	if errors.As(err, &ue) {
		response.Error(c, ue.StatusCode, ue.Reason)
		return
	}
	response.Error(c, http.StatusInternalServerError, "Catalog lookup failed.")
}
