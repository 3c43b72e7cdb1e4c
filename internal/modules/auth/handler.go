package auth

import (
	"errors"
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

// RegisterPublicRoutes mounts the unauthenticated login endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

// RegisterProtectedRoutes mounts endpoints that need the auth middleware.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.CurrentUser)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	token, _, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Login failed.")
		return
	}

	response.Success(c, http.StatusOK, "Login successful.", gin.H{"token": token})
}

func (h *Handler) CurrentUser(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found.")
		return
	}

	response.Success(c, http.StatusOK, "Success.", gin.H{"user": ToUserPublic(user)})
}
