package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yelizavetafitil/BookingBack/internal/handler"
	"github.com/yelizavetafitil/BookingBack/internal/model"
	authService "github.com/yelizavetafitil/BookingBack/internal/service/auth"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

type Handler struct {
	service *authService.Service
}

func NewHandler(service *authService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	id, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(model.RegisterResponse{UserID: id}))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	id, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(model.RegisterResponse{UserID: id}))
}
