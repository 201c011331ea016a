package enterprise

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yelizavetafitil/BookingBack/internal/handler"
	"github.com/yelizavetafitil/BookingBack/internal/model"
	enterpriseService "github.com/yelizavetafitil/BookingBack/internal/service/enterprise"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

type Handler struct {
	service *enterpriseService.Service
}

func NewHandler(service *enterpriseService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/enterpriseRegistration", h.Register)
	r.GET("/enterprise/:enterpriseId", h.Get)
	r.PUT("/enterprise/:enterpriseId", h.Update)
	r.DELETE("/enterpriseDelete/:enterpriseId", h.Delete)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.EnterpriseRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	id, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(model.EnterpriseRegistrationResponse{EnterpriseID: id}))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := handler.PathID(c, "enterpriseId")
	if err != nil {
		c.Error(err)
		return
	}

	data, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(data))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.PathID(c, "enterpriseId")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.Enterprise
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Данные компании обновлены"))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.PathID(c, "enterpriseId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Компания удалена"))
}
