package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yelizavetafitil/BookingBack/internal/handler"
	"github.com/yelizavetafitil/BookingBack/internal/model"
	userService "github.com/yelizavetafitil/BookingBack/internal/service/user"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

type Handler struct {
	service *userService.Service
}

func NewHandler(service *userService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/users/:userId", h.Get)
	r.PUT("/users/:userId", h.Update)
	r.GET("/userEnterprises/:userId", h.ListEnterprises)
	// Historic route name: clients call this to delete their account.
	r.DELETE("/enterpriseBack/:userId", h.Delete)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := handler.PathID(c, "userId")
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
	id, err := handler.PathID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UserData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Данные пользователя обновлены"))
}

func (h *Handler) ListEnterprises(c *gin.Context) {
	id, err := handler.PathID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.service.ListEnterprises(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(list))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.PathID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Пользователь удален"))
}
