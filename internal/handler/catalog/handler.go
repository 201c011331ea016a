package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yelizavetafitil/BookingBack/internal/handler"
	"github.com/yelizavetafitil/BookingBack/internal/model"
	catalogService "github.com/yelizavetafitil/BookingBack/internal/service/catalog"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

type Handler struct {
	service *catalogService.Service
}

func NewHandler(service *catalogService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/enterpriseServices/:enterpriseId", h.ListByEnterprise)
	r.POST("/addService", h.Add)
	r.GET("/services/:serviceId", h.Get)
	r.PUT("/services/:serviceId", h.Update)
	r.DELETE("/deleteService/:serviceId", h.Delete)

	r.POST("/service-employees", h.AssignEmployees)
	r.GET("/service-employees/:serviceId", h.ListEmployees)
	r.PUT("/service-employees/:serviceId", h.ReplaceEmployees)
}

func (h *Handler) ListByEnterprise(c *gin.Context) {
	id, err := handler.PathID(c, "enterpriseId")
	if err != nil {
		c.Error(err)
		return
	}

	services, err := h.service.ListByCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}

func (h *Handler) Add(c *gin.Context) {
	var req model.ServiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	id, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(model.ServiceAddResponse{
		ServiceID: id,
		Success:   true,
		Message:   "Услуга успешно добавлена",
	}))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := handler.PathID(c, "serviceId")
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
	id, err := handler.PathID(c, "serviceId")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.ServiceEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Услуга обновлена"))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.PathID(c, "serviceId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Услуга удалена"))
}

func (h *Handler) AssignEmployees(c *gin.Context) {
	var req model.ServiceEmployeeAssignment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.AssignEmployees(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Сотрудники назначены на услугу"))
}

func (h *Handler) ListEmployees(c *gin.Context) {
	id, err := handler.PathID(c, "serviceId")
	if err != nil {
		c.Error(err)
		return
	}

	ids, err := h.service.ListEmployeeIDs(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(model.ServiceEmployeeAssignment{
		ServiceID:   id,
		EmployeeIDs: ids,
	}))
}

// ReplaceEmployees swaps the full assignment set in one transaction.
func (h *Handler) ReplaceEmployees(c *gin.Context) {
	id, err := handler.PathID(c, "serviceId")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.ServiceEmployeeAssignment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.ReplaceEmployees(c.Request.Context(), id, req.EmployeeIDs); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Назначения обновлены"))
}
