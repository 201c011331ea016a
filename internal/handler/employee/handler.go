package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yelizavetafitil/BookingBack/internal/handler"
	"github.com/yelizavetafitil/BookingBack/internal/model"
	employeeService "github.com/yelizavetafitil/BookingBack/internal/service/employee"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

type Handler struct {
	service *employeeService.Service
}

func NewHandler(service *employeeService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/enterpriseEmployee/:enterpriseId", h.ListByEnterprise)
	r.POST("/addEmployee", h.Add)
	r.GET("/employees/:employeeId", h.Get)
	r.PUT("/employees/:employeeId", h.Update)
	r.DELETE("/deleteEmployee/:employeeId", h.Delete)
}

func (h *Handler) ListByEnterprise(c *gin.Context) {
	id, err := handler.PathID(c, "enterpriseId")
	if err != nil {
		c.Error(err)
		return
	}

	employees, err := h.service.ListByCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(employees))
}

func (h *Handler) Add(c *gin.Context) {
	var req model.EmployeeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{"employeeId": id}))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := handler.PathID(c, "employeeId")
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
	id, err := handler.PathID(c, "employeeId")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.EmployeeEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Данные сотрудника обновлены"))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.PathID(c, "employeeId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Сотрудник удален"))
}
