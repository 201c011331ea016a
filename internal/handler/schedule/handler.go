package schedule

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yelizavetafitil/BookingBack/internal/handler"
	"github.com/yelizavetafitil/BookingBack/internal/model"
	scheduleService "github.com/yelizavetafitil/BookingBack/internal/service/schedule"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

const savedMessage = "Рабочий график успешно сохранен"

type Handler struct {
	service *scheduleService.Service
}

func NewHandler(service *scheduleService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/employee/schedule", h.CreateFixed)
	r.POST("/employee/week-schedule", h.CreateWeekly)
	r.POST("/employee/choice-schedule", h.CreateChoice)

	r.GET("/employee/:employeeId/schedule", h.ListFixed)
	r.GET("/employee/:employeeId/week-schedule", h.ListWeekly)
	r.GET("/employee/:employeeId/choice-schedule", h.ListChoice)
}

func (h *Handler) CreateFixed(c *gin.Context) {
	var req model.WorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.CreateFixed(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(savedMessage))
}

func (h *Handler) CreateWeekly(c *gin.Context) {
	var req model.WorkingWeeksHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.CreateWeekly(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(savedMessage))
}

func (h *Handler) CreateChoice(c *gin.Context) {
	var req model.WorkingChoiceHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Неверный формат данных"))
		return
	}

	if err := h.service.CreateChoice(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(savedMessage))
}

func (h *Handler) ListFixed(c *gin.Context) {
	id, err := handler.PathID(c, "employeeId")
	if err != nil {
		c.Error(err)
		return
	}

	out, err := h.service.ListFixed(c.Request.Context(), id, queryFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(out))
}

func (h *Handler) ListWeekly(c *gin.Context) {
	id, err := handler.PathID(c, "employeeId")
	if err != nil {
		c.Error(err)
		return
	}

	out, err := h.service.ListWeekly(c.Request.Context(), id, queryFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(out))
}

func (h *Handler) ListChoice(c *gin.Context) {
	id, err := handler.PathID(c, "employeeId")
	if err != nil {
		c.Error(err)
		return
	}

	out, err := h.service.ListChoice(c.Request.Context(), id, queryFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(out))
}

// queryFilter reads the optional query-string criteria. Unknown or
// non-numeric values simply leave the field at its zero value.
func queryFilter(c *gin.Context) model.ScheduleFilter {
	f := model.ScheduleFilter{
		Type:    c.Query("type"),
		Subtype: c.Query("subtype"),
	}
	if day, err := strconv.Atoi(c.Query("day")); err == nil {
		f.Day = day
	}
	if dw, err := strconv.Atoi(c.Query("daysWork")); err == nil {
		f.DaysWork = dw
	}
	if dr, err := strconv.Atoi(c.Query("daysRest")); err == nil {
		f.DaysRest = dr
	}
	return f
}
