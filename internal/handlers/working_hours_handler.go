package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

// WorkingHoursHandler reads and replaces an employee's weekly schedule.
type WorkingHoursHandler struct {
	repo  employee.Repository
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(repo employee.Repository, audit *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{repo: repo, audit: audit}
}

type WorkingDayConfig struct {
	Weekday   string `json:"weekday" binding:"required,weekday"`
	IsWorking bool   `json:"is_working"`
	StartTime string `json:"start_time" binding:"omitempty,clock"`
	EndTime   string `json:"end_time" binding:"omitempty,clock"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	e, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	schedule := e.Schedule
	if schedule == nil {
		schedule = models.EmployeeSchedule{}
	}
	c.JSON(http.StatusOK, schedule)
}

// Update replaces the whole schedule. Days left out of the request are off.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	schedule := make(models.EmployeeSchedule, len(req.Days))
	for _, d := range req.Days {
		if d.IsWorking {
			start, err1 := domain.ParseClock(d.StartTime)
			end, err2 := domain.ParseClock(d.EndTime)
			if err1 != nil || err2 != nil || start >= end {
				httperr.BadRequest(c, "invalid_working_hours", "Horario inválido para "+d.Weekday+".")
				return
			}
		}
		schedule[d.Weekday] = models.DaySchedule{
			IsWorking: d.IsWorking,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		}
	}

	e, err := h.repo.Update(c.Request.Context(), c.Param("id"), employee.Patch{Schedule: &schedule})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "employee_schedule_updated", "employee", e.ID, nil)
	c.JSON(http.StatusOK, e.Schedule)
}
