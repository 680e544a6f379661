package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/app"
	"github.com/BruksfildServices01/salon-admin/internal/audit"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/dto"
	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/query"
	ucAppointment "github.com/BruksfildServices01/salon-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo  domain.Repository
	uc    app.AppointmentUseCases
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewAppointmentHandler(
	repo domain.Repository,
	uc app.AppointmentUseCases,
	audit *audit.Dispatcher,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:  repo,
		uc:    uc,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID   string `json:"client_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required,date"`
	StartTime  string `json:"start_time" binding:"required,clock"`
	EndTime    string `json:"end_time" binding:"omitempty,clock"`
	Status     string `json:"status" binding:"omitempty,status"`
	Notes      string `json:"notes" binding:"max=255"`
	Price      int64  `json:"price" binding:"min=0"`
}

type UpdateAppointmentRequest struct {
	ClientID   *string `json:"client_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	ServiceID  *string `json:"service_id,omitempty"`
	Date       *string `json:"date,omitempty" binding:"omitempty,date"`
	StartTime  *string `json:"start_time,omitempty" binding:"omitempty,clock"`
	EndTime    *string `json:"end_time,omitempty" binding:"omitempty,clock"`
	Status     *string `json:"status,omitempty" binding:"omitempty,status"`
	Notes      *string `json:"notes,omitempty" binding:"omitempty,max=255"`
	Price      *int64  `json:"price,omitempty" binding:"omitempty,min=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	date, err := parseDate(h.loc, req.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	ap, err := h.uc.Create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Actor:      actor(c),
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     domain.Status(req.Status),
		Notes:      req.Notes,
		Price:      req.Price,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Appointment(*ap, h.loc))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	f := query.AppointmentFilter{
		Status:     domain.Status(c.Query("status")),
		ClientID:   c.Query("client_id"),
		EmployeeID: c.Query("employee_id"),
		Search:     c.Query("q"),
	}

	if f.Status != "" && !f.Status.Valid() {
		httperr.FromError(c, domain.ErrInvalidStatus)
		return
	}

	if s := c.Query("date"); s != "" {
		day, err := parseDate(h.loc, s)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		f.Day = &day
	}

	aps, err := h.uc.List.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.Appointments(aps, h.loc))
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	aps, err := h.uc.Upcoming.Execute(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.Appointments(aps, h.loc))
}

// ======================================================
// CALENDAR
// ======================================================

func (h *AppointmentHandler) Calendar(c *gin.Context) {
	year := queryInt(c, "year", 0)
	month := queryInt(c, "month", 0)

	if year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	aps, err := h.uc.ListByMonth.Execute(c.Request.Context(), year, month, c.Query("employee_id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": dto.Appointments(aps, h.loc),
	})
}

// ======================================================
// GET / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Appointment(*ap, h.loc))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	date, err := parseOptionalDate(h.loc, req.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	p := domain.Patch{
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
		Price:      req.Price,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		p.Status = &s
	}

	ap, err := h.uc.Update.Execute(c.Request.Context(), actor(c), c.Param("id"), p)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Appointment(*ap, h.loc))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if !removed {
		httperr.FromError(c, domain.ErrNotFound)
		return
	}

	writeAudit(h.audit, c, "appointment_deleted", "appointment", id, nil)
	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ap, err := h.uc.UpdateStatus.Execute(c.Request.Context(), actor(c), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Appointment(*ap, h.loc))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.uc.Cancel.Execute(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Appointment(*ap, h.loc))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.uc.Complete.Execute(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Appointment(*ap, h.loc))
}

func (h *AppointmentHandler) StatusInfo(c *gin.Context) {
	httpresp.List(c, domain.AllInfo())
}
