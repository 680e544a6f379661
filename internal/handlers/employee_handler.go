package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/dto"
	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/query"
	"github.com/BruksfildServices01/salon-admin/internal/storage"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-admin/internal/usecase/appointment"
)

var errPhotosDisabled = httperr.ErrBusiness("photos_disabled")

type EmployeeHandler struct {
	repo         domain.Repository
	appointments appointment.Repository
	availability *ucAppointment.GetAvailability
	photos       *storage.PhotoService
	audit        *audit.Dispatcher
	now          timezone.Clock
	loc          *time.Location
}

// NewEmployeeHandler builds the handler. photos may be nil, in which case
// photo uploads answer photos_disabled.
func NewEmployeeHandler(
	repo domain.Repository,
	appointments appointment.Repository,
	availability *ucAppointment.GetAvailability,
	photos *storage.PhotoService,
	audit *audit.Dispatcher,
	now timezone.Clock,
	loc *time.Location,
) *EmployeeHandler {
	return &EmployeeHandler{
		repo:         repo,
		appointments: appointments,
		availability: availability,
		photos:       photos,
		audit:        audit,
		now:          now,
		loc:          loc,
	}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	FirstName   string   `json:"first_name" binding:"required,max=100"`
	LastName    string   `json:"last_name" binding:"max=100"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Phone       string   `json:"phone" binding:"omitempty,phone"`
	Position    string   `json:"position" binding:"max=100"`
	Specialties []string `json:"specialties"`
	IsActive    *bool    `json:"is_active"`
	HireDate    string   `json:"hire_date" binding:"omitempty,date"`
}

type UpdateEmployeeRequest struct {
	FirstName   *string   `json:"first_name,omitempty" binding:"omitempty,min=1,max=100"`
	LastName    *string   `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Email       *string   `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string   `json:"phone,omitempty" binding:"omitempty,phone"`
	Position    *string   `json:"position,omitempty" binding:"omitempty,max=100"`
	Specialties *[]string `json:"specialties,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
	HireDate    *string   `json:"hire_date,omitempty" binding:"omitempty,date"`
}

// --------- Handlers ---------

// List supports q (search) and status (all|active|inactive).
func (h *EmployeeHandler) List(c *gin.Context) {
	es, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	es = query.SearchEmployees(es, strings.TrimSpace(c.Query("q")))
	es = query.FilterByActive(es, query.ActiveFilter(c.Query("status")), func(e models.Employee) bool {
		return e.IsActive
	})

	httpresp.List(c, dto.Employees(es, h.now(), h.loc))
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hire := timezone.StartOfDay(h.now(), h.loc)
	if req.HireDate != "" {
		d, err := parseDate(h.loc, req.HireDate)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		hire = d
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	specialties := req.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	created, err := h.repo.Create(c.Request.Context(), models.Employee{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       normalizeEmail(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Position:    req.Position,
		Specialties: specialties,
		IsActive:    active,
		HireDate:    hire,
		Schedule:    domain.DefaultSchedule(),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "employee_created", "employee", created.ID, nil)
	httpresp.Created(c, dto.Employee(*created, h.now(), h.loc))
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	e, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Employee(*e, h.now(), h.loc))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hire, err := parseOptionalDate(h.loc, req.HireDate)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), c.Param("id"), domain.Patch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       normalizeEmailPtr(req.Email),
		Phone:       req.Phone,
		Position:    req.Position,
		Specialties: req.Specialties,
		IsActive:    req.IsActive,
		HireDate:    hire,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "employee_updated", "employee", updated.ID, nil)
	httpresp.OK(c, dto.Employee(*updated, h.now(), h.loc))
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
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

	writeAudit(h.audit, c, "employee_deleted", "employee", id, nil)
	c.Status(http.StatusNoContent)
}

func (h *EmployeeHandler) Toggle(c *gin.Context) {
	e, err := h.repo.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "employee_toggled", "employee", e.ID, map[string]any{"is_active": e.IsActive})
	httpresp.OK(c, dto.Employee(*e, h.now(), h.loc))
}

// Appointments lists the employee's agenda, optionally for one day (date).
func (h *EmployeeHandler) Appointments(c *gin.Context) {
	ctx := c.Request.Context()

	e, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	f := query.AppointmentFilter{EmployeeID: e.ID}
	if s := c.Query("date"); s != "" {
		day, err := parseDate(h.loc, s)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		f.Day = &day
	}

	aps, err := h.appointments.List(ctx)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.Appointments(query.FilterAppointments(aps, f, h.loc), h.loc))
}

// Availability answers free slots for service_id on date (default today).
func (h *EmployeeHandler) Availability(c *gin.Context) {
	serviceID := c.Query("service_id")
	if serviceID == "" {
		httperr.BadRequest(c, "missing_service", "Servicio obligatorio.")
		return
	}

	day := timezone.StartOfDay(h.now(), h.loc)
	if s := c.Query("date"); s != "" {
		d, err := parseDate(h.loc, s)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		day = d
	}

	slots, err := h.availability.Execute(c.Request.Context(), appointment.AvailabilityInput{
		EmployeeID: c.Param("id"),
		ServiceID:  serviceID,
		Date:       day,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  day.Format("2006-01-02"),
		"slots": slots,
	})
}

// Photo accepts a multipart "photo" file, stores it and sets PhotoURL.
func (h *EmployeeHandler) Photo(c *gin.Context) {
	if h.photos == nil {
		httperr.FromError(c, errPhotosDisabled)
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.repo.GetByID(ctx, id); err != nil {
		httperr.FromError(c, err)
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Archivo de foto obligatorio.")
		return
	}
	if fh.Size > storage.MaxUploadBytes {
		httperr.FromError(c, storage.ErrInvalidImage)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	defer f.Close()

	url, err := h.photos.UploadEmployeePhoto(ctx, id, f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	updated, err := h.repo.Update(ctx, id, domain.Patch{PhotoURL: &url})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "employee_photo_updated", "employee", id, map[string]any{"photo_url": url})
	httpresp.OK(c, dto.Employee(*updated, h.now(), h.loc))
}
