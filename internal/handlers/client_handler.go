package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/client"
	"github.com/BruksfildServices01/salon-admin/internal/dto"
	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/query"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type ClientHandler struct {
	repo         domain.Repository
	appointments appointment.Repository
	audit        *audit.Dispatcher
	now          timezone.Clock
	loc          *time.Location
}

func NewClientHandler(
	repo domain.Repository,
	appointments appointment.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
	loc *time.Location,
) *ClientHandler {
	return &ClientHandler{
		repo:         repo,
		appointments: appointments,
		audit:        audit,
		now:          now,
		loc:          loc,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FirstName   string                    `json:"first_name" binding:"required,max=100"`
	LastName    string                    `json:"last_name" binding:"max=100"`
	Email       string                    `json:"email" binding:"omitempty,email"`
	Phone       string                    `json:"phone" binding:"omitempty,phone"`
	BirthDate   *string                   `json:"birth_date" binding:"omitempty,date"`
	Address     string                    `json:"address" binding:"max=255"`
	Notes       string                    `json:"notes"`
	IsActive    *bool                     `json:"is_active"`
	Preferences *models.ClientPreferences `json:"preferences"`
}

type UpdateClientRequest struct {
	FirstName   *string                   `json:"first_name,omitempty" binding:"omitempty,min=1,max=100"`
	LastName    *string                   `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Email       *string                   `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string                   `json:"phone,omitempty" binding:"omitempty,phone"`
	BirthDate   *string                   `json:"birth_date,omitempty" binding:"omitempty,date"`
	Address     *string                   `json:"address,omitempty" binding:"omitempty,max=255"`
	Notes       *string                   `json:"notes,omitempty"`
	IsActive    *bool                     `json:"is_active,omitempty"`
	LastVisit   *string                   `json:"last_visit,omitempty" binding:"omitempty,date"`
	TotalVisits *int                      `json:"total_visits,omitempty" binding:"omitempty,min=0"`
	TotalSpent  *int64                    `json:"total_spent,omitempty" binding:"omitempty,min=0"`
	Preferences *models.ClientPreferences `json:"preferences,omitempty"`
}

// --------- Handlers ---------

// List supports q (search), status (all|active|inactive) and sort
// (name|visits|spent|recent).
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	clients = query.SearchClients(clients, strings.TrimSpace(c.Query("q")))
	clients = query.FilterByActive(clients, query.ActiveFilter(c.Query("status")), func(cl models.Client) bool {
		return cl.IsActive
	})
	if by := c.Query("sort"); by != "" {
		clients = query.SortClients(clients, query.ClientSort(by))
	}

	httpresp.List(c, dto.Clients(clients, h.now(), h.loc))
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	birth, err := parseOptionalDate(h.loc, req.BirthDate)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := h.repo.Create(c.Request.Context(), models.Client{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       normalizeEmail(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		BirthDate:   birth,
		Address:     req.Address,
		Notes:       req.Notes,
		IsActive:    active,
		Preferences: req.Preferences,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "client_created", "client", created.ID, nil)
	httpresp.Created(c, dto.Client(*created, h.now(), h.loc))
}

func (h *ClientHandler) Get(c *gin.Context) {
	cl, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Client(*cl, h.now(), h.loc))
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	birth, err := parseOptionalDate(h.loc, req.BirthDate)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	lastVisit, err := parseOptionalDate(h.loc, req.LastVisit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), c.Param("id"), domain.Patch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       normalizeEmailPtr(req.Email),
		Phone:       req.Phone,
		BirthDate:   birth,
		Address:     req.Address,
		Notes:       req.Notes,
		IsActive:    req.IsActive,
		LastVisit:   lastVisit,
		TotalVisits: req.TotalVisits,
		TotalSpent:  req.TotalSpent,
		Preferences: req.Preferences,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "client_updated", "client", updated.ID, nil)
	httpresp.OK(c, dto.Client(*updated, h.now(), h.loc))
}

func (h *ClientHandler) Delete(c *gin.Context) {
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

	writeAudit(h.audit, c, "client_deleted", "client", id, nil)
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) Toggle(c *gin.Context) {
	cl, err := h.repo.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "client_toggled", "client", cl.ID, map[string]any{"is_active": cl.IsActive})
	httpresp.OK(c, dto.Client(*cl, h.now(), h.loc))
}

// Appointments lists the client's history, newest first.
func (h *ClientHandler) Appointments(c *gin.Context) {
	ctx := c.Request.Context()

	cl, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	aps, err := h.appointments.List(ctx)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	aps = query.FilterAppointments(aps, query.AppointmentFilter{ClientID: cl.ID}, h.loc)
	httpresp.List(c, dto.Appointments(aps, h.loc))
}
