package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/dto"
	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/query"
)

type ServiceHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewServiceHandler(repo domain.Repository, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
	Duration    int    `json:"duration" binding:"required,min=1"`
	Price       int64  `json:"price" binding:"min=0"`
	Category    string `json:"category" binding:"required,max=50"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
	Duration    *int    `json:"duration,omitempty" binding:"omitempty,min=1"`
	Price       *int64  `json:"price,omitempty" binding:"omitempty,min=0"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

// List supports q (search), category ("Todos" means all) and status
// (all|active|inactive).
func (h *ServiceHandler) List(c *gin.Context) {
	ss, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	ss = query.ServicesByCategory(ss, strings.TrimSpace(c.Query("category")))
	ss = query.SearchServices(ss, strings.TrimSpace(c.Query("q")))
	ss = query.FilterByActive(ss, query.ActiveFilter(c.Query("status")), func(s models.Service) bool {
		return s.IsActive
	})

	httpresp.List(c, dto.Services(ss))
}

func (h *ServiceHandler) Categories(c *gin.Context) {
	httpresp.List(c, domain.Categories())
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := h.repo.Create(c.Request.Context(), models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Category:    req.Category,
		IsActive:    active,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "service_created", "service", created.ID, map[string]any{"price": created.Price})
	httpresp.Created(c, dto.Service(*created))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	s, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Service(*s))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), c.Param("id"), domain.Patch{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Category:    req.Category,
		IsActive:    req.IsActive,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "service_updated", "service", updated.ID, nil)
	httpresp.OK(c, dto.Service(*updated))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
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

	writeAudit(h.audit, c, "service_deleted", "service", id, nil)
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) Toggle(c *gin.Context) {
	s, err := h.repo.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "service_toggled", "service", s.ID, map[string]any{"is_active": s.IsActive})
	httpresp.OK(c, dto.Service(*s))
}
