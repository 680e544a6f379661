package service

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("service_not_found")

type Patch struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *int64
	Category    *string
	IsActive    *bool
}

// Apply merges p onto s and stamps UpdatedAt.
func (p Patch) Apply(s *models.Service, now time.Time) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	s.UpdatedAt = &now
}

var categories = []models.ServiceCategory{
	{ID: "1", Name: "Cabello", Icon: "content_cut"},
	{ID: "2", Name: "Uñas", Icon: "brush"},
	{ID: "3", Name: "Facial", Icon: "face"},
	{ID: "4", Name: "Maquillaje", Icon: "palette"},
	{ID: "5", Name: "Masajes", Icon: "spa"},
	{ID: "6", Name: "Todos", Icon: "apps"},
}

// Categories returns a copy of the fixed category list.
func Categories() []models.ServiceCategory {
	out := make([]models.ServiceCategory, len(categories))
	copy(out, categories)
	return out
}

// CategoryIcon returns the icon of a category name, "spa" when unknown.
func CategoryIcon(name string) string {
	for _, c := range categories {
		if c.Name == name {
			return c.Icon
		}
	}
	return "spa"
}

type Repository interface {
	List(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)

	// Create assigns ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, s models.Service) (*models.Service, error)
	Update(ctx context.Context, id string, p Patch) (*models.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
	ToggleActive(ctx context.Context, id string) (*models.Service, error)

	Import(ctx context.Context, ss ...models.Service) error
}
