package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type ServiceGormRepository struct {
	db    *gorm.DB
	now   timezone.Clock
	newID idgen.Func
}

func NewServiceGormRepository(db *gorm.DB, now timezone.Clock, newID idgen.Func) *ServiceGormRepository {
	return &ServiceGormRepository{db: db, now: now, newID: newID}
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]models.Service, error) {
	var ss []models.Service
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&ss).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return ss, nil
}

func (r *ServiceGormRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return &s, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, s models.Service) (*models.Service, error) {
	now := r.now()
	created, updated := now, now
	s.ID = r.newID()
	s.CreatedAt = &created
	s.UpdatedAt = &updated

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.Service{})
		if err != nil {
			return err
		}
		s.Seq = seq
		return tx.Create(&s).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, id string, p domain.Patch) (*models.Service, error) {
	return r.mutate(ctx, id, func(s *models.Service) {
		p.Apply(s, r.now())
	})
}

func (r *ServiceGormRepository) ToggleActive(ctx context.Context, id string) (*models.Service, error) {
	return r.mutate(ctx, id, func(s *models.Service) {
		now := r.now()
		s.IsActive = !s.IsActive
		s.UpdatedAt = &now
	})
}

func (r *ServiceGormRepository) mutate(ctx context.Context, id string, fn func(*models.Service)) (*models.Service, error) {
	var s models.Service
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&s).Error; err != nil {
			return notFound(err, domain.ErrNotFound)
		}
		fn(&s)
		return tx.Save(&s).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return false, fmt.Errorf("delete service: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ServiceGormRepository) Import(ctx context.Context, ss ...models.Service) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range ss {
			if s.Seq == 0 {
				seq, err := nextSeq(tx, &models.Service{})
				if err != nil {
					return err
				}
				s.Seq = seq
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&s).Error; err != nil {
				return fmt.Errorf("import service %s: %w", s.ID, err)
			}
		}
		return nil
	})
}

var _ domain.Repository = (*ServiceGormRepository)(nil)
