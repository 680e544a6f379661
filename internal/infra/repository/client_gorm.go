package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/client"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type ClientGormRepository struct {
	db    *gorm.DB
	now   timezone.Clock
	newID idgen.Func
}

func NewClientGormRepository(db *gorm.DB, now timezone.Clock, newID idgen.Func) *ClientGormRepository {
	return &ClientGormRepository{db: db, now: now, newID: newID}
}

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	var cs []models.Client
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&cs).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return cs, nil
}

func (r *ClientGormRepository) ListActive(ctx context.Context) ([]models.Client, error) {
	var cs []models.Client
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("seq ASC").
		Find(&cs).Error; err != nil {
		return nil, fmt.Errorf("list active clients: %w", err)
	}
	return cs, nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return &c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c models.Client) (*models.Client, error) {
	domain.PrepareNew(&c, r.newID(), r.now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.Client{})
		if err != nil {
			return err
		}
		c.Seq = seq
		return tx.Create(&c).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &c, nil
}

func (r *ClientGormRepository) Update(ctx context.Context, id string, p domain.Patch) (*models.Client, error) {
	return r.mutate(ctx, id, p.Apply)
}

func (r *ClientGormRepository) ToggleActive(ctx context.Context, id string) (*models.Client, error) {
	return r.mutate(ctx, id, func(c *models.Client) {
		c.IsActive = !c.IsActive
	})
}

func (r *ClientGormRepository) mutate(ctx context.Context, id string, fn func(*models.Client)) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&c).Error; err != nil {
			return notFound(err, domain.ErrNotFound)
		}
		fn(&c)
		return tx.Save(&c).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Client{})
	if res.Error != nil {
		return false, fmt.Errorf("delete client: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ClientGormRepository) Import(ctx context.Context, cs ...models.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range cs {
			if c.Seq == 0 {
				seq, err := nextSeq(tx, &models.Client{})
				if err != nil {
					return err
				}
				c.Seq = seq
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&c).Error; err != nil {
				return fmt.Errorf("import client %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

var _ domain.Repository = (*ClientGormRepository)(nil)
