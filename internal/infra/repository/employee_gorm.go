package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type EmployeeGormRepository struct {
	db    *gorm.DB
	newID idgen.Func
}

func NewEmployeeGormRepository(db *gorm.DB, newID idgen.Func) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db, newID: newID}
}

func (r *EmployeeGormRepository) List(ctx context.Context) ([]models.Employee, error) {
	var es []models.Employee
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&es).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return es, nil
}

func (r *EmployeeGormRepository) ListActive(ctx context.Context) ([]models.Employee, error) {
	var es []models.Employee
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("seq ASC").
		Find(&es).Error; err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	return es, nil
}

func (r *EmployeeGormRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var e models.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return &e, nil
}

func (r *EmployeeGormRepository) Create(ctx context.Context, e models.Employee) (*models.Employee, error) {
	e.ID = r.newID()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.Employee{})
		if err != nil {
			return err
		}
		e.Seq = seq
		return tx.Create(&e).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeGormRepository) Update(ctx context.Context, id string, p domain.Patch) (*models.Employee, error) {
	return r.mutate(ctx, id, p.Apply)
}

func (r *EmployeeGormRepository) ToggleActive(ctx context.Context, id string) (*models.Employee, error) {
	return r.mutate(ctx, id, func(e *models.Employee) {
		e.IsActive = !e.IsActive
	})
}

func (r *EmployeeGormRepository) mutate(ctx context.Context, id string, fn func(*models.Employee)) (*models.Employee, error) {
	var e models.Employee
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&e).Error; err != nil {
			return notFound(err, domain.ErrNotFound)
		}
		fn(&e)
		return tx.Save(&e).Error
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Employee{})
	if res.Error != nil {
		return false, fmt.Errorf("delete employee: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *EmployeeGormRepository) Import(ctx context.Context, es ...models.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range es {
			if e.Seq == 0 {
				seq, err := nextSeq(tx, &models.Employee{})
				if err != nil {
					return err
				}
				e.Seq = seq
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&e).Error; err != nil {
				return fmt.Errorf("import employee %s: %w", e.ID, err)
			}
		}
		return nil
	})
}

var _ domain.Repository = (*EmployeeGormRepository)(nil)
