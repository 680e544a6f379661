package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type AppointmentGormRepository struct {
	db    *gorm.DB
	now   timezone.Clock
	newID idgen.Func
}

func NewAppointmentGormRepository(db *gorm.DB, now timezone.Clock, newID idgen.Func) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, now: now, newID: newID}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentGormRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&aps).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return &ap, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, ap models.Appointment) (*models.Appointment, error) {
	ap.ID = r.newID()
	ap.CreatedAt = r.now()
	ap.UpdatedAt = nil
	if ap.Status == "" {
		ap.Status = string(domain.InitialStatus())
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.Appointment{})
		if err != nil {
			return err
		}
		ap.Seq = seq
		return tx.Create(&ap).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(ctx context.Context, id string, p domain.Patch) (*models.Appointment, error) {
	return r.mutate(ctx, id, func(ap *models.Appointment) error {
		p.Apply(ap, r.now())
		return nil
	})
}

func (r *AppointmentGormRepository) UpdateStatus(ctx context.Context, id string, s domain.Status) (*models.Appointment, error) {
	return r.mutate(ctx, id, func(ap *models.Appointment) error {
		return domain.SetStatus(ap, s, r.now())
	})
}

func (r *AppointmentGormRepository) mutate(
	ctx context.Context,
	id string,
	fn func(*models.Appointment) error,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&ap).Error; err != nil {
			return notFound(err, domain.ErrNotFound)
		}
		if err := fn(&ap); err != nil {
			return err
		}
		return tx.Save(&ap).Error
	})
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return false, fmt.Errorf("delete appointment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) Import(ctx context.Context, aps ...models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ap := range aps {
			if ap.Seq == 0 {
				seq, err := nextSeq(tx, &models.Appointment{})
				if err != nil {
					return err
				}
				ap.Seq = seq
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&ap).Error; err != nil {
				return fmt.Errorf("import appointment %s: %w", ap.ID, err)
			}
		}
		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
