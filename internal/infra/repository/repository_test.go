package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-admin/internal/db"
	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/domain/client"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

var fixedNow = time.Date(2024, 10, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func ptr[T any](v T) *T { return &v }

func TestClientGormLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewClientGormRepository(setupTestDB(t), fixedClock, sequentialIDs())

	a, err := repo.Create(ctx, models.Client{
		FirstName:   "Laura",
		LastName:    "Pérez",
		IsActive:    true,
		TotalVisits: 5,
		Preferences: &models.ClientPreferences{Allergies: []string{"Látex"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", a.ID)
	assert.Zero(t, a.TotalVisits)

	b, err := repo.Create(ctx, models.Client{FirstName: "Carolina", IsActive: false})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)
	require.NotNil(t, all[0].Preferences)
	assert.Equal(t, []string{"Látex"}, all[0].Preferences.Allergies)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Laura", active[0].FirstName)

	toggled, err := repo.ToggleActive(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	updated, err := repo.Update(ctx, a.ID, client.Patch{Phone: ptr("3109998877")})
	require.NoError(t, err)
	assert.Equal(t, "3109998877", updated.Phone)
	assert.Equal(t, "Laura", updated.FirstName)

	removed, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, client.ErrNotFound)

	_, err = repo.ToggleActive(ctx, "missing")
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestAppointmentGormStatusAndImport(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentGormRepository(setupTestDB(t), fixedClock, sequentialIDs())

	require.NoError(t, repo.Import(ctx, models.Appointment{
		ID:        "seeded",
		ClientID:  "1",
		Status:    "completed",
		StartTime: "09:00",
		EndTime:   "09:30",
		Price:     25000,
		CreatedAt: fixedNow.AddDate(0, 0, -3),
	}))

	ap, err := repo.Create(ctx, models.Appointment{ClientID: "2", StartTime: "10:00", EndTime: "10:45"})
	require.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)

	got, err := repo.UpdateStatus(ctx, ap.ID, appointment.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	require.NotNil(t, got.UpdatedAt)

	_, err = repo.UpdateStatus(ctx, ap.ID, appointment.Status("nope"))
	assert.ErrorIs(t, err, appointment.ErrInvalidStatus)

	_, err = repo.Update(ctx, "missing", appointment.Patch{Notes: ptr("x")})
	assert.ErrorIs(t, err, appointment.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "seeded", all[0].ID)
	assert.Equal(t, int64(25000), all[0].Price)
	assert.Equal(t, "confirmed", all[1].Status)
}

func TestEmployeeGormSchedule(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeGormRepository(setupTestDB(t), sequentialIDs())

	e, err := repo.Create(ctx, models.Employee{
		FirstName:   "María",
		LastName:    "González",
		Specialties: []string{"1", "2"},
		Schedule:    employee.DefaultSchedule(),
		IsActive:    true,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got.Specialties)
	assert.True(t, got.Schedule["monday"].IsWorking)
	assert.False(t, got.Schedule["sunday"].IsWorking)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrNotFound)
}

func TestServiceGormToggleStampsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceGormRepository(setupTestDB(t), fixedClock, sequentialIDs())

	s, err := repo.Create(ctx, models.Service{Name: "Manicure", Duration: 45, Price: 35000, Category: "Uñas", IsActive: true})
	require.NoError(t, err)
	require.NotNil(t, s.CreatedAt)

	toggled, err := repo.ToggleActive(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
	require.NotNil(t, toggled.UpdatedAt)

	_, err = repo.Update(ctx, "missing", service.Patch{Name: ptr("x")})
	assert.ErrorIs(t, err, service.ErrNotFound)
}
