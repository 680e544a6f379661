package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	"github.com/BruksfildServices01/salon-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-admin/internal/db"
	"github.com/BruksfildServices01/salon-admin/internal/storage"
	ucAppointment "github.com/BruksfildServices01/salon-admin/internal/usecase/appointment"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:      "test",
		StoreDriver: config.DriverMemory,
		Timezone:    "America/Bogota",
		SeedValue:   42,
		SeedOnStart: true,
		AuditBuffer: 10,
	}
}

func fixedClock() time.Time {
	loc, _ := time.LoadLocation("America/Bogota")
	return time.Date(2024, 10, 15, 10, 0, 0, 0, loc)
}

func TestNewMemorySeedsStores(t *testing.T) {
	a, err := New(context.Background(), testConfig(), Options{Clock: fixedClock})
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	clients, err := a.Clients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 20)

	services, err := a.Services.List(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 16)

	aps, err := a.Appointments.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, aps)

	assert.Nil(t, a.Photos)
	assert.NotNil(t, a.Reports)
}

func TestNewWithoutSeed(t *testing.T) {
	cfg := testConfig()
	cfg.SeedOnStart = false

	a, err := New(context.Background(), cfg, Options{
		Clock:   fixedClock,
		Storage: storage.NewMemoryStorage("http://cdn.local"),
	})
	require.NoError(t, err)
	defer a.Close()

	clients, err := a.Clients.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.NotNil(t, a.Photos)
}

func TestNewWithDatabaseAuditsUseCases(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := testConfig()
	cfg.StoreDriver = config.DriverSQLite

	a, err := New(context.Background(), cfg, Options{Clock: fixedClock, DB: db})
	require.NoError(t, err)

	ctx := context.Background()
	services, err := a.Services.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, services)

	ap, err := a.AppointmentUC.Create.Execute(ctx, ucAppointment.CreateAppointmentInput{
		Actor:     "admin",
		ServiceID: services[0].ID,
		Date:      fixedClock(),
		StartTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, services[0].Price, ap.Price)

	// Close flushes the audit queue; read the log through a fresh store
	// before the connection goes away.
	a.Audit.Close()
	logs, total, err := audit.NewGormStore(db).List(ctx, audit.Filter{Action: "appointment_created"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, ap.ID, logs[0].EntityID)

	a.Close()
}
