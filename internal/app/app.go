// Package app builds the object graph behind the API: stores, seed data,
// use cases, reports, audit trail and photo storage.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	"github.com/BruksfildServices01/salon-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-admin/internal/db"
	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/domain/client"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/salon-admin/internal/infra/repository"
	"github.com/BruksfildServices01/salon-admin/internal/report"
	"github.com/BruksfildServices01/salon-admin/internal/seed"
	"github.com/BruksfildServices01/salon-admin/internal/storage"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-admin/internal/usecase/appointment"
)

// Options override the defaults taken from the configuration. Zero values
// mean "use the default".
type Options struct {
	Clock   timezone.Clock
	NewID   idgen.Func
	DB      *gorm.DB
	Storage storage.Storage
}

type AppointmentUseCases struct {
	Create       *ucAppointment.CreateAppointment
	Update       *ucAppointment.UpdateAppointment
	UpdateStatus *ucAppointment.UpdateStatus
	Cancel       *ucAppointment.CancelAppointment
	Complete     *ucAppointment.CompleteAppointment
	List         *ucAppointment.ListAppointments
	ListByMonth  *ucAppointment.ListAppointmentsByMonth
	Upcoming     *ucAppointment.Upcoming
	Availability *ucAppointment.GetAvailability
}

type App struct {
	Config *config.Config
	Loc    *time.Location
	Now    timezone.Clock
	NewID  idgen.Func

	Appointments appointment.Repository
	Clients      client.Repository
	Employees    employee.Repository
	Services     service.Repository

	AppointmentUC AppointmentUseCases
	Reports       *report.Service

	AuditStore audit.Store
	Audit      *audit.Dispatcher

	// Photos is nil when no storage is configured.
	Photos *storage.PhotoService

	db    *gorm.DB
	redis *redis.Client
}

func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	a := &App{
		Config: cfg,
		Loc:    timezone.Location(cfg.Timezone),
		Now:    opts.Clock,
		NewID:  opts.NewID,
	}
	if a.Now == nil {
		a.Now = timezone.SystemClock(cfg.Timezone)
	}
	if a.NewID == nil {
		a.NewID = idgen.New
	}

	if err := a.openStores(cfg, opts.DB); err != nil {
		return nil, err
	}

	if err := a.openAudit(cfg); err != nil {
		a.Close()
		return nil, err
	}

	if err := a.openPhotos(cfg, opts.Storage); err != nil {
		a.Close()
		return nil, err
	}

	a.wire()

	if cfg.SeedOnStart {
		data := seed.Generate(cfg.SeedValue, a.Now(), a.Loc)
		if err := seed.Load(ctx, a.seedTargets(), data); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

// --------------------------------------------------
// Stores
// --------------------------------------------------

func (a *App) openStores(cfg *config.Config, db *gorm.DB) error {
	if cfg.StoreDriver == config.DriverMemory && db == nil {
		a.Appointments = memory.NewAppointmentRepository(a.Now, a.NewID)
		a.Clients = memory.NewClientRepository(a.Now, a.NewID)
		a.Employees = memory.NewEmployeeRepository(a.NewID)
		a.Services = memory.NewServiceRepository(a.Now, a.NewID)
		a.AuditStore = audit.NewMemoryStore()
		log.Printf("using in-memory stores")
		return nil
	}

	if db == nil {
		var err error
		if db, err = dbpkg.NewDB(cfg); err != nil {
			return err
		}
	}
	a.db = db

	a.Appointments = infraRepo.NewAppointmentGormRepository(db, a.Now, a.NewID)
	a.Clients = infraRepo.NewClientGormRepository(db, a.Now, a.NewID)
	a.Employees = infraRepo.NewEmployeeGormRepository(db, a.NewID)
	a.Services = infraRepo.NewServiceGormRepository(db, a.Now, a.NewID)
	a.AuditStore = audit.NewGormStore(db)
	return nil
}

func (a *App) seedTargets() seed.Targets {
	return seed.Targets{
		Appointments: a.Appointments,
		Clients:      a.Clients,
		Employees:    a.Employees,
		Services:     a.Services,
	}
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (a *App) openAudit(cfg *config.Config) error {
	var publisher audit.Publisher
	if cfg.EventsEnabled() {
		rc, err := audit.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		a.redis = rc
		publisher = audit.NewRedisPublisher(rc, cfg.RedisChannel)
		log.Printf("publishing audit events on %s", cfg.RedisChannel)
	}

	a.Audit = audit.NewDispatcher(audit.New(a.AuditStore, publisher, a.Now), cfg.AuditBuffer)
	return nil
}

// --------------------------------------------------
// Photos
// --------------------------------------------------

func (a *App) openPhotos(cfg *config.Config, store storage.Storage) error {
	if store == nil && cfg.PhotosEnabled() {
		s3, err := storage.NewS3Storage(storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			return fmt.Errorf("photo storage: %w", err)
		}
		store = s3
	}
	if store != nil {
		a.Photos = storage.NewPhotoService(store, a.NewID)
	}
	return nil
}

// --------------------------------------------------
// Use cases
// --------------------------------------------------

func (a *App) wire() {
	catalog := ucAppointment.Catalog{
		Clients:   a.Clients,
		Employees: a.Employees,
		Services:  a.Services,
	}

	status := ucAppointment.NewUpdateStatus(a.Appointments, a.Audit)

	a.AppointmentUC = AppointmentUseCases{
		Create:       ucAppointment.NewCreateAppointment(a.Appointments, catalog, a.Audit, a.Loc),
		Update:       ucAppointment.NewUpdateAppointment(a.Appointments, catalog, a.Audit, a.Loc),
		UpdateStatus: status,
		Cancel:       ucAppointment.NewCancelAppointment(status),
		Complete:     ucAppointment.NewCompleteAppointment(status),
		List:         ucAppointment.NewListAppointments(a.Appointments, a.Loc),
		ListByMonth:  ucAppointment.NewListAppointmentsByMonth(a.Appointments, a.Loc),
		Upcoming:     ucAppointment.NewUpcoming(a.Appointments, a.Now, a.Loc),
		Availability: ucAppointment.NewGetAvailability(a.Appointments, catalog, a.Now, a.Loc),
	}

	a.Reports = report.NewService(a.Appointments, a.Clients, a.Employees, a.Services, a.Now, a.Loc)
}

// Close flushes pending audit entries and releases connections.
func (a *App) Close() {
	if a.Audit != nil {
		a.Audit.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Println("redis close:", err)
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
