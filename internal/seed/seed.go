// Package seed fills the stores with a fixed catalog and a reproducible
// appointment history.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/domain/client"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type Data struct {
	Clients      []models.Client
	Employees    []models.Employee
	Services     []models.Service
	Appointments []models.Appointment
}

func Generate(seed int64, now time.Time, loc *time.Location) Data {
	return Data{
		Clients:      Clients(loc),
		Employees:    Employees(loc),
		Services:     Services(),
		Appointments: Appointments(seed, now, loc),
	}
}

type Targets struct {
	Appointments appointment.Repository
	Clients      client.Repository
	Employees    employee.Repository
	Services     service.Repository
}

// Load imports d into the stores. Stores that already hold clients are left
// alone so a persistent database is only seeded once.
func Load(ctx context.Context, t Targets, d Data) error {
	existing, err := t.Clients.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("seed skipped: %d clients already stored", len(existing))
		return nil
	}

	if err := t.Clients.Import(ctx, d.Clients...); err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}
	if err := t.Employees.Import(ctx, d.Employees...); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	if err := t.Services.Import(ctx, d.Services...); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if err := t.Appointments.Import(ctx, d.Appointments...); err != nil {
		return fmt.Errorf("seed appointments: %w", err)
	}

	log.Printf(
		"seeded %d clients, %d employees, %d services, %d appointments",
		len(d.Clients), len(d.Employees), len(d.Services), len(d.Appointments),
	)
	return nil
}
