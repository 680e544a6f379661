package appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/infra/memory"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/query"
)

var (
	bogota, _ = time.LoadLocation("America/Bogota")
	fixedNow  = time.Date(2024, 10, 10, 8, 0, 0, 0, bogota)
	monday    = time.Date(2024, 10, 14, 0, 0, 0, 0, bogota)
)

func clock() time.Time { return fixedNow }

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func ptr[T any](v T) *T { return &v }

type fixture struct {
	repo    *memory.AppointmentRepository
	catalog Catalog
	store   *audit.MemoryStore
	audit   *audit.Dispatcher

	client   *models.Client
	employee *models.Employee
	service  *models.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	clients := memory.NewClientRepository(clock, sequentialIDs("c"))
	employees := memory.NewEmployeeRepository(sequentialIDs("e"))
	services := memory.NewServiceRepository(clock, sequentialIDs("s"))

	c, err := clients.Create(ctx, models.Client{FirstName: "Laura", LastName: "Pérez", IsActive: true})
	require.NoError(t, err)
	e, err := employees.Create(ctx, models.Employee{
		FirstName: "Camila",
		LastName:  "Rojas",
		IsActive:  true,
		Schedule:  employee.DefaultSchedule(),
	})
	require.NoError(t, err)
	s, err := services.Create(ctx, models.Service{Name: "Manicure", Duration: 60, Price: 25000, Category: "Uñas", IsActive: true})
	require.NoError(t, err)

	store := audit.NewMemoryStore()
	return &fixture{
		repo:     memory.NewAppointmentRepository(clock, sequentialIDs("a")),
		catalog:  Catalog{Clients: clients, Employees: employees, Services: services},
		store:    store,
		audit:    audit.NewDispatcher(audit.New(store, nil, clock), 10),
		client:   c,
		employee: e,
		service:  s,
	}
}

func (f *fixture) create(t *testing.T, start string, status domain.Status) *models.Appointment {
	t.Helper()
	uc := NewCreateAppointment(f.repo, f.catalog, nil, bogota)
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:   f.client.ID,
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       monday,
		StartTime:  start,
		Status:     status,
	})
	require.NoError(t, err)
	return ap
}

func TestCreateAppointmentDerivesFromCatalog(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateAppointment(f.repo, f.catalog, f.audit, bogota)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		Actor:      "admin@salon.co",
		ClientID:   f.client.ID,
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       monday.Add(15 * time.Hour),
		StartTime:  "10:30",
		Price:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Laura Pérez", ap.ClientName)
	assert.Equal(t, "Camila Rojas", ap.EmployeeName)
	assert.Equal(t, "Manicure", ap.ServiceName)
	assert.Equal(t, "11:30", ap.EndTime)
	assert.Equal(t, int64(25000), ap.Price)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.True(t, ap.Date.Equal(monday))

	f.audit.Close()
	logs, total, err := f.store.List(context.Background(), audit.Filter{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, "appointment_created", logs[0].Action)
	assert.Equal(t, ap.ID, logs[0].EntityID)
}

func TestCreateAppointmentAcceptsMissingReferences(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateAppointment(f.repo, f.catalog, nil, bogota)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "gone",
		ServiceID: "gone",
		Date:      monday,
		StartTime: "09:00",
		Price:     40000,
	})
	require.NoError(t, err)
	assert.Empty(t, ap.ClientName)
	assert.Equal(t, int64(40000), ap.Price)
	assert.Equal(t, "09:00", ap.EndTime)
}

func TestCreateAppointmentRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateAppointment(f.repo, f.catalog, nil, bogota)

	tests := []struct {
		name string
		in   CreateAppointmentInput
		err  error
	}{
		{"bad status", CreateAppointmentInput{Date: monday, StartTime: "09:00", Status: "done"}, domain.ErrInvalidStatus},
		{"bad time", CreateAppointmentInput{Date: monday, StartTime: "9am"}, domain.ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUpdateAppointmentRederivesOnServiceChange(t *testing.T) {
	f := newFixture(t)
	ap := f.create(t, "10:00", domain.StatusConfirmed)

	longer, err := f.catalog.Services.Create(context.Background(), models.Service{Name: "Keratina", Duration: 150, Price: 180000})
	require.NoError(t, err)

	uc := NewUpdateAppointment(f.repo, f.catalog, nil, bogota)
	updated, err := uc.Execute(context.Background(), "", ap.ID, domain.Patch{ServiceID: &longer.ID})
	require.NoError(t, err)

	assert.Equal(t, "Keratina", updated.ServiceName)
	assert.Equal(t, int64(180000), updated.Price)
	assert.Equal(t, "12:30", updated.EndTime)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestUpdateAppointmentStartTimeKeepsPrice(t *testing.T) {
	f := newFixture(t)
	ap := f.create(t, "10:00", domain.StatusConfirmed)

	uc := NewUpdateAppointment(f.repo, f.catalog, nil, bogota)
	updated, err := uc.Execute(context.Background(), "", ap.ID, domain.Patch{
		StartTime: ptr("14:00"),
		Price:     ptr(int64(20000)),
	})
	require.NoError(t, err)

	assert.Equal(t, "15:00", updated.EndTime)
	assert.Equal(t, int64(20000), updated.Price)
	assert.Equal(t, "Manicure", updated.ServiceName)
}

func TestUpdateAppointmentMissing(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateAppointment(f.repo, f.catalog, nil, bogota)

	_, err := uc.Execute(context.Background(), "", "nope", domain.Patch{Notes: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatusShortcuts(t *testing.T) {
	f := newFixture(t)
	ap := f.create(t, "10:00", domain.StatusPending)

	status := NewUpdateStatus(f.repo, f.audit)

	done, err := NewCompleteAppointment(status).Execute(context.Background(), "admin", ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)

	cancelled, err := NewCancelAppointment(status).Execute(context.Background(), "admin", ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)

	_, err = status.Execute(context.Background(), "admin", ap.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	f.audit.Close()
	logs, _, err := f.store.List(context.Background(), audit.Filter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "appointment_cancelled", logs[0].Action)
	assert.Equal(t, "appointment_completed", logs[1].Action)
}

func TestGetAvailabilitySkipsBlockingAppointments(t *testing.T) {
	f := newFixture(t)
	f.create(t, "10:00", domain.StatusConfirmed)
	f.create(t, "12:00", domain.StatusCancelled)
	f.create(t, "15:30", domain.StatusInProgress)

	uc := NewGetAvailability(f.repo, f.catalog, clock, bogota)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       monday,
	})
	require.NoError(t, err)

	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	assert.Equal(t, []string{"09:00", "11:00", "12:00", "13:00", "14:00", "17:00"}, starts)
}

func TestGetAvailabilityDayOff(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, f.catalog, clock, bogota)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       monday.AddDate(0, 0, -1),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, f.catalog, clock, bogota)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: f.employee.ID,
		ServiceID:  "nope",
		Date:       monday,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListAndUpcoming(t *testing.T) {
	f := newFixture(t)
	late := f.create(t, "16:00", domain.StatusConfirmed)
	early := f.create(t, "09:00", domain.StatusPending)
	f.create(t, "11:00", domain.StatusCompleted)

	list, err := NewListAppointments(f.repo, bogota).Execute(context.Background(), query.AppointmentFilter{
		Status: domain.StatusConfirmed,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, late.ID, list[0].ID)

	next, err := NewUpcoming(f.repo, clock, bogota).Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, early.ID, next[0].ID)
}

func TestListAppointmentsByMonth(t *testing.T) {
	f := newFixture(t)
	f.create(t, "16:00", domain.StatusConfirmed)
	first := f.create(t, "09:00", domain.StatusPending)

	uc := NewListAppointmentsByMonth(f.repo, bogota)

	aps, err := uc.Execute(context.Background(), 2024, 10, f.employee.ID)
	require.NoError(t, err)
	require.Len(t, aps, 2)
	assert.Equal(t, first.ID, aps[0].ID)

	aps, err = uc.Execute(context.Background(), 2024, 11, "")
	require.NoError(t, err)
	assert.Empty(t, aps)

	_, err = uc.Execute(context.Background(), 2024, 13, "")
	assert.Error(t, err)
}
