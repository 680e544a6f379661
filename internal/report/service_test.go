package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-admin/internal/infra/memory"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

func newTestService(t *testing.T, now time.Time) (*Service, *memory.AppointmentRepository, *memory.ClientRepository) {
	clock := func() time.Time { return now }
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}

	aps := memory.NewAppointmentRepository(clock, ids)
	cs := memory.NewClientRepository(clock, ids)
	es := memory.NewEmployeeRepository(ids)
	ss := memory.NewServiceRepository(clock, ids)

	return NewService(aps, cs, es, ss, clock, bogota), aps, cs
}

func TestServiceDashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 10, 15, 14, 0, 0, 0, bogota)
	svc, aps, cs := newTestService(t, now)

	require.NoError(t, aps.Import(ctx,
		models.Appointment{ID: "1", Date: day(2024, 10, 15), StartTime: "09:00", Status: "completed", Price: 25000, ServiceName: "Corte"},
		models.Appointment{ID: "2", Date: day(2024, 10, 15), StartTime: "15:00", Status: "confirmed", Price: 35000, ServiceName: "Manicure"},
		models.Appointment{ID: "3", Date: day(2024, 10, 2), Status: "completed", Price: 80000, ServiceName: "Tinte"},
		models.Appointment{ID: "4", Date: day(2024, 9, 30), Status: "completed", Price: 99000, ServiceName: "Tinte"},
		models.Appointment{ID: "5", Date: day(2024, 10, 18), StartTime: "10:00", Status: "pending", ServiceName: "Corte"},
	))
	require.NoError(t, cs.Import(ctx,
		models.Client{ID: "c1", IsActive: true, RegisteredAt: day(2024, 1, 1)},
		models.Client{ID: "c2", IsActive: false, RegisteredAt: day(2024, 10, 1)},
	))

	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, DashboardStats{
		TodayAppointments:   2,
		TodayRevenue:        25000,
		MonthRevenue:        105000,
		ActiveClients:       1,
		PendingAppointments: 2,
		CompletedToday:      1,
	}, d.Stats)

	require.Len(t, d.Revenue, 7)
	assert.Equal(t, int64(25000), d.Revenue[6].Amount)
	assert.InDelta(t, 100.0, d.RevenueGrowth, 0.001)

	require.Len(t, d.Upcoming, 2)
	assert.Equal(t, "2", d.Upcoming[0].ID)
	assert.Equal(t, "5", d.Upcoming[1].ID)

	require.Len(t, d.RecentClients, 2)
	assert.Equal(t, "c2", d.RecentClients[0].ID)

	require.NotEmpty(t, d.TopServices)
	assert.Equal(t, "Tinte", d.TopServices[0].Name)
}

func TestServiceReadsFreshSnapshots(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 10, 15, 14, 0, 0, 0, bogota)
	svc, aps, _ := newTestService(t, now)

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Zero(t, totals.Completed)

	require.NoError(t, aps.Import(ctx, models.Appointment{ID: "1", Status: "completed", Price: 1000}))

	totals, err = svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Completed)

	full, err := svc.Full(ctx)
	require.NoError(t, err)
	assert.Len(t, full.MonthlyRevenue, 6)
	assert.Len(t, full.Status, 1)
}
