package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

var bogota, _ = time.LoadLocation("America/Bogota")

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, bogota)
}

func TestDailyRevenueExcludesCancelled(t *testing.T) {
	d := day(2024, 10, 15)
	aps := []models.Appointment{
		{Date: d, Status: "completed", Price: 25000},
		{Date: d, Status: "completed", Price: 80000},
		{Date: d, Status: "completed", Price: 0},
		{Date: d, Status: "cancelled", Price: 999999},
	}

	got := DailyRevenue(aps, []time.Time{d}, bogota)
	require.Len(t, got, 1)
	assert.Equal(t, int64(105000), got[0].Amount)
	assert.Equal(t, "15 oct", got[0].Label)
}

func TestDailyRevenueZeroFillsOldestFirst(t *testing.T) {
	now := time.Date(2024, 10, 15, 18, 0, 0, 0, bogota)
	aps := []models.Appointment{
		{Date: day(2024, 10, 13), Status: "completed", Price: 40000},
	}

	got := DailyRevenue(aps, LastDays(now, 3, bogota), bogota)
	require.Len(t, got, 3)
	assert.Equal(t, day(2024, 10, 13), got[0].Date)
	assert.Equal(t, int64(40000), got[0].Amount)
	assert.Zero(t, got[1].Amount)
	assert.Equal(t, day(2024, 10, 15), got[2].Date)
}

func TestRevenueGrowth(t *testing.T) {
	tests := []struct {
		name string
		in   []DayRevenue
		want float64
	}{
		{"from zero", []DayRevenue{{Amount: 0}, {Amount: 50000}}, 100},
		{"zero to zero", []DayRevenue{{Amount: 0}, {Amount: 0}}, 0},
		{"doubled", []DayRevenue{{Amount: 10}, {Amount: 20}}, 100},
		{"halved", []DayRevenue{{Amount: 20}, {Amount: 10}}, -50},
		{"single bucket", []DayRevenue{{Amount: 20}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RevenueGrowth(tt.in), 0.0001)
		})
	}
}

func TestMonthlyRevenue(t *testing.T) {
	now := time.Date(2024, 10, 15, 12, 0, 0, 0, bogota)
	aps := []models.Appointment{
		{Date: day(2024, 10, 1), Status: "completed", Price: 30000},
		{Date: day(2024, 10, 2), Status: "completed", Price: 20000},
		{Date: day(2024, 8, 31), Status: "completed", Price: 10000},
		{Date: day(2024, 9, 10), Status: "no_show", Price: 70000},
		{Date: day(2024, 3, 10), Status: "completed", Price: 70000},
	}

	got := MonthlyRevenue(aps, now, 3, bogota)
	require.Len(t, got, 3)
	assert.Equal(t, "ago 2024", got[0].Label)
	assert.Equal(t, int64(10000), got[0].Revenue)
	assert.Equal(t, 1, got[0].Appointments)
	assert.Zero(t, got[1].Revenue)
	assert.Equal(t, int64(50000), got[2].Revenue)
	assert.Equal(t, 2, got[2].Appointments)
}

func TestTopServices(t *testing.T) {
	aps := []models.Appointment{
		{ServiceName: "Manicure", Status: "completed", Price: 35000},
		{ServiceName: "Corte", Status: "completed", Price: 25000},
		{ServiceName: "Corte", Status: "completed", Price: 25000},
		{ServiceName: "Pedicure", Status: "completed", Price: 40000},
		{ServiceName: "Tinte", Status: "cancelled", Price: 80000},
	}

	got := TopServices(aps, 2)
	require.Len(t, got, 2)
	assert.Equal(t, TopService{Name: "Corte", Count: 2, Revenue: 50000}, got[0])
	assert.Equal(t, "Manicure", got[1].Name)

	assert.Len(t, TopServices(aps, 0), 3)
	assert.Empty(t, TopServices(nil, 5))
}

func TestTopServicesSingle(t *testing.T) {
	aps := []models.Appointment{
		{ID: "A", ServiceID: "svc1", ServiceName: "svc1", Status: "completed"},
		{ID: "B", ServiceID: "svc1", ServiceName: "svc1", Status: "completed"},
		{ID: "C", ServiceID: "svc2", ServiceName: "svc2", Status: "completed"},
	}

	got := TopServices(aps, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "svc1", got[0].Name)
	assert.Equal(t, 2, got[0].Count)
}

func TestEmployeePerformance(t *testing.T) {
	es := []models.Employee{
		{ID: "e1", FirstName: "María", LastName: "González"},
		{ID: "e2", FirstName: "Ana", LastName: "Martínez"},
		{ID: "e3", FirstName: "Sin", LastName: "Citas"},
	}
	aps := []models.Appointment{
		{EmployeeID: "e1", Status: "completed", Price: 25000},
		{EmployeeID: "e1", Status: "cancelled", Price: 25000},
		{EmployeeID: "e2", Status: "completed", Price: 90000},
	}

	got := EmployeePerformance(es, aps)
	require.Len(t, got, 3)
	assert.Equal(t, "e2", got[0].ID)
	assert.InDelta(t, 100.0, got[0].CompletionRate, 0.001)
	assert.Equal(t, "María González", got[1].Name)
	assert.Equal(t, 2, got[1].Total)
	assert.InDelta(t, 50.0, got[1].CompletionRate, 0.001)
	assert.Zero(t, got[2].CompletionRate)
}

func TestServiceReports(t *testing.T) {
	ss := []models.Service{{ID: "1", Name: "Corte"}, {ID: "2", Name: "Tinte"}}
	aps := []models.Appointment{
		{ServiceID: "1", Status: "completed", Price: 20000},
		{ServiceID: "1", Status: "completed", Price: 30000},
		{ServiceID: "2", Status: "pending", Price: 80000},
	}

	got := ServiceReports(ss, aps)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.InDelta(t, 25000.0, got[0].AveragePrice, 0.001)
	assert.Zero(t, got[1].AveragePrice)
}

func TestClientSummary(t *testing.T) {
	now := time.Date(2024, 10, 15, 12, 0, 0, 0, bogota)
	cs := make([]models.Client, 0, 12)
	for i := 0; i < 12; i++ {
		cs = append(cs, models.Client{
			ID:           string(rune('a' + i)),
			IsActive:     i%2 == 0,
			TotalSpent:   int64(i * 1000),
			RegisteredAt: day(2024, 9, 1),
		})
	}
	cs[3].RegisteredAt = day(2024, 10, 1)
	cs[4].RegisteredAt = time.Date(2024, 9, 30, 23, 59, 0, 0, bogota)

	r := ClientSummary(cs, now, bogota)
	assert.Equal(t, 12, r.Total)
	assert.Equal(t, 6, r.Active)
	assert.Equal(t, 1, r.NewThisMonth)
	require.Len(t, r.TopClients, 10)
	assert.Equal(t, "l", r.TopClients[0].ID)
	assert.Equal(t, "a", cs[0].ID)
}

func TestRevenueByCategory(t *testing.T) {
	ss := []models.Service{
		{ID: "1", Category: "Cabello"},
		{ID: "2", Category: "Uñas"},
	}
	aps := []models.Appointment{
		{ServiceID: "2", Status: "completed", Price: 25000},
		{ServiceID: "1", Status: "completed", Price: 75000},
		{ServiceID: "deleted", Status: "completed", Price: 50000},
	}

	got := RevenueByCategory(ss, aps)
	require.Len(t, got, 2)
	assert.Equal(t, "Cabello", got[0].Category)
	assert.InDelta(t, 75.0, got[0].Percentage, 0.001)
	assert.InDelta(t, 25.0, got[1].Percentage, 0.001)

	assert.Empty(t, RevenueByCategory(ss, nil))
}

func TestRevenueByCategoryZeroTotal(t *testing.T) {
	ss := []models.Service{
		{ID: "1", Category: "Cabello"},
		{ID: "2", Category: "Uñas"},
	}
	aps := []models.Appointment{
		{ServiceID: "1", Status: "completed", Price: 0},
		{ServiceID: "2", Status: "completed", Price: 0},
	}

	got := RevenueByCategory(ss, aps)
	require.Len(t, got, 2)
	for _, row := range got {
		assert.Zero(t, row.Revenue)
		assert.False(t, math.IsNaN(row.Percentage))
		assert.Equal(t, 0.0, row.Percentage)
	}
}

func TestStatusDistribution(t *testing.T) {
	aps := []models.Appointment{
		{Status: "completed"},
		{Status: "pending"},
		{Status: "completed"},
		{Status: "cancelled"},
	}

	got := StatusDistribution(aps)
	require.Len(t, got, 3)
	assert.Equal(t, appointment.StatusPending, got[0].Status)
	assert.Equal(t, appointment.StatusCompleted, got[1].Status)
	assert.Equal(t, 2, got[1].Count)
	assert.InDelta(t, 50.0, got[1].Percentage, 0.001)
	assert.Equal(t, "Completada", got[1].Info.Label)
	assert.Equal(t, appointment.StatusCancelled, got[2].Status)

	assert.Empty(t, StatusDistribution(nil))
}

func TestStatusDistributionUnknownStatus(t *testing.T) {
	aps := []models.Appointment{
		{Status: "completed"},
		{Status: "archived"},
	}

	got := StatusDistribution(aps)
	require.Len(t, got, 1)
	assert.Equal(t, appointment.StatusCompleted, got[0].Status)
	assert.Equal(t, 1, got[0].Count)
	assert.InDelta(t, 50.0, got[0].Percentage, 0.001)
}

func TestNonPositiveBucketCounts(t *testing.T) {
	now := time.Date(2024, 10, 15, 18, 0, 0, 0, bogota)
	aps := []models.Appointment{{Date: day(2024, 10, 15), Status: "completed", Price: 1000}}

	for _, n := range []int{0, -1, -12} {
		assert.NotPanics(t, func() {
			assert.Empty(t, LastDays(now, n, bogota))
			assert.Empty(t, MonthlyRevenue(aps, now, n, bogota))
			assert.Empty(t, DailyRevenue(aps, LastDays(now, n, bogota), bogota))
		})
	}
}

func TestComputeTotals(t *testing.T) {
	assert.Equal(t, Totals{}, ComputeTotals(nil))

	got := ComputeTotals([]models.Appointment{
		{Status: "completed", Price: 30000},
		{Status: "completed", Price: 20000},
		{Status: "cancelled", Price: 10000},
	})
	assert.Equal(t, int64(50000), got.Revenue)
	assert.Equal(t, 2, got.Completed)
	assert.InDelta(t, 25000.0, got.AverageTicket, 0.001)
}
