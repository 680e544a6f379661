package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

var bogota = mustLoad("America/Bogota")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, bogota)
}

func ids(aps []models.Appointment) []string {
	out := make([]string, 0, len(aps))
	for _, ap := range aps {
		out = append(out, ap.ID)
	}
	return out
}

func TestAppointmentsOnDay(t *testing.T) {
	aps := []models.Appointment{
		{ID: "late", Date: time.Date(2024, 10, 15, 23, 59, 0, 0, bogota)},
		{ID: "midnight", Date: time.Date(2024, 10, 15, 0, 0, 0, 0, bogota)},
		{ID: "next", Date: time.Date(2024, 10, 16, 0, 0, 0, 0, bogota)},
	}

	assert.Equal(t, []string{"late", "midnight"}, ids(AppointmentsOnDay(aps, day(2024, 10, 15), bogota)))
	assert.Equal(t, []string{"next"}, ids(AppointmentsOnDay(aps, day(2024, 10, 16), bogota)))
}

func TestAppointmentsOnDayUsesSalonLocation(t *testing.T) {
	// 03:00 UTC on the 16th is still the 15th in Bogotá.
	ap := models.Appointment{ID: "a", Date: time.Date(2024, 10, 16, 3, 0, 0, 0, time.UTC)}

	got := AppointmentsOnDay([]models.Appointment{ap}, day(2024, 10, 15), bogota)
	assert.Len(t, got, 1)
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, 10, 15, 15, 0, 0, 0, bogota)
	aps := []models.Appointment{
		{ID: "past", Date: day(2024, 10, 14), Status: "pending"},
		{ID: "tomorrow-late", Date: day(2024, 10, 16), StartTime: "16:00", Status: "confirmed"},
		{ID: "today-done", Date: day(2024, 10, 15), StartTime: "09:00", Status: "completed"},
		{ID: "today", Date: day(2024, 10, 15), StartTime: "10:00", Status: "pending"},
		{ID: "tomorrow-early", Date: day(2024, 10, 16), StartTime: "09:30", Status: "pending"},
		{ID: "cancelled", Date: day(2024, 10, 17), Status: "cancelled"},
	}

	got := Upcoming(aps, now, bogota)
	assert.Equal(t, []string{"today", "tomorrow-early", "tomorrow-late"}, ids(got))
	assert.Equal(t, "past", aps[0].ID)
}

func TestFilterAppointments(t *testing.T) {
	aps := []models.Appointment{
		{ID: "1", Date: day(2024, 10, 14), StartTime: "10:00", Status: "completed", ClientID: "c1", ClientName: "Laura Pérez", ServiceName: "Manicure"},
		{ID: "2", Date: day(2024, 10, 15), StartTime: "11:00", Status: "pending", ClientID: "c2", ClientName: "Carolina Vargas", EmployeeID: "e1"},
		{ID: "3", Date: day(2024, 10, 15), StartTime: "09:00", Status: "completed", ClientID: "c1", EmployeeID: "e1", EmployeeName: "María González"},
	}

	d := day(2024, 10, 15)
	tests := []struct {
		name string
		f    AppointmentFilter
		want []string
	}{
		{"no filter orders newest day first", AppointmentFilter{}, []string{"3", "2", "1"}},
		{"status", AppointmentFilter{Status: appointment.StatusCompleted}, []string{"3", "1"}},
		{"client", AppointmentFilter{ClientID: "c1"}, []string{"3", "1"}},
		{"employee and day", AppointmentFilter{EmployeeID: "e1", Day: &d}, []string{"3", "2"}},
		{"search service", AppointmentFilter{Search: "manI"}, []string{"1"}},
		{"search employee", AppointmentFilter{Search: "gonzález"}, []string{"3"}},
		{"no match", AppointmentFilter{Status: appointment.StatusNoShow}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterAppointments(aps, tt.f, bogota)))
		})
	}
}

func TestByStatusClientEmployee(t *testing.T) {
	aps := []models.Appointment{
		{ID: "1", Status: "pending", ClientID: "c1", EmployeeID: "e1"},
		{ID: "2", Status: "completed", ClientID: "c2", EmployeeID: "e1"},
	}

	assert.Equal(t, []string{"1"}, ids(AppointmentsByStatus(aps, appointment.StatusPending)))
	assert.Equal(t, []string{"2"}, ids(AppointmentsByClient(aps, "c2")))
	assert.Equal(t, []string{"1", "2"}, ids(AppointmentsByEmployee(aps, "e1")))
	assert.NotNil(t, AppointmentsByClient(aps, "none"))
}

func TestSearchClients(t *testing.T) {
	cs := []models.Client{
		{ID: "1", FirstName: "Laura", LastName: "Pérez", Email: "laura.perez@email.com", Phone: "3101234567"},
		{ID: "2", FirstName: "Carolina", LastName: "Vargas", Email: "carolina.v@email.com", Phone: "3209876543"},
		{ID: "3", FirstName: "Sofía", LastName: "LAURENT", Email: "sofia@email.com", Phone: "3001112233"},
	}

	clientIDs := func(in []models.Client) []string {
		out := []string{}
		for _, c := range in {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "3"}, clientIDs(SearchClients(cs, "LAUR")))
	assert.Equal(t, []string{"2"}, clientIDs(SearchClients(cs, "carolina.v@")))
	assert.Equal(t, []string{"2"}, clientIDs(SearchClients(cs, "98765")))
	assert.Equal(t, []string{"1", "2", "3"}, clientIDs(SearchClients(cs, "  ")))
	assert.Empty(t, SearchClients(cs, "zzz"))
}

func TestSortClients(t *testing.T) {
	early := time.Date(2024, 9, 1, 0, 0, 0, 0, bogota)
	late := time.Date(2024, 10, 1, 0, 0, 0, 0, bogota)
	cs := []models.Client{
		{ID: "1", FirstName: "Óscar", LastName: "Ruiz", TotalVisits: 3, TotalSpent: 50000, LastVisit: &early},
		{ID: "2", FirstName: "ana", LastName: "Gómez", TotalVisits: 10, TotalSpent: 20000},
		{ID: "3", FirstName: "Pedro", LastName: "Mejía", TotalVisits: 7, TotalSpent: 90000, LastVisit: &late},
	}

	order := func(in []models.Client) []string {
		out := []string{}
		for _, c := range in {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"2", "1", "3"}, order(SortClients(cs, SortByName)))
	assert.Equal(t, []string{"2", "3", "1"}, order(SortClients(cs, SortByVisits)))
	assert.Equal(t, []string{"3", "1", "2"}, order(SortClients(cs, SortBySpent)))
	assert.Equal(t, []string{"3", "1", "2"}, order(SortClients(cs, SortByRecent)))
	assert.Equal(t, []string{"1", "2", "3"}, order(cs))
}

func TestFilterByActive(t *testing.T) {
	es := []models.Employee{{ID: "1", IsActive: true}, {ID: "2"}}
	active := func(e models.Employee) bool { return e.IsActive }

	require.Len(t, FilterByActive(es, ActiveOnly, active), 1)
	assert.Equal(t, "2", FilterByActive(es, ActiveInactive, active)[0].ID)
	assert.Len(t, FilterByActive(es, ActiveAll, active), 2)
	assert.Len(t, ActiveEmployees(es), 1)
}

func TestServicesByCategoryAndSearch(t *testing.T) {
	ss := []models.Service{
		{ID: "1", Name: "Corte de Cabello", Description: "Corte y peinado", Category: "Cabello"},
		{ID: "2", Name: "Manicure", Description: "Limpieza de uñas", Category: "Uñas"},
	}

	assert.Len(t, ServicesByCategory(ss, "Uñas"), 1)
	assert.Len(t, ServicesByCategory(ss, "Todos"), 2)
	assert.Len(t, ServicesByCategory(ss, "Masajes"), 0)
	assert.Equal(t, "2", SearchServices(ss, "UÑAS")[0].ID)
	assert.Len(t, SearchEmployees(nil, "x"), 0)
}
