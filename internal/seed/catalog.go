package seed

import (
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

func date(s string, loc *time.Location) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string, loc *time.Location) *time.Time {
	t := date(s, loc)
	return &t
}

type clientRow struct {
	id, first, last, phone string
	registered, lastVisit  string
	visits                 int
	spent                  int64
}

var clientRows = []clientRow{
	{"1", "Laura", "Pérez", "3101234567", "2023-01-15", "2024-10-08", 24, 1250000},
	{"2", "Roberto", "Gómez", "3209876543", "2023-03-10", "2024-10-05", 18, 520000},
	{"3", "Sofía", "Rodríguez", "3005551234", "2023-06-20", "2024-10-10", 32, 1680000},
	{"4", "Miguel", "Hernández", "3157778888", "2022-11-05", "2024-09-15", 15, 450000},
	{"5", "Isabella", "Martínez", "3112223344", "2023-02-20", "2024-10-11", 28, 980000},
	{"6", "Camila", "García", "3123334455", "2023-04-15", "2024-10-09", 22, 750000},
	{"7", "Sebastián", "López", "3134445566", "2023-05-10", "2024-10-07", 16, 420000},
	{"8", "Valentina", "Díaz", "3145556677", "2023-07-25", "2024-10-12", 19, 680000},
	{"9", "Mateo", "Ramírez", "3156667788", "2023-08-30", "2024-10-06", 14, 380000},
	{"10", "Mariana", "Torres", "3167778899", "2023-09-12", "2024-10-11", 26, 920000},
	{"11", "Daniel", "Flores", "3178889900", "2023-10-05", "2024-10-08", 12, 340000},
	{"12", "Lucía", "Morales", "3189990011", "2023-11-18", "2024-10-10", 20, 720000},
	{"13", "Santiago", "Vargas", "3190001122", "2023-12-22", "2024-10-09", 11, 310000},
	{"14", "Gabriela", "Castro", "3201112233", "2024-01-14", "2024-10-12", 18, 620000},
	{"15", "Nicolás", "Ortiz", "3212223344", "2024-02-08", "2024-10-07", 13, 370000},
	{"16", "Paula", "Mendoza", "3223334455", "2024-03-19", "2024-10-11", 15, 540000},
	{"17", "Andrés", "Silva", "3234445566", "2024-04-25", "2024-10-08", 10, 280000},
	{"18", "Carolina", "Reyes", "3245556677", "2024-05-30", "2024-10-10", 12, 420000},
	{"19", "Felipe", "Gutiérrez", "3256667788", "2024-06-15", "2024-10-09", 9, 250000},
	{"20", "Natalia", "Jiménez", "3267778899", "2024-07-20", "2024-10-12", 8, 290000},
}

// Clients returns the fixed client list.
func Clients(loc *time.Location) []models.Client {
	out := make([]models.Client, 0, len(clientRows))
	for _, r := range clientRows {
		out = append(out, models.Client{
			ID:           r.id,
			FirstName:    r.first,
			LastName:     r.last,
			Email:        emailFor(r.first, r.last, "email.com"),
			Phone:        r.phone,
			IsActive:     true,
			RegisteredAt: date(r.registered, loc),
			LastVisit:    datePtr(r.lastVisit, loc),
			TotalVisits:  r.visits,
			TotalSpent:   r.spent,
		})
	}

	out[0].Preferences = &models.ClientPreferences{
		PreferredEmployee: "1",
		PreferredServices: []string{"1", "2", "3"},
	}
	out[1].BirthDate = datePtr("1985-05-20", loc)
	out[2].Address = "Calle 123 #45-67"
	out[2].Preferences = &models.ClientPreferences{
		PreferredEmployee: "2",
		Allergies:         []string{"Tinte con amoníaco"},
	}
	return out
}

type employeeRow struct {
	id, first, last, phone, position string
	specialties                      []string
	hired                            string
}

var employeeRows = []employeeRow{
	{"1", "María", "González", "3001234567", "Estilista Senior", []string{"1", "2", "3", "5"}, "2022-01-15"},
	{"2", "Carlos", "Ramírez", "3009876543", "Barbero", []string{"1", "5"}, "2021-06-20"},
	{"3", "Ana", "Martínez", "3005551234", "Manicurista", []string{"6", "7", "8", "9"}, "2023-03-10"},
	{"4", "Luis", "Torres", "3007778888", "Colorista", []string{"2", "3", "4"}, "2020-11-05"},
	{"5", "Patricia", "Sánchez", "3012345678", "Esteticista", []string{"10", "11", "12"}, "2022-08-12"},
	{"6", "Diego", "Fernández", "3019876543", "Masajista", []string{"15", "16"}, "2023-01-20"},
	{"7", "Valentina", "López", "3025556789", "Maquilladora", []string{"13", "14"}, "2022-05-15"},
	{"8", "Andrés", "Moreno", "3034567890", "Estilista", []string{"1", "2", "5"}, "2023-06-01"},
	{"9", "Carolina", "Vargas", "3045678901", "Especialista en Uñas", []string{"6", "7", "8", "9"}, "2021-09-10"},
	{"10", "Roberto", "Castro", "3056789012", "Colorista Senior", []string{"2", "3", "4"}, "2020-03-25"},
}

// Employees returns the fixed staff list, all on the default schedule.
func Employees(loc *time.Location) []models.Employee {
	out := make([]models.Employee, 0, len(employeeRows))
	for _, r := range employeeRows {
		out = append(out, models.Employee{
			ID:          r.id,
			FirstName:   r.first,
			LastName:    r.last,
			Email:       emailFor(r.first, r.last, "salon.com"),
			Phone:       r.phone,
			Position:    r.position,
			Specialties: append([]string(nil), r.specialties...),
			IsActive:    true,
			HireDate:    date(r.hired, loc),
			Schedule:    employee.DefaultSchedule(),
		})
	}
	return out
}

var serviceRows = []models.Service{
	{ID: "1", Name: "Corte de Cabello", Description: "Corte de cabello profesional con estilo personalizado", Duration: 30, Price: 25000, Category: "Cabello"},
	{ID: "2", Name: "Tinte Completo", Description: "Coloración completa del cabello con productos de alta calidad", Duration: 120, Price: 80000, Category: "Cabello"},
	{ID: "3", Name: "Mechas", Description: "Mechas californianas o balayage", Duration: 150, Price: 120000, Category: "Cabello"},
	{ID: "4", Name: "Alisado Permanente", Description: "Alisado con keratina de larga duración", Duration: 180, Price: 200000, Category: "Cabello"},
	{ID: "5", Name: "Peinado Especial", Description: "Peinado para eventos y ocasiones especiales", Duration: 60, Price: 45000, Category: "Cabello"},
	{ID: "6", Name: "Manicure", Description: "Cuidado completo de uñas de manos", Duration: 45, Price: 30000, Category: "Uñas"},
	{ID: "7", Name: "Pedicure", Description: "Cuidado completo de uñas de pies", Duration: 60, Price: 35000, Category: "Uñas"},
	{ID: "8", Name: "Uñas Acrílicas", Description: "Aplicación de uñas acrílicas con diseño", Duration: 90, Price: 50000, Category: "Uñas"},
	{ID: "9", Name: "Uñas en Gel", Description: "Aplicación de uñas en gel semipermanente", Duration: 75, Price: 45000, Category: "Uñas"},
	{ID: "10", Name: "Tratamiento Facial", Description: "Limpieza facial profunda e hidratación", Duration: 90, Price: 60000, Category: "Facial"},
	{ID: "11", Name: "Masaje Facial", Description: "Masaje relajante facial con productos naturales", Duration: 45, Price: 40000, Category: "Facial"},
	{ID: "12", Name: "Depilación Facial", Description: "Depilación con cera de rostro completo", Duration: 30, Price: 25000, Category: "Facial"},
	{ID: "13", Name: "Maquillaje Social", Description: "Maquillaje profesional para eventos", Duration: 60, Price: 70000, Category: "Maquillaje"},
	{ID: "14", Name: "Maquillaje de Novia", Description: "Maquillaje especial para novias con prueba", Duration: 120, Price: 150000, Category: "Maquillaje"},
	{ID: "15", Name: "Masaje Relajante", Description: "Masaje corporal relajante de 60 minutos", Duration: 60, Price: 80000, Category: "Masajes"},
	{ID: "16", Name: "Masaje Descontracturante", Description: "Masaje terapéutico para aliviar tensiones", Duration: 90, Price: 100000, Category: "Masajes"},
}

// Services returns the fixed service catalog, all active.
func Services() []models.Service {
	out := make([]models.Service, 0, len(serviceRows))
	for _, s := range serviceRows {
		s.IsActive = true
		out = append(out, s)
	}
	return out
}
