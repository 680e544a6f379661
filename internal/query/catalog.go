package query

import "github.com/BruksfildServices01/salon-admin/internal/models"

func ActiveEmployees(es []models.Employee) []models.Employee {
	return filter(es, func(e models.Employee) bool { return e.IsActive })
}

func SearchEmployees(es []models.Employee, term string) []models.Employee {
	m := newMatcher(term)
	if m.empty() {
		return filter(es, func(models.Employee) bool { return true })
	}
	return filter(es, func(e models.Employee) bool {
		return m.fold(e.FirstName) || m.fold(e.LastName) || m.fold(e.Position) || m.fold(e.Email)
	})
}

// ServicesByCategory keeps services of one category. "" and "Todos" keep all.
func ServicesByCategory(ss []models.Service, category string) []models.Service {
	if category == "" || category == "Todos" {
		return filter(ss, func(models.Service) bool { return true })
	}
	return filter(ss, func(s models.Service) bool { return s.Category == category })
}

func SearchServices(ss []models.Service, term string) []models.Service {
	m := newMatcher(term)
	if m.empty() {
		return filter(ss, func(models.Service) bool { return true })
	}
	return filter(ss, func(s models.Service) bool {
		return m.fold(s.Name) || m.fold(s.Description)
	})
}
