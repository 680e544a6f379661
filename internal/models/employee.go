package models

import "time"

type Employee struct {
	ID          string   `gorm:"primaryKey;size:64" json:"id"`
	FirstName   string   `gorm:"size:100;not null" json:"first_name"`
	LastName    string   `gorm:"size:100" json:"last_name"`
	Email       string   `gorm:"size:100" json:"email"`
	Phone       string   `gorm:"size:20" json:"phone"`
	Position    string   `gorm:"size:100" json:"position"`
	Specialties []string `gorm:"serializer:json" json:"specialties"`
	IsActive    bool     `json:"is_active"`

	HireDate time.Time `json:"hire_date"`
	PhotoURL string    `gorm:"size:500" json:"photo_url,omitempty"`

	Schedule EmployeeSchedule `gorm:"serializer:json" json:"schedule,omitempty"`

	Seq int64 `gorm:"index" json:"-"`
}

// EmployeeSchedule is keyed by lowercase english weekday ("monday", ...).
type EmployeeSchedule map[string]DaySchedule

type DaySchedule struct {
	IsWorking bool   `json:"is_working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e Employee) Clone() Employee {
	e.Specialties = cloneStrings(e.Specialties)
	if e.Schedule != nil {
		s := make(EmployeeSchedule, len(e.Schedule))
		for k, v := range e.Schedule {
			s[k] = v
		}
		e.Schedule = s
	}
	return e
}
