package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	ClientID   string `gorm:"size:64;index" json:"client_id"`
	ClientName string `gorm:"size:200" json:"client_name"`

	EmployeeID   string `gorm:"size:64;index" json:"employee_id"`
	EmployeeName string `gorm:"size:200" json:"employee_name"`

	ServiceID   string `gorm:"size:64;index" json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`

	// Date is the local midnight of the appointment day.
	Date      time.Time `gorm:"index" json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes,omitempty"`
	Price  int64  `json:"price"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`

	Seq int64 `gorm:"index" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a Appointment) Clone() Appointment {
	if a.UpdatedAt != nil {
		t := *a.UpdatedAt
		a.UpdatedAt = &t
	}
	return a
}
