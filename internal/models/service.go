package models

import "time"

type Service struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Duration    int    `json:"duration"` // minutes
	Price       int64  `json:"price"`
	Category    string `gorm:"size:50;index" json:"category"`
	IsActive    bool   `json:"is_active"`

	CreatedAt *time.Time `gorm:"autoCreateTime:false" json:"created_at,omitempty"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`

	Seq int64 `gorm:"index" json:"-"`
}

type ServiceCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (Service) TableName() string {
	return "services"
}

func (s Service) Clone() Service {
	s.CreatedAt = cloneTime(s.CreatedAt)
	s.UpdatedAt = cloneTime(s.UpdatedAt)
	return s
}
