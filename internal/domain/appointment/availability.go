package appointment

import "time"

type AvailabilityInput struct {
	EmployeeID string
	ServiceID  string
	Date       time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
