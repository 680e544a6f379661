package appointment

import "github.com/BruksfildServices01/salon-admin/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// AllStatuses is the canonical status order used by listings and reports.
var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

var ErrInvalidStatus = httperr.ErrBusiness("invalid_status")

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// IsOpen reports whether the appointment still waits to be attended.
func IsOpen(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// Blocks reports whether an appointment in this status occupies the
// employee's time.
func Blocks(s Status) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInProgress
}

// InitialStatus is used when a create request carries no status.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Display info
// ===============================

type StatusInfo struct {
	Value Status `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var statusInfo = map[Status]StatusInfo{
	StatusPending:    {Value: StatusPending, Label: "Pendiente", Color: "#f59e0b", Icon: "schedule"},
	StatusConfirmed:  {Value: StatusConfirmed, Label: "Confirmada", Color: "#3b82f6", Icon: "check_circle"},
	StatusInProgress: {Value: StatusInProgress, Label: "En Progreso", Color: "#8b5cf6", Icon: "progress_activity"},
	StatusCompleted:  {Value: StatusCompleted, Label: "Completada", Color: "#10b981", Icon: "task_alt"},
	StatusCancelled:  {Value: StatusCancelled, Label: "Cancelada", Color: "#ef4444", Icon: "cancel"},
	StatusNoShow:     {Value: StatusNoShow, Label: "No Asistió", Color: "#6b7280", Icon: "person_off"},
}

// Info returns the label, color and icon for s. Unknown statuses get the raw
// value as label and a neutral color.
func Info(s Status) StatusInfo {
	if info, ok := statusInfo[s]; ok {
		return info
	}
	return StatusInfo{Value: s, Label: string(s), Color: "#6b7280", Icon: "help"}
}

func AllInfo() []StatusInfo {
	out := make([]StatusInfo, 0, len(AllStatuses))
	for _, s := range AllStatuses {
		out = append(out, statusInfo[s])
	}
	return out
}
