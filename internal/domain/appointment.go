package domain

import (
	"time"

	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a scheduled grooming visit for one customer
type Appointment struct {
	ID         int64
	CustomerID int64
	PetName    string // snapshot taken at creation so history stays stable
	Service    string
	Date       time.Time
	StartTime  types.TimeString
	Price      float64
	Status     AppointmentStatus
	FromPortal bool // true when submitted through the self-service portal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted returns true if the appointment has been completed
// Completed appointments are immutable
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// IsActive returns true if the appointment still occupies its slot
// and can go through further transitions
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the appointment can be confirmed
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCompleted returns true if the appointment can be completed
func (a *Appointment) CanBeCompleted() bool {
	return a.IsActive()
}

// CanBeDeleted returns true if the appointment record can be removed
// (plain cancellation or no-show processing)
func (a *Appointment) CanBeDeleted() bool {
	return a.IsActive()
}

// IsValidStatus returns true if the status is one of the known statuses
func IsValidStatus(s AppointmentStatus) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCompleted
}

// IsValidEntryStatus returns true if the status is a valid status for a
// newly created appointment (completed is never an entry state)
func IsValidEntryStatus(s AppointmentStatus) bool {
	return s == StatusPending || s == StatusConfirmed
}
