package domain

// Default configuration values
const (
	DefaultAnticipationDays    = 30
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinAnticipationDays    = 1
	MaxAnticipationDays    = 365 // 1 year
	MaxServiceLength       = 200
	MaxPetNameLength       = 100
	MaxOwnerNameLength     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
