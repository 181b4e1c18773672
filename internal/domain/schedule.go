package domain

import (
	"sort"
	"time"

	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// Weekday is a day-of-week key in the schedule configuration
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays is the fixed, exhaustive set of weekday keys
// A valid ScheduleConfig has an entry for every one of them
var AllWeekdays = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// WeekdayOf returns the schedule key for the weekday of the given date
func WeekdayOf(date time.Time) Weekday {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Slot is a bookable (time-of-day, duration) pair for a given weekday
type Slot struct {
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
}

// DaySchedule is the configuration of one weekday
//
// The slot list is the actual authority for bookability; OpensAt/ClosesAt
// are informational only and slots are not required to fall inside them.
// A closed day may still retain its slot list - it is simply not offered.
type DaySchedule struct {
	Open     bool             `json:"open"`
	OpensAt  types.TimeString `json:"opensAt"`
	ClosesAt types.TimeString `json:"closesAt"`
	Slots    []Slot           `json:"slots"`
}

// ScheduleConfig is the salon-wide booking configuration, one instance
// keyed by weekday. Saved wholesale (all-or-nothing), last writer wins
type ScheduleConfig struct {
	BusinessName     string
	WelcomeMessage   string
	AnticipationDays int // maximum number of days ahead a customer may book
	Weekdays         map[Weekday]DaySchedule

	UpdatedAt time.Time
}

// DefaultScheduleConfig returns the configuration used before the salon
// saves its own: open Monday-Saturday, closed Sunday, no slots configured
func DefaultScheduleConfig() *ScheduleConfig {
	weekdays := make(map[Weekday]DaySchedule, len(AllWeekdays))
	for _, day := range AllWeekdays {
		weekdays[day] = DaySchedule{
			Open:     day != Sunday,
			OpensAt:  "09:00",
			ClosesAt: "18:00",
			Slots:    []Slot{},
		}
	}

	return &ScheduleConfig{
		AnticipationDays: DefaultAnticipationDays,
		Weekdays:         weekdays,
	}
}

// SlotsForDate returns the slot catalogue of the weekday of date,
// sorted ascending by time-of-day
func (c *ScheduleConfig) SlotsForDate(date time.Time) []Slot {
	day, ok := c.Weekdays[WeekdayOf(date)]
	if !ok {
		return nil
	}

	slots := make([]Slot, len(day.Slots))
	copy(slots, day.Slots)
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})

	return slots
}

// IsOpenOn returns true if the weekday of date is marked open
func (c *ScheduleConfig) IsOpenOn(date time.Time) bool {
	day, ok := c.Weekdays[WeekdayOf(date)]
	return ok && day.Open
}
