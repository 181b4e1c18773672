package domain

import "time"

// Customer represents a client of the grooming salon (the pet and its owner)
// The scheduling core only reads customers and adjusts the no-show counter;
// full profile management lives in its own service
type Customer struct {
	ID        int64
	PetName   string
	OwnerName string
	Breed     string // free text, used only for display-icon selection
	Phone     string
	NoShows   int // running no-show counter, never negative

	CreatedAt time.Time
	UpdatedAt time.Time
}
