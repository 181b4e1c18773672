package domain

import "time"

// Visit is an immutable history entry of a completed grooming service
// Created as a side effect of completing an appointment or via manual
// backfill; the lifecycle engine never updates or deletes visits
type Visit struct {
	ID         int64
	CustomerID int64
	Service    string
	Price      float64
	Date       time.Time

	CreatedAt time.Time
}
