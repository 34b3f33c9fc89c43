package domain

import "time"

type Tour struct {
	ID             int64
	DestinationID  int64
	Title          string
	Description    string
	DurationDays   int
	DepartureDate  time.Time
	TotalSlots     int
	AvailableSlots int
	PriceCents     int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
