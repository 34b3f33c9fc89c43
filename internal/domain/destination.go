package domain

import "time"

type Destination struct {
	ID          int64
	Name        string
	Region      string
	Description string
	BestSeason  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
