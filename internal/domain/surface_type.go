package domain

import "time"

// SurfaceType represents a priced category of playing surface (e.g. Clay, Grass)
type SurfaceType struct {
	ID             int64
	Name           string
	PricePerMinute float64
	IsDeleted      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
