package domain

import "time"

// Court represents a bookable court with a surface type
// Relations are identifier-based; the surface type is resolved through the catalog
type Court struct {
	ID            int64
	Name          string
	SurfaceTypeID int64
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
