package domain

import "time"

// GameType represents the game format of a reservation
type GameType string

const (
	GameTypeSingle GameType = "SINGLE"
	GameTypeDouble GameType = "DOUBLE"
)

// Valid reports whether the game type is one of the known values
func (g GameType) Valid() bool {
	return g == GameTypeSingle || g == GameTypeDouble
}

// Multiplier returns the price multiplier for the game type
func (g GameType) Multiplier() float64 {
	if g == GameTypeDouble {
		return DoubleGameMultiplier
	}
	return SingleGameMultiplier
}

// Reservation represents a booked, priced time interval on one court for one user
// Price is computed once at admission and never recomputed from current rates
type Reservation struct {
	ID        int64
	UserID    int64
	CourtID   int64
	StartTime time.Time
	EndTime   time.Time
	GameType  GameType
	Price     float64
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the reservation's [start, end) interval intersects
// the given one. Touching endpoints do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return start.Before(r.EndTime) && end.After(r.StartTime)
}

// DurationMinutes returns the whole minutes between start and end,
// fractional minutes truncated
func (r *Reservation) DurationMinutes() int64 {
	return WholeMinutes(r.StartTime, r.EndTime)
}

// WholeMinutes returns the truncated whole minutes between two instants
func WholeMinutes(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Minute)
}

// CalculatePrice computes the reservation price:
// price per minute x game type multiplier x whole minutes
func CalculatePrice(pricePerMinute float64, gameType GameType, start, end time.Time) float64 {
	return pricePerMinute * gameType.Multiplier() * float64(WholeMinutes(start, end))
}
