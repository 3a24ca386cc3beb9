package domain

// Business validation constants
const (
	MinNameLength = 3
	MaxNameLength = 255
)

// Price multipliers per game type
const (
	SingleGameMultiplier = 1.0
	DoubleGameMultiplier = 1.5
)

// TimeFormat is the wire and log format for reservation timestamps.
const TimeFormat = "2006-01-02T15:04:05Z07:00"
