package domain

import (
	"regexp"
	"time"
)

// phoneNumberRegexp формат телефона: + и ровно 12 цифр
var phoneNumberRegexp = regexp.MustCompile(`^\+\d{12}$`)

// User represents a club customer identified by phone number
type User struct {
	ID          int64
	PhoneNumber string
	Name        string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidPhoneNumber reports whether the phone number matches the +XXXXXXXXXXXX format
func ValidPhoneNumber(phone string) bool {
	return phoneNumberRegexp.MatchString(phone)
}

// ValidName reports whether a display name length is within limits
func ValidName(name string) bool {
	return len(name) >= MinNameLength && len(name) <= MaxNameLength
}
