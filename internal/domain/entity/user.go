package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActiveStatus tells whether an account may interact with campaigns.
type ActiveStatus string

const (
	ActiveStatusActive ActiveStatus = "ACTIVE"
	ActiveStatusBanned ActiveStatus = "BANNED"
)

// User is the slice of an account the campaign engine needs. Registration and
// credentials live in the identity service.
type User struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	FullName     string       // Display name shown on comments and notifications.
	Role         Role         // One of user, vendor, admin.
	Latitude     *float64     // Last GPS latitude reported by the client, nil when unknown.
	Longitude    *float64     // Last GPS longitude reported by the client, nil when unknown.
	DateOfBirth  *time.Time   // Drives the age used for age targeting.
	ActiveStatus ActiveStatus // BANNED users cannot engage with campaigns.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasLocation reports whether the user has shared GPS coordinates.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// IsBanned reports whether the account was banned by an admin.
func (u *User) IsBanned() bool {
	return u.ActiveStatus == ActiveStatusBanned
}

// AgeAt returns the user's age in whole years at the given instant.
// The second value is false when the date of birth is unknown.
func (u *User) AgeAt(now time.Time) (int, bool) {
	if u.DateOfBirth == nil {
		return 0, false
	}

	dob := u.DateOfBirth.In(now.Location())
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}

	return age, true
}
