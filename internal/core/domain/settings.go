package domain

import "errors"

// ErrSettingsNotFound is returned by the repository when no settings document
// has ever been persisted; callers fall back to DefaultSettings.
var ErrSettingsNotFound = errors.New("settings not found")

// Settings is the singleton configuration record for the laundry room.
// MaxDaysAhead is persisted and editable but not yet enforced by the
// admission flow.
type Settings struct {
	BookingDuration int `json:"bookingDuration" bson:"booking_duration"`
	MaxBookings     int `json:"maxBookings" bson:"max_bookings"`
	MaxDaysAhead    int `json:"maxDaysAhead" bson:"max_days_ahead"`
}

// DefaultSettings returns the values used before an admin ever saves the
// settings form.
func DefaultSettings() Settings {
	return Settings{
		BookingDuration: 2,
		MaxBookings:     3,
		MaxDaysAhead:    7,
	}
}
