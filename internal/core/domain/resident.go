package domain

import "errors"

var ErrResidentNotFound = errors.New("resident not found")
var ErrResidentBlocked = errors.New("resident blocked")

// Resident is a building occupant who may book machines. The name is the
// booking-matching key (matched case-insensitively); blocked residents
// cannot create new bookings.
type Resident struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Room    string `json:"room" bson:"room"`
	Blocked bool   `json:"blocked" bson:"blocked"`
}
