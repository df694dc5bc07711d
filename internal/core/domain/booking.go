package domain

import "errors"

var ErrBookingNotFound = errors.New("booking not found")
var ErrSlotTaken = errors.New("slot taken")
var ErrBookingLimitReached = errors.New("booking limit reached")

// Booking reserves one machine at one time slot. The (machine, time) pair is
// unique across all live bookings. Maintenance bookings are created on behalf
// of staff and bypass the resident eligibility checks.
type Booking struct {
	ID            string `json:"id" bson:"id"`
	Machine       string `json:"machine" bson:"machine"`
	Time          string `json:"time" bson:"time"`
	User          string `json:"user" bson:"user"`
	IsMaintenance bool   `json:"isMaintenance" bson:"is_maintenance"`
}
