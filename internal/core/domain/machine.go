package domain

import "errors"

// MachineStatus represents the operational state of a laundry machine.
type MachineStatus string

const (
	MachineFree       MachineStatus = "free"
	MachineBusy       MachineStatus = "busy"
	MachineOutOfOrder MachineStatus = "out of order"
)

var ErrMachineNotFound = errors.New("machine not found")
var ErrMachineBusy = errors.New("machine busy")

// Machine is a washer or dryer in the laundry room. The name doubles as the
// unique key; usage accumulates booked hours over the machine's lifetime.
type Machine struct {
	Name   string        `json:"name" bson:"name"`
	Status MachineStatus `json:"status" bson:"status"`
	Usage  int           `json:"usage" bson:"usage"`
}
