package domain

import "time"

// Advisor represents a Berater whose time is being scheduled.
// All advisors are uniformly available during business hours; per-advisor
// calendars are not modelled yet
type Advisor struct {
	ID   int64
	Name string
}

// AppointmentType represents a Terminart: immutable reference data
// defining the fixed duration of an appointment
type AppointmentType struct {
	ID           int
	Name         string
	DauerMinuten int
}

// Duration returns the appointment duration as time.Duration
func (t *AppointmentType) Duration() time.Duration {
	return time.Duration(t.DauerMinuten) * time.Minute
}
