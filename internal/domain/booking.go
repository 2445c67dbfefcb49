package domain

import "time"

// Booking represents a confirmed appointment (Termin) of an advisor
type Booking struct {
	ID          int64
	BeraterID   int64
	TerminartID int
	Start       time.Time
	Ende        time.Time

	// Данные клиента — для планирования непрозрачны, хранятся как есть
	KundenName           string
	KundenVertragsnummer string
	KundenEmail          string
	KundenGesamtbeitrag  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booked time range as a half-open interval [Start, Ende)
func (b *Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.Ende}
}
