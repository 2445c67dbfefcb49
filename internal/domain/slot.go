package domain

import "time"

// TimeSlot свободное окно для бронирования у конкретного консультанта.
// Вычисляется на лету и не персистится — в Booking превращается только
// после успешного бронирования
type TimeSlot struct {
	BeraterID   int64
	TerminartID int
	Start       time.Time
	End         time.Time
}
