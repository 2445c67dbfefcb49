package domain

import "time"

// Interval полуинтервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval is well-formed (End strictly after Start)
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение двух полуинтервалов.
// Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И
// - конец одного СТРОГО позже начала другого
//
// Граничные случаи пересечением не считаются: бронирование, которое
// заканчивается ровно там, где начинается следующее, конфликтом не является.
//
// Примеры:
// - [11:30, 12:00) и [11:20, 11:40) → ЕСТЬ пересечение (11:30-11:40)
// - [11:30, 12:00) и [11:00, 11:30) → НЕТ пересечения (граничат)
// - [11:30, 12:00) и [12:00, 12:30) → НЕТ пересечения (граничат)
//
// Этот предикат — единственное определение конфликта в системе: им
// пользуются и выдача свободных слотов, и проверка перед бронированием
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}
