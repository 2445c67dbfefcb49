package domain

import "time"

// Window окно рабочего времени внутри одного дня,
// границы в минутах от полуночи
type Window struct {
	Open  int
	Close int
}

// WeekSchedule расписание рабочих часов по дням недели.
// День без окон — нерабочий
type WeekSchedule map[time.Weekday][]Window

// DefaultWeekSchedule возвращает рабочие часы консультаций:
// Пн-Чт 08:00-12:00 и 13:00-16:00, Пт 08:00-12:00, Сб-Вс выходные
func DefaultWeekSchedule() WeekSchedule {
	morning := Window{Open: 8 * 60, Close: 12 * 60}
	afternoon := Window{Open: 13 * 60, Close: 16 * 60}

	return WeekSchedule{
		time.Monday:    {morning, afternoon},
		time.Tuesday:   {morning, afternoon},
		time.Wednesday: {morning, afternoon},
		time.Thursday:  {morning, afternoon},
		time.Friday:    {morning},
	}
}

// Contains проверяет, что интервал [start, end) целиком лежит внутри
// одного рабочего окна одного дня.
//
// Оба конца должны приходиться на один день недели: интервал не может
// пересекать полночь, обеденный перерыв или границу рабочего окна
func (s WeekSchedule) Contains(start, end time.Time) bool {
	if start.Weekday() != end.Weekday() {
		return false
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	// Неполная минута в конце округляется вверх, чтобы не вылезти за окно
	if end.Second() > 0 || end.Nanosecond() > 0 {
		endMin++
	}

	for _, w := range s[start.Weekday()] {
		if startMin >= w.Open && endMin <= w.Close {
			return true
		}
	}
	return false
}
