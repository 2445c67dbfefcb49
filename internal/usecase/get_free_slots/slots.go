package get_free_slots

import (
	"time"

	"github.com/m04kA/OBT-TerminService/internal/domain"
)

// AvailabilityFunc предикат доступности консультанта в конкретном окне.
// Сейчас все консультанты равномерно доступны в рабочие часы; предикат
// оставлен точкой расширения под индивидуальные календари
type AvailabilityFunc func(beraterID int64, window domain.Interval) bool

// snapToQuarterHour сдвигает момент времени вперед к началу четверти часа.
// Используется для начала текущей недели ("сейчас"): 08:41 → 08:45.
// Если минуты уже кратны 15, обнуляются только секунды
func snapToQuarterHour(t time.Time) time.Time {
	year, month, day := t.Date()
	snapped := time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, t.Location())

	if rem := t.Minute() % domain.SlotStrideMinutes; rem != 0 {
		snapped = snapped.Add(time.Duration(domain.SlotStrideMinutes-rem) * time.Minute)
	}
	return snapped
}

// candidateWindows генерирует кандидатные окна [cursor, cursor+duration)
// внутри диапазона [rangeStart, rangeEnd).
//
// Курсор идет с фиксированным шагом 15 минут независимо от длительности:
// слоты длительностью, не кратной 15 минутам, дают плотно перекрывающиеся
// кандидаты — это осознанное бизнес-решение (плотная упаковка).
// Перебор останавливается, когда окно перестает помещаться в диапазон.
// Окна вне рабочих часов (вне рабочего окна дня, через обеденный перерыв,
// через полночь, по выходным) отбрасываются
func candidateWindows(rangeStart, rangeEnd time.Time, duration time.Duration, schedule domain.WeekSchedule) []domain.Interval {
	stride := domain.SlotStrideMinutes * time.Minute

	windows := make([]domain.Interval, 0)
	cursor := snapToQuarterHour(rangeStart)

	for next := cursor.Add(duration); next.Before(rangeEnd); next = cursor.Add(duration) {
		if schedule.Contains(cursor, next) {
			windows = append(windows, domain.Interval{Start: cursor, End: next})
		}
		cursor = cursor.Add(stride)
	}

	return windows
}

// freeSlots раскладывает кандидатные окна по консультантам и оставляет
// только свободные: окно свободно у консультанта, если не пересекается
// ни с одним из его бронирований (общий предикат domain.Interval.Overlaps).
//
// Результат отсортирован по началу окна; при совпадающем начале порядок
// консультантов повторяет порядок advisors
func freeSlots(
	windows []domain.Interval,
	advisors []*domain.Advisor,
	booked map[int64][]domain.Interval,
	terminartID int,
	available AvailabilityFunc,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	for _, window := range windows {
		for _, advisor := range advisors {
			if available != nil && !available(advisor.ID, window) {
				continue
			}
			if overlapsAny(window, booked[advisor.ID]) {
				continue
			}
			slots = append(slots, domain.TimeSlot{
				BeraterID:   advisor.ID,
				TerminartID: terminartID,
				Start:       window.Start,
				End:         window.End,
			})
		}
	}

	return slots
}

func overlapsAny(window domain.Interval, booked []domain.Interval) bool {
	for _, b := range booked {
		if window.Overlaps(b) {
			return true
		}
	}
	return false
}

// groupByBerater группирует интервалы бронирований по консультантам
func groupByBerater(bookings []*domain.Booking) map[int64][]domain.Interval {
	grouped := make(map[int64][]domain.Interval, len(bookings))
	for _, b := range bookings {
		grouped[b.BeraterID] = append(grouped[b.BeraterID], b.Interval())
	}
	return grouped
}
