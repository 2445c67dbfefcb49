// Package kalenderwoche реализует нумерацию календарных недель (Kalenderwochen)
// и вычисление границ недели по её номеру.
//
// Kalenderwoche — это номер недели внутри календарного года (1..52/53),
// как принято в Германии: первой неделей года считается неделя,
// содержащая первый четверг января (правило ISO-8601, неделя с понедельника).
// Правило задается явно через Rule, а не берется из окружения процесса.
package kalenderwoche

import (
	"errors"
	"fmt"
	"time"
)

// MaxWeek максимальный допустимый номер календарной недели для бронирования
const MaxWeek = 52

// ErrInvalidWeekNumber возвращается, когда номер недели вне допустимого
// диапазона: меньше текущей недели или больше MaxWeek
var ErrInvalidWeekNumber = errors.New("kalenderwoche: invalid week number")

// Rule правило нумерации недель
type Rule struct {
	// FirstDay первый день недели
	FirstDay time.Weekday
	// MinDaysInFirstWeek минимальное количество дней нового года в первой
	// неделе. 4 соответствует ISO-8601 ("неделя с первым четвергом")
	MinDaysInFirstWeek int
}

// ISO возвращает правило ISO-8601: неделя с понедельника,
// первая неделя содержит минимум 4 дня нового года
func ISO() Rule {
	return Rule{FirstDay: time.Monday, MinDaysInFirstWeek: 4}
}

// StartOfWeek возвращает полночь первого дня недели, содержащей t
func (r Rule) StartOfWeek(t time.Time) time.Time {
	diff := (int(t.Weekday()) - int(r.FirstDay) + 7) % 7
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -diff)
}

// Week возвращает год и номер недели, которой принадлежит t.
// Год может отличаться от t.Year() на границах года: 31 декабря может
// принадлежать первой неделе следующего года, 1 января — последней
// неделе предыдущего
func (r Rule) Week(t time.Time) (year, week int) {
	weekStart := r.StartOfWeek(t)
	year = t.Year()

	firstWeek := r.firstWeekStart(year, t.Location())
	if weekStart.Before(firstWeek) {
		// Неделя началась до первой недели года — это хвост предыдущего года
		year--
		firstWeek = r.firstWeekStart(year, t.Location())
	} else {
		nextFirstWeek := r.firstWeekStart(year+1, t.Location())
		if !weekStart.Before(nextFirstWeek) {
			return year + 1, 1
		}
	}

	return year, daysBetween(firstWeek, weekStart)/7 + 1
}

// firstWeekStart возвращает полночь первого дня первой недели года
func (r Rule) firstWeekStart(year int, loc *time.Location) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	weekStart := r.StartOfWeek(jan1)

	daysInNewYear := 7 - daysBetween(weekStart, jan1)
	if daysInNewYear >= r.MinDaysInFirstWeek {
		return weekStart
	}
	return weekStart.AddDate(0, 0, 7)
}

// daysBetween возвращает число календарных дней от a до b
// Считает по датам, поэтому не зависит от переходов на летнее время
func daysBetween(a, b time.Time) int {
	return int(civilDay(b) - civilDay(a))
}

// civilDay возвращает порядковый номер календарного дня с эпохи Unix
func civilDay(t time.Time) int64 {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// Resolver переводит номер календарной недели в конкретный диапазон
// [start, end) с учетом правила нумерации
type Resolver struct {
	rule Rule
}

// NewResolver создает новый Resolver с указанным правилом
func NewResolver(rule Rule) *Resolver {
	return &Resolver{rule: rule}
}

// Rule возвращает правило нумерации, с которым работает Resolver
func (r *Resolver) Rule() Rule {
	return r.rule
}

// CurrentWeek возвращает номер недели, содержащей now
func (r *Resolver) CurrentWeek(now time.Time) int {
	_, week := r.rule.Week(now)
	return week
}

// Resolve вычисляет границы недели week как полуинтервал [start, end).
//
// Для текущей недели start равен самому моменту now: прошедшая часть
// недели (и текущего дня) не должна попадать в выдачу свободных слотов.
// Для будущих недель start — полночь первого дня недели, вычисленная
// смещением от 1 января текущего года.
//
// Номер недели должен лежать в диапазоне [CurrentWeek(now), MaxWeek],
// иначе возвращается ErrInvalidWeekNumber
func (r *Resolver) Resolve(week int, now time.Time) (start, end time.Time, err error) {
	current := r.CurrentWeek(now)
	if week < current || week > MaxWeek {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: week %d is not in [%d, %d]", ErrInvalidWeekNumber, week, current, MaxWeek)
	}

	if week == current {
		start = now
		end = r.rule.StartOfWeek(now).AddDate(0, 0, 7)
		return start, end, nil
	}

	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	offset := int(r.rule.FirstDay) - int(jan1.Weekday())

	start = jan1.AddDate(0, 0, offset+7*(week-1))
	end = start.AddDate(0, 0, 7)
	return start, end, nil
}
