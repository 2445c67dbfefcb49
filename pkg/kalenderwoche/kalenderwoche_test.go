package kalenderwoche

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Week_MatchesISO(t *testing.T) {
	rule := ISO()

	// Сверяем с time.ISOWeek по дням вокруг границ нескольких лет
	for year := 2019; year <= 2027; year++ {
		for _, base := range []time.Time{
			time.Date(year, time.December, 20, 12, 0, 0, 0, time.UTC),
			time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC),
			time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC),
		} {
			for day := 0; day < 14; day++ {
				date := base.AddDate(0, 0, day)
				wantYear, wantWeek := date.ISOWeek()
				gotYear, gotWeek := rule.Week(date)

				assert.Equal(t, wantYear, gotYear, "year for %s", date.Format("2006-01-02"))
				assert.Equal(t, wantWeek, gotWeek, "week for %s", date.Format("2006-01-02"))
			}
		}
	}
}

func TestRule_Week_YearBoundaries(t *testing.T) {
	rule := ISO()

	tests := []struct {
		date     time.Time
		wantYear int
		wantWeek int
	}{
		// 1 января 2021 (пятница) принадлежит 53-й неделе 2020 года
		{time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), 2020, 53},
		// 31 декабря 2023 (воскресенье) принадлежит 52-й неделе 2023 года
		{time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC), 2023, 52},
		// 30 декабря 2024 (понедельник) принадлежит 1-й неделе 2025 года
		{time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), 2025, 1},
		// 5 июня 2023 — начало 23-й недели
		{time.Date(2023, time.June, 5, 8, 0, 0, 0, time.UTC), 2023, 23},
	}

	for _, tt := range tests {
		gotYear, gotWeek := rule.Week(tt.date)
		assert.Equal(t, tt.wantYear, gotYear, "year for %s", tt.date.Format("2006-01-02"))
		assert.Equal(t, tt.wantWeek, gotWeek, "week for %s", tt.date.Format("2006-01-02"))
	}
}

func TestRule_StartOfWeek(t *testing.T) {
	rule := ISO()

	// Среда 7 июня 2023 → понедельник 5 июня, полночь
	wednesday := time.Date(2023, time.June, 7, 15, 42, 13, 0, time.UTC)
	got := rule.StartOfWeek(wednesday)
	assert.Equal(t, time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC), got)

	// Понедельник остается понедельником
	monday := time.Date(2023, time.June, 5, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC), rule.StartOfWeek(monday))
}

func TestResolver_Resolve_CurrentWeek(t *testing.T) {
	resolver := NewResolver(ISO())

	// Среда 7 июня 2023 10:37 — 23-я календарная неделя
	now := time.Date(2023, time.June, 7, 10, 37, 22, 0, time.UTC)
	require.Equal(t, 23, resolver.CurrentWeek(now))

	start, end, err := resolver.Resolve(23, now)
	require.NoError(t, err)

	// Начало текущей недели — сам момент now: прошлое не предлагается
	assert.Equal(t, now, start)
	// Конец — полночь после последнего дня недели (понедельник 12 июня)
	assert.Equal(t, time.Date(2023, time.June, 12, 0, 0, 0, 0, time.UTC), end)
}

func TestResolver_Resolve_FutureWeek(t *testing.T) {
	resolver := NewResolver(ISO())
	now := time.Date(2023, time.June, 7, 10, 37, 0, 0, time.UTC)

	start, end, err := resolver.Resolve(24, now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.June, 12, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, time.June, 19, 0, 0, 0, 0, time.UTC), end)

	// Любая будущая неделя начинается с понедельника и длится ровно 7 дней
	for week := 25; week <= MaxWeek; week++ {
		start, end, err := resolver.Resolve(week, now)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, start.Weekday(), "week %d", week)
		assert.Equal(t, start.AddDate(0, 0, 7), end, "week %d", week)
	}
}

func TestResolver_Resolve_InvalidWeekNumber(t *testing.T) {
	resolver := NewResolver(ISO())
	now := time.Date(2023, time.June, 7, 10, 37, 0, 0, time.UTC)

	// Прошедшая неделя
	_, _, err := resolver.Resolve(22, now)
	assert.ErrorIs(t, err, ErrInvalidWeekNumber)

	// Неделя за пределами года
	_, _, err = resolver.Resolve(53, now)
	assert.ErrorIs(t, err, ErrInvalidWeekNumber)

	_, _, err = resolver.Resolve(0, now)
	assert.ErrorIs(t, err, ErrInvalidWeekNumber)
}
