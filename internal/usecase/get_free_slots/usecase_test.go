package get_free_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OBT-TerminService/internal/domain"
	referenceRepo "github.com/m04kA/OBT-TerminService/internal/infra/storage/reference"
	"github.com/m04kA/OBT-TerminService/pkg/kalenderwoche"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetOverlappingRange(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Start.Before(to) && b.Ende.After(from) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeReferenceRepo struct {
	types    map[int]*domain.AppointmentType
	advisors []*domain.Advisor
	err      error
}

func (f *fakeReferenceRepo) GetAppointmentType(_ context.Context, id int) (*domain.AppointmentType, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.types[id]
	if !ok {
		return nil, referenceRepo.ErrAppointmentTypeNotFound
	}
	return t, nil
}

func (f *fakeReferenceRepo) ListAdvisors(_ context.Context) ([]*domain.Advisor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.advisors, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookingRepo *fakeBookingRepo, refRepo *fakeReferenceRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		bookingRepo,
		refRepo,
		kalenderwoche.NewResolver(kalenderwoche.ISO()),
		domain.DefaultWeekSchedule(),
		noopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func defaultReferenceRepo() *fakeReferenceRepo {
	return &fakeReferenceRepo{
		types: map[int]*domain.AppointmentType{
			1: {ID: 1, Name: "Kurzberatung", DauerMinuten: 15},
			3: {ID: 3, Name: "Standardberatung", DauerMinuten: 45},
		},
		advisors: []*domain.Advisor{
			{ID: 1, Name: "Hans Müller"},
			{ID: 2, Name: "Petra Schmidt"},
			{ID: 3, Name: "Klaus Weber"},
			{ID: 4, Name: "Monika Fischer"},
		},
	}
}

// Среда 7 июня 2023, 10:37 — календарная неделя 23
var wednesdayNow = time.Date(2023, time.June, 7, 10, 37, 0, 0, time.UTC)

func TestExecute_CurrentWeek_AllAdvisorsFree(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, defaultReferenceRepo(), wednesdayNow)

	resp, err := uc.Execute(context.Background(), &Request{KalenderWoche: 23, TerminartID: 1})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, 23, resp.KalenderWoche)
	assert.Equal(t, 1, resp.TerminartID)

	seen := make(map[int64]bool)
	for _, s := range resp.Slots {
		seen[s.BeraterID] = true
		assert.Equal(t, 1, s.TerminartID)
		// Текущая неделя начинается "сейчас": слоты в прошлом не выдаются
		assert.False(t, s.Start.Before(wednesdayNow))
		assert.Equal(t, 15*time.Minute, s.Ende.Sub(s.Start))
	}

	// Без бронирований все четыре консультанта присутствуют в выдаче
	assert.Len(t, seen, 4)

	// Первый слот — ближайшая четверть часа после "сейчас"
	assert.Equal(t, time.Date(2023, time.June, 7, 10, 45, 0, 0, time.UTC), resp.Slots[0].Start)
}

func TestExecute_FutureWeek_FullWeekOfSlots(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, defaultReferenceRepo(), wednesdayNow)

	resp, err := uc.Execute(context.Background(), &Request{KalenderWoche: 24, TerminartID: 1})

	require.NoError(t, err)
	// Будущая неделя целиком: Пн-Чт по 28 стартов + Пт 16, на каждого из 4 консультантов
	assert.Len(t, resp.Slots, (4*28+16)*4)

	weekStart := time.Date(2023, time.June, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, weekStart.Add(8*time.Hour), resp.Slots[0].Start)
}

func TestExecute_BookedSlotExcludedOnlyForItsAdvisor(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:        1,
				BeraterID: 2,
				Start:     time.Date(2023, time.June, 12, 9, 0, 0, 0, time.UTC),
				Ende:      time.Date(2023, time.June, 12, 9, 45, 0, 0, time.UTC),
			},
		},
	}
	uc := newTestUseCase(bookingRepo, defaultReferenceRepo(), wednesdayNow)

	resp, err := uc.Execute(context.Background(), &Request{KalenderWoche: 24, TerminartID: 1})

	require.NoError(t, err)

	booked := domain.Interval{
		Start: time.Date(2023, time.June, 12, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2023, time.June, 12, 9, 45, 0, 0, time.UTC),
	}
	for _, s := range resp.Slots {
		window := domain.Interval{Start: s.Start, End: s.Ende}
		if s.BeraterID == 2 {
			assert.False(t, window.Overlaps(booked), "slot %s must be excluded for booked advisor", s.Start)
		}
	}

	// Остальные консультанты сохраняют слоты в занятом интервале
	var othersInside int
	for _, s := range resp.Slots {
		window := domain.Interval{Start: s.Start, End: s.Ende}
		if s.BeraterID != 2 && window.Overlaps(booked) {
			othersInside++
		}
	}
	assert.Positive(t, othersInside)
}

func TestExecute_Deterministic(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, defaultReferenceRepo(), wednesdayNow)
	req := &Request{KalenderWoche: 24, TerminartID: 3}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_TerminartNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, defaultReferenceRepo(), wednesdayNow)

	_, err := uc.Execute(context.Background(), &Request{KalenderWoche: 23, TerminartID: 99})

	assert.ErrorIs(t, err, ErrTerminartNotFound)
}

func TestExecute_InvalidWeekNumber(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, defaultReferenceRepo(), wednesdayNow)

	tests := []struct {
		name string
		week int
	}{
		{"past week", 22},
		{"beyond max week", 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{KalenderWoche: tt.week, TerminartID: 1})
			assert.ErrorIs(t, err, ErrInvalidWeekNumber)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, defaultReferenceRepo(), wednesdayNow)

	_, err := uc.Execute(context.Background(), &Request{KalenderWoche: 0, TerminartID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{KalenderWoche: 23, TerminartID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageErrorIsInternal(t *testing.T) {
	bookingRepo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(bookingRepo, defaultReferenceRepo(), wednesdayNow)

	_, err := uc.Execute(context.Background(), &Request{KalenderWoche: 23, TerminartID: 1})

	assert.ErrorIs(t, err, ErrInternal)
}
