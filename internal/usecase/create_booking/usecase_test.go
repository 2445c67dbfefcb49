package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OBT-TerminService/internal/domain"
	bookingRepo "github.com/m04kA/OBT-TerminService/internal/infra/storage/booking"
	referenceRepo "github.com/m04kA/OBT-TerminService/internal/infra/storage/reference"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	nextID    int64
	created   []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	stored := *b
	stored.ID = f.nextID
	stored.CreatedAt = time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeBookingRepo) GetOverlappingForBerater(_ context.Context, beraterID int64, from, to time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.existing {
		if b.BeraterID == beraterID && b.Start.Before(to) && b.Ende.After(from) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeReferenceRepo struct {
	types    map[int]*domain.AppointmentType
	advisors map[int64]*domain.Advisor
}

func (f *fakeReferenceRepo) GetAppointmentType(_ context.Context, id int) (*domain.AppointmentType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, referenceRepo.ErrAppointmentTypeNotFound
	}
	return t, nil
}

func (f *fakeReferenceRepo) GetAdvisor(_ context.Context, id int64) (*domain.Advisor, error) {
	a, ok := f.advisors[id]
	if !ok {
		return nil, referenceRepo.ErrAdvisorNotFound
	}
	return a, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{ calls int }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Среда 7 июня 2023; бронируем на понедельник следующей недели
var (
	testNow   = time.Date(2023, time.June, 7, 10, 0, 0, 0, time.UTC)
	slotBegin = time.Date(2023, time.June, 12, 10, 0, 0, 0, time.UTC)
)

func newTestUseCase(booking *fakeBookingRepo, tx *fakeTxManager) *UseCase {
	refRepo := &fakeReferenceRepo{
		types: map[int]*domain.AppointmentType{
			2: {ID: 2, Name: "Beratung", DauerMinuten: 30},
		},
		advisors: map[int64]*domain.Advisor{
			1: {ID: 1, Name: "Hans Müller"},
		},
	}
	uc := NewUseCase(booking, refRepo, tx, domain.DefaultWeekSchedule(), noopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func testRequest() *Request {
	return &Request{
		BeraterID:            1,
		TerminartID:          2,
		Start:                slotBegin,
		Ende:                 slotBegin.Add(30 * time.Minute),
		KundenName:           "Max Mustermann",
		KundenVertragsnummer: "V-2023-0042",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, tx)

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.BeraterID)
	assert.Equal(t, 2, resp.TerminartID)
	assert.Equal(t, slotBegin, resp.Start)
	assert.Equal(t, slotBegin.Add(30*time.Minute), resp.Ende)
	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.created, 1)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{{
			ID:        7,
			BeraterID: 1,
			Start:     slotBegin.Add(15 * time.Minute),
			Ende:      slotBegin.Add(45 * time.Minute),
		}},
	}
	uc := newTestUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, repo.created)
}

func TestExecute_BackToBackAccepted(t *testing.T) {
	// Существующее бронирование заканчивается ровно в начале нового
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{{
			ID:        7,
			BeraterID: 1,
			Start:     slotBegin.Add(-30 * time.Minute),
			Ende:      slotBegin,
		}},
	}
	uc := newTestUseCase(repo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, slotBegin, resp.Start)
}

func TestExecute_OtherAdvisorBookingIgnored(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{{
			ID:        7,
			BeraterID: 99,
			Start:     slotBegin,
			Ende:      slotBegin.Add(30 * time.Minute),
		}},
	}
	uc := newTestUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
}

func TestExecute_ConstraintViolationMapsToSlotTaken(t *testing.T) {
	// Гонка: проверка прошла, но вставка уперлась в exclusion constraint
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_BeraterNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTxManager{})

	req := testRequest()
	req.BeraterID = 42
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBeraterNotFound)
}

func TestExecute_TerminartNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTxManager{})

	req := testRequest()
	req.TerminartID = 42
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTerminartNotFound)
}

func TestExecute_PastStartRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTxManager{})

	req := testRequest()
	req.Start = testNow.Add(-time.Hour)
	req.Ende = req.Start.Add(30 * time.Minute)
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DurationMismatchRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTxManager{})

	// Terminart на 30 минут, интервал на 45
	req := testRequest()
	req.Ende = req.Start.Add(45 * time.Minute)
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OutsideBusinessHoursRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTxManager{})

	tests := []struct {
		name  string
		start time.Time
	}{
		{"lunch break", time.Date(2023, time.June, 12, 12, 0, 0, 0, time.UTC)},
		{"friday afternoon", time.Date(2023, time.June, 16, 14, 0, 0, 0, time.UTC)},
		{"saturday", time.Date(2023, time.June, 17, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			req.Start = tt.start
			req.Ende = tt.start.Add(30 * time.Minute)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_TxManagerErrorIsInternal(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{createErr: errors.New("connection reset")}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
