package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/OBT-TerminService/internal/domain"
	bookingRepo "github.com/m04kA/OBT-TerminService/internal/infra/storage/booking"
	referenceRepo "github.com/m04kA/OBT-TerminService/internal/infra/storage/reference"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	referenceRepo ReferenceRepository
	txManager     TransactionManager
	schedule      domain.WeekSchedule
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	referenceRepo ReferenceRepository,
	txManager TransactionManager,
	schedule domain.WeekSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		referenceRepo: referenceRepo,
		txManager:     txManager,
		schedule:      schedule,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка занятости и вставка выполняются в одной serializable-транзакции
// с блокировкой строк консультанта; exclusion constraint в БД остается
// последней линией защиты от двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: beraterID=%d, terminartID=%d, start=%s",
		req.BeraterID, req.TerminartID, req.Start.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронирование в прошлом не принимается
	now := uc.timeProvider.Now()
	if req.Start.Before(now) {
		uc.logger.Warn("CreateBooking: start %s is in the past", req.Start.Format(domain.DateTimeFormat))
		return nil, fmt.Errorf("%w: start must not be in the past", ErrInvalidInput)
	}

	// 3. Проверяем Terminart и соответствие длительности
	terminart, err := uc.referenceRepo.GetAppointmentType(ctx, req.TerminartID)
	if err != nil {
		if errors.Is(err, referenceRepo.ErrAppointmentTypeNotFound) {
			uc.logger.Warn("CreateBooking: terminart id=%d not found", req.TerminartID)
			return nil, ErrTerminartNotFound
		}
		uc.logger.Error("CreateBooking: failed to get terminart id=%d: %v", req.TerminartID, err)
		return nil, fmt.Errorf("%w: failed to get appointment type: %v", ErrInternal, err)
	}
	if req.Ende.Sub(req.Start) != terminart.Duration() {
		uc.logger.Warn("CreateBooking: interval %s does not match terminart duration %d min",
			req.Ende.Sub(req.Start), terminart.DauerMinuten)
		return nil, fmt.Errorf("%w: interval does not match appointment type duration", ErrInvalidInput)
	}

	// 4. Проверяем существование консультанта
	if _, err := uc.referenceRepo.GetAdvisor(ctx, req.BeraterID); err != nil {
		if errors.Is(err, referenceRepo.ErrAdvisorNotFound) {
			uc.logger.Warn("CreateBooking: berater id=%d not found", req.BeraterID)
			return nil, ErrBeraterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get berater id=%d: %v", req.BeraterID, err)
		return nil, fmt.Errorf("%w: failed to get advisor: %v", ErrInternal, err)
	}

	// 5. Интервал должен целиком лежать в рабочих часах
	if !uc.schedule.Contains(req.Start, req.Ende) {
		uc.logger.Warn("CreateBooking: interval %s-%s is outside business hours",
			req.Start.Format(domain.DateTimeFormat), req.Ende.Format(domain.DateTimeFormat))
		return nil, fmt.Errorf("%w: interval is outside business hours", ErrInvalidInput)
	}

	// 6. Проверка занятости и вставка в одной транзакции
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		existing, err := uc.bookingRepo.GetOverlappingForBerater(ctx, req.BeraterID, req.Start, req.Ende)
		if err != nil {
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		requested := domain.Interval{Start: req.Start, End: req.Ende}
		if !isAvailable(requested, existing) {
			return ErrSlotTaken
		}

		created, err = uc.bookingRepo.Create(ctx, toDomain(req))
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			uc.logger.Warn("CreateBooking: slot %s-%s already taken for berater id=%d",
				req.Start.Format(domain.DateTimeFormat), req.Ende.Format(domain.DateTimeFormat), req.BeraterID)
			return nil, ErrSlotTaken
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: created booking id=%d for berater id=%d", created.ID, created.BeraterID)

	return toResponse(created), nil
}

func toDomain(req *Request) *domain.Booking {
	return &domain.Booking{
		BeraterID:            req.BeraterID,
		TerminartID:          req.TerminartID,
		Start:                req.Start,
		Ende:                 req.Ende,
		KundenName:           req.KundenName,
		KundenVertragsnummer: req.KundenVertragsnummer,
		KundenEmail:          req.KundenEmail,
		KundenGesamtbeitrag:  req.KundenGesamtbeitrag,
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:                   b.ID,
		BeraterID:            b.BeraterID,
		TerminartID:          b.TerminartID,
		Start:                b.Start,
		Ende:                 b.Ende,
		KundenName:           b.KundenName,
		KundenVertragsnummer: b.KundenVertragsnummer,
		KundenEmail:          b.KundenEmail,
		KundenGesamtbeitrag:  b.KundenGesamtbeitrag,
		CreatedAt:            b.CreatedAt,
	}
}
