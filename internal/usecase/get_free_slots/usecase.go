package get_free_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/OBT-TerminService/internal/domain"
	referenceRepo "github.com/m04kA/OBT-TerminService/internal/infra/storage/reference"
	"github.com/m04kA/OBT-TerminService/pkg/kalenderwoche"
)

// UseCase use case получения свободных слотов на календарную неделю
type UseCase struct {
	bookingRepo   BookingRepository
	referenceRepo ReferenceRepository
	weekResolver  WeekResolver
	schedule      domain.WeekSchedule
	availability  AvailabilityFunc
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	referenceRepo ReferenceRepository,
	weekResolver WeekResolver,
	schedule domain.WeekSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		referenceRepo: referenceRepo,
		weekResolver:  weekResolver,
		schedule:      schedule,
		availability:  nil, // nil = все консультанты доступны в рабочие часы
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithAvailability задает предикат индивидуальной доступности консультантов
func (uc *UseCase) WithAvailability(fn AvailabilityFunc) *UseCase {
	uc.availability = fn
	return uc
}

// Execute выполняет use case получения свободных слотов.
//
// Пустой список слотов — легитимный результат ("всё занято");
// ошибки чтения из хранилища никогда не схлопываются в пустую выдачу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: kalenderWoche=%d, terminartID=%d", req.KalenderWoche, req.TerminartID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем Terminart — она определяет длительность слота
	terminart, err := uc.referenceRepo.GetAppointmentType(ctx, req.TerminartID)
	if err != nil {
		if errors.Is(err, referenceRepo.ErrAppointmentTypeNotFound) {
			uc.logger.Warn("GetFreeSlots: terminart id=%d not found", req.TerminartID)
			return nil, ErrTerminartNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get terminart id=%d: %v", req.TerminartID, err)
		return nil, fmt.Errorf("%w: failed to get appointment type: %v", ErrInternal, err)
	}

	// 4. Вычисляем границы недели [rangeStart, rangeEnd)
	rangeStart, rangeEnd, err := uc.weekResolver.Resolve(req.KalenderWoche, now)
	if err != nil {
		if errors.Is(err, kalenderwoche.ErrInvalidWeekNumber) {
			uc.logger.Warn("GetFreeSlots: invalid week number %d (current %d)",
				req.KalenderWoche, uc.weekResolver.CurrentWeek(now))
			return nil, fmt.Errorf("%w: %v", ErrInvalidWeekNumber, err)
		}
		uc.logger.Error("GetFreeSlots: failed to resolve week %d: %v", req.KalenderWoche, err)
		return nil, fmt.Errorf("%w: failed to resolve week: %v", ErrInternal, err)
	}

	// 5. Получаем список консультантов
	advisors, err := uc.referenceRepo.ListAdvisors(ctx)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to list advisors: %v", err)
		return nil, fmt.Errorf("%w: failed to list advisors: %v", ErrInternal, err)
	}

	// 6. Снимок занятости: все бронирования, пересекающие диапазон недели
	bookings, err := uc.bookingRepo.GetOverlappingRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем кандидатные окна и фильтруем занятые
	windows := candidateWindows(rangeStart, rangeEnd, terminart.Duration(), uc.schedule)
	slots := freeSlots(windows, advisors, groupByBerater(bookings), terminart.ID, uc.availability)

	uc.logger.Info("GetFreeSlots: %d free slots for week=%d, terminart=%d (%d advisors, %d bookings)",
		len(slots), req.KalenderWoche, req.TerminartID, len(advisors), len(bookings))

	return toResponse(req, slots), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TerminartID < 1 {
		return fmt.Errorf("%w: terminartID must be positive", ErrInvalidInput)
	}
	if req.KalenderWoche < 1 {
		return fmt.Errorf("%w: kalenderWoche must be positive", ErrInvalidInput)
	}
	return nil
}

func toResponse(req *Request, slots []domain.TimeSlot) *Response {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{
			BeraterID:   s.BeraterID,
			TerminartID: s.TerminartID,
			Start:       s.Start,
			Ende:        s.End,
		}
	}

	return &Response{
		KalenderWoche: req.KalenderWoche,
		TerminartID:   req.TerminartID,
		Slots:         out,
	}
}
