package get_free_slots

import (
	"context"
	"time"

	"github.com/m04kA/OBT-TerminService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlappingRange получает все бронирования, пересекающие [from, to)
	GetOverlappingRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// ReferenceRepository интерфейс репозитория справочных данных
type ReferenceRepository interface {
	GetAppointmentType(ctx context.Context, id int) (*domain.AppointmentType, error)
	ListAdvisors(ctx context.Context) ([]*domain.Advisor, error)
}

// WeekResolver интерфейс вычисления границ календарной недели
type WeekResolver interface {
	CurrentWeek(now time.Time) int
	Resolve(week int, now time.Time) (start, end time.Time, err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
