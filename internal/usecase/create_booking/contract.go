package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/OBT-TerminService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает бронирование; возвращает ErrSlotTaken при нарушении
	// ограничения непересечения в БД
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetOverlappingForBerater получает бронирования консультанта,
	// пересекающие [from, to); внутри транзакции блокирует строки
	GetOverlappingForBerater(ctx context.Context, beraterID int64, from, to time.Time) ([]*domain.Booking, error)
}

// ReferenceRepository интерфейс репозитория справочных данных
type ReferenceRepository interface {
	GetAppointmentType(ctx context.Context, id int) (*domain.AppointmentType, error)
	GetAdvisor(ctx context.Context, id int64) (*domain.Advisor, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в serializable-транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
