package reference

import (
	"context"

	"github.com/m04kA/OBT-TerminService/internal/domain"
)

// ReferenceRepository интерфейс репозитория справочных данных
type ReferenceRepository interface {
	ListAppointmentTypes(ctx context.Context) ([]*domain.AppointmentType, error)
	ListAdvisors(ctx context.Context) ([]*domain.Advisor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
