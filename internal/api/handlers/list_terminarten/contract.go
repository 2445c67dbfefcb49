package list_terminarten

import (
	"context"

	"github.com/m04kA/OBT-TerminService/internal/service/reference/models"
)

type ReferenceService interface {
	ListTerminarten(ctx context.Context) (*models.TerminartListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
