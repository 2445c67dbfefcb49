package list_berater

import (
	"context"

	"github.com/m04kA/OBT-TerminService/internal/service/reference/models"
)

type ReferenceService interface {
	ListBerater(ctx context.Context) (*models.BeraterListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
