package get_free_slots

import (
	"context"

	getFreeSlots "github.com/m04kA/OBT-TerminService/internal/usecase/get_free_slots"
)

type GetFreeSlotsUseCase interface {
	Execute(ctx context.Context, req *getFreeSlots.Request) (*getFreeSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
