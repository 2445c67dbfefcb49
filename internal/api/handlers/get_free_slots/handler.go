package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/OBT-TerminService/internal/api/handlers"
	getFreeSlots "github.com/m04kA/OBT-TerminService/internal/usecase/get_free_slots"
)

const (
	msgInvalidKalenderWoche = "некорректный параметр kalenderWoche"
	msgInvalidTerminartID   = "некорректный параметр terminartID"
	msgWeekOutOfRange       = "kalenderWoche вне допустимого диапазона (текущая неделя..52)"
	msgTerminartNotFound    = "тип консультации не найден"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/termine/available?kalenderWoche=24&terminartID=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	kalenderWoche, err := strconv.Atoi(query.Get("kalenderWoche"))
	if err != nil {
		h.logger.Warn("GET /termine/available - Invalid kalenderWoche: %v", err)
		handlers.RespondBadRequest(w, msgInvalidKalenderWoche)
		return
	}

	terminartID, err := strconv.Atoi(query.Get("terminartID"))
	if err != nil {
		h.logger.Warn("GET /termine/available - Invalid terminartID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTerminartID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{
		KalenderWoche: kalenderWoche,
		TerminartID:   terminartID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidWeekNumber):
			h.logger.Warn("GET /termine/available - Week out of range: week=%d", kalenderWoche)
			handlers.RespondBadRequest(w, msgWeekOutOfRange)

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /termine/available - Invalid input: week=%d, terminart=%d", kalenderWoche, terminartID)
			handlers.RespondBadRequest(w, msgInvalidTerminartID)

		case errors.Is(err, getFreeSlots.ErrTerminartNotFound):
			h.logger.Warn("GET /termine/available - Terminart not found: terminart=%d", terminartID)
			handlers.RespondNotFound(w, msgTerminartNotFound)

		default:
			h.logger.Error("GET /termine/available - Failed to get slots: week=%d, terminart=%d, error=%v",
				kalenderWoche, terminartID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /termine/available - %d slots returned: week=%d, terminart=%d",
		len(result.Slots), kalenderWoche, terminartID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
