package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/OBT-TerminService/internal/api/handlers"
	createBooking "github.com/m04kA/OBT-TerminService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgBeraterNotFound    = "консультант не найден"
	msgTerminartNotFound  = "тип консультации не найден"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/termine
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /termine - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /termine - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /termine - Slot taken: berater=%d, start=%s", req.BeraterID, req.Start)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrBeraterNotFound):
			h.logger.Warn("POST /termine - Berater not found: berater=%d", req.BeraterID)
			handlers.RespondNotFound(w, msgBeraterNotFound)

		case errors.Is(err, createBooking.ErrTerminartNotFound):
			h.logger.Warn("POST /termine - Terminart not found: terminart=%d", req.TerminartID)
			handlers.RespondNotFound(w, msgTerminartNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /termine - Invalid input: berater=%d, error=%v", req.BeraterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /termine - Failed to create booking: berater=%d, error=%v", req.BeraterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /termine - Booking created successfully: booking_id=%d, berater=%d",
		result.ID, result.BeraterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
