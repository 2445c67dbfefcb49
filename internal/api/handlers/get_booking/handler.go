package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/OBT-TerminService/internal/api/handlers"
	"github.com/m04kA/OBT-TerminService/internal/service/termine"
)

const (
	msgInvalidTerminID = "некорректный ID бронирования"
	msgNotFound        = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/termine/{terminId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	terminIDStr := vars["terminId"]

	terminID, err := strconv.ParseInt(terminIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /termine/{id} - Invalid termin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTerminID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), terminID)
	if err != nil {
		switch {
		case errors.Is(err, termine.ErrBookingNotFound):
			h.logger.Warn("GET /termine/{id} - Booking not found: termin_id=%d", terminID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, termine.ErrInvalidInput):
			h.logger.Warn("GET /termine/{id} - Invalid termin ID: termin_id=%d", terminID)
			handlers.RespondBadRequest(w, msgInvalidTerminID)

		default:
			h.logger.Error("GET /termine/{id} - Failed to get booking: termin_id=%d, error=%v", terminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /termine/{id} - Booking retrieved successfully: termin_id=%d", terminID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
