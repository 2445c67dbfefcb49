package list_terminarten

import (
	"net/http"

	"github.com/m04kA/OBT-TerminService/internal/api/handlers"
)

type Handler struct {
	service ReferenceService
	logger  Logger
}

func NewHandler(service ReferenceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/terminarten
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTerminarten(r.Context())
	if err != nil {
		h.logger.Error("GET /terminarten - Failed to list appointment types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /terminarten - %d appointment types returned", len(result.Terminarten))
	handlers.RespondJSON(w, http.StatusOK, result)
}
