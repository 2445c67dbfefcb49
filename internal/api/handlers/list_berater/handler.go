package list_berater

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

// Handle GET /api/v1/berater
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBerater(r.Context())
	if err != nil {
		h.logger.Error("GET /berater - Failed to list advisors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /berater - %d advisors returned", len(result.Berater))
	handlers.RespondJSON(w, http.StatusOK, result)
}
