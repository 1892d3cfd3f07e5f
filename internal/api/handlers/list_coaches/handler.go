package list_coaches

import (
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
)

type Handler struct {
	service CoachesService
	logger  Logger
}

func NewHandler(service CoachesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /coaches - Failed to list coaches: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*handlers.CoachResponse, 0, len(coaches))
	for _, coach := range coaches {
		response = append(response, handlers.FromDomainCoach(coach))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
