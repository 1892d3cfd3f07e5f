package create_coach

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/service/coaches"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные тренера"
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

// Handle POST /api/v1/coaches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coach, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, coaches.ErrInvalidInput):
			h.logger.Warn("POST /coaches - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /coaches - Failed to create coach: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches - Created coach: id=%d, name=%s", coach.ID, coach.Name)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainCoach(coach))
}
