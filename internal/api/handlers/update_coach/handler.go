package update_coach

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/service/coaches"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCoachID     = "некорректный идентификатор тренера"
	msgInvalidInput       = "некорректные данные тренера"
	msgCoachNotFound      = "тренер не найден"
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

// Handle PUT /api/v1/coaches/{coachId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := strconv.ParseInt(mux.Vars(r)["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /coaches/{coachId} - Invalid coach id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	var req UpdateCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /coaches/{coachId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coach, err := h.service.Update(r.Context(), coachID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, coaches.ErrCoachNotFound):
			h.logger.Warn("PUT /coaches/{coachId} - Coach not found: id=%d", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, coaches.ErrInvalidInput):
			h.logger.Warn("PUT /coaches/{coachId} - Invalid input: id=%d, %v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /coaches/{coachId} - Failed to update coach: id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /coaches/{coachId} - Updated coach: id=%d", coachID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainCoach(coach))
}
