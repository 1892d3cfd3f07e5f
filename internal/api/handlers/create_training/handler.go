package create_training

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	createTraining "github.com/tennispark/TP-AdminService/internal/usecase/create_training"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные данные резервирования"
	msgCourtNotFound      = "корт не найден"
	msgCoachNotFound      = "тренер не найден"
	msgOutsideHours       = "резервирование выходит за рамки рабочего времени клуба"
)

type Handler struct {
	useCase CreateTrainingUseCase
	logger  Logger
}

func NewHandler(useCase CreateTrainingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trainings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trainings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /trainings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTraining.ErrCourtNotFound):
			h.logger.Warn("POST /trainings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createTraining.ErrCoachNotFound):
			h.logger.Warn("POST /trainings - Coach not found: coach_id=%d", req.CoachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createTraining.ErrOutsideOperatingHours):
			h.logger.Warn("POST /trainings - Outside operating hours: court_id=%d, start=%s", req.CourtID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createTraining.ErrInvalidInput):
			h.logger.Warn("POST /trainings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /trainings - Failed to reserve: coach_id=%d, court_id=%d, error=%v",
				req.CoachID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trainings - Reserved: coach_id=%d, court_id=%d, records=%d",
		req.CoachID, req.CourtID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
