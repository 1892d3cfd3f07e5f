package block_slots

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные данные блокировки"
	msgCourtNotFound      = "корт не найден"
	msgOutsideHours       = "блокировка выходит за рамки рабочего времени клуба"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /slots/block - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Block(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrCourtNotFound):
			h.logger.Warn("POST /slots/block - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, schedule.ErrOutsideOperatingHours):
			h.logger.Warn("POST /slots/block - Outside operating hours: court_id=%d, start=%s", req.CourtID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /slots/block - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots/block - Failed to block: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/block - Blocked: court_id=%d, records=%d", req.CourtID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
