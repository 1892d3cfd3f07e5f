package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректная координата слота"
	msgSlotNotFound       = "по указанной координате нет бронирования"
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

// Handle DELETE /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("DELETE /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Cancel(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("DELETE /bookings - Slot not found: court_id=%d, time=%s", req.CourtID, req.Time)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /bookings - Failed to cancel: court_id=%d, time=%s, error=%v", req.CourtID, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings - Cancelled booking: court_id=%d, records=%d", req.CourtID, result.RemovedRecords)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
