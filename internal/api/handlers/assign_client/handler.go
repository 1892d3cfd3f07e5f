package assign_client

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные данные клиента"
	msgSlotNotFound       = "по указанной координате нет записи"
	msgNotReserved        = "слот не является резервом тренера"
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

// Handle PATCH /api/v1/trainings/client
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AssignClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /trainings/client - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /trainings/client - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.AssignClient(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("PATCH /trainings/client - Slot not found: court_id=%d, time=%s", req.CourtID, req.Time)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedule.ErrNotReserved):
			h.logger.Warn("PATCH /trainings/client - Not a reservation: court_id=%d, time=%s", req.CourtID, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgNotReserved)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PATCH /trainings/client - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /trainings/client - Failed to assign client: court_id=%d, time=%s, error=%v",
				req.CourtID, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /trainings/client - Assigned client: court_id=%d, records=%d", req.CourtID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
