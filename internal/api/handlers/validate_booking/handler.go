package validate_booking

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	createBooking "github.com/tennispark/TP-AdminService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные параметры проверки"
)

type Handler struct {
	useCase ValidateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ValidateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	warning, err := h.useCase.Validate(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/validate - Validation failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &ValidateBookingResponse{Valid: warning == nil}
	if warning != nil {
		response.Reason = warning.Reason
		response.Suggestion = warning.Suggestion
	}

	h.logger.Info("POST /bookings/validate - court_id=%d, start=%s, valid=%t", req.CourtID, req.StartTime, response.Valid)
	handlers.RespondJSON(w, http.StatusOK, response)
}
