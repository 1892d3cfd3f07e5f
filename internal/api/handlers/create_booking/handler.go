package create_booking

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	createBooking "github.com/tennispark/TP-AdminService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgCourtNotFound      = "корт не найден"
	msgCoachNotFound      = "тренер не найден"
	msgOutsideHours       = "бронирование выходит за рамки рабочего времени клуба"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if req.StartTime != "" && len(req.StartTime) != 5 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCoachNotFound):
			h.logger.Warn("POST /bookings - Coach not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: court_id=%d, start=%s", req.CourtID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Валидатор изолированных слотов отклонил запись: 422 с рекомендацией,
	// клиент может повторить запрос с force=true
	if !result.Created {
		h.logger.Info("POST /bookings - Rejected by gap validator: court_id=%d, start=%s", req.CourtID, req.StartTime)
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, &GapWarningResponse{
			Reason:     result.Warning.Reason,
			Suggestion: result.Warning.Suggestion,
		})
		return
	}

	h.logger.Info("POST /bookings - Booking created: court_id=%d, start=%s, records=%d, total=%d",
		req.CourtID, req.StartTime, len(result.Slots), result.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
