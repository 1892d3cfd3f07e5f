package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	getDaySchedule "github.com/tennispark/TP-AdminService/internal/usecase/get_day_schedule"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCourtType = "неизвестный тип покрытия корта"
	msgInvalidFilter    = "неизвестный фильтр отображения"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD&courtType=hard&filters=unpaid,courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := parseQuery(query.Get("date"), query.Get("courtType"), query.Get("filters"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrUnknownCourtType):
			h.logger.Warn("GET /schedule - Unknown court type: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourtType)

		case errors.Is(err, getDaySchedule.ErrUnknownFilter):
			h.logger.Warn("GET /schedule - Unknown filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /schedule - Failed to build schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Built grid for %d courts, date=%s", len(result.Courts), query.Get("date"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
