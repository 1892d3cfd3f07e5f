package get_financials

import (
	"net/http"
	"time"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service FinancialsService
	logger  Logger
}

func NewHandler(service FinancialsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/financials?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /financials - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Daily(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /financials - Failed to calculate: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /financials - date=%s, paid=%d, unpaid=%d",
		date.Format(domain.DateFormat), result.TotalPaid, result.TotalUnpaid)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
