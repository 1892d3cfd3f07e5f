package get_analytics

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/service/analytics"
	"github.com/tennispark/TP-AdminService/internal/service/analytics/models"
)

const msgUnknownPeriod = "неизвестный период отчета, ожидается 6m, 3m или 1m"

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics?period=6m|3m|1m
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	period := models.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = models.PeriodSixMonths
	}

	report, err := h.service.Report(r.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrUnknownPeriod):
			h.logger.Warn("GET /analytics - Unknown period: %s", period)
			handlers.RespondBadRequest(w, msgUnknownPeriod)

		default:
			h.logger.Error("GET /analytics - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceReport(report))
}
