package analytics

import (
	"context"
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/service/analytics/models"
)

// Service сервис аналитических отчетов
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Report возвращает отчет за период (6m, 3m или 1m)
func (s *Service) Report(ctx context.Context, period models.Period) (*models.Report, error) {
	if !period.IsValid() {
		s.logger.Warn("Report: unknown period=%s", period)
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}

	s.logger.Info("Report: building analytics report for period=%s", period)

	return &models.Report{
		Period:  period,
		KPI:     kpiCards,
		Chart:   chartData[period],
		Sources: bookingSources[period],
		Today:   todaySummary,
	}, nil
}
