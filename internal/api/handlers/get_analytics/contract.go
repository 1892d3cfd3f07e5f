package get_analytics

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/service/analytics/models"
)

type AnalyticsService interface {
	Report(ctx context.Context, period models.Period) (*models.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
