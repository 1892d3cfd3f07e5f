package get_financials

import (
	"context"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

type FinancialsService interface {
	Daily(ctx context.Context, date time.Time) (*domain.DailyFinancials, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
