package financials

import (
	"context"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error)
}

// CourtRepository интерфейс справочника кортов
type CourtRepository interface {
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
