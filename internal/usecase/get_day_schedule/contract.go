package get_day_schedule

import (
	"context"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListByDate получает все записанные слоты на дату
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error)
}

// CourtRepository интерфейс справочника кортов
type CourtRepository interface {
	List(ctx context.Context) ([]*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
