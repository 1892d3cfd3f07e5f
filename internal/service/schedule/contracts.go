package schedule

import (
	"context"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByCoordinate(ctx context.Context, courtID int64, date time.Time, t types.TimeString) (*domain.Slot, error)
	ListByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Slot, error)
	ReplaceByCoordinates(ctx context.Context, newSlots []*domain.Slot) error
	UpdateByCoordinates(ctx context.Context, updated []*domain.Slot) error
	DeleteByCoordinates(ctx context.Context, courtID int64, date time.Time, times []types.TimeString) (int, error)
}

// CourtRepository интерфейс справочника кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// IDGenerator интерфейс генерации идентификаторов записей слотов
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
