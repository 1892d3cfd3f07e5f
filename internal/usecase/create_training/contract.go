package create_training

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ReplaceByCoordinates записывает слоты, вытесняя записи по тем же координатам
	ReplaceByCoordinates(ctx context.Context, newSlots []*domain.Slot) error
}

// CourtRepository интерфейс справочника кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// CoachRepository интерфейс справочника тренеров
type CoachRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Coach, error)
}

// IDGenerator интерфейс генерации идентификаторов записей слотов (для тестирования)
type IDGenerator interface {
	NewID() string
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	AddSlotsWritten(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
