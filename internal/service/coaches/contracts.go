package coaches

import (
	"context"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// CoachRepository интерфейс справочника тренеров
type CoachRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Coach, error)
	List(ctx context.Context) ([]*domain.Coach, error)
	Create(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)
	Update(ctx context.Context, coach *domain.Coach) error
}

// TimeProvider интерфейс получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
