package clients

import (
	"context"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	clientRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/clients"
)

// ClientRepository интерфейс справочника клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, filter clientRepo.Filter) ([]*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetBookingHistory(ctx context.Context, clientID int64) ([]*domain.BookingHistoryEntry, error)
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
