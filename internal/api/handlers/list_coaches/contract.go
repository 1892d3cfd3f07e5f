package list_coaches

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

type CoachesService interface {
	List(ctx context.Context) ([]*domain.Coach, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
