package list_courts

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

type CourtRepository interface {
	List(ctx context.Context) ([]*domain.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
