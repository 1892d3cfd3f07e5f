package cancel_booking

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/service/schedule/models"
)

type ScheduleService interface {
	Cancel(ctx context.Context, req *models.CancelRequest) (*models.CancelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
