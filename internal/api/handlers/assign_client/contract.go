package assign_client

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/service/schedule/models"
)

type ScheduleService interface {
	AssignClient(ctx context.Context, req *models.AssignClientRequest) (*models.AssignClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
