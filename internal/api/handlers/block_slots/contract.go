package block_slots

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/service/schedule/models"
)

type ScheduleService interface {
	Block(ctx context.Context, req *models.BlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
