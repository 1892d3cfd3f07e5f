package get_client

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/service/clients/models"
)

type ClientsService interface {
	Get(ctx context.Context, id int64) (*models.ClientWithHistory, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
