package create_client

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/clients/models"
)

type ClientsService interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
