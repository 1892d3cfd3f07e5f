package create_coach

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/coaches/models"
)

type CoachesService interface {
	Create(ctx context.Context, req *models.CreateCoachRequest) (*domain.Coach, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
