package update_coach

import (
	"context"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/coaches/models"
)

type CoachesService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCoachRequest) (*domain.Coach, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
