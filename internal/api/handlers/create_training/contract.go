package create_training

import (
	"context"

	createTraining "github.com/tennispark/TP-AdminService/internal/usecase/create_training"
)

type CreateTrainingUseCase interface {
	Execute(ctx context.Context, req *createTraining.Request) (*createTraining.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
