package create_training

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
	createTraining "github.com/tennispark/TP-AdminService/internal/usecase/create_training"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// CreateTrainingRequest HTTP request model резервирования окна тренером
type CreateTrainingRequest struct {
	CoachID         int64  `json:"coachId"`
	CourtID         int64  `json:"courtId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// TrainingResponse HTTP response model
type TrainingResponse struct {
	Slots           []*handlers.SlotResponse `json:"slots"`
	DurationMinutes int                      `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTrainingRequest) ToUseCaseRequest() (*createTraining.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createTraining.Request{
		CoachID:         r.CoachID,
		CourtID:         r.CourtID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTraining.Response) *TrainingResponse {
	return &TrainingResponse{
		Slots:           handlers.FromDomainSlots(resp.Slots),
		DurationMinutes: resp.EffectiveMinutes,
	}
}
