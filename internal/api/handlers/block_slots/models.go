package block_slots

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/schedule/models"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// BlockSlotsRequest HTTP request model блокировки слотов
type BlockSlotsRequest struct {
	CourtID         int64  `json:"courtId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Reason          string `json:"reason"`
}

// BlockSlotsResponse HTTP response model
type BlockSlotsResponse struct {
	Slots []*handlers.SlotResponse `json:"slots"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BlockSlotsRequest) ToServiceRequest() (*models.BlockRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.BlockRequest{
		CourtID:         r.CourtID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Reason:          r.Reason,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BlockResponse) *BlockSlotsResponse {
	return &BlockSlotsResponse{Slots: handlers.FromDomainSlots(resp.Slots)}
}
