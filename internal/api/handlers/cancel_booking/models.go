package cancel_booking

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/schedule/models"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// CancelBookingRequest HTTP request model: координата любой записи бронирования
type CancelBookingRequest struct {
	CourtID int64  `json:"courtId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	RemovedRecords int      `json:"removedRecords"`
	Times          []string `json:"times"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() (*models.CancelRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.CancelRequest{
		CourtID: r.CourtID,
		Date:    date,
		Time:    t,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.CancelResponse) *CancelBookingResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}
	return &CancelBookingResponse{
		RemovedRecords: resp.RemovedRecords,
		Times:          times,
	}
}
