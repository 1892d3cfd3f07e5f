package validate_booking

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	createBooking "github.com/tennispark/TP-AdminService/internal/usecase/create_booking"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	CourtID         int64  `json:"courtId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ValidateBookingResponse результат проверки: valid=false сопровождается
// причиной и рекомендацией
type ValidateBookingResponse struct {
	Valid      bool   `json:"valid"`
	Reason     string `json:"reason,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateBookingRequest) ToUseCaseRequest() (*createBooking.ValidateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.ValidateRequest{
		CourtID:         r.CourtID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}
