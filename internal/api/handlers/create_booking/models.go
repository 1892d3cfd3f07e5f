package create_booking

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
	createBooking "github.com/tennispark/TP-AdminService/internal/usecase/create_booking"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID         int64   `json:"courtId"`
	Date            string  `json:"date"`      // "2025-07-03"
	StartTime       string  `json:"startTime"` // "18:00"
	DurationMinutes int     `json:"durationMinutes"`
	BookingType     string  `json:"bookingType"` // "court" | "training_with_coach"
	CoachID         *int64  `json:"coachId,omitempty"`
	ClientName      string  `json:"clientName"`
	ClientPhone     string  `json:"clientPhone"`
	ClientEmail     *string `json:"clientEmail,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Force           bool    `json:"force,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Slots           []*handlers.SlotResponse `json:"slots"`
	TotalPrice      int                      `json:"totalPrice"`
	DurationMinutes int                      `json:"durationMinutes"`
}

// GapWarningResponse тело ответа 422: рекомендательное предупреждение валидатора
type GapWarningResponse struct {
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CourtID:         r.CourtID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Kind:            createBooking.BookingKind(r.BookingType),
		CoachID:         r.CoachID,
		ClientName:      r.ClientName,
		ClientPhone:     r.ClientPhone,
		ClientEmail:     r.ClientEmail,
		Notes:           r.Notes,
		Force:           r.Force,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Slots:           handlers.FromDomainSlots(resp.Slots),
		TotalPrice:      resp.TotalPrice,
		DurationMinutes: resp.EffectiveMinutes,
	}
}
