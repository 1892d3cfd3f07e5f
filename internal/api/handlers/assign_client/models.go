package assign_client

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/schedule/models"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// AssignClientRequest HTTP request model: координата любой записи резерва
// тренера и данные клиента
type AssignClientRequest struct {
	CourtID     int64   `json:"courtId"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
}

// AssignClientResponse HTTP response model
type AssignClientResponse struct {
	Slots []*handlers.SlotResponse `json:"slots"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AssignClientRequest) ToServiceRequest() (*models.AssignClientRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.AssignClientRequest{
		CourtID:     r.CourtID,
		Date:        date,
		Time:        t,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AssignClientResponse) *AssignClientResponse {
	return &AssignClientResponse{Slots: handlers.FromDomainSlots(resp.Slots)}
}
