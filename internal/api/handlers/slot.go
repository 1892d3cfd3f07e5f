package handlers

import (
	"github.com/tennispark/TP-AdminService/internal/domain"
)

// SlotResponse HTTP-модель 30-минутной записи расписания, общая для всех
// обработчиков, возвращающих слоты
type SlotResponse struct {
	ID          string  `json:"id"`
	CourtID     int64   `json:"courtId"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	TrainerName *string `json:"trainerName,omitempty"`
	Price       int     `json:"price"`
	Duration    int     `json:"duration"`
	Notes       *string `json:"notes,omitempty"`
	BlockReason *string `json:"blockReason,omitempty"`
}

// FromDomainSlot конвертирует доменный слот в HTTP-модель
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID,
		CourtID:     s.CourtID,
		Date:        s.Date.Format(domain.DateFormat),
		Time:        s.Time.String(),
		Status:      string(s.Status),
		ClientName:  s.ClientName,
		ClientPhone: s.ClientPhone,
		ClientEmail: s.ClientEmail,
		TrainerName: s.TrainerName,
		Price:       s.Price,
		Duration:    s.Duration,
		Notes:       s.Notes,
		BlockReason: s.BlockReason,
	}
}

// FromDomainSlots конвертирует список слотов
func FromDomainSlots(slots []*domain.Slot) []*SlotResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
