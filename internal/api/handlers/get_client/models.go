package get_client

import (
	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/clients/models"
)

// ClientWithHistoryResponse клиент вместе с историей бронирований
type ClientWithHistoryResponse struct {
	Client  *handlers.ClientResponse `json:"client"`
	History []*HistoryEntryResponse  `json:"history"`
}

// HistoryEntryResponse одна запись истории бронирований
type HistoryEntryResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	CourtName string `json:"courtName"`
	Duration  int    `json:"duration"`
	Price     int    `json:"price"`
	Kind      string `json:"kind"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ClientWithHistory) *ClientWithHistoryResponse {
	history := make([]*HistoryEntryResponse, 0, len(resp.History))
	for _, entry := range resp.History {
		history = append(history, &HistoryEntryResponse{
			ID:        entry.ID,
			Date:      entry.Date.Format(domain.DateFormat),
			CourtName: entry.CourtName,
			Duration:  entry.Duration,
			Price:     entry.Price,
			Kind:      entry.Kind,
		})
	}

	return &ClientWithHistoryResponse{
		Client:  handlers.FromDomainClient(resp.Client),
		History: history,
	}
}
