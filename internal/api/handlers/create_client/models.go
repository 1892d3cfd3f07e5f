package create_client

import (
	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/clients/models"
)

// CreateClientRequest HTTP request model
type CreateClientRequest struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Email  *string `json:"email,omitempty"`
	Status *string `json:"status,omitempty"` // по умолчанию active
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateClientRequest) ToServiceRequest() *models.CreateClientRequest {
	req := &models.CreateClientRequest{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
	if r.Status != nil {
		status := domain.ClientStatus(*r.Status)
		req.Status = &status
	}
	return req
}
