package models

import (
	"github.com/tennispark/TP-AdminService/internal/domain"
)

// ListClientsRequest запрос списка клиентов с фильтрацией
type ListClientsRequest struct {
	Search string               // подстрока имени, телефона или email
	Status *domain.ClientStatus // nil - без фильтра по статусу
}

// CreateClientRequest запрос создания клиента
type CreateClientRequest struct {
	Name   string
	Phone  string
	Email  *string
	Status *domain.ClientStatus // nil - active
}

// ClientWithHistory клиент вместе с историей бронирований
type ClientWithHistory struct {
	Client  *domain.Client
	History []*domain.BookingHistoryEntry
}
