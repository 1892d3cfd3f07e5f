package handlers

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// CoachResponse HTTP-модель тренера, общая для обработчиков справочника
type CoachResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email,omitempty"`
	Specializations []string `json:"specializations"`
	ExperienceYears int      `json:"experienceYears"`
	HourlyRate      int      `json:"hourlyRate"`
	Rating          float64  `json:"rating"`
	IsActive        bool     `json:"isActive"`
	Color           string   `json:"color,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}

// FromDomainCoach конвертирует доменного тренера в HTTP-модель
func FromDomainCoach(c *domain.Coach) *CoachResponse {
	return &CoachResponse{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		Specializations: c.Specializations,
		ExperienceYears: c.ExperienceYears,
		HourlyRate:      c.HourlyRate,
		Rating:          c.Rating,
		IsActive:        c.IsActive,
		Color:           c.Color,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

// ClientResponse HTTP-модель клиента, общая для обработчиков справочника
type ClientResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Email            *string `json:"email,omitempty"`
	TotalBookings    int     `json:"totalBookings"`
	TotalSpent       int     `json:"totalSpent"`
	Status           string  `json:"status"`
	LastBooking      *string `json:"lastBooking,omitempty"`
	RegistrationDate string  `json:"registrationDate"`
}

// FromDomainClient конвертирует доменного клиента в HTTP-модель
func FromDomainClient(c *domain.Client) *ClientResponse {
	resp := &ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		Email:            c.Email,
		TotalBookings:    c.TotalBookings,
		TotalSpent:       c.TotalSpent,
		Status:           string(c.Status),
		RegistrationDate: c.RegistrationDate.Format(domain.DateFormat),
	}
	if c.LastBooking != nil {
		formatted := c.LastBooking.Format(domain.DateFormat)
		resp.LastBooking = &formatted
	}
	return resp
}
