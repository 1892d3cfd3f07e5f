package update_coach

import (
	"github.com/tennispark/TP-AdminService/internal/service/coaches/models"
)

// UpdateCoachRequest HTTP request model; отсутствующие поля не изменяются
type UpdateCoachRequest struct {
	Name            *string  `json:"name,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	ExperienceYears *int     `json:"experienceYears,omitempty"`
	HourlyRate      *int     `json:"hourlyRate,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
	Color           *string  `json:"color,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCoachRequest) ToServiceRequest() *models.UpdateCoachRequest {
	return &models.UpdateCoachRequest{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Specializations: r.Specializations,
		ExperienceYears: r.ExperienceYears,
		HourlyRate:      r.HourlyRate,
		Rating:          r.Rating,
		IsActive:        r.IsActive,
		Color:           r.Color,
	}
}
