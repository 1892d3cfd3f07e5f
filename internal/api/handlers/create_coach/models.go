package create_coach

import (
	"github.com/tennispark/TP-AdminService/internal/service/coaches/models"
)

// CreateCoachRequest HTTP request model
type CreateCoachRequest struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	ExperienceYears int      `json:"experienceYears"`
	HourlyRate      int      `json:"hourlyRate"`
	Color           string   `json:"color,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCoachRequest) ToServiceRequest() *models.CreateCoachRequest {
	return &models.CreateCoachRequest{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Specializations: r.Specializations,
		ExperienceYears: r.ExperienceYears,
		HourlyRate:      r.HourlyRate,
		Color:           r.Color,
	}
}
