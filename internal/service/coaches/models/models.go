package models

import (
	"github.com/tennispark/TP-AdminService/internal/domain"
)

// CreateCoachRequest запрос создания тренера
type CreateCoachRequest struct {
	Name            string
	Phone           string
	Email           string
	Specializations []string
	ExperienceYears int
	HourlyRate      int
	Color           string
}

// UpdateCoachRequest запрос обновления тренера. Nil-поля не изменяются.
type UpdateCoachRequest struct {
	Name            *string
	Phone           *string
	Email           *string
	Specializations []string
	ExperienceYears *int
	HourlyRate      *int
	Rating          *float64
	IsActive        *bool
	Color           *string
}

// Apply накладывает заполненные поля запроса на тренера
func (r *UpdateCoachRequest) Apply(coach *domain.Coach) {
	if r.Name != nil {
		coach.Name = *r.Name
	}
	if r.Phone != nil {
		coach.Phone = *r.Phone
	}
	if r.Email != nil {
		coach.Email = *r.Email
	}
	if r.Specializations != nil {
		coach.Specializations = r.Specializations
	}
	if r.ExperienceYears != nil {
		coach.ExperienceYears = *r.ExperienceYears
	}
	if r.HourlyRate != nil {
		coach.HourlyRate = *r.HourlyRate
	}
	if r.Rating != nil {
		coach.Rating = *r.Rating
	}
	if r.IsActive != nil {
		coach.IsActive = *r.IsActive
	}
	if r.Color != nil {
		coach.Color = *r.Color
	}
}
