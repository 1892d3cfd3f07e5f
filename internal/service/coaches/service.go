package coaches

import (
	"context"
	"errors"
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/domain"
	coachRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/coaches"
	"github.com/tennispark/TP-AdminService/internal/service/coaches/models"
)

// Service сервис справочника тренеров
type Service struct {
	coachRepo    CoachRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса тренеров
func NewService(coachRepo CoachRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		coachRepo:    coachRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает всех тренеров
func (s *Service) List(ctx context.Context) ([]*domain.Coach, error) {
	coaches, err := s.coachRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return coaches, nil
}

// Create добавляет тренера в справочник
func (s *Service) Create(ctx context.Context, req *models.CreateCoachRequest) (*domain.Coach, error) {
	s.logger.Info("Create: creating coach name=%s", req.Name)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	coach := &domain.Coach{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Specializations: req.Specializations,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		IsActive:        true,
		Color:           req.Color,
		CreatedAt:       s.timeProvider.Now(),
	}

	created, err := s.coachRepo.Create(ctx, coach)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created coach id=%d, name=%s", created.ID, created.Name)
	return created, nil
}

// Update обновляет тренера; nil-поля запроса не изменяются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCoachRequest) (*domain.Coach, error) {
	s.logger.Info("Update: updating coach id=%d", id)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for coach id=%d: %v", id, err)
		return nil, err
	}

	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, coachRepo.ErrCoachNotFound) {
			s.logger.Warn("Update: coach id=%d not found", id)
			return nil, fmt.Errorf("%w: id %d", ErrCoachNotFound, id)
		}
		s.logger.Error("Update: repository error for coach id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.Apply(coach)

	if err := s.coachRepo.Update(ctx, coach); err != nil {
		if errors.Is(err, coachRepo.ErrCoachNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCoachNotFound, id)
		}
		s.logger.Error("Update: repository error for coach id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated coach id=%d", id)
	return coach, nil
}

// validateCreate валидирует запрос создания тренера
func validateCreate(req *models.CreateCoachRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourly rate must be positive", ErrInvalidInput)
	}
	if req.ExperienceYears < 0 {
		return fmt.Errorf("%w: experience years cannot be negative", ErrInvalidInput)
	}
	for _, name := range req.Specializations {
		if !domain.IsKnownSpecialization(name) {
			return fmt.Errorf("%w: unknown specialization %q", ErrInvalidInput, name)
		}
	}
	return nil
}

// validateUpdate валидирует запрос обновления тренера
func validateUpdate(req *models.UpdateCoachRequest) error {
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if req.Phone != nil && *req.Phone == "" {
		return fmt.Errorf("%w: phone cannot be empty", ErrInvalidInput)
	}
	if req.HourlyRate != nil && *req.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourly rate must be positive", ErrInvalidInput)
	}
	if req.ExperienceYears != nil && *req.ExperienceYears < 0 {
		return fmt.Errorf("%w: experience years cannot be negative", ErrInvalidInput)
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	for _, name := range req.Specializations {
		if !domain.IsKnownSpecialization(name) {
			return fmt.Errorf("%w: unknown specialization %q", ErrInvalidInput, name)
		}
	}
	return nil
}
