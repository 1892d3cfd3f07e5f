package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/domain"
	clientRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/clients"
	"github.com/tennispark/TP-AdminService/internal/service/clients/models"
)

// Service сервис справочника клиентов
type Service struct {
	clientRepo   ClientRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		clientRepo:   clientRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает клиентов по поисковой строке и статусу
func (s *Service) List(ctx context.Context, req *models.ListClientsRequest) ([]*domain.Client, error) {
	if req.Status != nil && !req.Status.IsValid() {
		s.logger.Warn("List: invalid status=%s", *req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	list, err := s.clientRepo.List(ctx, clientRepo.Filter{
		Search: req.Search,
		Status: req.Status,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// Get возвращает клиента вместе с историей его бронирований
func (s *Service) Get(ctx context.Context, id int64) (*models.ClientWithHistory, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Get: client id=%d not found", id)
			return nil, fmt.Errorf("%w: id %d", ErrClientNotFound, id)
		}
		s.logger.Error("Get: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	history, err := s.clientRepo.GetBookingHistory(ctx, id)
	if err != nil {
		s.logger.Error("Get: failed to get history for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - failed to get history: %v", ErrInternal, err)
	}

	return &models.ClientWithHistory{
		Client:  client,
		History: history,
	}, nil
}

// Create добавляет клиента в справочник
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*domain.Client, error) {
	s.logger.Info("Create: creating client name=%s", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	status := domain.ClientActive
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = *req.Status
	}

	client := &domain.Client{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Status:           status,
		RegistrationDate: s.timeProvider.Now(),
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created client id=%d, name=%s", created.ID, created.Name)
	return created, nil
}
