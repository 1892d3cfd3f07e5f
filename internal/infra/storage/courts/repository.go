package courts

import (
	"context"
	"sort"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// Repository справочник кортов. Корты задаются конфигурацией при старте
// сервиса и не изменяются, поэтому репозиторий не нуждается в блокировках.
type Repository struct {
	byID  map[int64]*domain.Court
	order []int64
}

// NewRepository создает репозиторий из статического списка кортов
func NewRepository(list []*domain.Court) *Repository {
	byID := make(map[int64]*domain.Court, len(list))
	order := make([]int64, 0, len(list))
	for _, court := range list {
		copied := *court
		byID[court.ID] = &copied
		order = append(order, court.ID)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	return &Repository{byID: byID, order: order}
}

// GetByID возвращает корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	court, ok := r.byID[id]
	if !ok {
		return nil, ErrCourtNotFound
	}
	copied := *court
	return &copied, nil
}

// List возвращает все корты в стабильном порядке
func (r *Repository) List(ctx context.Context) ([]*domain.Court, error) {
	result := make([]*domain.Court, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.byID[id]
		result = append(result, &copied)
	}
	return result, nil
}

// Count возвращает количество кортов
func (r *Repository) Count(ctx context.Context) (int, error) {
	return len(r.byID), nil
}
