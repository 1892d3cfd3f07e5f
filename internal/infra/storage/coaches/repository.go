package coaches

import (
	"context"
	"sort"
	"sync"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// Repository in-memory справочник тренеров
type Repository struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.Coach
	nextID int64
}

// NewRepository создает пустой репозиторий тренеров
func NewRepository() *Repository {
	return &Repository{
		byID:   make(map[int64]*domain.Coach),
		nextID: 1,
	}
}

// Seed загружает начальный набор тренеров (демо-данные)
func (r *Repository) Seed(list []*domain.Coach) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, coach := range list {
		copied := *coach
		r.byID[coach.ID] = &copied
		if coach.ID >= r.nextID {
			r.nextID = coach.ID + 1
		}
	}
}

// GetByID возвращает тренера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coach, ok := r.byID[id]
	if !ok {
		return nil, ErrCoachNotFound
	}
	copied := *coach
	return &copied, nil
}

// List возвращает всех тренеров, отсортированных по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Coach, 0, len(r.byID))
	for _, coach := range r.byID {
		copied := *coach
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// Create добавляет нового тренера и возвращает его с присвоенным ID
func (r *Repository) Create(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *coach
	copied.ID = r.nextID
	r.nextID++
	r.byID[copied.ID] = &copied

	result := copied
	return &result, nil
}

// Update обновляет существующего тренера
func (r *Repository) Update(ctx context.Context, coach *domain.Coach) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[coach.ID]; !ok {
		return ErrCoachNotFound
	}

	copied := *coach
	r.byID[coach.ID] = &copied
	return nil
}
