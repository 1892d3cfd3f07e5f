package clients

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// Filter параметры поиска по справочнику клиентов
type Filter struct {
	Search string               // подстрока имени, телефона или email (без учета регистра)
	Status *domain.ClientStatus // фильтр по статусу (nil - все)
}

// Repository in-memory справочник клиентов
type Repository struct {
	mu      sync.RWMutex
	byID    map[int64]*domain.Client
	history map[int64][]*domain.BookingHistoryEntry
	nextID  int64
}

// NewRepository создает пустой репозиторий клиентов
func NewRepository() *Repository {
	return &Repository{
		byID:    make(map[int64]*domain.Client),
		history: make(map[int64][]*domain.BookingHistoryEntry),
		nextID:  1,
	}
}

// Seed загружает начальный набор клиентов и их историю бронирований
func (r *Repository) Seed(list []*domain.Client, history []*domain.BookingHistoryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, client := range list {
		copied := *client
		r.byID[client.ID] = &copied
		if client.ID >= r.nextID {
			r.nextID = client.ID + 1
		}
	}
	for _, entry := range history {
		copied := *entry
		r.history[entry.ClientID] = append(r.history[entry.ClientID], &copied)
	}
}

// GetByID возвращает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.byID[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

// List возвращает клиентов с фильтрацией по подстроке и статусу
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	result := make([]*domain.Client, 0, len(r.byID))
	for _, client := range r.byID {
		if filter.Status != nil && client.Status != *filter.Status {
			continue
		}
		if search != "" && !matchesSearch(client, search) {
			continue
		}
		copied := *client
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// Create добавляет нового клиента и возвращает его с присвоенным ID
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *client
	copied.ID = r.nextID
	r.nextID++
	r.byID[copied.ID] = &copied

	result := copied
	return &result, nil
}

// GetBookingHistory возвращает историю бронирований клиента
func (r *Repository) GetBookingHistory(ctx context.Context, clientID int64) ([]*domain.BookingHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.byID[clientID]; !ok {
		return nil, ErrClientNotFound
	}

	entries := r.history[clientID]
	result := make([]*domain.BookingHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		copied := *entry
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })

	return result, nil
}

// matchesSearch проверяет совпадение по имени, телефону или email
func matchesSearch(client *domain.Client, search string) bool {
	if strings.Contains(strings.ToLower(client.Name), search) {
		return true
	}
	if strings.Contains(client.Phone, search) {
		return true
	}
	if client.Email != nil && strings.Contains(strings.ToLower(*client.Email), search) {
		return true
	}
	return false
}
