package slots

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// coordinate уникальный адрес слота в расписании
type coordinate struct {
	courtID int64
	date    string // YYYY-MM-DD
	time    types.TimeString
}

// Repository in-memory репозиторий слотов расписания.
//
// Вся коллекция слотов хранится в одной map под RWMutex: по спецификации
// системы существует единственный логический писатель (текущее действие
// администратора), а свободные слоты не хранятся вовсе - они вычисляются
// на лету. Инвариант "не более одной записи на координату" обеспечивается
// самой структурой map.
type Repository struct {
	mu    sync.RWMutex
	slots map[coordinate]*domain.Slot
}

// NewRepository создает пустой репозиторий слотов
func NewRepository() *Repository {
	return &Repository{
		slots: make(map[coordinate]*domain.Slot),
	}
}

func coordinateOf(s *domain.Slot) coordinate {
	return coordinate{
		courtID: s.CourtID,
		date:    s.Date.Format(domain.DateFormat),
		time:    s.Time,
	}
}

// Seed загружает начальный набор слотов (демо-данные).
// Записи с дублирующимися координатами перезаписывают друг друга.
func (r *Repository) Seed(slots []*domain.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range slots {
		if !s.Status.IsValid() || s.Status == domain.StatusFree {
			return fmt.Errorf("%w: status=%q at court=%d time=%s", ErrInvalidSlot, s.Status, s.CourtID, s.Time)
		}
		copied := *s
		r.slots[coordinateOf(s)] = &copied
	}

	return nil
}

// GetByCoordinate возвращает слот по координате (корт, дата, время)
func (r *Repository) GetByCoordinate(ctx context.Context, courtID int64, date time.Time, t types.TimeString) (*domain.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.slots[coordinate{courtID: courtID, date: date.Format(domain.DateFormat), time: t}]
	if !ok {
		return nil, ErrSlotNotFound
	}

	copied := *slot
	return &copied, nil
}

// ListByDate возвращает все слоты на дату, отсортированные по корту и времени
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dateStr := date.Format(domain.DateFormat)
	result := make([]*domain.Slot, 0)
	for coord, slot := range r.slots {
		if coord.date != dateStr {
			continue
		}
		copied := *slot
		result = append(result, &copied)
	}

	sortSlots(result)
	return result, nil
}

// ListByCourtAndDate возвращает слоты одного корта на дату, отсортированные по времени
func (r *Repository) ListByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dateStr := date.Format(domain.DateFormat)
	result := make([]*domain.Slot, 0)
	for coord, slot := range r.slots {
		if coord.courtID != courtID || coord.date != dateStr {
			continue
		}
		copied := *slot
		result = append(result, &copied)
	}

	sortSlots(result)
	return result, nil
}

// ReplaceByCoordinates записывает новые слоты, предварительно удалив любые
// существующие записи по тем же координатам (замена целиком, не слияние).
func (r *Repository) ReplaceByCoordinates(ctx context.Context, newSlots []*domain.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range newSlots {
		if !s.Status.IsValid() || s.Status == domain.StatusFree {
			return fmt.Errorf("%w: status=%q at court=%d time=%s", ErrInvalidSlot, s.Status, s.CourtID, s.Time)
		}
	}

	for _, s := range newSlots {
		copied := *s
		r.slots[coordinateOf(s)] = &copied
	}

	return nil
}

// UpdateByCoordinates заменяет записи по точным координатам на переданные.
// В отличие от ReplaceByCoordinates используется, когда координаты уже заняты
// и нужно перезаписать сами записи (например, конвертация резерва тренера).
func (r *Repository) UpdateByCoordinates(ctx context.Context, updated []*domain.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range updated {
		if _, ok := r.slots[coordinateOf(s)]; !ok {
			return fmt.Errorf("%w: court=%d date=%s time=%s", ErrSlotNotFound, s.CourtID, s.Date.Format(domain.DateFormat), s.Time)
		}
	}

	for _, s := range updated {
		copied := *s
		r.slots[coordinateOf(s)] = &copied
	}

	return nil
}

// DeleteByCoordinates удаляет слоты по координатам, возвращает число удаленных
func (r *Repository) DeleteByCoordinates(ctx context.Context, courtID int64, date time.Time, times []types.TimeString) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dateStr := date.Format(domain.DateFormat)
	deleted := 0
	for _, t := range times {
		coord := coordinate{courtID: courtID, date: dateStr, time: t}
		if _, ok := r.slots[coord]; ok {
			delete(r.slots, coord)
			deleted++
		}
	}

	return deleted, nil
}

// sortSlots сортирует слоты по корту, затем по времени
func sortSlots(slots []*domain.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].CourtID != slots[j].CourtID {
			return slots[i].CourtID < slots[j].CourtID
		}
		return slots[i].Time.IsBefore(slots[j].Time)
	})
}
