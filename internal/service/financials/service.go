package financials

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// Service сервис финансовой сводки дня.
//
// Сводка считается по записанным 30-минутным записям: агрегированную цену
// бронирования несет первая запись, продолжения нулевые, поэтому простая
// сумма по статусу дает точный итог без двойного счета. Счетчик неоплаченных
// считает записи, а не бронирования.
type Service struct {
	slotRepo  SlotRepository
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса финансов
func NewService(slotRepo SlotRepository, courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		slotRepo:  slotRepo,
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Daily считает финансовую сводку на дату
func (s *Service) Daily(ctx context.Context, date time.Time) (*domain.DailyFinancials, error) {
	s.logger.Info("Daily: calculating financials for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	daySlots, err := s.slotRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("Daily: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	courtCount, err := s.courtRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Daily: failed to count courts: %v", err)
		return nil, fmt.Errorf("%w: failed to count courts: %v", ErrInternal, err)
	}

	result := &domain.DailyFinancials{}
	occupied := 0
	for _, slot := range daySlots {
		if slot.Status.IsOccupied() {
			occupied++
		}
		switch {
		case slot.Status.IsPaid():
			result.TotalPaid += slot.Price
		case slot.Status.IsUnpaid():
			result.TotalUnpaid += slot.Price
			result.UnpaidCount++
		}
	}

	totalSlots := courtCount * domain.TimeLabelCount()
	if totalSlots > 0 {
		result.OccupancyRate = int(math.Round(float64(occupied) / float64(totalSlots) * 100))
	}

	s.logger.Info("Daily: date=%s, paid=%d, unpaid=%d, unpaidCount=%d, occupancy=%d%%",
		date.Format(domain.DateFormat), result.TotalPaid, result.TotalUnpaid, result.UnpaidCount, result.OccupancyRate)

	return result, nil
}
