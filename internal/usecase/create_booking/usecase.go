package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/infra/storage/coaches"
	"github.com/tennispark/TP-AdminService/internal/infra/storage/courts"
)

// UseCase use case создания бронирования.
//
// Бронирование раскладывается в цепочку 30-минутных записей и записывается
// атомарно: существующие записи по тем же координатам (корт, дата, время)
// вытесняются. Перед записью работает рекомендательный валидатор изолированных
// слотов; его предупреждение блокирует запись только до тех пор, пока
// вызывающая сторона не повторит запрос с Force=true.
type UseCase struct {
	slotRepo  SlotRepository
	courtRepo CourtRepository
	coachRepo CoachRepository
	idGen     IDGenerator
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	slotRepo SlotRepository,
	courtRepo CourtRepository,
	coachRepo CoachRepository,
	idGen IDGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		courtRepo: courtRepo,
		coachRepo: coachRepo,
		idGen:     idGen,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute создает бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%d, date=%s, start=%s, duration=%d, kind=%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, req.Kind)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	effective := effectiveDuration(req.Kind, req.DurationMinutes)
	if err := validateWithinHours(req.StartTime, effective); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 2. Получаем корт и, для тренировки, тренера
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courts.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court %d not found", req.CourtID)
			return nil, fmt.Errorf("%w: id %d", ErrCourtNotFound, req.CourtID)
		}
		uc.logger.Error("CreateBooking: failed to get court: %v", err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	var coach *domain.Coach
	if req.Kind == KindTraining {
		coach, err = uc.coachRepo.GetByID(ctx, *req.CoachID)
		if err != nil {
			if errors.Is(err, coaches.ErrCoachNotFound) {
				uc.logger.Warn("CreateBooking: coach %d not found", *req.CoachID)
				return nil, fmt.Errorf("%w: id %d", ErrCoachNotFound, *req.CoachID)
			}
			uc.logger.Error("CreateBooking: failed to get coach: %v", err)
			return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}
	}

	// 3. Рекомендательная проверка изолированных слотов. Force пропускает
	// запись несмотря на предупреждение.
	stored, err := uc.slotRepo.ListByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	if warning := validateIsolatedGap(stored, req.StartTime, effective); warning != nil && !req.Force {
		uc.logger.Info("CreateBooking: isolated slot warning for court=%d, start=%s", req.CourtID, req.StartTime)
		return &Response{
			Created:          false,
			Warning:          warning,
			EffectiveMinutes: effective,
		}, nil
	}

	// 4. Раскладываем бронирование в 30-минутные записи
	totalPrice := bookingTotalPrice(req, court, coach, effective)
	slots, err := buildBookingSlots(uc.idGen, req, coach, totalPrice, effective)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to build slots: %v", err)
		return nil, err
	}

	// 5. Записываем, вытесняя существующие записи по тем же координатам
	if err := uc.slotRepo.ReplaceByCoordinates(ctx, slots); err != nil {
		uc.logger.Error("CreateBooking: failed to write slots: %v", err)
		return nil, fmt.Errorf("%w: failed to write slots: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(string(req.Kind))
		uc.metrics.AddSlotsWritten(len(slots))
	}

	uc.logger.Info("CreateBooking: created %d slot records, court=%d, start=%s, total=%d",
		len(slots), req.CourtID, req.StartTime, totalPrice)

	return &Response{
		Created:          true,
		Slots:            slots,
		TotalPrice:       totalPrice,
		EffectiveMinutes: effective,
	}, nil
}

// Validate выполняет только проверку изолированных слотов, без записи.
// Обслуживает предварительную проверку формы бронирования.
func (uc *UseCase) Validate(ctx context.Context, req *ValidateRequest) (*GapWarning, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes <= 0 || req.DurationMinutes%domain.SlotStepMinutes != 0 {
		return nil, fmt.Errorf("%w: duration must be a positive multiple of %d minutes",
			ErrInvalidInput, domain.SlotStepMinutes)
	}

	stored, err := uc.slotRepo.ListByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	return validateIsolatedGap(stored, req.StartTime, req.DurationMinutes), nil
}
