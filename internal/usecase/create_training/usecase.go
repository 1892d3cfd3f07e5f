package create_training

import (
	"context"
	"errors"
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/infra/storage/coaches"
	"github.com/tennispark/TP-AdminService/internal/infra/storage/courts"
)

// UseCase use case резервирования времени тренером.
//
// Резервирование пишется как цепочка записей trainer_reserved без клиента и
// без цены. Длительность снизу ограничена минимумом тренировки: запрос короче
// 60 минут молча расширяется до двух 30-минутных записей.
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

// Execute резервирует окно под тренировку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTraining: coach=%d, court=%d, date=%s, start=%s, duration=%d",
		req.CoachID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTraining: validation failed: %v", err)
		return nil, err
	}

	// Минимум две записи независимо от запрошенной длительности
	count := req.DurationMinutes / domain.SlotStepMinutes
	if count < domain.MinTrainingDurationMin/domain.SlotStepMinutes {
		count = domain.MinTrainingDurationMin / domain.SlotStepMinutes
	}
	effective := count * domain.SlotStepMinutes

	if err := validateWithinHours(req.StartTime, effective); err != nil {
		uc.logger.Warn("CreateTraining: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта и тренера
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courts.ErrCourtNotFound) {
			uc.logger.Warn("CreateTraining: court %d not found", req.CourtID)
			return nil, fmt.Errorf("%w: id %d", ErrCourtNotFound, req.CourtID)
		}
		uc.logger.Error("CreateTraining: failed to get court: %v", err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	coach, err := uc.coachRepo.GetByID(ctx, req.CoachID)
	if err != nil {
		if errors.Is(err, coaches.ErrCoachNotFound) {
			uc.logger.Warn("CreateTraining: coach %d not found", req.CoachID)
			return nil, fmt.Errorf("%w: id %d", ErrCoachNotFound, req.CoachID)
		}
		uc.logger.Error("CreateTraining: failed to get coach: %v", err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	// 3. Строим записи trainer_reserved
	slots := make([]*domain.Slot, 0, count)
	t := req.StartTime
	for i := 0; i < count; i++ {
		slots = append(slots, &domain.Slot{
			ID:          uc.idGen.NewID(),
			CourtID:     req.CourtID,
			Date:        req.Date,
			Time:        t,
			Status:      domain.StatusTrainerReserved,
			TrainerName: &coach.Name,
			Price:       0,
			Duration:    effective,
		})

		next, err := t.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			uc.logger.Error("CreateTraining: failed to advance slot time from %s: %v", t, err)
			return nil, fmt.Errorf("%w: failed to advance slot time: %v", ErrInternal, err)
		}
		t = next
	}

	// 4. Записываем, вытесняя существующие записи по тем же координатам
	if err := uc.slotRepo.ReplaceByCoordinates(ctx, slots); err != nil {
		uc.logger.Error("CreateTraining: failed to write slots: %v", err)
		return nil, fmt.Errorf("%w: failed to write slots: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.AddSlotsWritten(len(slots))
	}

	uc.logger.Info("CreateTraining: reserved %d slot records, coach=%s, court=%d, start=%s",
		len(slots), coach.Name, req.CourtID, req.StartTime)

	return &Response{
		Slots:            slots,
		EffectiveMinutes: effective,
	}, nil
}
