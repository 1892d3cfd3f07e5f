package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	slotRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/slots"
	"github.com/tennispark/TP-AdminService/internal/service/schedule/models"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// Service сервис точечных операций над расписанием: отмена бронирования,
// назначение клиента на резерв тренера и блокировка слотов.
//
// Все операции адресуются координатой (корт, дата, время) и работают с целой
// непрерывной цепочкой записей одного бронирования, а не с одной записью.
type Service struct {
	slotRepo  SlotRepository
	courtRepo CourtRepository
	idGen     IDGenerator
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(slotRepo SlotRepository, courtRepo CourtRepository, idGen IDGenerator, logger Logger) *Service {
	return &Service{
		slotRepo:  slotRepo,
		courtRepo: courtRepo,
		idGen:     idGen,
		logger:    logger,
	}
}

// Cancel отменяет бронирование: удаляет всю непрерывную цепочку записей с
// одинаковой подписью (статус, клиент, тренер), содержащую координату.
// Записи удаляются физически, мягкого удаления нет.
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: court=%d, date=%s, time=%s", req.CourtID, req.Date.Format(domain.DateFormat), req.Time)

	if err := validateCoordinate(req.CourtID, req.Date, req.Time); err != nil {
		s.logger.Warn("Cancel: validation failed: %v", err)
		return nil, err
	}

	// Находим целевую запись и всю цепочку её бронирования
	run, err := s.bookingRun(ctx, req.CourtID, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Cancel: no slot at court=%d, time=%s", req.CourtID, req.Time)
			return nil, fmt.Errorf("%w: court=%d time=%s", ErrSlotNotFound, req.CourtID, req.Time)
		}
		s.logger.Error("Cancel: failed to resolve booking run: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve booking run: %v", ErrInternal, err)
	}

	times := make([]types.TimeString, 0, len(run))
	for _, slot := range run {
		times = append(times, slot.Time)
	}

	removed, err := s.slotRepo.DeleteByCoordinates(ctx, req.CourtID, req.Date, times)
	if err != nil {
		s.logger.Error("Cancel: failed to delete slots: %v", err)
		return nil, fmt.Errorf("%w: failed to delete slots: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: removed %d slot records, court=%d, from=%s", removed, req.CourtID, times[0])
	return &models.CancelResponse{
		RemovedRecords: removed,
		Times:          times,
	}, nil
}

// AssignClient назначает клиента на резерв тренера: вся непрерывная цепочка
// записей trainer_reserved с тем же тренером становится training_unpaid с
// данными клиента.
func (s *Service) AssignClient(ctx context.Context, req *models.AssignClientRequest) (*models.AssignClientResponse, error) {
	s.logger.Info("AssignClient: court=%d, date=%s, time=%s, client=%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.Time, req.ClientName)

	if err := validateCoordinate(req.CourtID, req.Date, req.Time); err != nil {
		s.logger.Warn("AssignClient: validation failed: %v", err)
		return nil, err
	}
	if req.ClientName == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if req.ClientPhone == "" {
		return nil, fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}

	run, err := s.bookingRun(ctx, req.CourtID, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("AssignClient: no slot at court=%d, time=%s", req.CourtID, req.Time)
			return nil, fmt.Errorf("%w: court=%d time=%s", ErrSlotNotFound, req.CourtID, req.Time)
		}
		s.logger.Error("AssignClient: failed to resolve booking run: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve booking run: %v", ErrInternal, err)
	}

	if run[0].Status != domain.StatusTrainerReserved {
		s.logger.Warn("AssignClient: slot at court=%d, time=%s has status=%s", req.CourtID, req.Time, run[0].Status)
		return nil, fmt.Errorf("%w: status=%s", ErrNotReserved, run[0].Status)
	}

	clientName := req.ClientName
	clientPhone := req.ClientPhone
	updated := make([]*domain.Slot, 0, len(run))
	for _, slot := range run {
		converted := *slot
		converted.Status = domain.StatusTrainingUnpaid
		converted.ClientName = &clientName
		converted.ClientPhone = &clientPhone
		converted.ClientEmail = req.ClientEmail
		updated = append(updated, &converted)
	}

	if err := s.slotRepo.UpdateByCoordinates(ctx, updated); err != nil {
		s.logger.Error("AssignClient: failed to update slots: %v", err)
		return nil, fmt.Errorf("%w: failed to update slots: %v", ErrInternal, err)
	}

	s.logger.Info("AssignClient: converted %d slot records to training, court=%d, client=%s",
		len(updated), req.CourtID, req.ClientName)
	return &models.AssignClientResponse{Slots: updated}, nil
}

// Block блокирует слоты корта (ремонт, мероприятие): пишет цепочку записей
// blocked с причиной, вытесняя существующие записи по тем же координатам.
func (s *Service) Block(ctx context.Context, req *models.BlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("Block: court=%d, date=%s, start=%s, duration=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if err := validateCoordinate(req.CourtID, req.Date, req.StartTime); err != nil {
		s.logger.Warn("Block: validation failed: %v", err)
		return nil, err
	}
	if req.DurationMinutes <= 0 || req.DurationMinutes%domain.SlotStepMinutes != 0 {
		return nil, fmt.Errorf("%w: duration must be a positive multiple of %d minutes",
			ErrInvalidInput, domain.SlotStepMinutes)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: block reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxBlockReasonLength {
		return nil, fmt.Errorf("%w: block reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}

	// Проверяем существование корта
	if _, err := s.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		s.logger.Warn("Block: court %d not found", req.CourtID)
		return nil, fmt.Errorf("%w: id %d", ErrCourtNotFound, req.CourtID)
	}

	reason := req.Reason
	count := req.DurationMinutes / domain.SlotStepMinutes
	blocked := make([]*domain.Slot, 0, count)

	t := req.StartTime
	for i := 0; i < count; i++ {
		if !domain.IsGridLabel(t) {
			return nil, fmt.Errorf("%w: block of %d minutes from %s does not fit the schedule",
				ErrOutsideOperatingHours, req.DurationMinutes, req.StartTime)
		}

		blocked = append(blocked, &domain.Slot{
			ID:          s.idGen.NewID(),
			CourtID:     req.CourtID,
			Date:        req.Date,
			Time:        t,
			Status:      domain.StatusBlocked,
			Price:       0,
			Duration:    req.DurationMinutes,
			BlockReason: &reason,
		})

		next, err := t.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: block of %d minutes from %s does not fit the schedule",
				ErrOutsideOperatingHours, req.DurationMinutes, req.StartTime)
		}
		t = next
	}

	if err := s.slotRepo.ReplaceByCoordinates(ctx, blocked); err != nil {
		s.logger.Error("Block: failed to write slots: %v", err)
		return nil, fmt.Errorf("%w: failed to write slots: %v", ErrInternal, err)
	}

	s.logger.Info("Block: wrote %d blocked records, court=%d, from=%s", len(blocked), req.CourtID, req.StartTime)
	return &models.BlockResponse{Slots: blocked}, nil
}

// bookingRun возвращает непрерывную цепочку записей с одинаковой подписью,
// содержащую координату, в порядке времени. Возвращает ErrSlotNotFound
// репозитория, если по координате ничего не записано.
func (s *Service) bookingRun(ctx context.Context, courtID int64, date time.Time, t types.TimeString) ([]*domain.Slot, error) {
	target, err := s.slotRepo.GetByCoordinate(ctx, courtID, date, t)
	if err != nil {
		return nil, err
	}

	stored, err := s.slotRepo.ListByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	byTime := make(map[types.TimeString]*domain.Slot, len(stored))
	for _, slot := range stored {
		byTime[slot.Time] = slot
	}

	// Идем назад до начала цепочки
	start := target.Time
	for {
		prev, err := start.AddMinutes(-domain.SlotStepMinutes)
		if err != nil || !domain.IsGridLabel(prev) {
			break
		}
		slot, ok := byTime[prev]
		if !ok || !slot.SameSignature(target) {
			break
		}
		start = prev
	}

	// Собираем цепочку вперед от начала
	run := make([]*domain.Slot, 0, 2)
	cur := start
	for {
		slot, ok := byTime[cur]
		if !ok || !slot.SameSignature(target) {
			break
		}
		run = append(run, slot)

		next, err := cur.AddMinutes(domain.SlotStepMinutes)
		if err != nil || !domain.IsGridLabel(next) {
			break
		}
		cur = next
	}

	return run, nil
}

// validateCoordinate проверяет координату операции
func validateCoordinate(courtID int64, date time.Time, t types.TimeString) error {
	if courtID <= 0 {
		return fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	if !domain.IsGridLabel(t) {
		return fmt.Errorf("%w: time %s is not on the booking grid", ErrInvalidInput, t)
	}
	return nil
}
