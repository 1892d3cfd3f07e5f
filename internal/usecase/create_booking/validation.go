package create_booking

import (
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if !domain.IsGridLabel(req.StartTime) {
		return fmt.Errorf("%w: start time %s is not on the booking grid", ErrOutsideOperatingHours, req.StartTime)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes", ErrInvalidInput, domain.SlotStepMinutes)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown booking kind %q", ErrInvalidInput, req.Kind)
	}

	if req.Kind == KindTraining && req.CoachID == nil {
		return fmt.Errorf("%w: coach id is required for a training booking", ErrInvalidInput)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if req.ClientPhone == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// effectiveDuration возвращает фактическую длительность бронирования:
// тренировка короче минимума автоматически расширяется до минимума
func effectiveDuration(kind BookingKind, durationMinutes int) int {
	if kind == KindTraining && durationMinutes < domain.MinTrainingDurationMin {
		return domain.MinTrainingDurationMin
	}
	return durationMinutes
}

// validateWithinHours проверяет, что все 30-минутные записи бронирования
// попадают на метки сетки. Переноса через полночь нет.
func validateWithinHours(start types.TimeString, durationMinutes int) error {
	count := durationMinutes / domain.SlotStepMinutes
	t := start
	for i := 0; i < count; i++ {
		if !domain.IsGridLabel(t) {
			return fmt.Errorf("%w: booking of %d minutes from %s does not fit the schedule",
				ErrOutsideOperatingHours, durationMinutes, start)
		}
		next, err := t.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return fmt.Errorf("%w: booking of %d minutes from %s does not fit the schedule",
				ErrOutsideOperatingHours, durationMinutes, start)
		}
		t = next
	}
	return nil
}

// validateIsolatedGap проверяет, что бронирование не оставит изолированный
// 30-минутный свободный слот между занятыми. Проверка рекомендательная:
// для каждой 30-минутной записи бронирования смотрим записанные занятые
// слоты на соседних метках (ровно -30 и +30 минут); если заняты обе
// стороны, возвращаем предупреждение. Метки за пределами сетки считаются
// свободными.
func validateIsolatedGap(stored []*domain.Slot, start types.TimeString, durationMinutes int) *GapWarning {
	occupied := make(map[types.TimeString]bool, len(stored))
	for _, s := range stored {
		if s.Status.IsOccupied() {
			occupied[s.Time] = true
		}
	}

	count := durationMinutes / domain.SlotStepMinutes
	t := start
	for i := 0; i < count; i++ {
		prev, prevErr := t.AddMinutes(-domain.SlotStepMinutes)
		next, nextErr := t.AddMinutes(domain.SlotStepMinutes)

		prevOccupied := prevErr == nil && domain.IsGridLabel(prev) && occupied[prev]
		nextOccupied := nextErr == nil && domain.IsGridLabel(next) && occupied[next]

		if prevOccupied && nextOccupied {
			return &GapWarning{
				Reason: "Бронирование создаст изолированный 30-минутный слот",
				Suggestion: fmt.Sprintf("Рекомендуем забронировать на %d минут или выбрать другое время",
					durationMinutes+domain.SlotStepMinutes),
			}
		}

		if nextErr != nil {
			break
		}
		t = next
	}

	return nil
}
