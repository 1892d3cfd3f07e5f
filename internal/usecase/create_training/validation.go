package create_training

import (
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coach id must be positive", ErrInvalidInput)
	}

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

	return nil
}

// validateWithinHours проверяет, что все записи резервирования попадают на
// метки сетки
func validateWithinHours(start types.TimeString, durationMinutes int) error {
	count := durationMinutes / domain.SlotStepMinutes
	t := start
	for i := 0; i < count; i++ {
		if !domain.IsGridLabel(t) {
			return fmt.Errorf("%w: reservation of %d minutes from %s does not fit the schedule",
				ErrOutsideOperatingHours, durationMinutes, start)
		}
		next, err := t.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return fmt.Errorf("%w: reservation of %d minutes from %s does not fit the schedule",
				ErrOutsideOperatingHours, durationMinutes, start)
		}
		t = next
	}
	return nil
}
