package create_booking

import (
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// bookingTotalPrice считает агрегированную цену бронирования.
// Корт: цена 30-минутного слота на время начала, умноженная на число
// записей (множитель берется один раз от времени начала). Тренировка:
// почасовая ставка тренера, пропорциональная длительности.
func bookingTotalPrice(req *Request, court *domain.Court, coach *domain.Coach, effectiveMinutes int) int {
	if req.Kind == KindTraining {
		return domain.ProratedRate(coach.HourlyRate, effectiveMinutes)
	}

	count := effectiveMinutes / domain.SlotStepMinutes
	return domain.SlotPrice(court.BasePrice, req.StartTime) * count
}

// buildBookingSlots раскладывает бронирование в цепочку 30-минутных записей.
// Всю цену несет первая запись, у продолжений цена 0; статус, данные клиента
// и полная длительность повторяются в каждой записи.
func buildBookingSlots(gen IDGenerator, req *Request, coach *domain.Coach, totalPrice, effectiveMinutes int) ([]*domain.Slot, error) {
	status := domain.StatusCourtUnpaid
	var trainerName *string
	if req.Kind == KindTraining {
		status = domain.StatusTrainingUnpaid
		trainerName = &coach.Name
	}

	clientName := req.ClientName
	clientPhone := req.ClientPhone

	count := effectiveMinutes / domain.SlotStepMinutes
	slots := make([]*domain.Slot, 0, count)

	t := req.StartTime
	for i := 0; i < count; i++ {
		price := 0
		if i == 0 {
			price = totalPrice
		}

		slots = append(slots, &domain.Slot{
			ID:          gen.NewID(),
			CourtID:     req.CourtID,
			Date:        req.Date,
			Time:        t,
			Status:      status,
			ClientName:  &clientName,
			ClientPhone: &clientPhone,
			ClientEmail: req.ClientEmail,
			TrainerName: trainerName,
			Price:       price,
			Duration:    effectiveMinutes,
			Notes:       req.Notes,
		})

		next, err := t.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to advance slot time from %s: %v", ErrInternal, t, err)
		}
		t = next
	}

	return slots, nil
}
