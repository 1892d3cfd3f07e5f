package get_day_schedule

import (
	"fmt"
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// resolveSlot возвращает запись по координате (корт, дата, время) или
// синтезирует свободный слот с динамической ценой.
//
// Цена свободного слота выводится из базовой цены корта и множителя времени
// суток и нигде не хранится.
func resolveSlot(stored map[types.TimeString]*domain.Slot, court *domain.Court, date time.Time, t types.TimeString) *domain.Slot {
	if slot, ok := stored[t]; ok {
		return slot
	}

	return &domain.Slot{
		ID:       fmt.Sprintf("free-%d-%s", court.ID, t),
		CourtID:  court.ID,
		Date:     date,
		Time:     t,
		Status:   domain.StatusFree,
		Price:    domain.SlotPrice(court.BasePrice, t),
		Duration: domain.SlotStepMinutes,
	}
}

// mergeTrainingRuns объединяет непрерывные цепочки тренировочных слотов
// (training_paid, training_unpaid, trainer_reserved) одного корта и даты.
func mergeTrainingRuns(courtSlots []*domain.Slot) []*domain.MergedSlot {
	return mergeRuns(courtSlots, func(s domain.SlotStatus) bool {
		return s.IsTrainingLike()
	})
}

// mergeCourtRuns объединяет непрерывные цепочки обычных бронирований корта
// (court_paid, court_unpaid) одного корта и даты.
func mergeCourtRuns(courtSlots []*domain.Slot) []*domain.MergedSlot {
	return mergeRuns(courtSlots, func(s domain.SlotStatus) bool {
		return s.IsCourtLike()
	})
}

// mergeRuns ищет максимальные цепочки соседних (с шагом 30 минут) слотов с
// одинаковой сигнатурой: статус + имя клиента + имя тренера. Отсутствующие
// поля считаются совпадающими друг с другом.
//
// Слоты обходятся в порядке времени; слот, вошедший в цепочку, помечается и
// больше не участвует в последующих проходах. Цепочка из одного слота не
// эмитится - такой слот отрисовывается обычной одиночной ячейкой.
//
// courtSlots должны принадлежать одному корту и одной дате и быть
// отсортированы по времени.
func mergeRuns(courtSlots []*domain.Slot, eligible func(domain.SlotStatus) bool) []*domain.MergedSlot {
	byTime := make(map[types.TimeString]*domain.Slot, len(courtSlots))
	for _, s := range courtSlots {
		byTime[s.Time] = s
	}

	merged := make([]*domain.MergedSlot, 0)
	consumed := make(map[string]struct{}, len(courtSlots))

	for _, seed := range courtSlots {
		if _, ok := consumed[seed.ID]; ok {
			continue
		}
		if !eligible(seed.Status) {
			continue
		}

		run := []*domain.Slot{seed}
		consumed[seed.ID] = struct{}{}

		currentTime := seed.Time
		for {
			nextTime, err := currentTime.AddMinutes(domain.SlotStepMinutes)
			if err != nil {
				break
			}

			next, ok := byTime[nextTime]
			if !ok {
				break
			}
			if _, taken := consumed[next.ID]; taken {
				break
			}
			if !next.SameSignature(seed) {
				break
			}

			run = append(run, next)
			consumed[next.ID] = struct{}{}
			currentTime = nextTime
		}

		if len(run) < 2 {
			continue
		}

		totalPrice := 0
		for _, s := range run {
			totalPrice += s.Price
		}

		merged = append(merged, &domain.MergedSlot{
			ID:         "merged-" + seed.ID,
			StartTime:  seed.Time,
			EndTime:    run[len(run)-1].Time,
			Duration:   len(run) * domain.SlotStepMinutes,
			TotalPrice: totalPrice,
			SpanSlots:  len(run),
			Slots:      run,
		})
	}

	return merged
}

// mergedAt возвращает объединенный слот, в который входит ячейка с данным
// временем, или nil.
func mergedAt(merged []*domain.MergedSlot, t types.TimeString) *domain.MergedSlot {
	for _, m := range merged {
		for _, s := range m.Slots {
			if s.Time == t {
				return m
			}
		}
	}
	return nil
}

// shouldShowSlot применяет активные фильтры отображения к слоту
func shouldShowSlot(slot *domain.Slot, filters []FilterType) bool {
	for _, f := range filters {
		switch f {
		case FilterAll:
			return true
		case FilterUnpaid:
			if slot.Status.IsUnpaid() {
				return true
			}
		case FilterCourts:
			if slot.Status.IsCourtLike() {
				return true
			}
		case FilterTrainings:
			if slot.Status == domain.StatusTrainingPaid || slot.Status == domain.StatusTrainingUnpaid {
				return true
			}
		case FilterAvailable:
			if slot.Status == domain.StatusTrainerReserved {
				return true
			}
		}
	}
	return false
}
