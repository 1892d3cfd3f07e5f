package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// UseCase use case построения сетки расписания на день.
//
// Сетка - производное представление: для каждой пары (корт, временная метка)
// либо возвращается записанный слот, либо синтезируется свободный с
// вычисленной ценой; непрерывные цепочки одного бронирования объединяются в
// одну ячейку с вертикальным span. Результат пересчитывается на каждый запрос
// и нигде не кэшируется.
type UseCase struct {
	slotRepo  SlotRepository
	courtRepo CourtRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, courtRepo CourtRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Execute строит сетку расписания на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s, courtType=%v, filters=%v",
		req.Date.Format(domain.DateFormat), req.CourtType, req.Filters)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	filters := normalizeFilters(req.Filters)

	// 2. Получаем список кортов с учетом фильтра по покрытию
	allCourts, err := uc.courtRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	courts := make([]*domain.Court, 0, len(allCourts))
	for _, court := range allCourts {
		if req.CourtType != nil && court.Surface != *req.CourtType {
			continue
		}
		courts = append(courts, court)
	}

	// 3. Получаем все записанные слоты на дату одним запросом
	daySlots, err := uc.slotRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// Группируем слоты по кортам (они уже отсортированы по времени)
	slotsByCourt := make(map[int64][]*domain.Slot)
	for _, s := range daySlots {
		slotsByCourt[s.CourtID] = append(slotsByCourt[s.CourtID], s)
	}

	labels := domain.TimeLabels()
	response := &Response{
		Date:       req.Date,
		TimeLabels: labels,
		Courts:     make([]*CourtSchedule, 0, len(courts)),
	}

	// 4. Для каждого корта: два независимых прохода объединения (тренировки
	// и бронирования кортов никогда не сливаются друг с другом), затем
	// резолвим каждую ячейку сетки.
	for _, court := range courts {
		courtSlots := slotsByCourt[court.ID]

		trainingMerged := mergeTrainingRuns(courtSlots)
		courtMerged := mergeCourtRuns(courtSlots)

		byTime := make(map[types.TimeString]*domain.Slot, len(courtSlots))
		for _, s := range courtSlots {
			byTime[s.Time] = s
		}

		cells := make([]*Cell, 0, len(labels))
		for _, t := range labels {
			slot := resolveSlot(byTime, court, req.Date, t)

			cell := &Cell{
				Time:    t,
				Slot:    slot,
				Visible: shouldShowSlot(slot, filters),
			}

			merged := mergedAt(trainingMerged, t)
			if merged == nil {
				merged = mergedAt(courtMerged, t)
			}
			if merged != nil {
				if merged.StartTime == t {
					cell.Merged = merged
				} else {
					cell.CoveredBy = merged.ID
				}
			}

			cells = append(cells, cell)
		}

		response.Courts = append(response.Courts, &CourtSchedule{
			Court: court,
			Cells: cells,
		})
	}

	uc.logger.Info("GetDaySchedule: built grid for %d courts, date=%s",
		len(response.Courts), req.Date.Format(domain.DateFormat))

	return response, nil
}
