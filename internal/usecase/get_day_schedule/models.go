package get_day_schedule

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// FilterType фильтр отображения слотов в сетке
type FilterType string

const (
	FilterAll       FilterType = "all"       // все слоты
	FilterUnpaid    FilterType = "unpaid"    // неоплаченные бронирования
	FilterTrainings FilterType = "trainings" // тренировки с клиентом
	FilterCourts    FilterType = "courts"    // бронирования кортов
	FilterAvailable FilterType = "available" // свободные слоты тренеров
)

// IsValid проверяет, что фильтр принадлежит закрытому набору
func (f FilterType) IsValid() bool {
	switch f {
	case FilterAll, FilterUnpaid, FilterTrainings, FilterCourts, FilterAvailable:
		return true
	}
	return false
}

// Request модель запроса сетки расписания на день
type Request struct {
	Date      time.Time           // Дата (без времени)
	CourtType *domain.SurfaceType // Фильтр по покрытию корта (nil - все корты)
	Filters   []FilterType        // Фильтры отображения; пустой список эквивалентен FilterAll
}

// Response сетка расписания на день
type Response struct {
	Date       time.Time
	TimeLabels []types.TimeString // общий для всех кортов список временных меток
	Courts     []*CourtSchedule
}

// CourtSchedule колонка сетки: один корт и его ячейки в порядке временных меток
type CourtSchedule struct {
	Court *domain.Court
	Cells []*Cell
}

// Cell одна ячейка сетки. Для координаты без записи Slot содержит
// синтезированный свободный слот с вычисленной ценой.
type Cell struct {
	Time types.TimeString
	Slot *domain.Slot

	// Merged заполнен только для первой ячейки объединенного бронирования
	// и описывает весь диапазон (span по вертикали).
	Merged *domain.MergedSlot

	// CoveredBy содержит ID объединенного слота, если ячейка входит в него,
	// но не является первой (такие ячейки не отрисовываются).
	CoveredBy string

	// Visible false, если ячейка скрыта активными фильтрами отображения
	Visible bool
}
