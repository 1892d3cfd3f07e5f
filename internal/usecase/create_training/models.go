package create_training

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// Request модель запроса резервирования времени тренером.
// Клиента на этом этапе нет: тренер бронирует окно под будущую тренировку,
// клиент назначается позже отдельной операцией.
type Request struct {
	CoachID         int64
	CourtID         int64
	Date            time.Time // Дата (без времени)
	StartTime       types.TimeString
	DurationMinutes int
}

// Response результат резервирования
type Response struct {
	Slots            []*domain.Slot // записанные записи trainer_reserved в порядке времени
	EffectiveMinutes int            // фактическая длительность с учетом минимума в 60 минут
}
