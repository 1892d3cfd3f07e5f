package models

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// CancelRequest запрос отмены бронирования по координате любой его записи
type CancelRequest struct {
	CourtID int64
	Date    time.Time
	Time    types.TimeString
}

// CancelResponse результат отмены
type CancelResponse struct {
	RemovedRecords int                // число удаленных 30-минутных записей
	Times          []types.TimeString // освобожденные метки в порядке времени
}

// AssignClientRequest запрос назначения клиента на резерв тренера.
// Координата может указывать на любую запись резерва: конвертируется вся
// непрерывная цепочка.
type AssignClientRequest struct {
	CourtID     int64
	Date        time.Time
	Time        types.TimeString
	ClientName  string
	ClientPhone string
	ClientEmail *string
}

// AssignClientResponse результат назначения клиента
type AssignClientResponse struct {
	Slots []*domain.Slot // обновленные записи training_unpaid в порядке времени
}

// BlockRequest запрос блокировки слотов (ремонт корта, мероприятие)
type BlockRequest struct {
	CourtID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Reason          string
}

// BlockResponse результат блокировки
type BlockResponse struct {
	Slots []*domain.Slot // записанные записи blocked в порядке времени
}
