package create_booking

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// BookingKind вид бронирования
type BookingKind string

const (
	KindCourt    BookingKind = "court"               // обычное бронирование корта
	KindTraining BookingKind = "training_with_coach" // тренировка с тренером
)

// IsValid проверяет, что вид бронирования принадлежит закрытому набору
func (k BookingKind) IsValid() bool {
	return k == KindCourt || k == KindTraining
}

// Request модель запроса на создание бронирования
type Request struct {
	CourtID         int64
	Date            time.Time // Дата (без времени)
	StartTime       types.TimeString
	DurationMinutes int
	Kind            BookingKind
	CoachID         *int64 // обязателен для KindTraining
	ClientName      string
	ClientPhone     string
	ClientEmail     *string
	Notes           *string

	// Force true, если пользователь осознанно игнорирует предупреждение
	// об изолированном слоте
	Force bool
}

// GapWarning рекомендательное предупреждение валидатора: бронирование
// оставит изолированный 30-минутный слот. Не является ошибкой - вызывающая
// сторона может продолжить с Force=true.
type GapWarning struct {
	Reason     string
	Suggestion string
}

// Response результат создания бронирования
type Response struct {
	// Created false, если запись не выполнена из-за предупреждения валидатора
	Created bool
	Warning *GapWarning

	Slots            []*domain.Slot // записанные 30-минутные записи в порядке времени
	TotalPrice       int            // цена первой записи (агрегат всего бронирования)
	EffectiveMinutes int            // фактическая длительность с учетом минимума тренировки
}

// ValidateRequest модель запроса отдельной проверки валидатора
type ValidateRequest struct {
	CourtID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
}
