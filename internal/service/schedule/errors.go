package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotNotFound возвращается, когда по координате нет записанного слота
	ErrSlotNotFound = errors.New("slot not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrNotReserved возвращается при попытке назначить клиента на слот,
	// который не является резервом тренера
	ErrNotReserved = errors.New("slot is not a trainer reservation")

	// ErrOutsideOperatingHours возвращается, когда операция выходит за рамки
	// рабочего окна клуба
	ErrOutsideOperatingHours = errors.New("operation is outside operating hours")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
