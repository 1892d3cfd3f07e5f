package get_day_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownCourtType возвращается при неизвестном типе покрытия в фильтре
	ErrUnknownCourtType = errors.New("unknown court type")

	// ErrUnknownFilter возвращается при неизвестном фильтре отображения
	ErrUnknownFilter = errors.New("unknown schedule filter")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
