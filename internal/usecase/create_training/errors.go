package create_training

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("coach not found")

	// ErrOutsideOperatingHours возвращается, когда резервирование выходит за
	// рамки рабочего окна клуба
	ErrOutsideOperatingHours = errors.New("reservation is outside operating hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
