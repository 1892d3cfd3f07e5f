package coaches

import "errors"

var (
	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("coaches.repository: coach not found")
)
