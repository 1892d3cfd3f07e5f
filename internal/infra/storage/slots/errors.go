package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден по координате
	ErrSlotNotFound = errors.New("slots.repository: slot not found")

	// ErrInvalidSlot возвращается при попытке записать некорректный слот
	ErrInvalidSlot = errors.New("slots.repository: invalid slot record")
)
