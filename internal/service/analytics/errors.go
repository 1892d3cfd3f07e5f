package analytics

import "errors"

var (
	// ErrUnknownPeriod возвращается при неизвестном периоде отчета
	ErrUnknownPeriod = errors.New("unknown analytics period")
)
