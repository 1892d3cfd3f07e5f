package get_day_schedule

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.CourtType != nil && !req.CourtType.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownCourtType, *req.CourtType)
	}

	for _, f := range req.Filters {
		if !f.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownFilter, f)
		}
	}

	return nil
}

// normalizeFilters приводит пустой список фильтров к FilterAll
func normalizeFilters(filters []FilterType) []FilterType {
	if len(filters) == 0 {
		return []FilterType{FilterAll}
	}
	return filters
}
