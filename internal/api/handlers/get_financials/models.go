package get_financials

import (
	"github.com/tennispark/TP-AdminService/internal/domain"
)

// FinancialsResponse HTTP-модель финансовой сводки дня
type FinancialsResponse struct {
	TotalPaid     int `json:"totalPaid"`
	TotalUnpaid   int `json:"totalUnpaid"`
	UnpaidCount   int `json:"unpaidCount"`
	OccupancyRate int `json:"occupancyRate"`
}

// FromDomain конвертирует доменную сводку в HTTP response
func FromDomain(f *domain.DailyFinancials) *FinancialsResponse {
	return &FinancialsResponse{
		TotalPaid:     f.TotalPaid,
		TotalUnpaid:   f.TotalUnpaid,
		UnpaidCount:   f.UnpaidCount,
		OccupancyRate: f.OccupancyRate,
	}
}
