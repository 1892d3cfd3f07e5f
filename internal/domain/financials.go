package domain

// DailyFinancials holds the derived money and occupancy figures for one date.
// Recomputed in full on every read; never stored.
//
// UnpaidCount counts 30-minute slot records, not bookings: continuation
// records repeat the unpaid status tag, so a 90-minute unpaid booking
// contributes 3.
type DailyFinancials struct {
	TotalPaid     int // rubles over court_paid + training_paid records
	TotalUnpaid   int // rubles over court_unpaid + training_unpaid records
	UnpaidCount   int
	OccupancyRate int // round(100 × occupied / (courts × time labels))
}
