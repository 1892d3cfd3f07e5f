package domain

import "time"

// ClientStatus represents the loyalty status of a club client
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientVIP      ClientStatus = "vip"
	ClientInactive ClientStatus = "inactive"
)

// IsValid returns true if the status belongs to the closed set
func (s ClientStatus) IsValid() bool {
	return s == ClientActive || s == ClientVIP || s == ClientInactive
}

// Client represents a club client used for autocomplete and directory views
type Client struct {
	ID               int64
	Name             string
	Phone            string
	Email            *string
	TotalBookings    int
	TotalSpent       int // rubles
	Status           ClientStatus
	LastBooking      *time.Time
	RegistrationDate time.Time
}

// BookingHistoryEntry is a single entry in a client's booking history.
type BookingHistoryEntry struct {
	ID        int64
	ClientID  int64
	Date      time.Time
	CourtName string
	Duration  int // minutes
	Price     int // rubles
	Kind      string
}
