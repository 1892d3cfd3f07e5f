package domain

import (
	"time"

	"github.com/tennispark/TP-AdminService/pkg/types"
)

// SlotStatus represents the status of a 30-minute schedule slot
type SlotStatus string

const (
	StatusFree            SlotStatus = "free"
	StatusCourtPaid       SlotStatus = "court_paid"
	StatusCourtUnpaid     SlotStatus = "court_unpaid"
	StatusTrainingPaid    SlotStatus = "training_paid"
	StatusTrainingUnpaid  SlotStatus = "training_unpaid"
	StatusTrainerReserved SlotStatus = "trainer_reserved"
	StatusBlocked         SlotStatus = "blocked"
)

// IsValid returns true if the status belongs to the closed set
func (s SlotStatus) IsValid() bool {
	switch s {
	case StatusFree, StatusCourtPaid, StatusCourtUnpaid,
		StatusTrainingPaid, StatusTrainingUnpaid, StatusTrainerReserved, StatusBlocked:
		return true
	}
	return false
}

// IsCourtLike returns true for plain court bookings (paid or unpaid)
func (s SlotStatus) IsCourtLike() bool {
	return s == StatusCourtPaid || s == StatusCourtUnpaid
}

// IsTrainingLike returns true for training sessions and trainer reservations
func (s SlotStatus) IsTrainingLike() bool {
	return s == StatusTrainingPaid || s == StatusTrainingUnpaid || s == StatusTrainerReserved
}

// IsPaid returns true for paid bookings of either kind
func (s SlotStatus) IsPaid() bool {
	return s == StatusCourtPaid || s == StatusTrainingPaid
}

// IsUnpaid returns true for unpaid bookings of either kind
func (s SlotStatus) IsUnpaid() bool {
	return s == StatusCourtUnpaid || s == StatusTrainingUnpaid
}

// IsOccupied returns true for any non-free status
func (s SlotStatus) IsOccupied() bool {
	return s != StatusFree
}

// Slot is the atomic unit of the schedule: one court, one date, one 30-minute
// time label. A booking spanning N labels is stored as N slot records sharing
// the same occupant fields and duration; only the first record carries the
// aggregate price, continuation records carry price 0 but repeat the status tag.
//
// Invariant: at most one stored record exists per (court, date, time) triple.
// Free slots are never stored; they are synthesized on demand with a derived price.
type Slot struct {
	ID          string
	CourtID     int64
	Date        time.Time // date only, time component is always midnight
	Time        types.TimeString
	Status      SlotStatus
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
	TrainerName *string
	Price       int // rubles; 0 on continuation records
	Duration    int // total duration in minutes of the booking this record belongs to
	Notes       *string
	BlockReason *string
}

// SameSignature reports whether two slots belong to the same booking for merge
// purposes: identical status, client name and trainer name. Absent occupant
// fields match absent occupant fields.
func (s *Slot) SameSignature(other *Slot) bool {
	return s.Status == other.Status &&
		derefName(s.ClientName) == derefName(other.ClientName) &&
		derefName(s.TrainerName) == derefName(other.TrainerName)
}

func derefName(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// MergedSlot is a render-only aggregation of a maximal run of contiguous
// same-signature slots into one visual cell. It is recomputed on every read
// and never stored.
type MergedSlot struct {
	ID         string
	StartTime  types.TimeString
	EndTime    types.TimeString // time label of the last constituent record
	Duration   int              // run length × 30 minutes
	TotalPrice int              // sum of the constituent records' stored prices
	SpanSlots  int              // number of 30-minute increments
	Slots      []*Slot          // constituent records in time order
}
