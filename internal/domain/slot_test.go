package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tennispark/TP-AdminService/pkg/ptr"
)

func TestSlotStatus_IsValid(t *testing.T) {
	for _, s := range []SlotStatus{
		StatusFree, StatusCourtPaid, StatusCourtUnpaid,
		StatusTrainingPaid, StatusTrainingUnpaid, StatusTrainerReserved, StatusBlocked,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, SlotStatus("booked").IsValid())
	assert.False(t, SlotStatus("").IsValid())
}

func TestSlotStatus_Classification(t *testing.T) {
	assert.True(t, StatusCourtPaid.IsCourtLike())
	assert.True(t, StatusCourtUnpaid.IsCourtLike())
	assert.False(t, StatusTrainingPaid.IsCourtLike())

	assert.True(t, StatusTrainingPaid.IsTrainingLike())
	assert.True(t, StatusTrainingUnpaid.IsTrainingLike())
	assert.True(t, StatusTrainerReserved.IsTrainingLike())
	assert.False(t, StatusBlocked.IsTrainingLike())

	assert.True(t, StatusCourtPaid.IsPaid())
	assert.True(t, StatusTrainingPaid.IsPaid())
	assert.False(t, StatusTrainerReserved.IsPaid())

	assert.True(t, StatusCourtUnpaid.IsUnpaid())
	assert.True(t, StatusTrainingUnpaid.IsUnpaid())
	assert.False(t, StatusBlocked.IsUnpaid())

	assert.False(t, StatusFree.IsOccupied())
	assert.True(t, StatusBlocked.IsOccupied())
	assert.True(t, StatusTrainerReserved.IsOccupied())
}

func TestSlot_SameSignature(t *testing.T) {
	base := &Slot{Status: StatusCourtUnpaid, ClientName: ptr.Ptr("Анна")}

	t.Run("same occupant", func(t *testing.T) {
		other := &Slot{Status: StatusCourtUnpaid, ClientName: ptr.Ptr("Анна")}
		assert.True(t, base.SameSignature(other))
	})

	t.Run("different status", func(t *testing.T) {
		other := &Slot{Status: StatusCourtPaid, ClientName: ptr.Ptr("Анна")}
		assert.False(t, base.SameSignature(other))
	})

	t.Run("different client", func(t *testing.T) {
		other := &Slot{Status: StatusCourtUnpaid, ClientName: ptr.Ptr("Мария")}
		assert.False(t, base.SameSignature(other))
	})

	t.Run("different trainer", func(t *testing.T) {
		a := &Slot{Status: StatusTrainerReserved, TrainerName: ptr.Ptr("Дмитрий")}
		b := &Slot{Status: StatusTrainerReserved, TrainerName: ptr.Ptr("Елена")}
		assert.False(t, a.SameSignature(b))
	})

	t.Run("absent fields match absent fields", func(t *testing.T) {
		a := &Slot{Status: StatusBlocked}
		b := &Slot{Status: StatusBlocked}
		assert.True(t, a.SameSignature(b))
	})

	t.Run("nil matches empty string", func(t *testing.T) {
		a := &Slot{Status: StatusCourtUnpaid, ClientName: nil}
		b := &Slot{Status: StatusCourtUnpaid, ClientName: ptr.Ptr("")}
		assert.True(t, a.SameSignature(b))
	})
}
