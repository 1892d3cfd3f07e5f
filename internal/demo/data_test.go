package demo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

func TestSlots_Consistent(t *testing.T) {
	slots := Slots()
	assert.NotEmpty(t, slots)

	seen := make(map[string]string, len(slots))
	for _, s := range slots {
		assert.True(t, s.Status.IsValid(), s.ID)
		assert.NotEqual(t, domain.StatusFree, s.Status, "свободные слоты не хранятся: %s", s.ID)
		assert.True(t, domain.IsGridLabel(s.Time), "%s: %s вне сетки", s.ID, s.Time)
		assert.True(t, s.CourtID >= 1 && s.CourtID <= 5, s.ID)
		assert.Equal(t, Date, s.Date, s.ID)
		assert.Greater(t, s.Duration, 0, s.ID)

		coord := fmt.Sprintf("%d/%s", s.CourtID, s.Time)
		if prev, ok := seen[coord]; ok {
			t.Errorf("координата %s занята дважды: %s и %s", coord, prev, s.ID)
		}
		seen[coord] = s.ID
	}
}

func TestSlots_OccupantFieldsMatchStatus(t *testing.T) {
	for _, s := range Slots() {
		switch {
		case s.Status.IsCourtLike():
			assert.NotNil(t, s.ClientName, s.ID)
			assert.Nil(t, s.TrainerName, s.ID)
		case s.Status == domain.StatusTrainingPaid || s.Status == domain.StatusTrainingUnpaid:
			assert.NotNil(t, s.ClientName, s.ID)
			assert.NotNil(t, s.TrainerName, s.ID)
		case s.Status == domain.StatusTrainerReserved:
			assert.Nil(t, s.ClientName, s.ID)
			assert.NotNil(t, s.TrainerName, s.ID)
			assert.Zero(t, s.Price, s.ID)
		}
	}
}

func TestClientsAndHistory_Linked(t *testing.T) {
	clients := Clients()
	assert.Len(t, clients, 5)

	ids := make(map[int64]bool, len(clients))
	for _, c := range clients {
		assert.True(t, c.Status.IsValid(), c.Name)
		ids[c.ID] = true
	}

	for _, entry := range BookingHistory() {
		assert.True(t, ids[entry.ClientID], "история ссылается на клиента %d", entry.ClientID)
		assert.Greater(t, entry.Price, 0)
	}
}

func TestCoaches_Valid(t *testing.T) {
	coaches := Coaches()
	assert.Len(t, coaches, 4)

	for _, c := range coaches {
		assert.NotEmpty(t, c.Name)
		assert.Greater(t, c.HourlyRate, 0, c.Name)
		for _, spec := range c.Specializations {
			assert.True(t, domain.IsKnownSpecialization(spec), "%s: %s", c.Name, spec)
		}
	}
}
