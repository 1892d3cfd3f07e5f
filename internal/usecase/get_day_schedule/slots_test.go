package get_day_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/ptr"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

var testDate = time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)

func courtSlot(id string, t types.TimeString, status domain.SlotStatus, client string, price int) *domain.Slot {
	return &domain.Slot{
		ID:         id,
		CourtID:    1,
		Date:       testDate,
		Time:       t,
		Status:     status,
		ClientName: ptr.Ptr(client),
		Price:      price,
		Duration:   domain.SlotStepMinutes,
	}
}

func TestResolveSlot(t *testing.T) {
	court := &domain.Court{ID: 1, Name: "Корт 1", Surface: domain.SurfaceHard, BasePrice: 600}

	t.Run("returns stored slot", func(t *testing.T) {
		stored := map[types.TimeString]*domain.Slot{
			"10:00": courtSlot("a", "10:00", domain.StatusCourtPaid, "Анна", 480),
		}
		got := resolveSlot(stored, court, testDate, "10:00")
		assert.Equal(t, "a", got.ID)
		assert.Equal(t, domain.StatusCourtPaid, got.Status)
	})

	t.Run("synthesizes free slot with derived price", func(t *testing.T) {
		got := resolveSlot(map[types.TimeString]*domain.Slot{}, court, testDate, "10:00")
		assert.Equal(t, domain.StatusFree, got.Status)
		assert.Equal(t, 480, got.Price) // 600 × 0.8

		evening := resolveSlot(map[types.TimeString]*domain.Slot{}, court, testDate, "19:30")
		assert.Equal(t, 780, evening.Price) // 600 × 1.3
	})
}

func TestMergeCourtRuns(t *testing.T) {
	t.Run("contiguous same signature merges into one run", func(t *testing.T) {
		slots := []*domain.Slot{
			courtSlot("a", "10:00", domain.StatusCourtUnpaid, "Анна", 1440),
			courtSlot("b", "10:30", domain.StatusCourtUnpaid, "Анна", 0),
			courtSlot("c", "11:00", domain.StatusCourtUnpaid, "Анна", 0),
		}

		merged := mergeCourtRuns(slots)
		require.Len(t, merged, 1)
		assert.Equal(t, types.TimeString("10:00"), merged[0].StartTime)
		assert.Equal(t, types.TimeString("11:00"), merged[0].EndTime)
		assert.Equal(t, 90, merged[0].Duration)
		assert.Equal(t, 3, merged[0].SpanSlots)
		assert.Equal(t, 1440, merged[0].TotalPrice)
	})

	t.Run("different client splits the run", func(t *testing.T) {
		slots := []*domain.Slot{
			courtSlot("a", "10:00", domain.StatusCourtUnpaid, "Анна", 480),
			courtSlot("b", "10:30", domain.StatusCourtUnpaid, "Анна", 0),
			courtSlot("c", "11:00", domain.StatusCourtUnpaid, "Мария", 480),
			courtSlot("d", "11:30", domain.StatusCourtUnpaid, "Мария", 0),
		}

		merged := mergeCourtRuns(slots)
		require.Len(t, merged, 2)
		assert.Equal(t, types.TimeString("10:00"), merged[0].StartTime)
		assert.Equal(t, types.TimeString("11:00"), merged[1].StartTime)
	})

	t.Run("paid and unpaid do not merge", func(t *testing.T) {
		slots := []*domain.Slot{
			courtSlot("a", "10:00", domain.StatusCourtPaid, "Анна", 480),
			courtSlot("b", "10:30", domain.StatusCourtUnpaid, "Анна", 480),
		}
		assert.Empty(t, mergeCourtRuns(slots))
	})

	t.Run("gap breaks the run", func(t *testing.T) {
		slots := []*domain.Slot{
			courtSlot("a", "10:00", domain.StatusCourtUnpaid, "Анна", 480),
			courtSlot("b", "11:00", domain.StatusCourtUnpaid, "Анна", 480),
		}
		assert.Empty(t, mergeCourtRuns(slots))
	})

	t.Run("single slot is not emitted", func(t *testing.T) {
		slots := []*domain.Slot{
			courtSlot("a", "10:00", domain.StatusCourtUnpaid, "Анна", 480),
		}
		assert.Empty(t, mergeCourtRuns(slots))
	})

	t.Run("training statuses are ignored", func(t *testing.T) {
		slots := []*domain.Slot{
			courtSlot("a", "10:00", domain.StatusTrainingUnpaid, "Анна", 1000),
			courtSlot("b", "10:30", domain.StatusTrainingUnpaid, "Анна", 0),
		}
		assert.Empty(t, mergeCourtRuns(slots))
	})
}

func TestMergeTrainingRuns(t *testing.T) {
	t.Run("trainer reservation merges", func(t *testing.T) {
		a := &domain.Slot{ID: "a", CourtID: 1, Date: testDate, Time: "14:00",
			Status: domain.StatusTrainerReserved, TrainerName: ptr.Ptr("Дмитрий")}
		b := &domain.Slot{ID: "b", CourtID: 1, Date: testDate, Time: "14:30",
			Status: domain.StatusTrainerReserved, TrainerName: ptr.Ptr("Дмитрий")}

		merged := mergeTrainingRuns([]*domain.Slot{a, b})
		require.Len(t, merged, 1)
		assert.Equal(t, 2, merged[0].SpanSlots)
	})

	t.Run("reservation and training do not merge", func(t *testing.T) {
		a := &domain.Slot{ID: "a", CourtID: 1, Date: testDate, Time: "14:00",
			Status: domain.StatusTrainerReserved, TrainerName: ptr.Ptr("Дмитрий")}
		b := &domain.Slot{ID: "b", CourtID: 1, Date: testDate, Time: "14:30",
			Status: domain.StatusTrainingUnpaid, TrainerName: ptr.Ptr("Дмитрий"), ClientName: ptr.Ptr("Анна")}

		assert.Empty(t, mergeTrainingRuns([]*domain.Slot{a, b}))
	})
}

func TestShouldShowSlot(t *testing.T) {
	free := &domain.Slot{Status: domain.StatusFree}
	unpaid := &domain.Slot{Status: domain.StatusCourtUnpaid}
	training := &domain.Slot{Status: domain.StatusTrainingPaid}
	reserved := &domain.Slot{Status: domain.StatusTrainerReserved}

	assert.True(t, shouldShowSlot(free, []FilterType{FilterAll}))
	assert.True(t, shouldShowSlot(unpaid, []FilterType{FilterUnpaid}))
	assert.False(t, shouldShowSlot(training, []FilterType{FilterUnpaid}))
	assert.True(t, shouldShowSlot(training, []FilterType{FilterTrainings}))
	assert.False(t, shouldShowSlot(reserved, []FilterType{FilterTrainings}))
	assert.True(t, shouldShowSlot(reserved, []FilterType{FilterAvailable}))
	assert.True(t, shouldShowSlot(unpaid, []FilterType{FilterTrainings, FilterCourts}))
}
