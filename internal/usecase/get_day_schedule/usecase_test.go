package get_day_schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tennispark/TP-AdminService/internal/domain"
	courtsRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/courts"
	slotsRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/slots"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCourts() []*domain.Court {
	return []*domain.Court{
		{ID: 1, Name: "Корт 1 (Хард)", Surface: domain.SurfaceHard, BasePrice: 600},
		{ID: 2, Name: "Корт 3 (Грунт)", Surface: domain.SurfaceClay, BasePrice: 720},
	}
}

func newTestUseCase(t *testing.T, stored []*domain.Slot) *UseCase {
	t.Helper()

	slots := slotsRepo.NewRepository()
	if len(stored) > 0 {
		require.NoError(t, slots.Seed(stored))
	}
	return NewUseCase(slots, courtsRepo.NewRepository(testCourts()), nopLogger{})
}

func cellAt(t *testing.T, resp *Response, courtID int64, label types.TimeString) *Cell {
	t.Helper()

	for _, cs := range resp.Courts {
		if cs.Court.ID != courtID {
			continue
		}
		for _, cell := range cs.Cells {
			if cell.Time == label {
				return cell
			}
		}
	}
	t.Fatalf("cell not found: court=%d time=%s", courtID, label)
	return nil
}

func TestUseCase_Execute_EmptySchedule(t *testing.T) {
	uc := newTestUseCase(t, nil)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Courts, 2)
	assert.Len(t, resp.TimeLabels, domain.TimeLabelCount())
	for _, cs := range resp.Courts {
		assert.Len(t, cs.Cells, domain.TimeLabelCount())
	}

	// Свободная ячейка несет вычисленную цену и видима под FilterAll
	free := cellAt(t, resp, 1, "09:00")
	assert.Equal(t, domain.StatusFree, free.Slot.Status)
	assert.Equal(t, 480, free.Slot.Price)
	assert.True(t, free.Visible)
	assert.Nil(t, free.Merged)
}

func TestUseCase_Execute_MergedBookingCells(t *testing.T) {
	// 90-минутное бронирование с 18:00 пересекает границу множителя в 19:00,
	// но цена зафиксирована при создании по времени начала: 600 × 3 = 1800
	stored := []*domain.Slot{
		courtSlot("a", "18:00", domain.StatusCourtUnpaid, "Анна", 1800),
		courtSlot("b", "18:30", domain.StatusCourtUnpaid, "Анна", 0),
		courtSlot("c", "19:00", domain.StatusCourtUnpaid, "Анна", 0),
	}
	uc := newTestUseCase(t, stored)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	head := cellAt(t, resp, 1, "18:00")
	require.NotNil(t, head.Merged)
	assert.Equal(t, 3, head.Merged.SpanSlots)
	assert.Equal(t, 90, head.Merged.Duration)
	assert.Equal(t, 1800, head.Merged.TotalPrice)
	assert.Equal(t, types.TimeString("19:00"), head.Merged.EndTime)
	assert.Empty(t, head.CoveredBy)

	covered := cellAt(t, resp, 1, "18:30")
	assert.Nil(t, covered.Merged)
	assert.Equal(t, head.Merged.ID, covered.CoveredBy)

	tail := cellAt(t, resp, 1, "19:00")
	assert.Equal(t, head.Merged.ID, tail.CoveredBy)

	after := cellAt(t, resp, 1, "19:30")
	assert.Equal(t, domain.StatusFree, after.Slot.Status)
	assert.Empty(t, after.CoveredBy)
}

func TestUseCase_Execute_CourtTypeFilter(t *testing.T) {
	uc := newTestUseCase(t, nil)

	clay := domain.SurfaceClay
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, CourtType: &clay})
	require.NoError(t, err)

	require.Len(t, resp.Courts, 1)
	assert.Equal(t, int64(2), resp.Courts[0].Court.ID)
}

func TestUseCase_Execute_DisplayFilters(t *testing.T) {
	stored := []*domain.Slot{
		courtSlot("a", "10:00", domain.StatusCourtUnpaid, "Анна", 480),
		courtSlot("b", "12:00", domain.StatusCourtPaid, "Мария", 480),
	}
	uc := newTestUseCase(t, stored)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    testDate,
		Filters: []FilterType{FilterUnpaid},
	})
	require.NoError(t, err)

	assert.True(t, cellAt(t, resp, 1, "10:00").Visible)
	assert.False(t, cellAt(t, resp, 1, "12:00").Visible)
	assert.False(t, cellAt(t, resp, 1, "09:00").Visible)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(t, nil)

	t.Run("zero date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown court type", func(t *testing.T) {
		grass := domain.SurfaceType("grass")
		_, err := uc.Execute(context.Background(), &Request{Date: testDate, CourtType: &grass})
		assert.ErrorIs(t, err, ErrUnknownCourtType)
	})

	t.Run("unknown filter", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Date: testDate, Filters: []FilterType{"weird"}})
		assert.ErrorIs(t, err, ErrUnknownFilter)
	})
}
