package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

var testDate = time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)

func slot(id string, courtID int64, t types.TimeString, status domain.SlotStatus) *domain.Slot {
	return &domain.Slot{
		ID:       id,
		CourtID:  courtID,
		Date:     testDate,
		Time:     t,
		Status:   status,
		Duration: domain.SlotStepMinutes,
	}
}

func TestRepository_ReplaceByCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.ReplaceByCoordinates(ctx, []*domain.Slot{
		slot("a", 1, "10:00", domain.StatusCourtUnpaid),
		slot("b", 1, "10:30", domain.StatusCourtUnpaid),
	}))

	// Запись по занятой координате вытесняет старую, не добавляет вторую
	require.NoError(t, repo.ReplaceByCoordinates(ctx, []*domain.Slot{
		slot("c", 1, "10:00", domain.StatusBlocked),
	}))

	got, err := repo.GetByCoordinate(ctx, 1, testDate, "10:00")
	require.NoError(t, err)
	assert.Equal(t, "c", got.ID)
	assert.Equal(t, domain.StatusBlocked, got.Status)

	list, err := repo.ListByCourtAndDate(ctx, 1, testDate)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRepository_ReplaceByCoordinates_RejectsFree(t *testing.T) {
	repo := NewRepository()

	err := repo.ReplaceByCoordinates(context.Background(), []*domain.Slot{
		slot("a", 1, "10:00", domain.StatusFree),
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestRepository_GetByCoordinate_NotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.GetByCoordinate(context.Background(), 1, testDate, "10:00")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRepository_ListByCourtAndDate_Sorted(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.ReplaceByCoordinates(ctx, []*domain.Slot{
		slot("late", 1, "18:00", domain.StatusCourtPaid),
		slot("early", 1, "08:30", domain.StatusCourtPaid),
		slot("mid", 1, "12:00", domain.StatusCourtPaid),
		slot("other-court", 2, "08:00", domain.StatusCourtPaid),
		{ID: "other-date", CourtID: 1, Date: testDate.AddDate(0, 0, 1), Time: "08:00", Status: domain.StatusCourtPaid},
	}))

	list, err := repo.ListByCourtAndDate(ctx, 1, testDate)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, types.TimeString("08:30"), list[0].Time)
	assert.Equal(t, types.TimeString("12:00"), list[1].Time)
	assert.Equal(t, types.TimeString("18:00"), list[2].Time)
}

func TestRepository_ListByDate_SortedByCourtThenTime(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.ReplaceByCoordinates(ctx, []*domain.Slot{
		slot("b2", 2, "08:00", domain.StatusCourtPaid),
		slot("a2", 1, "09:00", domain.StatusCourtPaid),
		slot("a1", 1, "08:00", domain.StatusCourtPaid),
	}))

	list, err := repo.ListByDate(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, "a2", list[1].ID)
	assert.Equal(t, "b2", list[2].ID)
}

func TestRepository_UpdateByCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.ReplaceByCoordinates(ctx, []*domain.Slot{
		slot("a", 1, "10:00", domain.StatusTrainerReserved),
	}))

	updated := slot("a", 1, "10:00", domain.StatusTrainingUnpaid)
	require.NoError(t, repo.UpdateByCoordinates(ctx, []*domain.Slot{updated}))

	got, err := repo.GetByCoordinate(ctx, 1, testDate, "10:00")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTrainingUnpaid, got.Status)

	// Обновление несуществующей координаты падает целиком
	err = repo.UpdateByCoordinates(ctx, []*domain.Slot{slot("x", 1, "11:00", domain.StatusBlocked)})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRepository_DeleteByCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.ReplaceByCoordinates(ctx, []*domain.Slot{
		slot("a", 1, "10:00", domain.StatusCourtUnpaid),
		slot("b", 1, "10:30", domain.StatusCourtUnpaid),
	}))

	removed, err := repo.DeleteByCoordinates(ctx, 1, testDate, []types.TimeString{"10:00", "10:30", "11:00"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	list, err := repo.ListByCourtAndDate(ctx, 1, testDate)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_CopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	original := slot("a", 1, "10:00", domain.StatusCourtUnpaid)
	require.NoError(t, repo.ReplaceByCoordinates(ctx, []*domain.Slot{original}))

	// Мутация исходного и прочитанного значения не задевает хранилище
	original.Status = domain.StatusBlocked

	first, err := repo.GetByCoordinate(ctx, 1, testDate, "10:00")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCourtUnpaid, first.Status)

	first.Status = domain.StatusBlocked
	second, err := repo.GetByCoordinate(ctx, 1, testDate, "10:00")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCourtUnpaid, second.Status)
}
