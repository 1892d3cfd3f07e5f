package coaches

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tennispark/TP-AdminService/internal/domain"
	coachesRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/coaches"
	"github.com/tennispark/TP-AdminService/internal/service/coaches/models"
	"github.com/tennispark/TP-AdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fixedClock фиксированное время для проверки CreatedAt
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2025, 7, 3, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, seed []*domain.Coach) *Service {
	t.Helper()

	repo := coachesRepo.NewRepository()
	if len(seed) > 0 {
		repo.Seed(seed)
	}
	return NewService(repo, fixedClock{now: testNow}, nopLogger{})
}

func createRequest() *models.CreateCoachRequest {
	return &models.CreateCoachRequest{
		Name:            "Елена Соколова",
		Phone:           "+7 926 555-12-34",
		Email:           "elena@tennispark.ru",
		Specializations: []string{"Дети", "Юниоры"},
		ExperienceYears: 12,
		HourlyRate:      3000,
		Color:           "#10B981",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := newTestService(t, nil)

		created, err := svc.Create(ctx, createRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "Елена Соколова", created.Name)
		assert.True(t, created.IsActive, "новый тренер активен")
		assert.Equal(t, testNow, created.CreatedAt)
	})

	t.Run("validation", func(t *testing.T) {
		svc := newTestService(t, nil)

		cases := []struct {
			name   string
			mutate func(*models.CreateCoachRequest)
		}{
			{"empty name", func(r *models.CreateCoachRequest) { r.Name = "" }},
			{"empty phone", func(r *models.CreateCoachRequest) { r.Phone = "" }},
			{"non-positive rate", func(r *models.CreateCoachRequest) { r.HourlyRate = 0 }},
			{"negative experience", func(r *models.CreateCoachRequest) { r.ExperienceYears = -1 }},
			{"unknown specialization", func(r *models.CreateCoachRequest) { r.Specializations = []string{"Сквош"} }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := createRequest()
				tc.mutate(req)

				_, err := svc.Create(ctx, req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	seed := []*domain.Coach{{
		ID:              1,
		Name:            "Дмитрий Козлов",
		Phone:           "+7 903 111-22-33",
		Specializations: []string{"Профессионалы"},
		ExperienceYears: 8,
		HourlyRate:      2500,
		Rating:          4.8,
		IsActive:        true,
		CreatedAt:       testNow,
	}}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		svc := newTestService(t, seed)

		updated, err := svc.Update(ctx, 1, &models.UpdateCoachRequest{
			HourlyRate: ptr.Ptr(2800),
			IsActive:   ptr.Ptr(false),
		})
		require.NoError(t, err)

		assert.Equal(t, 2800, updated.HourlyRate)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "Дмитрий Козлов", updated.Name)
		assert.Equal(t, 4.8, updated.Rating)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(t, seed)

		_, err := svc.Update(ctx, 99, &models.UpdateCoachRequest{HourlyRate: ptr.Ptr(2800)})
		assert.ErrorIs(t, err, ErrCoachNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		svc := newTestService(t, seed)

		_, err := svc.Update(ctx, 1, &models.UpdateCoachRequest{Name: ptr.Ptr("")})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Update(ctx, 1, &models.UpdateCoachRequest{Rating: ptr.Ptr(5.5)})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Update(ctx, 1, &models.UpdateCoachRequest{HourlyRate: ptr.Ptr(-100)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_List(t *testing.T) {
	seed := []*domain.Coach{
		{ID: 2, Name: "Б", Phone: "2", HourlyRate: 2000, CreatedAt: testNow},
		{ID: 1, Name: "А", Phone: "1", HourlyRate: 2500, CreatedAt: testNow},
	}
	svc := newTestService(t, seed)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}
