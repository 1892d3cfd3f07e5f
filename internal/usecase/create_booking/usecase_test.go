package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tennispark/TP-AdminService/internal/domain"
	coachesRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/coaches"
	courtsRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/courts"
	slotsRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/slots"
	"github.com/tennispark/TP-AdminService/pkg/ptr"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

var testDate = time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// seqIDGen детерминированный генератор для проверки порядка записей
type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type testEnv struct {
	uc    *UseCase
	slots *slotsRepo.Repository
}

func newTestEnv(t *testing.T, stored []*domain.Slot) *testEnv {
	t.Helper()

	slots := slotsRepo.NewRepository()
	if len(stored) > 0 {
		require.NoError(t, slots.Seed(stored))
	}

	courts := courtsRepo.NewRepository([]*domain.Court{
		{ID: 1, Name: "Корт 1 (Хард)", Surface: domain.SurfaceHard, BasePrice: 600},
	})

	coaches := coachesRepo.NewRepository()
	coaches.Seed([]*domain.Coach{
		{ID: 1, Name: "Дмитрий Козлов", HourlyRate: 2500, IsActive: true},
	})

	uc := NewUseCase(slots, courts, coaches, &seqIDGen{}, nil, nopLogger{})
	return &testEnv{uc: uc, slots: slots}
}

func courtRequest(start types.TimeString, duration int) *Request {
	return &Request{
		CourtID:         1,
		Date:            testDate,
		StartTime:       start,
		DurationMinutes: duration,
		Kind:            KindCourt,
		ClientName:      "Анна Петрова",
		ClientPhone:     "+7 916 123-45-67",
	}
}

func occupiedAt(t types.TimeString) *domain.Slot {
	return &domain.Slot{
		ID:          "stored-" + string(t),
		CourtID:     1,
		Date:        testDate,
		Time:        t,
		Status:      domain.StatusCourtPaid,
		ClientName:  ptr.Ptr("Мария Сидорова"),
		ClientPhone: ptr.Ptr("+7 925 111-22-33"),
		Price:       480,
		Duration:    30,
	}
}

func TestUseCase_Execute_CourtBookingDecomposition(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := env.uc.Execute(context.Background(), courtRequest("10:00", 90))
	require.NoError(t, err)
	require.True(t, resp.Created)
	require.Len(t, resp.Slots, 3)

	// Цена: 600 × 0.8 = 480 за слот, множитель берется от времени начала
	assert.Equal(t, 1440, resp.TotalPrice)
	assert.Equal(t, 90, resp.EffectiveMinutes)

	for i, slot := range resp.Slots {
		assert.Equal(t, domain.StatusCourtUnpaid, slot.Status)
		assert.Equal(t, "Анна Петрова", *slot.ClientName)
		assert.Equal(t, 90, slot.Duration, "каждая запись несет полную длительность")
		if i == 0 {
			assert.Equal(t, 1440, slot.Price, "всю цену несет первая запись")
		} else {
			assert.Zero(t, slot.Price)
		}
	}
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[1].Time)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[2].Time)

	stored, err := env.slots.ListByCourtAndDate(context.Background(), 1, testDate)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestUseCase_Execute_EveningPricing(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := env.uc.Execute(context.Background(), courtRequest("19:00", 60))
	require.NoError(t, err)
	require.True(t, resp.Created)

	// 600 × 1.3 = 780 за слот
	assert.Equal(t, 1560, resp.TotalPrice)
}

func TestUseCase_Execute_TrainingBooking(t *testing.T) {
	env := newTestEnv(t, nil)

	req := courtRequest("14:00", 90)
	req.Kind = KindTraining
	req.CoachID = ptr.Ptr(int64(1))

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.Created)
	require.Len(t, resp.Slots, 3)

	// Почасовая ставка тренера, пропорциональная длительности: 2500 / 60 × 90
	assert.Equal(t, 3750, resp.TotalPrice)
	for _, slot := range resp.Slots {
		assert.Equal(t, domain.StatusTrainingUnpaid, slot.Status)
		assert.Equal(t, "Дмитрий Козлов", *slot.TrainerName)
	}
}

func TestUseCase_Execute_TrainingMinimumDuration(t *testing.T) {
	env := newTestEnv(t, nil)

	req := courtRequest("14:00", 30)
	req.Kind = KindTraining
	req.CoachID = ptr.Ptr(int64(1))

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.Created)

	// Тренировка короче часа расширяется до часа и оплачивается как час
	assert.Len(t, resp.Slots, 2)
	assert.Equal(t, 60, resp.EffectiveMinutes)
	assert.Equal(t, 2500, resp.TotalPrice)
}

func TestUseCase_Execute_IsolatedGapWarning(t *testing.T) {
	// Занято 10:00 и 11:00; кандидат на 10:30 зажат с обеих сторон
	stored := []*domain.Slot{occupiedAt("10:00"), occupiedAt("11:00")}

	t.Run("warning blocks the write", func(t *testing.T) {
		env := newTestEnv(t, stored)

		resp, err := env.uc.Execute(context.Background(), courtRequest("10:30", 30))
		require.NoError(t, err)

		assert.False(t, resp.Created)
		require.NotNil(t, resp.Warning)
		assert.Equal(t, "Бронирование создаст изолированный 30-минутный слот", resp.Warning.Reason)
		assert.Equal(t, "Рекомендуем забронировать на 60 минут или выбрать другое время", resp.Warning.Suggestion)

		list, err := env.slots.ListByCourtAndDate(context.Background(), 1, testDate)
		require.NoError(t, err)
		assert.Len(t, list, 2, "ничего не записано")
	})

	t.Run("force overrides the warning", func(t *testing.T) {
		env := newTestEnv(t, stored)

		req := courtRequest("10:30", 30)
		req.Force = true

		resp, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.Created)
		require.Len(t, resp.Slots, 1)

		list, err := env.slots.ListByCourtAndDate(context.Background(), 1, testDate)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("no warning when one side is free", func(t *testing.T) {
		env := newTestEnv(t, []*domain.Slot{occupiedAt("10:00")})

		resp, err := env.uc.Execute(context.Background(), courtRequest("10:30", 30))
		require.NoError(t, err)
		assert.True(t, resp.Created)
		assert.Nil(t, resp.Warning)
	})

	t.Run("grid edge counts as free", func(t *testing.T) {
		env := newTestEnv(t, []*domain.Slot{occupiedAt("08:30")})

		// Слева от 08:00 сетки нет, занят только сосед справа
		resp, err := env.uc.Execute(context.Background(), courtRequest("08:00", 30))
		require.NoError(t, err)
		assert.True(t, resp.Created)
	})
}

func TestUseCase_Execute_ReplacesByCoordinate(t *testing.T) {
	env := newTestEnv(t, []*domain.Slot{occupiedAt("10:00")})

	req := courtRequest("10:00", 60)
	req.Force = true

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.Created)

	got, err := env.slots.GetByCoordinate(context.Background(), 1, testDate, "10:00")
	require.NoError(t, err)
	assert.Equal(t, "Анна Петрова", *got.ClientName, "старая запись вытеснена")
	assert.Equal(t, domain.StatusCourtUnpaid, got.Status)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*Request)
		errIs  error
	}{
		{"non-positive court id", func(r *Request) { r.CourtID = 0 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"malformed start time", func(r *Request) { r.StartTime = "25:00" }, ErrInvalidInput},
		{"off-grid start time", func(r *Request) { r.StartTime = "07:30" }, ErrOutsideOperatingHours},
		{"zero duration", func(r *Request) { r.DurationMinutes = 0 }, ErrInvalidInput},
		{"duration not multiple of step", func(r *Request) { r.DurationMinutes = 45 }, ErrInvalidInput},
		{"unknown kind", func(r *Request) { r.Kind = "other" }, ErrInvalidInput},
		{"training without coach", func(r *Request) { r.Kind = KindTraining; r.CoachID = nil }, ErrInvalidInput},
		{"empty client name", func(r *Request) { r.ClientName = "" }, ErrInvalidInput},
		{"empty client phone", func(r *Request) { r.ClientPhone = "" }, ErrInvalidInput},
		{"booking runs past closing", func(r *Request) { r.StartTime = "21:00"; r.DurationMinutes = 90 }, ErrOutsideOperatingHours},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := courtRequest("10:00", 60)
			tc.mutate(req)

			_, err := env.uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	t.Run("unknown court", func(t *testing.T) {
		req := courtRequest("10:00", 60)
		req.CourtID = 99

		_, err := env.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("unknown coach", func(t *testing.T) {
		req := courtRequest("10:00", 60)
		req.Kind = KindTraining
		req.CoachID = ptr.Ptr(int64(99))

		_, err := env.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrCoachNotFound)
	})
}

func TestUseCase_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("reports isolated gap without writing", func(t *testing.T) {
		env := newTestEnv(t, []*domain.Slot{occupiedAt("10:00"), occupiedAt("11:00")})

		warning, err := env.uc.Validate(ctx, &ValidateRequest{
			CourtID:         1,
			Date:            testDate,
			StartTime:       "10:30",
			DurationMinutes: 30,
		})
		require.NoError(t, err)
		require.NotNil(t, warning)
		assert.Equal(t, "Бронирование создаст изолированный 30-минутный слот", warning.Reason)

		list, err := env.slots.ListByCourtAndDate(ctx, 1, testDate)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("clean placement", func(t *testing.T) {
		env := newTestEnv(t, nil)

		warning, err := env.uc.Validate(ctx, &ValidateRequest{
			CourtID:         1,
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
		})
		require.NoError(t, err)
		assert.Nil(t, warning)
	})

	t.Run("invalid input", func(t *testing.T) {
		env := newTestEnv(t, nil)

		_, err := env.uc.Validate(ctx, &ValidateRequest{
			CourtID:         1,
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 45,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestValidateIsolatedGap(t *testing.T) {
	t.Run("candidate fills the gap itself", func(t *testing.T) {
		// Кандидат 10:30-11:30 сам занимает 11:00, у его записей нет пары
		// занятых соседей среди записанных слотов
		stored := []*domain.Slot{occupiedAt("10:00"), occupiedAt("11:30")}
		assert.Nil(t, validateIsolatedGap(stored, "10:30", 60))
	})

	t.Run("suggestion names duration plus one step", func(t *testing.T) {
		// Первая запись кандидата (10:30) зажата между 10:00 и 11:00
		stored := []*domain.Slot{occupiedAt("10:00"), occupiedAt("11:00")}

		warning := validateIsolatedGap(stored, "10:30", 60)
		require.NotNil(t, warning)
		assert.Equal(t, "Рекомендуем забронировать на 90 минут или выбрать другое время", warning.Suggestion)
	})

	t.Run("trainer reservations count as occupied", func(t *testing.T) {
		stored := []*domain.Slot{
			{ID: "r1", CourtID: 1, Date: testDate, Time: "10:00",
				Status: domain.StatusTrainerReserved, TrainerName: ptr.Ptr("Дмитрий")},
			{ID: "r2", CourtID: 1, Date: testDate, Time: "11:00", Status: domain.StatusBlocked},
		}

		assert.NotNil(t, validateIsolatedGap(stored, "10:30", 30))
	})
}
