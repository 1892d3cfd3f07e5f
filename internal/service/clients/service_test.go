package clients

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tennispark/TP-AdminService/internal/domain"
	clientsRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/clients"
	"github.com/tennispark/TP-AdminService/internal/service/clients/models"
	"github.com/tennispark/TP-AdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2025, 7, 3, 12, 0, 0, 0, time.UTC)

func seedClients() []*domain.Client {
	return []*domain.Client{
		{ID: 1, Name: "Анна Петрова", Phone: "+7 916 123-45-67",
			Email: ptr.Ptr("anna@mail.ru"), Status: domain.ClientVIP, RegistrationDate: testNow},
		{ID: 2, Name: "Михаил Иванов", Phone: "+7 903 987-65-43",
			Status: domain.ClientActive, RegistrationDate: testNow},
		{ID: 3, Name: "Ольга Васильева", Phone: "+7 925 333-44-55",
			Status: domain.ClientInactive, RegistrationDate: testNow},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	repo := clientsRepo.NewRepository()
	repo.Seed(seedClients(), []*domain.BookingHistoryEntry{
		{ID: 1, ClientID: 1, Date: testNow.AddDate(0, 0, -7), CourtName: "Корт 1 (Хард)", Duration: 60, Price: 1200, Kind: "court"},
		{ID: 2, ClientID: 1, Date: testNow.AddDate(0, 0, -1), CourtName: "Корт 3 (Грунт)", Duration: 90, Price: 2200, Kind: "training"},
	})

	return NewService(repo, fixedClock{now: testNow}, nopLogger{})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("no filter returns everyone", func(t *testing.T) {
		list, err := svc.List(ctx, &models.ListClientsRequest{})
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("search by name substring", func(t *testing.T) {
		list, err := svc.List(ctx, &models.ListClientsRequest{Search: "анна"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(1), list[0].ID)
	})

	t.Run("search by phone fragment", func(t *testing.T) {
		list, err := svc.List(ctx, &models.ListClientsRequest{Search: "987-65"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(2), list[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		vip := domain.ClientVIP
		list, err := svc.List(ctx, &models.ListClientsRequest{Status: &vip})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Анна Петрова", list[0].Name)
	})

	t.Run("unknown status", func(t *testing.T) {
		bad := domain.ClientStatus("gold")
		_, err := svc.List(ctx, &models.ListClientsRequest{Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("returns client with history newest first", func(t *testing.T) {
		got, err := svc.Get(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, "Анна Петрова", got.Client.Name)
		require.Len(t, got.History, 2)
		assert.Equal(t, int64(2), got.History[0].ID)
		assert.Equal(t, int64(1), got.History[1].ID)
	})

	t.Run("client without history", func(t *testing.T) {
		got, err := svc.Get(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, got.History)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Get(ctx, 99)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active status", func(t *testing.T) {
		svc := newTestService(t)

		created, err := svc.Create(ctx, &models.CreateClientRequest{
			Name:  "Сергей Волков",
			Phone: "+7 917 555-66-77",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ClientActive, created.Status)
		assert.Equal(t, testNow, created.RegistrationDate)
		assert.NotZero(t, created.ID)
	})

	t.Run("explicit status", func(t *testing.T) {
		svc := newTestService(t)

		vip := domain.ClientVIP
		created, err := svc.Create(ctx, &models.CreateClientRequest{
			Name:   "Сергей Волков",
			Phone:  "+7 917 555-66-77",
			Status: &vip,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ClientVIP, created.Status)
	})

	t.Run("validation", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Create(ctx, &models.CreateClientRequest{Phone: "+7 917 555-66-77"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Create(ctx, &models.CreateClientRequest{Name: "Сергей"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		bad := domain.ClientStatus("gold")
		_, err = svc.Create(ctx, &models.CreateClientRequest{Name: "Сергей", Phone: "1", Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
