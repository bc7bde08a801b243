package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"trackline-be/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, e *Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]Event, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

type MockStatusUpdater struct {
	mock.Mock
}

func (m *MockStatusUpdater) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func TestService_AddEvent(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("DateDefaultsToNow", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockStatusUpdater)
		svc := NewService(repo, orders)

		before := time.Now().UTC()
		repo.On("Insert", ctx, mock.MatchedBy(func(e *Event) bool {
			return !e.Date.Before(before) && e.OrderID == orderID
		})).Return(nil)

		e, err := svc.AddEvent(ctx, AddEventParams{
			OrderID:     orderID,
			Location:    "Jakarta",
			Description: "Shipped",
		})
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
		orders.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("ExplicitDateKept", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockStatusUpdater)
		svc := NewService(repo, orders)

		date := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		repo.On("Insert", ctx, mock.MatchedBy(func(e *Event) bool {
			return e.Date.Equal(date)
		})).Return(nil)

		e, err := svc.AddEvent(ctx, AddEventParams{OrderID: orderID, Date: &date})
		assert.NoError(t, err)
		assert.Equal(t, date, e.Date)
	})

	t.Run("UpdatesOrderStatusExactly", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockStatusUpdater)
		svc := NewService(repo, orders)

		repo.On("Insert", ctx, mock.Anything).Return(nil)
		orders.On("UpdateStatus", ctx, orderID, "out for delivery").Return(nil)

		_, err := svc.AddEvent(ctx, AddEventParams{
			OrderID:      orderID,
			UpdateStatus: utils.StrPtr("out for delivery"),
		})
		assert.NoError(t, err)
		orders.AssertExpectations(t)
	})

	t.Run("EmptyStatusSkipsUpdate", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockStatusUpdater)
		svc := NewService(repo, orders)

		repo.On("Insert", ctx, mock.Anything).Return(nil)

		_, err := svc.AddEvent(ctx, AddEventParams{
			OrderID:      orderID,
			UpdateStatus: utils.StrPtr(""),
		})
		assert.NoError(t, err)
		orders.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("InsertFailureSkipsStatusUpdate", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockStatusUpdater)
		svc := NewService(repo, orders)

		repo.On("Insert", ctx, mock.Anything).Return(errors.New("insert error"))

		_, err := svc.AddEvent(ctx, AddEventParams{
			OrderID:      orderID,
			UpdateStatus: utils.StrPtr("shipped"),
		})
		assert.Error(t, err)
		orders.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("StatusFailureSurfacedAfterInsert", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockStatusUpdater)
		svc := NewService(repo, orders)

		repo.On("Insert", ctx, mock.Anything).Return(nil)
		orders.On("UpdateStatus", ctx, orderID, "shipped").Return(errors.New("update error"))

		_, err := svc.AddEvent(ctx, AddEventParams{
			OrderID:      orderID,
			UpdateStatus: utils.StrPtr("shipped"),
		})
		assert.Error(t, err)
		repo.AssertCalled(t, "Insert", ctx, mock.Anything)
	})
}

func TestService_ListByOrder(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, new(MockStatusUpdater))

	orderID := uuid.New()
	repo.On("ListByOrder", ctx, orderID).Return([]Event{{OrderID: orderID}}, nil)

	events, err := svc.ListByOrder(ctx, orderID)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
}
