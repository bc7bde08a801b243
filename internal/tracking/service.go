package tracking

import (
	"context"
	"time"

	"trackline-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderStatusUpdater is satisfied by the order repository. Kept as a local
// interface so the tracking package does not depend on the order package.
type OrderStatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

type Service interface {
	AddEvent(ctx context.Context, input AddEventParams) (*Event, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]Event, error)
}

type service struct {
	repo   Repository
	orders OrderStatusUpdater
}

func NewService(repo Repository, orders OrderStatusUpdater) Service {
	return &service{repo: repo, orders: orders}
}

// AddEvent appends a timeline event and, when requested, updates the parent
// order's status as a second independent write. The two writes are not one
// transaction: a failure after the insert leaves the event recorded and the
// status stale.
func (s *service) AddEvent(ctx context.Context, input AddEventParams) (*Event, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", input.OrderID.String()),
	)

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	e := &Event{
		ID:          uuid.New(),
		OrderID:     input.OrderID,
		Date:        date,
		Location:    input.Location,
		Description: input.Description,
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		log.Error("failed to insert tracking event", zap.Error(err))
		return nil, err
	}

	if input.UpdateStatus != nil && *input.UpdateStatus != "" {
		if err := s.orders.UpdateStatus(ctx, input.OrderID, *input.UpdateStatus); err != nil {
			log.Error("failed to update order status after event",
				zap.String("status", *input.UpdateStatus),
				zap.Error(err),
			)
			return nil, err
		}

		log.Info("order status updated from tracking event",
			zap.String("status", *input.UpdateStatus),
		)
	}

	return e, nil
}

func (s *service) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]Event, error) {
	return s.repo.ListByOrder(ctx, orderID)
}
