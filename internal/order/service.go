package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"trackline-be/internal/device"
	"trackline-be/internal/logger"
	"trackline-be/internal/tracking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const createAttempts = 3

type Service interface {
	List(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, input CreateOrderParams) (*Order, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateOrderParams) error
	VerifyAccess(ctx context.Context, email, reference string) (*AccessView, error)
	LinkUser(ctx context.Context, userID uuid.UUID, reference string) error
}

type service struct {
	repo    Repository
	devices device.Repository
	events  tracking.Repository
}

func NewService(repo Repository, devices device.Repository, events tracking.Repository) Service {
	return &service{repo: repo, devices: devices, events: events}
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// Create persists a new order. Status is always forced to "processing".
// Omitted order/tracking numbers are generated with a random suffix; a
// collision with an existing generated number is retried a few times before
// the duplicate error is surfaced.
func (s *service) Create(ctx context.Context, input CreateOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx)

	genOrderNumber := input.OrderNumber == ""
	genTrackingNumber := input.TrackingNumber == ""

	for attempt := 0; attempt < createAttempts; attempt++ {
		orderNumber := input.OrderNumber
		if genOrderNumber {
			orderNumber = fmt.Sprintf("ORD-%05d", rand.Intn(100000))
		}

		trackingNumber := input.TrackingNumber
		if genTrackingNumber {
			trackingNumber = fmt.Sprintf("TRK-%05d", rand.Intn(100000))
		}

		o := &Order{
			ID:                uuid.New(),
			OrderNumber:       orderNumber,
			TrackingNumber:    &trackingNumber,
			DeviceID:          input.DeviceID,
			UserID:            input.UserID,
			CustomerName:      input.CustomerName,
			CustomerEmail:     input.CustomerEmail,
			ShippingAddress:   input.ShippingAddress,
			Waybill:           input.Waybill,
			PackageDimensions: input.PackageDimensions,
			SenderInfo:        input.SenderInfo,
			ReceiverInfo:      input.ReceiverInfo,
			Status:            StatusProcessing,
		}

		err := s.repo.Insert(ctx, o)
		if err == nil {
			log.Info("order created",
				zap.String("order_id", o.ID.String()),
				zap.String("order_number", o.OrderNumber),
			)
			return o, nil
		}

		// Only regenerated numbers can be retried; a caller-supplied
		// duplicate will collide again.
		if errors.Is(err, ErrDuplicateNumber) && (genOrderNumber || genTrackingNumber) {
			log.Warn("generated order number collided, retrying",
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		return nil, err
	}

	return nil, ErrDuplicateNumber
}

func (s *service) Update(ctx context.Context, id uuid.UUID, p UpdateOrderParams) error {
	// An empty patch is a success with no write.
	if !p.HasAny() {
		return nil
	}
	return s.repo.Update(ctx, id, p)
}

// VerifyAccess authenticates a customer by email plus an order or tracking
// number and assembles the composite order view. A missing order and a wrong
// email produce the same error so callers cannot probe which references
// exist. If the order matches but a dependent lookup fails, the whole call
// fails rather than returning a partial view.
func (s *service) VerifyAccess(ctx context.Context, email, reference string) (*AccessView, error) {
	log := logger.FromCtx(ctx)

	o, err := s.repo.FindByEmailAndReference(ctx, email, reference)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}

	view := AccessView{
		Order:    OrderWithDevice{Order: *o},
		Timeline: []tracking.Event{},
	}

	if o.DeviceID != nil {
		d, err := s.devices.Get(ctx, *o.DeviceID)
		if err != nil {
			log.Error("failed to load device for order access",
				zap.String("order_id", o.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
		view.Order.Device = d
	}

	events, err := s.events.ListByOrder(ctx, o.ID)
	if err != nil {
		log.Error("failed to load timeline for order access",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if events != nil {
		view.Timeline = events
	}

	return &view, nil
}

func (s *service) LinkUser(ctx context.Context, userID uuid.UUID, reference string) error {
	o, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return err
	}
	return s.repo.LinkUser(ctx, o.ID, userID)
}
