package order

import (
	"encoding/json"
	"time"

	"trackline-be/internal/device"
	"trackline-be/internal/tracking"

	"github.com/google/uuid"
)

const (
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
)

// Order. Status is an open string: the three constants above are the common
// values but admins may set anything via tracking updates.
type Order struct {
	ID                uuid.UUID       `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	TrackingNumber    *string         `json:"trackingNumber"`
	DeviceID          *uuid.UUID      `json:"deviceId"`
	UserID            *uuid.UUID      `json:"userId"`
	CustomerName      *string         `json:"customerName"`
	CustomerEmail     *string         `json:"customerEmail"`
	ShippingAddress   *string         `json:"shippingAddress"`
	Waybill           *string         `json:"waybill"`
	PackageDimensions *string         `json:"packageDimensions"`
	SenderInfo        json.RawMessage `json:"senderInfo"`
	ReceiverInfo      json.RawMessage `json:"receiverInfo"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type CreateOrderParams struct {
	OrderNumber       string
	TrackingNumber    string
	DeviceID          *uuid.UUID
	UserID            *uuid.UUID
	CustomerName      *string
	CustomerEmail     *string
	ShippingAddress   *string
	Waybill           *string
	PackageDimensions *string
	SenderInfo        json.RawMessage
	ReceiverInfo      json.RawMessage
}

// UpdateOrderParams carries a partial update. Only non-nil fields are
// applied; absence is not null.
type UpdateOrderParams struct {
	TrackingNumber    *string
	DeviceID          *uuid.UUID
	CustomerName      *string
	CustomerEmail     *string
	ShippingAddress   *string
	Waybill           *string
	PackageDimensions *string
	SenderInfo        json.RawMessage
	ReceiverInfo      json.RawMessage
	Status            *string
}

func (p UpdateOrderParams) HasAny() bool {
	return p.TrackingNumber != nil ||
		p.DeviceID != nil ||
		p.CustomerName != nil ||
		p.CustomerEmail != nil ||
		p.ShippingAddress != nil ||
		p.Waybill != nil ||
		p.PackageDimensions != nil ||
		p.SenderInfo != nil ||
		p.ReceiverInfo != nil ||
		p.Status != nil
}

// OrderWithDevice is an order with its linked device embedded (nil when the
// order has no device).
type OrderWithDevice struct {
	Order
	Device *device.Device `json:"device"`
}

// AccessView is the composite returned to a customer who proved knowledge of
// email plus an order or tracking number.
type AccessView struct {
	Order    OrderWithDevice  `json:"order"`
	Timeline []tracking.Event `json:"timeline"`
}
