package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"trackline-be/internal/order"
	"trackline-be/internal/tracking"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderHandler struct {
	svc    order.Service
	events tracking.Service
}

func NewOrderHandler(svc order.Service, events tracking.Service) *OrderHandler {
	return &OrderHandler{svc: svc, events: events}
}

type createOrderRequest struct {
	OrderNumber       string          `json:"orderNumber"`
	TrackingNumber    string          `json:"trackingNumber"`
	DeviceID          *uuid.UUID      `json:"deviceId"`
	UserID            *uuid.UUID      `json:"userId"`
	CustomerName      *string         `json:"customerName"`
	CustomerEmail     *string         `json:"customerEmail"`
	ShippingAddress   *string         `json:"shippingAddress"`
	Waybill           *string         `json:"waybill"`
	PackageDimensions *string         `json:"packageDimensions"`
	SenderInfo        json.RawMessage `json:"senderInfo"`
	ReceiverInfo      json.RawMessage `json:"receiverInfo"`
	// Status is deliberately absent: new orders always start processing.
}

type updateOrderRequest struct {
	TrackingNumber    *string         `json:"trackingNumber"`
	DeviceID          *uuid.UUID      `json:"deviceId"`
	CustomerName      *string         `json:"customerName"`
	CustomerEmail     *string         `json:"customerEmail"`
	ShippingAddress   *string         `json:"shippingAddress"`
	Waybill           *string         `json:"waybill"`
	PackageDimensions *string         `json:"packageDimensions"`
	SenderInfo        json.RawMessage `json:"senderInfo"`
	ReceiverInfo      json.RawMessage `json:"receiverInfo"`
	Status            *string         `json:"status"`
}

type addEventRequest struct {
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	Date         *time.Time `json:"date"`
	UpdateStatus *string    `json:"updateStatus"`
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeData(w, http.StatusOK, orders)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.svc.Create(r.Context(), order.CreateOrderParams{
		OrderNumber:       req.OrderNumber,
		TrackingNumber:    req.TrackingNumber,
		DeviceID:          req.DeviceID,
		UserID:            req.UserID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		ShippingAddress:   req.ShippingAddress,
		Waybill:           req.Waybill,
		PackageDimensions: req.PackageDimensions,
		SenderInfo:        req.SenderInfo,
		ReceiverInfo:      req.ReceiverInfo,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusCreated, o)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err = h.svc.Update(r.Context(), id, order.UpdateOrderParams{
		TrackingNumber:    req.TrackingNumber,
		DeviceID:          req.DeviceID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		ShippingAddress:   req.ShippingAddress,
		Waybill:           req.Waybill,
		PackageDimensions: req.PackageDimensions,
		SenderInfo:        req.SenderInfo,
		ReceiverInfo:      req.ReceiverInfo,
		Status:            req.Status,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w)
}

func (h *OrderHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req addEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.events.AddEvent(r.Context(), tracking.AddEventParams{
		OrderID:      orderID,
		Location:     req.Location,
		Description:  req.Description,
		Date:         req.Date,
		UpdateStatus: req.UpdateStatus,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusCreated, e)
}
