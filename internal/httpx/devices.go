package httpx

import (
	"net/http"

	"trackline-be/internal/device"
)

type DeviceHandler struct {
	svc device.Service
}

func NewDeviceHandler(svc device.Service) *DeviceHandler {
	return &DeviceHandler{svc: svc}
}

func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	devices, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if devices == nil {
		devices = []device.Device{}
	}

	writeData(w, http.StatusOK, devices)
}

func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req device.CreateDeviceParams
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusCreated, d)
}
