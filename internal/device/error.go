package device

import "errors"

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrNameRequired   = errors.New("device name is required")
)
