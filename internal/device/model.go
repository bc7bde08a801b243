package device

import (
	"time"

	"github.com/google/uuid"
)

type Device struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Model       *string   `json:"model"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	Storage     *string   `json:"storage"`
	Price       *string   `json:"price"`
	ImageURL    *string   `json:"imageUrl"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateDeviceParams struct {
	Name        string  `json:"name"`
	Model       *string `json:"model"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Storage     *string `json:"storage"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	Quantity    *int    `json:"quantity"`
}
