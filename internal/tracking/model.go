package tracking

import (
	"time"

	"github.com/google/uuid"
)

// Event is one immutable entry in an order's delivery timeline. There is no
// update or delete path.
type Event struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"orderId"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AddEventParams struct {
	OrderID      uuid.UUID
	Location     string
	Description  string
	Date         *time.Time
	UpdateStatus *string
}
