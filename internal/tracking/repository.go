package tracking

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, e *Event) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]Event, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, e *Event) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO tracking_events (id, order_id, date, location, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, e.ID, e.OrderID, e.Date, e.Location, e.Description).Scan(&e.CreatedAt)
}

func (r *repository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, date, location, description, created_at
		FROM tracking_events
		WHERE order_id = $1
		ORDER BY date DESC, created_at DESC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(
			&e.ID, &e.OrderID, &e.Date, &e.Location, &e.Description, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
