package device

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context) ([]Device, error)
	Create(ctx context.Context, d *Device) error
	Get(ctx context.Context, id uuid.UUID) (*Device, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Device, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, model, description, color, storage, price,
		       image_url, quantity, created_at
		FROM devices
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []Device
	for rows.Next() {
		var d Device
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Model, &d.Description, &d.Color,
			&d.Storage, &d.Price, &d.ImageURL, &d.Quantity, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}

	return devices, rows.Err()
}

func (r *repository) Create(ctx context.Context, d *Device) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO devices (id, name, model, description, color, storage,
		                     price, image_url, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`,
		d.ID, d.Name, d.Model, d.Description, d.Color,
		d.Storage, d.Price, d.ImageURL, d.Quantity,
	).Scan(&d.CreatedAt)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Device, error) {
	var d Device
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, model, description, color, storage, price,
		       image_url, quantity, created_at
		FROM devices
		WHERE id = $1
	`, id).Scan(
		&d.ID, &d.Name, &d.Model, &d.Description, &d.Color,
		&d.Storage, &d.Price, &d.ImageURL, &d.Quantity, &d.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}

	return &d, nil
}
