package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trackline-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Insert(ctx context.Context, o *Order) error
	Update(ctx context.Context, id uuid.UUID, p UpdateOrderParams) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
	FindByEmailAndReference(ctx context.Context, email, reference string) (*Order, error)
	FindByReference(ctx context.Context, reference string) (*Order, error)
	LinkUser(ctx context.Context, orderID, userID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, order_number, tracking_number, device_id, user_id,
	customer_name, customer_email, shipping_address, waybill,
	package_dimensions, sender_info, receiver_info, status,
	created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	var sender, receiver []byte

	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.TrackingNumber, &o.DeviceID, &o.UserID,
		&o.CustomerName, &o.CustomerEmail, &o.ShippingAddress, &o.Waybill,
		&o.PackageDimensions, &sender, &receiver, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.SenderInfo = sender
	o.ReceiverInfo = receiver
	return &o, nil
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}

	return orders, rows.Err()
}

func (r *repository) Insert(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, order_number, tracking_number, device_id, user_id,
			customer_name, customer_email, shipping_address, waybill,
			package_dimensions, sender_info, receiver_info, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING created_at, updated_at
	`,
		o.ID, o.OrderNumber, o.TrackingNumber, o.DeviceID, o.UserID,
		o.CustomerName, o.CustomerEmail, o.ShippingAddress, o.Waybill,
		o.PackageDimensions, []byte(o.SenderInfo), []byte(o.ReceiverInfo),
		o.Status,
	).Scan(&o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return ErrDuplicateNumber
		}

		log.Error("db: failed to insert order",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// Update applies only the fields present in p. An empty patch performs no
// write and returns nil.
func (r *repository) Update(ctx context.Context, id uuid.UUID, p UpdateOrderParams) error {
	if !p.HasAny() {
		return nil
	}

	sets := []string{}
	args := []any{}
	argIndex := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if p.TrackingNumber != nil {
		add("tracking_number", *p.TrackingNumber)
	}
	if p.DeviceID != nil {
		add("device_id", *p.DeviceID)
	}
	if p.CustomerName != nil {
		add("customer_name", *p.CustomerName)
	}
	if p.CustomerEmail != nil {
		add("customer_email", *p.CustomerEmail)
	}
	if p.ShippingAddress != nil {
		add("shipping_address", *p.ShippingAddress)
	}
	if p.Waybill != nil {
		add("waybill", *p.Waybill)
	}
	if p.PackageDimensions != nil {
		add("package_dimensions", *p.PackageDimensions)
	}
	if p.SenderInfo != nil {
		add("sender_info", []byte(p.SenderInfo))
	}
	if p.ReceiverInfo != nil {
		add("receiver_info", []byte(p.ReceiverInfo))
	}
	if p.Status != nil {
		add("status", *p.Status)
	}

	query := "UPDATE orders SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(", updated_at = NOW() WHERE id = $%d", argIndex)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return ErrDuplicateNumber
		}
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, orderID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) FindByEmailAndReference(ctx context.Context, email, reference string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_email = $1
		  AND (order_number = $2 OR tracking_number = $2)
		LIMIT 1
	`, email, reference)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) FindByReference(ctx context.Context, reference string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE order_number = $1 OR tracking_number = $1
		LIMIT 1
	`, reference)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) LinkUser(ctx context.Context, orderID, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET user_id = $1, updated_at = NOW() WHERE id = $2`,
		userID, orderID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
