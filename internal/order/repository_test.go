package order

import (
	"context"
	"testing"
	"time"

	"trackline-be/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var orderCols = []string{
	"id", "order_number", "tracking_number", "device_id", "user_id",
	"customer_name", "customer_email", "shipping_address", "waybill",
	"package_dimensions", "sender_info", "receiver_info", "status",
	"created_at", "updated_at",
}

func addOrderRow(rows *sqlmock.Rows, id uuid.UUID, orderNumber string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, orderNumber, "TRK-00001", nil, nil,
		"Jane Doe", "jane@example.com", "Jl. Sudirman 1", nil,
		nil, []byte(`{"name":"warehouse"}`), []byte(`{"name":"Jane"}`),
		StatusProcessing, now, now,
	)
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := addOrderRow(sqlmock.NewRows(orderCols), uuid.New(), "ORD-00001")
		mock.ExpectQuery(`FROM orders ORDER BY created_at DESC`).
			WillReturnRows(rows)

		orders, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, "ORD-00001", orders[0].OrderNumber)
		assert.Equal(t, "jane@example.com", *orders[0].CustomerEmail)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		o := &Order{
			ID:             uuid.New(),
			OrderNumber:    "ORD-00042",
			TrackingNumber: utils.StrPtr("TRK-00042"),
			Status:         StatusProcessing,
		}

		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
				AddRow(time.Now(), time.Now()))

		err := repo.Insert(context.Background(), o)
		assert.NoError(t, err)
		assert.False(t, o.CreatedAt.IsZero())
	})

	t.Run("DuplicateNumber", func(t *testing.T) {
		o := &Order{ID: uuid.New(), OrderNumber: "ORD-00042", Status: StatusProcessing}

		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Insert(context.Background(), o)
		assert.Equal(t, ErrDuplicateNumber, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("EmptyPatchNoWrite", func(t *testing.T) {
		err := repo.Update(context.Background(), id, UpdateOrderParams{})
		assert.NoError(t, err)
	})

	t.Run("SingleField", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET waybill = (.+), updated_at = NOW`).
			WithArgs("AWB-123", id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), id, UpdateOrderParams{
			Waybill: utils.StrPtr("AWB-123"),
		})
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status = (.+), updated_at = NOW`).
			WithArgs(StatusShipped, id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), id, UpdateOrderParams{
			Status: utils.StrPtr(StatusShipped),
		})
		assert.Equal(t, ErrOrderNotFound, err)
	})

	t.Run("DuplicateTrackingNumber", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET tracking_number = (.+), updated_at = NOW`).
			WithArgs("TRK-00001", id).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Update(context.Background(), id, UpdateOrderParams{
			TrackingNumber: utils.StrPtr("TRK-00001"),
		})
		assert.Equal(t, ErrDuplicateNumber, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status =`).
			WithArgs(StatusDelivered, id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), id, StatusDelivered)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status =`).
			WithArgs(StatusDelivered, id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), id, StatusDelivered)
		assert.Equal(t, ErrOrderNotFound, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByEmailAndReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("MatchesOrderNumber", func(t *testing.T) {
		id := uuid.New()
		rows := addOrderRow(sqlmock.NewRows(orderCols), id, "ORD-00007")
		mock.ExpectQuery(`FROM orders`).
			WithArgs("jane@example.com", "ORD-00007").
			WillReturnRows(rows)

		o, err := repo.FindByEmailAndReference(context.Background(), "jane@example.com", "ORD-00007")
		assert.NoError(t, err)
		assert.Equal(t, id, o.ID)
	})

	t.Run("NoMatch", func(t *testing.T) {
		mock.ExpectQuery(`FROM orders`).
			WithArgs("jane@example.com", "ORD-99999").
			WillReturnRows(sqlmock.NewRows(orderCols))

		_, err := repo.FindByEmailAndReference(context.Background(), "jane@example.com", "ORD-99999")
		assert.Equal(t, ErrOrderNotFound, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LinkUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	orderID := uuid.New()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET user_id =`).
			WithArgs(userID, orderID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.LinkUser(context.Background(), orderID, userID)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET user_id =`).
			WithArgs(userID, orderID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.LinkUser(context.Background(), orderID, userID)
		assert.Equal(t, ErrOrderNotFound, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
