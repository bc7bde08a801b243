package device

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deviceRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "model", "description", "color", "storage",
		"price", "image_url", "quantity", "created_at",
	})
	for _, id := range ids {
		rows.AddRow(id, "Pixel 9", "GA05840", nil, "Obsidian", "256GB",
			"$799", nil, 3, time.Now())
	}
	return rows
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM devices ORDER BY created_at DESC`).
			WillReturnRows(deviceRows(uuid.New(), uuid.New()))

		devices, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, devices, 2)
		assert.Equal(t, "Pixel 9", devices[0].Name)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`FROM devices`).
			WillReturnError(errors.New("db error"))

		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	d := &Device{
		ID:       uuid.New(),
		Name:     "Pixel 9",
		Quantity: 1,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO devices`).
			WithArgs(d.ID, d.Name, d.Model, d.Description, d.Color,
				d.Storage, d.Price, d.ImageURL, d.Quantity).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		err := repo.Create(ctx, d)
		assert.NoError(t, err)
		assert.False(t, d.CreatedAt.IsZero())
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO devices`).
			WillReturnError(errors.New("insert error"))

		err := repo.Create(ctx, d)
		assert.Error(t, err)
	})
}

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM devices\s+WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(deviceRows(id))

		d, err := repo.Get(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, id, d.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`FROM devices\s+WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, id)
		assert.Equal(t, ErrDeviceNotFound, err)
	})
}
