package asset

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, a *Asset) error
	List(ctx context.Context) ([]Asset, error)
	Get(ctx context.Context, id uuid.UUID) (*Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, a *Asset) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO assets (id, filename, storage_key, size, mime_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING uploaded_at
	`, a.ID, a.Filename, a.URL, a.Size, a.MimeType).Scan(&a.UploadedAt)
}

func (r *repository) List(ctx context.Context) ([]Asset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, filename, storage_key, size, mime_type, uploaded_at
		FROM assets
		ORDER BY uploaded_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []Asset
	for rows.Next() {
		var a Asset
		if err := rows.Scan(
			&a.ID, &a.Filename, &a.URL, &a.Size, &a.MimeType, &a.UploadedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	return assets, rows.Err()
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Asset, error) {
	var a Asset
	err := r.db.QueryRowContext(ctx, `
		SELECT id, filename, storage_key, size, mime_type, uploaded_at
		FROM assets
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Filename, &a.URL, &a.Size, &a.MimeType, &a.UploadedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrAssetNotFound
	}
	return nil
}
