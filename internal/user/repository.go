package user

import (
	"context"
	"database/sql"

	"trackline-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Upsert(ctx context.Context, u User) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts the user on first sync and refreshes email/name on later
// ones. The unique constraint on external_id makes concurrent first syncs
// converge on a single row.
func (r *repository) Upsert(ctx context.Context, u User) (User, error) {
	log := logger.FromCtx(ctx)

	var out User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, external_id, email, name, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (external_id)
		DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name
		RETURNING id, external_id, email, name, role
	`, u.ID, u.ExternalID, u.Email, u.Name, u.Role).
		Scan(&out.ID, &out.ExternalID, &out.Email, &out.Name, &out.Role)

	if err != nil {
		log.Error("db: failed to upsert user",
			zap.String("external_id", u.ExternalID),
			zap.Error(err),
		)
	}

	return out, err
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, external_id, email, name, role
		FROM users
		ORDER BY email
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *repository) UpdateRole(ctx context.Context, id uuid.UUID, role Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
