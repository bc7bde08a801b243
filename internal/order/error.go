package order

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrAccessDenied    = errors.New("order not found or email does not match")
	ErrDuplicateNumber = errors.New("order or tracking number already in use")

	// PgUniqueViolation is the Postgres error code surfaced when a unique
	// constraint rejects an insert.
	PgUniqueViolation = "23505"
)
