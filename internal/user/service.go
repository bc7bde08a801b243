package user

import (
	"context"
	"fmt"

	"trackline-be/internal/logger"
	"trackline-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Sync(ctx context.Context, p utils.Principal) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Sync resolves the application user for an authenticated principal,
// creating it with the default role on first sight.
func (s *service) Sync(ctx context.Context, p utils.Principal) (User, error) {
	log := logger.FromCtx(ctx)

	if p.ExternalID == "" {
		return User{}, ErrUnauthenticated
	}

	u, err := s.repo.Upsert(ctx, User{
		ID:         uuid.New(),
		ExternalID: p.ExternalID,
		Email:      p.Email,
		Name:       p.Name,
		Role:       RoleUser,
	})
	if err != nil {
		log.Error("failed to sync user",
			zap.String("external_id", p.ExternalID),
			zap.Error(err),
		)
		return User{}, err
	}

	log.Debug("user synced",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("role", string(u.Role)),
	)

	return u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateRole(ctx context.Context, id uuid.UUID, role Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	return s.repo.UpdateRole(ctx, id, role)
}
