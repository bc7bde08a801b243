package device

import (
	"context"
	"strings"

	"trackline-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Device, error)
	Create(ctx context.Context, input CreateDeviceParams) (*Device, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Device, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, input CreateDeviceParams) (*Device, error) {
	log := logger.FromCtx(ctx)

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	d := &Device{
		ID:          uuid.New(),
		Name:        input.Name,
		Model:       input.Model,
		Description: input.Description,
		Color:       input.Color,
		Storage:     input.Storage,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Quantity:    quantity,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		log.Error("failed to create device",
			zap.String("name", input.Name),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("device created", zap.String("device_id", d.ID.String()))

	return d, nil
}
