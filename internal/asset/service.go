package asset

import (
	"context"
	"fmt"
	"io"
	"time"

	"trackline-be/internal/logger"
	"trackline-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const downloadURLTTL = time.Hour

type UploadParams struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Service interface {
	Upload(ctx context.Context, input UploadParams) (*Asset, error)
	List(ctx context.Context) ([]ListedAsset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo    Repository
	storage Storage
	now     func() time.Time
}

func NewService(repo Repository, storage Storage) Service {
	return &service{repo: repo, storage: storage, now: time.Now}
}

// Upload writes the blob first, then the metadata record. A metadata-write
// failure leaves the blob orphaned; there is no compensating delete.
func (s *service) Upload(ctx context.Context, input UploadParams) (*Asset, error) {
	log := logger.FromCtx(ctx)

	if input.Filename == "" || input.Body == nil {
		return nil, ErrFileRequired
	}

	key := fmt.Sprintf("%d-%s", s.now().UnixMilli(), utils.SanitizeFilename(input.Filename))

	if err := s.storage.Put(ctx, key, input.Body, input.Size, input.ContentType); err != nil {
		log.Error("failed to upload blob",
			zap.String("filename", input.Filename),
			zap.Error(err),
		)
		return nil, err
	}

	a := &Asset{
		ID:       uuid.New(),
		Filename: input.Filename,
		URL:      key,
		Size:     input.Size,
		MimeType: input.ContentType,
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		log.Error("failed to record asset metadata, blob is orphaned",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("asset uploaded",
		zap.String("asset_id", a.ID.String()),
		zap.String("key", key),
	)

	return a, nil
}

// List returns all assets newest-first, each with a fresh signed download
// URL. A signing failure nulls that record's URL instead of failing the
// listing.
func (s *service) List(ctx context.Context) ([]ListedAsset, error) {
	log := logger.FromCtx(ctx)

	assets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	listed := make([]ListedAsset, 0, len(assets))
	for _, a := range assets {
		item := ListedAsset{Asset: a}

		signed, err := s.storage.PresignGet(a.URL, downloadURLTTL)
		if err != nil {
			log.Warn("failed to sign download url",
				zap.String("asset_id", a.ID.String()),
				zap.Error(err),
			)
		} else {
			item.DownloadURL = &signed
		}

		listed = append(listed, item)
	}

	return listed, nil
}

// Delete removes the blob best-effort, then the metadata record
// unconditionally. A blob-delete failure is logged, not surfaced.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromCtx(ctx).With(zap.String("asset_id", id.String()))

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, a.URL); err != nil {
		log.Warn("failed to delete blob, removing metadata anyway",
			zap.String("key", a.URL),
			zap.Error(err),
		)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("asset deleted")
	return nil
}
