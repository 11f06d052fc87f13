package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrInvalidBlogID = errors.New("invalid blog id")
)

// IBlogUseCase exposes admin blog operations.

type IBlogUseCase interface {
	List(ctx context.Context) ([]entities.Blog, error)
	GetByID(ctx context.Context, id string) (entities.Blog, error)
	Create(ctx context.Context, draft entities.Blog) (entities.Blog, error)
	Update(ctx context.Context, id string, draft entities.Blog) (entities.Blog, error)
	Delete(ctx context.Context, id string) error
}

type BlogUseCase struct {
	repo   interfaces.IBlogRepository
	assets interfaces.IAssetStore
	log    *zap.Logger
}

var _ IBlogUseCase = (*BlogUseCase)(nil)

func NewBlogUseCase(repo interfaces.IBlogRepository, assets interfaces.IAssetStore, log *zap.Logger) *BlogUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BlogUseCase{repo: repo, assets: assets, log: log}
}

func (u *BlogUseCase) List(ctx context.Context) ([]entities.Blog, error) {
	return u.repo.List(ctx)
}

func (u *BlogUseCase) GetByID(ctx context.Context, id string) (entities.Blog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Blog{}, ErrInvalidBlogID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Blog{}, err
	}
	if b.ID == "" {
		return entities.Blog{}, ErrBlogNotFound
	}
	return b, nil
}

func (u *BlogUseCase) Create(ctx context.Context, draft entities.Blog) (entities.Blog, error) {
	if err := draft.Validate(); err != nil {
		return entities.Blog{}, err
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	return u.repo.Create(ctx, draft)
}

func (u *BlogUseCase) Update(ctx context.Context, id string, draft entities.Blog) (entities.Blog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Blog{}, ErrInvalidBlogID
	}
	if err := draft.Validate(); err != nil {
		return entities.Blog{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Blog{}, err
	}
	if existing.ID == "" {
		return entities.Blog{}, ErrBlogNotFound
	}

	draft.ID = existing.ID
	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, draft)
	if err != nil {
		return entities.Blog{}, err
	}

	// Cover image replaced: the old asset is orphaned, drop it best-effort.
	if existing.ImagePublicID != "" && existing.ImagePublicID != updated.ImagePublicID {
		u.cleanupAsset(ctx, existing.ImagePublicID)
	}
	return updated, nil
}

func (u *BlogUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBlogID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrBlogNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}

	// The blog row is already gone; asset cleanup must not undo that.
	if existing.ImagePublicID != "" {
		u.cleanupAsset(ctx, existing.ImagePublicID)
	}
	return nil
}

func (u *BlogUseCase) cleanupAsset(ctx context.Context, publicID string) {
	if u.assets == nil {
		return
	}
	if err := u.assets.Delete(ctx, publicID); err != nil {
		u.log.Warn("blog asset cleanup failed", zap.String("public_id", publicID), zap.Error(err))
	}
}
