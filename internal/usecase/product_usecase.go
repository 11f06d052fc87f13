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
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// IProductUseCase exposes admin catalog operations.

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Related(ctx context.Context, id string) (entities.Product, []entities.Product, error)
	Create(ctx context.Context, draft entities.Product) (entities.Product, error)
	Update(ctx context.Context, id string, draft entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo   interfaces.IProductRepository
	assets interfaces.IAssetStore
	log    *zap.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, assets interfaces.IAssetStore, log *zap.Logger) *ProductUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductUseCase{repo: repo, assets: assets, log: log}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Related returns a product together with up to four other products from the
// same category, backing the storefront product detail page.
func (u *ProductUseCase) Related(ctx context.Context, id string) (entities.Product, []entities.Product, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, nil, err
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return entities.Product{}, nil, err
	}

	related := make([]entities.Product, 0, 4)
	for _, other := range all {
		if other.ID == p.ID || other.Category != p.Category {
			continue
		}
		related = append(related, other)
		if len(related) == 4 {
			break
		}
	}
	return p, related, nil
}

func (u *ProductUseCase) Create(ctx context.Context, draft entities.Product) (entities.Product, error) {
	if err := draft.Validate(); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.InStock = draft.StockQuantity > 0
	draft.CreatedAt = now
	draft.UpdatedAt = now
	return u.repo.Create(ctx, draft)
}

func (u *ProductUseCase) Update(ctx context.Context, id string, draft entities.Product) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if err := draft.Validate(); err != nil {
		return entities.Product{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	draft.ID = existing.ID
	draft.InStock = draft.StockQuantity > 0
	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, draft)
	if err != nil {
		return entities.Product{}, err
	}

	if existing.ImagePublicID != "" && existing.ImagePublicID != updated.ImagePublicID {
		u.cleanupAsset(ctx, existing.ImagePublicID)
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProductNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}

	// The product row is already gone; asset cleanup must not undo that.
	if existing.ImagePublicID != "" {
		u.cleanupAsset(ctx, existing.ImagePublicID)
	}
	return nil
}

func (u *ProductUseCase) cleanupAsset(ctx context.Context, publicID string) {
	if u.assets == nil {
		return
	}
	if err := u.assets.Delete(ctx, publicID); err != nil {
		u.log.Warn("product asset cleanup failed", zap.String("public_id", publicID), zap.Error(err))
	}
}
