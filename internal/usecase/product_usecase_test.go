package usecase

import (
	"context"
	"errors"
	"testing"

	"locotraq/internal/domain/entities"
	mock_interfaces "locotraq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validProductDraft() entities.Product {
	return entities.Product{
		ProductName:      "LT-200 OBD Tracker",
		Category:         "gps-trackers",
		Subcategory:      "vehicle",
		ShortDescription: "Plug-and-play vehicle tracker",
		Description:      "OBD-II tracker with 4G reporting and geofencing.",
		Price:            129.90,
		OriginalPrice:    159.90,
		StockQuantity:    12,
		Brand:            "Locotraq",
		Features:         []string{"4G LTE", "Geofencing"},
		Specifications:   map[string]string{"battery": "backup 8h"},
		Image:            "https://cdn.example.com/lt200.jpg",
		ImagePublicID:    "uploads/lt200.jpg",
	}
}

func TestProductUseCase_Create(t *testing.T) {
	t.Run("validation order reports productName first", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil)
		draft := validProductDraft()
		draft.ProductName = ""
		draft.Category = ""

		_, err := uc.Create(context.Background(), draft)
		var ve *entities.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Field != "productName" {
			t.Fatalf("expected productName violation, got %q", ve.Field)
		}
	})

	t.Run("assigns id, stock flag and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if !p.InStock {
					t.Fatalf("expected InStock derived from stock quantity")
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps to be set")
				}
				return p, nil
			})

		created, err := uc.Create(context.Background(), validProductDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected created product with id")
		}
	})
}

func TestProductUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestProductUseCase_Related(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(repo, nil, nil)

	target := validProductDraft()
	target.ID = "p1"

	catalog := []entities.Product{target}
	for _, id := range []string{"p2", "p3", "p4", "p5", "p6"} {
		p := validProductDraft()
		p.ID = id
		catalog = append(catalog, p)
	}
	other := validProductDraft()
	other.ID = "p7"
	other.Category = "accessories"
	catalog = append(catalog, other)

	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(target, nil)
	repo.EXPECT().List(gomock.Any()).Return(catalog, nil)

	got, related, err := uc.Related(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "p1" {
		t.Fatalf("expected target product, got %s", got.ID)
	}
	if len(related) != 4 {
		t.Fatalf("expected at most 4 related products, got %d", len(related))
	}
	for _, r := range related {
		if r.ID == "p1" {
			t.Fatalf("related products must not include the target")
		}
		if r.Category != target.Category {
			t.Fatalf("related products must share the category, got %s", r.Category)
		}
	}
}

func TestProductUseCase_Update(t *testing.T) {
	t.Run("replaced image triggers cleanup of the old asset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		assets := mock_interfaces.NewMockIAssetStore(ctrl)
		uc := NewProductUseCase(repo, assets, nil)

		existing := validProductDraft()
		existing.ID = "p1"
		existing.ImagePublicID = "uploads/old.jpg"

		draft := validProductDraft()
		draft.ImagePublicID = "uploads/new.jpg"

		updated := draft
		updated.ID = "p1"

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(updated, nil)
		assets.EXPECT().Delete(gomock.Any(), "uploads/old.jpg").Return(nil)

		if _, err := uc.Update(context.Background(), "p1", draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cleanup failure does not fail the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		assets := mock_interfaces.NewMockIAssetStore(ctrl)
		uc := NewProductUseCase(repo, assets, nil)

		existing := validProductDraft()
		existing.ID = "p1"
		existing.ImagePublicID = "uploads/old.jpg"

		draft := validProductDraft()
		draft.ImagePublicID = "uploads/new.jpg"
		updated := draft
		updated.ID = "p1"

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(updated, nil)
		assets.EXPECT().Delete(gomock.Any(), "uploads/old.jpg").Return(errors.New("s3 down"))

		if _, err := uc.Update(context.Background(), "p1", draft); err != nil {
			t.Fatalf("cleanup failure must not surface, got %v", err)
		}
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	t.Run("deletes row then asset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		assets := mock_interfaces.NewMockIAssetStore(ctrl)
		uc := NewProductUseCase(repo, assets, nil)

		existing := validProductDraft()
		existing.ID = "p1"

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(existing, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)
		assets.EXPECT().Delete(gomock.Any(), existing.ImagePublicID).Return(errors.New("s3 down"))

		if err := uc.Delete(context.Background(), "p1"); err != nil {
			t.Fatalf("asset cleanup failure must not surface, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
