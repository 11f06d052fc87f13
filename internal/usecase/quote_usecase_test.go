package usecase

import (
	"context"
	"errors"
	"testing"

	"locotraq/internal/domain/entities"
	mock_interfaces "locotraq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validQuoteDraft() entities.QuoteRequest {
	return entities.QuoteRequest{
		Name:  "Carlos Lima",
		Email: "carlos@example.com",
		Selection: entities.QuoteSelection{
			TrackingType: entities.TrackingTypeFleet,
			DeviceCount:  "10-19",
			Services:     []entities.AddOnService{entities.AddOnInstallation},
		},
	}
}

func TestQuoteUseCase_Estimate(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil)

	got := uc.Estimate(entities.QuoteSelection{
		TrackingType: entities.TrackingTypeFleet,
		DeviceCount:  "10",
		Services:     []entities.AddOnService{entities.AddOnInstallation},
	})
	if got != 45000 {
		t.Fatalf("expected 45000, got %d", got)
	}
}

func TestQuoteUseCase_Submit(t *testing.T) {
	t.Run("validation order reports name first", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		draft := validQuoteDraft()
		draft.Name = ""
		draft.Email = ""

		_, err := uc.Submit(context.Background(), draft)
		var ve *entities.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Field != "name" {
			t.Fatalf("expected name violation, got %q", ve.Field)
		}
	})

	t.Run("recomputes the estimate server-side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		relay := mock_interfaces.NewMockIFormRelay(ctrl)
		uc := NewQuoteUseCase(repo, relay, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
				// fleet, bucket 10-19 -> 10 devices with installation, 10% off.
				if q.EstimatedCost != 45000 {
					t.Fatalf("expected recomputed 45000, got %d", q.EstimatedCost)
				}
				if q.ID == "" {
					t.Fatalf("expected generated id")
				}
				return q, nil
			})
		relay.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)

		draft := validQuoteDraft()
		draft.EstimatedCost = 1 // client value must be ignored
		if _, err := uc.Submit(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("relay failure never fails the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		relay := mock_interfaces.NewMockIFormRelay(ctrl)
		uc := NewQuoteUseCase(repo, relay, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) { return q, nil })
		relay.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errors.New("web3forms timeout"))

		if _, err := uc.Submit(context.Background(), validQuoteDraft()); err != nil {
			t.Fatalf("relay failure must not surface, got %v", err)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("dynamo down"))

		if _, err := uc.Submit(context.Background(), validQuoteDraft()); err == nil {
			t.Fatalf("expected repository error")
		}
	})
}
