package usecase

import (
	"context"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/domain/pricing"
	"locotraq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IQuoteUseCase exposes the quote calculator and lead intake.
//
// Estimate is pure and recomputed from the complete selection on every call;
// nothing is cached across selections.

type IQuoteUseCase interface {
	Estimate(sel entities.QuoteSelection) int
	Submit(ctx context.Context, draft entities.QuoteRequest) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
}

type QuoteUseCase struct {
	repo  interfaces.IQuoteRepository
	relay interfaces.IFormRelay
	log   *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, relay interfaces.IFormRelay, log *zap.Logger) *QuoteUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{repo: repo, relay: relay, log: log}
}

func (u *QuoteUseCase) Estimate(sel entities.QuoteSelection) int {
	return pricing.Estimate(sel)
}

// Submit stores a quote request as a sales lead and forwards it to the
// external form service. The estimate is recomputed server-side; relay
// delivery is fire-and-forget and never fails the submission.
func (u *QuoteUseCase) Submit(ctx context.Context, draft entities.QuoteRequest) (entities.QuoteRequest, error) {
	if err := draft.Validate(); err != nil {
		return entities.QuoteRequest{}, err
	}

	draft.ID = uuid.NewString()
	draft.EstimatedCost = pricing.Estimate(draft.Selection)
	draft.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	if u.relay != nil {
		fields := map[string]any{
			"subject":        "New quote request",
			"name":           created.Name,
			"email":          created.Email,
			"phone":          created.Phone,
			"company":        created.Company,
			"tracking_type":  string(created.Selection.TrackingType),
			"device_count":   created.Selection.DeviceCount,
			"estimated_cost": created.EstimatedCost,
		}
		if err := u.relay.Submit(ctx, fields); err != nil {
			u.log.Warn("quote form relay failed", zap.String("quote_id", created.ID), zap.Error(err))
		}
	}
	return created, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.repo.List(ctx)
}
