package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"locotraq/internal/domain/entities"
	"locotraq/internal/domain/pricing"
)

// EstimateLocal computes the quote cost without touching the network. It is
// the same deterministic math the server runs on submission.
func EstimateLocal(selection entities.QuoteSelection) int {
	return pricing.Estimate(selection)
}

// EstimateRemote asks the server for the cost of a selection.
func (c *Client) EstimateRemote(ctx context.Context, selection entities.QuoteSelection) (int, error) {
	status, raw, err := c.do(ctx, http.MethodPost, "/quote/estimate", map[string]any{
		"trackingType": selection.TrackingType,
		"deviceCount":  selection.DeviceCount,
		"services":     selection.Services,
	})
	if err != nil {
		return 0, err
	}
	if status < 200 || status >= 300 {
		return 0, ServerError{Status: status, Message: serverMessage(raw)}
	}

	payload, err := unwrap(status, raw)
	if err != nil {
		return 0, err
	}
	var out struct {
		EstimatedCost int `json:"estimatedCost"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return 0, ServerError{Status: status, Err: err}
	}
	return out.EstimatedCost, nil
}

// SubmitQuote sends a quote request lead to the server.
func (c *Client) SubmitQuote(ctx context.Context, quote entities.QuoteRequest) (entities.QuoteRequest, error) {
	if err := quote.Validate(); err != nil {
		return entities.QuoteRequest{}, err
	}

	status, raw, err := c.do(ctx, http.MethodPost, "/quote/submit", quote)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if status < 200 || status >= 300 {
		return entities.QuoteRequest{}, ServerError{Status: status, Message: serverMessage(raw)}
	}

	payload, err := unwrap(status, raw)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	var created entities.QuoteRequest
	if err := json.Unmarshal(normalizeIdentifiers(payload), &created); err != nil {
		return entities.QuoteRequest{}, ServerError{Status: status, Err: err}
	}
	return created, nil
}
