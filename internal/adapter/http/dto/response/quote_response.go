package response

import (
	"time"

	"locotraq/internal/domain/entities"
)

// EstimateResponse is the calculator output.
type EstimateResponse struct {
	EstimatedCost int `json:"estimatedCost"`
}

// QuoteResponse is a submitted quote request.
type QuoteResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Email         string                  `json:"email"`
	Phone         string                  `json:"phone,omitempty"`
	Company       string                  `json:"company,omitempty"`
	Selection     entities.QuoteSelection `json:"selection"`
	EstimatedCost int                     `json:"estimatedCost"`
	CreatedAt     time.Time               `json:"createdAt"`
}

func FromQuote(q entities.QuoteRequest) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		Name:          q.Name,
		Email:         q.Email,
		Phone:         q.Phone,
		Company:       q.Company,
		Selection:     q.Selection,
		EstimatedCost: q.EstimatedCost,
		CreatedAt:     q.CreatedAt,
	}
}
