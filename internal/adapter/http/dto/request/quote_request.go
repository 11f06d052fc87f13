package request

import "locotraq/internal/domain/entities"

// QuoteEstimateRequest is the calculator input. DeviceCount may be a
// bucketed range string ("10-19"); the estimator reduces it to the bucket's
// lower bound.
type QuoteEstimateRequest struct {
	TrackingType string   `json:"trackingType"`
	DeviceCount  string   `json:"deviceCount"`
	Services     []string `json:"services"`
}

func (r QuoteEstimateRequest) ToSelection() entities.QuoteSelection {
	services := make([]entities.AddOnService, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, entities.AddOnService(s))
	}
	return entities.QuoteSelection{
		TrackingType: entities.TrackingType(r.TrackingType),
		DeviceCount:  r.DeviceCount,
		Services:     services,
	}
}

// QuoteSubmitRequest is the quote form submission payload.
type QuoteSubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	QuoteEstimateRequest
}

func (r QuoteSubmitRequest) ToEntity() entities.QuoteRequest {
	return entities.QuoteRequest{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Selection: r.ToSelection(),
	}
}
