package entities

import (
	"strings"
	"time"
)

// TrackingType selects the per-device base rate of a quote.
type TrackingType string

const (
	TrackingTypeVehicle  TrackingType = "vehicle"
	TrackingTypePersonal TrackingType = "personal"
	TrackingTypeFleet    TrackingType = "fleet"
	TrackingTypeAsset    TrackingType = "asset"
	TrackingTypePet      TrackingType = "pet"
)

// AddOnService is an optional service added to a quote.
type AddOnService string

const (
	AddOnInstallation AddOnService = "installation"
	AddOnMonitoring   AddOnService = "monitoring"
	AddOnMaintenance  AddOnService = "maintenance"
	AddOnTraining     AddOnService = "training"
	AddOnSupport      AddOnService = "support"
)

// QuoteSelection is the complete input of a cost estimate.
//
// DeviceCount is the raw form value and may be a bucketed range such as
// "10-19". The estimator reduces it to the bucket's lower bound before any
// arithmetic; see pricing.ParseDeviceCount.
type QuoteSelection struct {
	TrackingType TrackingType   `json:"trackingType"`
	DeviceCount  string         `json:"deviceCount"`
	Services     []AddOnService `json:"services,omitempty"`
}

// QuoteRequest is a submitted quote persisted as a sales lead.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EstimatedCost is the server-side recomputation of the estimate at
// submission time; it is derived, never trusted from the client.
type QuoteRequest struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone,omitempty"`
	Company       string         `json:"company,omitempty"`
	Selection     QuoteSelection `json:"selection"`
	EstimatedCost int            `json:"estimatedCost"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (q QuoteRequest) ResourceID() string { return q.ID }

func (q QuoteRequest) AssetID() string { return "" }

// Validate checks required fields in a fixed order and returns the first
// violation.
func (q QuoteRequest) Validate() error {
	if strings.TrimSpace(q.Name) == "" {
		return missingField("name")
	}
	if strings.TrimSpace(q.Email) == "" {
		return missingField("email")
	}
	if strings.TrimSpace(string(q.Selection.TrackingType)) == "" {
		return missingField("trackingType")
	}
	return nil
}
