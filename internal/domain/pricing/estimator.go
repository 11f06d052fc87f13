// Package pricing implements the quote cost estimator.
//
// Estimate is pure and deterministic: it performs no I/O, keeps no state and
// must be re-invoked with the complete selection whenever any field changes.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"locotraq/internal/domain/entities"
)

// Per-device base rates by tracking type.
const (
	rateVehicle  = 3500
	ratePersonal = 2500
	rateFleet    = 4500
	rateAsset    = 5500
	ratePet      = 2000
	rateDefault  = 3000
)

// Add-on service costs. Installation, monitoring and maintenance scale per
// device; training and support are flat.
const (
	costInstallationPerDevice = 500
	costMonitoringPerDevice   = 200
	costMaintenancePerDevice  = 300
	costTrainingFlat          = 2000
	costSupportFlat           = 1500
)

// discountBreakpoints is ordered highest first; the first breakpoint met
// selects the rate applied to the pre-discount subtotal.
var discountBreakpoints = []struct {
	minDevices int
	rate       float64
}{
	{50, 0.20},
	{20, 0.15},
	{10, 0.10},
	{5, 0.05},
}

// ParseDeviceCount reduces a device-count form value to an integer.
//
// The quote form submits bucketed ranges such as "10-19"; the estimate uses
// the bucket's lower bound. Anything unparseable, absent or below one yields
// the minimum of 1.
func ParseDeviceCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, "-+"); i >= 0 {
		raw = raw[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// BaseRate returns the per-device rate for a tracking type.
func BaseRate(t entities.TrackingType) int {
	switch t {
	case entities.TrackingTypeVehicle:
		return rateVehicle
	case entities.TrackingTypePersonal:
		return ratePersonal
	case entities.TrackingTypeFleet:
		return rateFleet
	case entities.TrackingTypeAsset:
		return rateAsset
	case entities.TrackingTypePet:
		return ratePet
	default:
		return rateDefault
	}
}

// DiscountRate returns the discount applied for a device count, choosing the
// highest breakpoint met.
func DiscountRate(devices int) float64 {
	for _, bp := range discountBreakpoints {
		if devices >= bp.minDevices {
			return bp.rate
		}
	}
	return 0
}

// Estimate computes the quoted cost for a selection, rounded to the nearest
// integer.
func Estimate(sel entities.QuoteSelection) int {
	devices := ParseDeviceCount(sel.DeviceCount)
	subtotal := float64(BaseRate(sel.TrackingType) * devices)

	for _, svc := range sel.Services {
		switch svc {
		case entities.AddOnInstallation:
			subtotal += float64(costInstallationPerDevice * devices)
		case entities.AddOnMonitoring:
			subtotal += float64(costMonitoringPerDevice * devices)
		case entities.AddOnMaintenance:
			subtotal += float64(costMaintenancePerDevice * devices)
		case entities.AddOnTraining:
			subtotal += costTrainingFlat
		case entities.AddOnSupport:
			subtotal += costSupportFlat
		}
	}

	total := subtotal * (1 - DiscountRate(devices))
	return int(math.Round(total))
}
