package interfaces

import "context"

// IFormRelay abstracts the external form-delivery service that receives
// submitted quote requests (web3forms). Delivery is best-effort: callers
// must not fail a submission on relay errors.

type IFormRelay interface {
	Submit(ctx context.Context, fields map[string]any) error
}
