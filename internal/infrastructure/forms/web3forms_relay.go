package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"locotraq/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultEndpoint = "https://api.web3forms.com/submit"

// Web3FormsRelay forwards submitted quote forms to web3forms, which delivers
// them to the sales inbox. Callers treat delivery as best-effort.
type Web3FormsRelay struct {
	http      *http.Client
	endpoint  string
	accessKey string
	log       *zap.Logger
}

var _ interfaces.IFormRelay = (*Web3FormsRelay)(nil)

// NewWeb3FormsRelay reads WEB3FORMS_ACCESS_KEY and optionally
// WEB3FORMS_ENDPOINT from the environment. An empty access key yields a
// relay that drops submissions with a warning, so a missing key never
// blocks quote intake.
func NewWeb3FormsRelay(log *zap.Logger) *Web3FormsRelay {
	if log == nil {
		log = zap.NewNop()
	}
	endpoint := os.Getenv("WEB3FORMS_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Web3FormsRelay{
		http:      &http.Client{Timeout: 10 * time.Second},
		endpoint:  endpoint,
		accessKey: os.Getenv("WEB3FORMS_ACCESS_KEY"),
		log:       log,
	}
}

func (r *Web3FormsRelay) Submit(ctx context.Context, fields map[string]any) error {
	if r.accessKey == "" {
		r.log.Warn("web3forms access key not configured, dropping submission")
		return nil
	}

	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["access_key"] = r.accessKey

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("web3forms responded %d", resp.StatusCode)
	}
	return nil
}
