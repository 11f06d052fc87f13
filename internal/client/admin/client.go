package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the shared HTTP core of the resource managers and the uploader.
// It owns the base URL, the bearer token, and the unauthorized hook that
// fires on every 401 before the error reaches the caller.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	token          string
	onUnauthorized func()
	log            *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithUnauthorizedHook installs the callback fired on HTTP 401. The UI uses
// it to navigate to the login route; nothing is retried.
func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) { c.onUnauthorized = hook }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken swaps the session token after a login.
func (c *Client) SetToken(token string) { c.token = token }

// do performs one request and returns the raw response body. A 401 fires the
// unauthorized hook and surfaces as AuthError; transport failures surface as
// ServerError with the generic message.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return 0, nil, ServerError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, ServerError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return resp.StatusCode, raw, AuthError{}
	}
	return resp.StatusCode, raw, nil
}

// envelope is the `{success,data}` wrapper some endpoints use. Success is a
// pointer so a bare payload (no "success" key) is distinguishable from
// `{"success":false}`.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// unwrap accepts either a bare JSON payload or an envelope and returns the
// payload bytes. A `{"success":false}` body is converted to a ServerError
// carrying the server's message.
func unwrap(status int, raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] == '[' {
		return trimmed, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		// Not an envelope; treat the body as the payload itself.
		return trimmed, nil
	}
	if env.Success == nil {
		return trimmed, nil
	}
	if !*env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return nil, ServerError{Status: status, Message: msg}
	}
	return env.Data, nil
}

// serverMessage extracts an error message from a failed mutation response.
func serverMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	if env.Error != "" {
		return env.Error
	}
	return env.Message
}

// normalizeIdentifiers rewrites "_id" keys to "id" throughout a decoded JSON
// payload so downstream code never branches on the duality. An existing "id"
// key wins.
func normalizeIdentifiers(raw []byte) []byte {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return raw
	}
	normalized, err := json.Marshal(normalizeValue(value))
	if err != nil {
		return raw
	}
	return normalized
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		if underscore, ok := v["_id"]; ok {
			if _, hasID := v["id"]; !hasID {
				v["id"] = underscore
			}
			delete(v, "_id")
		}
		for key, nested := range v {
			v[key] = normalizeValue(nested)
		}
		return v
	case []any:
		for i, nested := range v {
			v[i] = normalizeValue(nested)
		}
		return v
	default:
		return value
	}
}
