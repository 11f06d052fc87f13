package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// Resource is the surface a managed entity exposes: a canonical identifier,
// the identifier of its hosted image asset (empty when it has none), and the
// ordered draft validation shared with the server.
type Resource interface {
	ResourceID() string
	AssetID() string
	Validate() error
}

// Image is a newly selected file attached to a draft. It is uploaded before
// the resource payload is sent.
type Image struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Manager keeps the local list state of one admin collection in sync with the
// server. All operations are terminal on failure: nothing is retried, and
// list state is only mutated after a confirmed success.
type Manager[T Resource] struct {
	client     *Client
	uploader   *Uploader
	collection string
	applyAsset func(T, Asset) T
	notify     func(string)
	log        *zap.Logger

	mu       sync.Mutex
	items    []T
	notified bool
	inflight map[string]struct{}
}

// ManagerConfig wires one collection. ApplyAsset substitutes an uploaded
// asset into a draft; leave it nil for resources without images. Notify
// receives success acknowledgments; leave it nil to silence them.
type ManagerConfig[T Resource] struct {
	Collection string
	ApplyAsset func(T, Asset) T
	Notify     func(string)
}

func NewManager[T Resource](client *Client, cfg ManagerConfig[T]) *Manager[T] {
	return &Manager[T]{
		client:     client,
		uploader:   NewUploader(client),
		collection: cfg.Collection,
		applyAsset: cfg.ApplyAsset,
		notify:     cfg.Notify,
		log:        client.log,
		inflight:   make(map[string]struct{}),
	}
}

// State returns a copy of the local list state.
func (m *Manager[T]) State() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// List fetches the collection and replaces local state wholesale. The success
// acknowledgment fires on the first load and then only when forceNotify is
// set, so a background refresh stays quiet.
func (m *Manager[T]) List(ctx context.Context, forceNotify bool) ([]T, error) {
	status, raw, err := m.client.do(ctx, http.MethodGet, m.collection, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, FetchFailedError{Status: status}
	}

	payload, err := unwrap(status, raw)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(normalizeIdentifiers(payload), &items); err != nil {
		return nil, ServerError{Status: status, Err: err}
	}

	m.mu.Lock()
	m.items = items
	first := !m.notified
	m.notified = true
	m.mu.Unlock()

	if m.notify != nil && (first || forceNotify) {
		m.notify("Loaded " + m.collection)
	}
	return m.State(), nil
}

// Create validates the draft, uploads the attached image if any, POSTs the
// payload, and prepends the returned resource to local state.
func (m *Manager[T]) Create(ctx context.Context, draft T, image *Image) (T, error) {
	var zero T

	draft, err := m.prepare(ctx, draft, image)
	if err != nil {
		return zero, err
	}

	status, raw, err := m.client.do(ctx, http.MethodPost, m.collection, draft)
	if err != nil {
		return zero, err
	}
	created, err := m.decodeMutation(status, raw)
	if err != nil {
		return zero, err
	}

	m.mu.Lock()
	m.items = append([]T{created}, m.items...)
	m.mu.Unlock()
	return created, nil
}

// Update validates and uploads like Create, PUTs to the item path, and
// replaces the matching entry in place so list order is preserved.
func (m *Manager[T]) Update(ctx context.Context, id string, draft T, image *Image) (T, error) {
	var zero T

	release, err := m.acquire(id)
	if err != nil {
		return zero, err
	}
	defer release()

	draft, err = m.prepare(ctx, draft, image)
	if err != nil {
		return zero, err
	}

	status, raw, err := m.client.do(ctx, http.MethodPut, m.collection+"/"+id, draft)
	if err != nil {
		return zero, err
	}
	updated, err := m.decodeMutation(status, raw)
	if err != nil {
		return zero, err
	}

	m.replace(id, updated)
	return updated, nil
}

// Remove DELETEs the item, drops it from local state, then attempts a
// best-effort delete of its hosted asset. Cleanup failure never surfaces.
func (m *Manager[T]) Remove(ctx context.Context, id string) error {
	release, err := m.acquire(id)
	if err != nil {
		return err
	}
	defer release()

	status, raw, err := m.client.do(ctx, http.MethodDelete, m.collection+"/"+id, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return ServerError{Status: status, Message: serverMessage(raw)}
	}
	if _, err := unwrap(status, raw); err != nil {
		return err
	}

	assetID := m.drop(id)
	if assetID != "" {
		if err := m.uploader.Remove(ctx, assetID); err != nil {
			m.log.Warn("asset cleanup failed", zap.String("asset_id", assetID), zap.Error(err))
		}
	}
	return nil
}

// SetStatus PUTs a partial body to the item's status path and patches the
// matching entry in place.
func (m *Manager[T]) SetStatus(ctx context.Context, id string, patch map[string]any) (T, error) {
	var zero T

	release, err := m.acquire(id)
	if err != nil {
		return zero, err
	}
	defer release()

	status, raw, err := m.client.do(ctx, http.MethodPut, m.collection+"/"+id+"/status", patch)
	if err != nil {
		return zero, err
	}
	updated, err := m.decodeMutation(status, raw)
	if err != nil {
		return zero, err
	}

	m.replace(id, updated)
	return updated, nil
}

// prepare runs the ordered draft validation and, when a new image was
// attached, uploads it and substitutes the stored asset into the draft.
func (m *Manager[T]) prepare(ctx context.Context, draft T, image *Image) (T, error) {
	var zero T
	if image == nil {
		if err := draft.Validate(); err != nil {
			return zero, err
		}
		return draft, nil
	}

	if m.applyAsset == nil {
		return zero, UploadError{Reason: "collection does not accept images"}
	}

	// The attached file satisfies the image requirement before it is
	// uploaded; every other field still fails fast, in order, with no
	// network call.
	staged := m.applyAsset(draft, Asset{URL: "attachment:" + image.Filename})
	if err := staged.Validate(); err != nil {
		return zero, err
	}

	asset, err := m.uploader.Upload(ctx, image.Filename, image.Content, image.ContentType)
	if err != nil {
		return zero, err
	}
	return m.applyAsset(draft, asset), nil
}

func (m *Manager[T]) decodeMutation(status int, raw []byte) (T, error) {
	var zero T
	if status < 200 || status >= 300 {
		return zero, ServerError{Status: status, Message: serverMessage(raw)}
	}
	payload, err := unwrap(status, raw)
	if err != nil {
		return zero, err
	}
	var item T
	if err := json.Unmarshal(normalizeIdentifiers(payload), &item); err != nil {
		return zero, ServerError{Status: status, Err: err}
	}
	return item, nil
}

// acquire claims the in-flight slot for an identifier. A second mutation for
// the same id while one is pending fails locally with ConflictError.
func (m *Manager[T]) acquire(id string) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.inflight[id]; busy {
		return nil, ConflictError{ID: id}
	}
	m.inflight[id] = struct{}{}
	return func() {
		m.mu.Lock()
		delete(m.inflight, id)
		m.mu.Unlock()
	}, nil
}

func (m *Manager[T]) replace(id string, item T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ResourceID() == id {
			m.items[i] = item
			return
		}
	}
}

// drop removes the entry and returns its asset id for cleanup.
func (m *Manager[T]) drop(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ResourceID() == id {
			assetID := m.items[i].AssetID()
			m.items = append(m.items[:i], m.items[i+1:]...)
			return assetID
		}
	}
	return ""
}
