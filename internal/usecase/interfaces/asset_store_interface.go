package interfaces

import "context"

// StoredAsset references an uploaded object: the public URL served to
// storefront clients and the key used for later deletion.
type StoredAsset struct {
	URL      string
	PublicID string
}

// IAssetStore abstracts the object store holding uploaded images (S3).

type IAssetStore interface {
	Put(ctx context.Context, filename, contentType string, body []byte) (StoredAsset, error)
	Delete(ctx context.Context, publicID string) error
}
