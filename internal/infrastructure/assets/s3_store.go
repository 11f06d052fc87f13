package assets

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"strings"

	"context"

	"locotraq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultAssetsBucket = "locotraq-assets"
	defaultAssetsPrefix = "uploads"
)

// S3AssetStore persists uploaded images in an S3 bucket.
//
// Keys are uuid-based so repeated uploads of the same filename never clash;
// the original extension is kept for content-type inference on the CDN side.
// The key doubles as the asset's public_id used for deletion.
type S3AssetStore struct {
	client    *s3.Client
	bucket    string
	prefix    string
	publicURL string
	log       *zap.Logger
}

var _ interfaces.IAssetStore = (*S3AssetStore)(nil)

// NewS3AssetStore reads bucket configuration from the environment:
//   - ASSETS_BUCKET (default: locotraq-assets)
//   - ASSETS_PREFIX (default: uploads)
//   - ASSETS_PUBLIC_URL (default: https://{bucket}.s3.amazonaws.com)
func NewS3AssetStore(client *s3.Client, log *zap.Logger) *S3AssetStore {
	if log == nil {
		log = zap.NewNop()
	}
	bucket := getenvDefault("ASSETS_BUCKET", defaultAssetsBucket)
	publicURL := getenvDefault("ASSETS_PUBLIC_URL", fmt.Sprintf("https://%s.s3.amazonaws.com", bucket))
	return &S3AssetStore{
		client:    client,
		bucket:    bucket,
		prefix:    getenvDefault("ASSETS_PREFIX", defaultAssetsPrefix),
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       log,
	}
}

func (s *S3AssetStore) Put(ctx context.Context, filename, contentType string, body []byte) (interfaces.StoredAsset, error) {
	key := path.Join(s.prefix, uuid.NewString()+strings.ToLower(path.Ext(filename)))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Error("asset upload failed", zap.String("key", key), zap.Error(err))
		return interfaces.StoredAsset{}, err
	}

	s.log.Info("asset stored", zap.String("key", key), zap.Int("size", len(body)))
	return interfaces.StoredAsset{
		URL:      s.publicURL + "/" + key,
		PublicID: key,
	}, nil
}

func (s *S3AssetStore) Delete(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		s.log.Warn("asset delete failed", zap.String("key", publicID), zap.Error(err))
		return err
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
