package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"social-spectrum-server/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore implements BlobStore for MinIO and other S3 compatible services.
type MinioStore struct {
	client    *minio.Client
	bucketURL string
}

// NewMinioStore connects to the endpoint and makes sure every bucket exists.
func NewMinioStore(cfg config.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, bucket := range Buckets() {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
			}
		}
	}

	bucketURL := strings.TrimRight(cfg.BucketURL, "/")
	if bucketURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		bucketURL = scheme + "://" + cfg.Endpoint
	}
	return &MinioStore{client: client, bucketURL: bucketURL}, nil
}

func (m *MinioStore) Upload(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error) {
	info, err := m.client.PutObject(ctx, bucket, name, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return m.bucketURL + "/" + bucket + "/" + info.Key, nil
}

func (m *MinioStore) Remove(ctx context.Context, bucket, objectName string) error {
	if err := m.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
