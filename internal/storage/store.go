package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"social-spectrum-server/internal/config"

	"github.com/google/uuid"
)

// Buckets used by the service.
const (
	BucketPostImages      = "post-images"
	BucketStories         = "stories"
	BucketProfileBgImages = "profile-bg-pictures"
)

// MaxFileNameLength bounds the stem of an original file name kept in object names.
const MaxFileNameLength = 50

// Buckets lists every bucket a driver has to provision.
func Buckets() []string {
	return []string{BucketPostImages, BucketStories, BucketProfileBgImages}
}

// BlobStore stores image objects and hands back their public URL.
type BlobStore interface {
	Upload(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, bucket, objectName string) error
}

// New builds the driver selected by storage.driver.
func New(cfg *config.Config) (BlobStore, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "minio", "s3":
		return NewMinioStore(cfg.Storage)
	case "local", "":
		return NewLocalStore(cfg.Storage.LocalPath, cfg.Storage.LocalURLPrefix)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// ObjectName returns a collision-resistant, separator-free object name that
// keeps a shortened copy of the original file name.
func ObjectName(original string) string {
	if strings.TrimSpace(original) == "" {
		original = "noname"
	}
	name := uuid.NewString() + "-" + ShortenFileName(original, MaxFileNameLength)
	return strings.NewReplacer("/", "", "\\", "").Replace(name)
}

// ShortenFileName truncates the stem of fileName to maxLength runes and keeps
// the extension.
func ShortenFileName(fileName string, maxLength int) string {
	stem, ext := fileName, ""
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		stem, ext = fileName[:i], fileName[i:]
	}

	runes := []rune(stem)
	if len(runes) > maxLength {
		stem = string(runes[:maxLength])
	}
	return stem + ext
}

// ObjectNameFromURL extracts the object name (last path segment) from a
// public URL previously returned by Upload.
func ObjectNameFromURL(publicURL string) string {
	publicURL = strings.TrimRight(publicURL, "/")
	if i := strings.LastIndex(publicURL, "/"); i >= 0 {
		return publicURL[i+1:]
	}
	return publicURL
}
