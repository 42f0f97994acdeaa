package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/imaging"
	"social-spectrum-server/internal/storage"
	"social-spectrum-server/internal/utils"
)

// StoredImage is an uploaded image and its optional placeholder.
type StoredImage struct {
	URL      string
	Blurhash *string
}

// StoreImage validates an uploaded image, optionally computes its blurhash
// and uploads it to bucket under a fresh object name.
func (s *AppService) StoreImage(ctx context.Context, bucket string, file *multipart.FileHeader, withBlurhash bool) (*StoredImage, error) {
	maxMB := s.cfg.Limits.UploadMB
	if maxMB <= 0 {
		maxMB = 10
	}
	if file.Size > int64(maxMB)*1024*1024 {
		return nil, common.NewValidationError(fmt.Sprintf("Image can not be larger than %dMB", maxMB))
	}

	ext, ok := utils.ImageExtension(file.Filename)
	if !ok {
		return nil, common.NewValidationError("Unsupported image type " + ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, common.NewValidationError("Could not read uploaded image")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return nil, common.NewValidationError(msg)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, common.NewValidationError("Could not read uploaded image")
	}

	if err := imaging.CheckDimensions(data, s.cfg.Limits.MaxImagePixels); err != nil {
		if errors.Is(err, imaging.ErrTooManyPixels) {
			return nil, common.NewValidationError("Image dimensions are too large")
		}
		return nil, common.NewValidationError("Image could not be decoded")
	}

	stored := &StoredImage{}
	if withBlurhash {
		hash, err := imaging.Blurhash(data)
		if err != nil {
			return nil, common.NewValidationError("Image could not be decoded")
		}
		stored.Blurhash = &hash
	}

	name := storage.ObjectName(file.Filename)
	url, err := s.blobs.Upload(ctx, bucket, name, bytes.NewReader(data), int64(len(data)), http.DetectContentType(data))
	if err != nil {
		slog.Error("upload image failed", "bucket", bucket, "object", name, "error", err)
		return nil, common.NewStorageError("Something went wrong", err)
	}
	stored.URL = url
	return stored, nil
}

// RemoveImage deletes the object behind a stored public URL. Empty URLs are ignored.
func (s *AppService) RemoveImage(ctx context.Context, bucket, url, failMessage string) error {
	if url == "" {
		return nil
	}
	objectName := storage.ObjectNameFromURL(url)
	if err := s.blobs.Remove(ctx, bucket, objectName); err != nil {
		slog.Error("remove image failed", "bucket", bucket, "object", objectName, "error", err)
		return common.NewStorageError(failMessage, err)
	}
	return nil
}
