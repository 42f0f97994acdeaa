package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"social-spectrum-server/internal/utils"
)

// LocalStore keeps objects on disk under root/<bucket>/<name>. The router
// serves root under urlPrefix.
type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(root, urlPrefix string) (*LocalStore, error) {
	if strings.TrimSpace(root) == "" {
		root = "uploads"
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := utils.EnsurePathNotSymlink(rootAbs); err != nil {
		return nil, err
	}
	for _, bucket := range Buckets() {
		if err := os.MkdirAll(filepath.Join(rootAbs, bucket), 0755); err != nil {
			return nil, fmt.Errorf("create bucket dir %s: %w", bucket, err)
		}
	}

	urlPrefix = "/" + strings.Trim(urlPrefix, "/")
	return &LocalStore{root: rootAbs, urlPrefix: urlPrefix}, nil
}

// Root is the directory served as static content.
func (s *LocalStore) Root() string {
	return s.root
}

// URLPrefix is the route prefix the files are served under.
func (s *LocalStore) URLPrefix() string {
	return s.urlPrefix
}

func (s *LocalStore) Upload(ctx context.Context, bucket, name string, r io.Reader, _ int64, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dst, err := s.objectPath(bucket, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close object: %w", err)
	}

	return s.urlPrefix + "/" + bucket + "/" + name, nil
}

// Remove deletes the object. Removing a missing object is not an error.
func (s *LocalStore) Remove(ctx context.Context, bucket, objectName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.objectPath(bucket, objectName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *LocalStore) objectPath(bucket, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("illegal object name %q", name)
	}
	return utils.SecureJoin(s.root, filepath.Join(bucket, name))
}
