package testutils

import (
	"context"
	"errors"
	"io"
	"sync"
)

var ErrBlobFailure = errors.New("blob store failure")

// MemoryBlobStore is an in-memory BlobStore. Set FailUpload or FailRemove to
// simulate an unavailable object store.
type MemoryBlobStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	FailUpload bool
	FailRemove bool
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{objects: make(map[string][]byte)}
}

func (m *MemoryBlobStore) Upload(_ context.Context, bucket, name string, r io.Reader, _ int64, _ string) (string, error) {
	if m.FailUpload {
		return "", ErrBlobFailure
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+name] = data
	return "https://blobs.test/" + bucket + "/" + name, nil
}

func (m *MemoryBlobStore) Remove(_ context.Context, bucket, objectName string) error {
	if m.FailRemove {
		return ErrBlobFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, bucket+"/"+objectName)
	return nil
}

// Has reports whether bucket/name is stored.
func (m *MemoryBlobStore) Has(bucket, name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[bucket+"/"+name]
	return ok
}

func (m *MemoryBlobStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
