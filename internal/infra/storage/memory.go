package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public URL prefix objects are advertised under when
// none is configured.
const DefaultBaseURL = "https://storage.beatvard.com"

// MemoryStore keeps objects in process memory. It backs the default setup
// and tests; contents do not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string][]byte
}

// NewMemoryStore creates an empty in-memory store. baseURL may be empty, in
// which case DefaultBaseURL is used.
func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &MemoryStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string][]byte),
	}
}

// Put stores the object under key and returns its URL. An existing object
// under the same key is overwritten; keys embed the asset id, so that only
// happens when a caller retries a failed request.
func (s *MemoryStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.objects[key] = buf
	s.mu.Unlock()

	url := s.baseURL + "/" + key
	log.Debug().Str("key", key).Int("size", len(data)).Msg("Object stored in memory")
	return url, nil
}

// Get returns the stored bytes for key.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
