package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// FilesystemStore writes objects under a root directory. Object keys map to
// relative paths; the advertised URL is baseURL + "/" + key so a static file
// server pointed at the root serves what this store writes.
type FilesystemStore struct {
	root    string
	baseURL string
}

// NewFilesystemStore creates a store rooted at dir.
func NewFilesystemStore(dir, baseURL string) *FilesystemStore {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &FilesystemStore{
		root:    dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Put writes the object atomically: bytes land in a temp file first and are
// renamed into place, so a crashed write never leaves a half-written object.
func (s *FilesystemStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !validKey(key) {
		return "", fmt.Errorf("%w: invalid object key %q", ErrUnavailable, key)
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".put-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.Debug().Str("key", key).Str("path", path).Int("size", len(data)).Msg("Object written")
	return s.baseURL + "/" + key, nil
}

// validKey rejects keys that would escape the store root.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}
