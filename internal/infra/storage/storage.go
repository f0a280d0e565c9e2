// Package storage provides object stores for ingested beat assets. The
// ingestion service only names and describes objects; a store decides where
// the bytes actually live and what URL they are served under.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable is returned (wrapped) when a store cannot accept a write.
var ErrUnavailable = errors.New("storage: unavailable")

// ObjectStore persists a named object and returns the URL it is reachable
// under. Put is synchronous; callers needing timeouts pass them via ctx.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) (url string, err error)
}
