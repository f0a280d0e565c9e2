package ingest

import (
	"fmt"
	"strings"
)

// ValidationError reports the required fields a request is missing or has
// invalid values for. It is the client's fault; retrying the same request
// cannot succeed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// PayloadError reports that an uploaded file's payload was not valid base64.
// Field names the offending asset (audioFile or coverFile).
type PayloadError struct {
	Field string
	Err   error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("invalid %s payload: %v", e.Field, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// StorageError reports that the storage collaborator rejected a write.
// Ingestion has no server-side effects before the first successful put, so
// the caller may retry the whole request.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage put %s: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
