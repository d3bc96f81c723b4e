// Package storage abstracts the external object store that holds
// attachment payloads. The relational side keeps only the URI returned
// from Put.
package storage

import (
	"context"
	"io"
)

type BlobStore interface {
	// Put writes one object and returns the URI to record alongside it.
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	// Remove deletes one object. Used to compensate a failed metadata
	// insert after the blob was already written.
	Remove(ctx context.Context, objectName string) error
}
