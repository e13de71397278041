package storage

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by Load when no document exists for a key.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStorage persists whole JSON documents addressed by key.
// Save overwrites the previous document wholesale.
type DocumentStorage interface {
	// Load returns the stored document bytes or ErrDocumentNotFound
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the document stored under key
	Save(ctx context.Context, key string, data []byte) error
}
