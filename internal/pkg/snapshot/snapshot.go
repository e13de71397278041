// Package snapshot implements write-behind persistence of whole in-memory
// documents: owners mark a document dirty on mutation and a scheduler job
// flushes the latest snapshot to storage.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/storage"
)

// Source produces the serialized current state of a document.
type Source interface {
	Snapshot() ([]byte, error)
}

// Document tracks the dirty state of one persisted document.
type Document struct {
	key     string
	storage storage.DocumentStorage

	source  atomic.Pointer[sourceRef]
	dirty   atomic.Bool
	flushMu sync.Mutex
}

type sourceRef struct{ Source }

func NewDocument(key string, storage storage.DocumentStorage) *Document {
	return &Document{key: key, storage: storage}
}

// Attach sets the source whose snapshot is written on flush.
func (d *Document) Attach(src Source) {
	d.source.Store(&sourceRef{src})
}

// MarkDirty records that the in-memory state changed since the last flush.
func (d *Document) MarkDirty() {
	d.dirty.Store(true)
}

// Dirty reports whether a flush is pending.
func (d *Document) Dirty() bool {
	return d.dirty.Load()
}

// Flush writes the current snapshot if the document is dirty. A failed write
// is logged with the document key and the document stays dirty, so the next
// scheduled or final flush writes a fresh full snapshot.
func (d *Document) Flush(ctx context.Context) error {
	d.flushMu.Lock()
	defer d.flushMu.Unlock()

	if !d.dirty.Swap(false) {
		return nil
	}

	ref := d.source.Load()
	if ref == nil {
		d.dirty.Store(true)
		return fmt.Errorf("snapshot %s: no source attached", d.key)
	}

	start := time.Now()
	data, err := ref.Snapshot()
	if err != nil {
		d.dirty.Store(true)
		slog.Error("Failed to serialize snapshot", "document", d.key, "error", err)
		return fmt.Errorf("snapshot %s: %w", d.key, err)
	}

	if err := d.storage.Save(ctx, d.key, data); err != nil {
		d.dirty.Store(true)
		slog.Error("Failed to persist snapshot", "document", d.key, "error", err)
		return fmt.Errorf("snapshot %s: %w", d.key, err)
	}

	slog.Debug("Snapshot persisted", "document", d.key, "bytes", len(data), "duration", time.Since(start))
	return nil
}

// Schedule registers a periodic flush job per document and a final flush on
// scheduler stop.
func Schedule(s *cron.Scheduler, interval time.Duration, docs ...*Document) {
	for _, doc := range docs {
		s.AddJob("flush_"+doc.key, interval, doc.Flush)
		s.OnStop("final_flush_"+doc.key, doc.Flush)
	}
}

// Load decodes the stored document under key into v. It reports false when
// the document does not exist yet.
func Load(ctx context.Context, store storage.DocumentStorage, key string, v any) (bool, error) {
	data, err := store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return true, nil
}

// Marshal encodes v the way documents are stored on disk: two-space indented JSON.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
