package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	mu    sync.Mutex
	docs  map[string][]byte
	saves int
	err   error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{docs: make(map[string][]byte)}
}

func (m *memoryStorage) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[key]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	return data, nil
}

func (m *memoryStorage) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.docs[key] = append([]byte(nil), data...)
	return nil
}

func (m *memoryStorage) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

type counterSource struct {
	mu    sync.Mutex
	value map[string]int
}

func (c *counterSource) Snapshot() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Marshal(c.value)
}

func TestDocument_FlushOnlyWhenDirty(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStorage()
	doc := NewDocument("counter.json", store)
	doc.Attach(&counterSource{value: map[string]int{"n": 1}})

	require.NoError(t, doc.Flush(ctx))
	assert.Equal(t, 0, store.saveCount())

	doc.MarkDirty()
	doc.MarkDirty()
	assert.True(t, doc.Dirty())
	require.NoError(t, doc.Flush(ctx))
	assert.False(t, doc.Dirty())
	assert.Equal(t, 1, store.saveCount())

	var got map[string]int
	found, err := Load(ctx, store, "counter.json", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, got["n"])
}

func TestDocument_FlushFailureKeepsDocumentDirty(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStorage()
	store.err = errors.New("disk full")
	doc := NewDocument("counter.json", store)
	doc.Attach(&counterSource{value: map[string]int{"n": 3}})

	doc.MarkDirty()
	err := doc.Flush(ctx)
	assert.ErrorIs(t, err, store.err)
	assert.True(t, doc.Dirty())

	store.mu.Lock()
	store.err = nil
	store.mu.Unlock()

	require.NoError(t, doc.Flush(ctx))
	assert.False(t, doc.Dirty())
	assert.Equal(t, 1, store.saveCount())
}

func TestDocument_FlushWithCancelledContextKeepsDocumentDirty(t *testing.T) {
	store := newMemoryStorage()
	doc := NewDocument("counter.json", store)
	doc.Attach(&counterSource{value: map[string]int{"n": 1}})
	doc.MarkDirty()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, doc.Flush(ctx), context.Canceled)
	assert.True(t, doc.Dirty())
}

func TestDocument_FlushWithoutSource(t *testing.T) {
	doc := NewDocument("orphan.json", newMemoryStorage())
	doc.MarkDirty()
	assert.Error(t, doc.Flush(context.Background()))
}

func TestLoad_MissingAndCorrupt(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStorage()

	var v map[string]int
	found, err := Load(ctx, store, "missing.json", &v)
	require.NoError(t, err)
	assert.False(t, found)

	store.docs["corrupt.json"] = []byte("{not json")
	_, err = Load(ctx, store, "corrupt.json", &v)
	assert.Error(t, err)
}

func TestMarshal_Indents(t *testing.T) {
	data, err := Marshal(map[string]string{"id": "E1"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"E1\"\n}", string(data))
}

func TestSchedule_FlushesPeriodicallyAndOnStop(t *testing.T) {
	store := newMemoryStorage()
	doc := NewDocument("counter.json", store)
	src := &counterSource{value: map[string]int{"n": 0}}
	doc.Attach(src)

	s := cron.NewScheduler()
	Schedule(s, 10*time.Millisecond, doc)
	s.Start()

	doc.MarkDirty()
	assert.Eventually(t, func() bool { return store.saveCount() == 1 }, time.Second, 5*time.Millisecond)

	src.mu.Lock()
	src.value["n"] = 2
	src.mu.Unlock()
	doc.MarkDirty()
	require.NoError(t, s.Stop(context.Background()))

	var got map[string]int
	_, err := Load(context.Background(), store, "counter.json", &got)
	require.NoError(t, err)
	assert.Equal(t, 2, got["n"])
	assert.False(t, doc.Dirty())
}

func TestSchedule_StopPersistsLastMutation(t *testing.T) {
	for i := 0; i < 100; i++ {
		store := newMemoryStorage()
		doc := NewDocument("counter.json", store)
		src := &counterSource{value: map[string]int{"n": 0}}
		doc.Attach(src)

		s := cron.NewScheduler()
		Schedule(s, time.Microsecond, doc)
		s.Start()

		src.mu.Lock()
		src.value["n"] = i + 1
		src.mu.Unlock()
		doc.MarkDirty()

		require.NoError(t, s.Stop(context.Background()))

		var got map[string]int
		found, err := Load(context.Background(), store, "counter.json", &got)
		require.NoError(t, err)
		require.True(t, found, "run %d", i)
		require.Equal(t, i+1, got["n"], "run %d", i)
		assert.False(t, doc.Dirty())
	}
}
