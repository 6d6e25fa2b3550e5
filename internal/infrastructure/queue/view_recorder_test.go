package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingStore struct {
	mu     sync.Mutex
	counts map[int64]int64
	done   chan struct{}
}

func newRecordingStore(expected int) *recordingStore {
	return &recordingStore{counts: make(map[int64]int64), done: make(chan struct{}, expected)}
}

func (s *recordingStore) IncrementViews(_ context.Context, id int64, delta int64) error {
	s.mu.Lock()
	s.counts[id] += delta
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

type noopCounter struct{}

func (noopCounter) Incr(_ context.Context, _ int64, _ int64) error { return nil }

func TestViewRecorder_AppliesViews(t *testing.T) {
	const views = 20

	store := newRecordingStore(views)
	recorder := NewViewRecorder(4, store, noopCounter{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	recorder.Start(ctx)

	for i := 0; i < views; i++ {
		recorder.Record(int64(i%2 + 1))
	}

	for i := 0; i < views; i++ {
		select {
		case <-store.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for view %d to be applied", i)
		}
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.counts[1]+store.counts[2] != views {
		t.Fatalf("expected %d total views, got %v", views, store.counts)
	}
}

func TestViewRecorder_ShardIsStable(t *testing.T) {
	recorder := NewViewRecorder(8, newRecordingStore(0), noopCounter{}, zerolog.Nop())

	for _, id := range []int64{1, 42, 99999} {
		first := recorder.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := recorder.shardIndex(id); got != first {
				t.Fatalf("shard for %d changed from %d to %d", id, first, got)
			}
		}
	}
}
