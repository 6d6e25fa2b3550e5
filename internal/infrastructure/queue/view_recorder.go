package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 512
)

// ViewStore is the durable side of view accounting.
type ViewStore interface {
	IncrementViews(ctx context.Context, id int64, delta int64) error
}

// ViewCounter is the fast side used for trending ranks.
type ViewCounter interface {
	Incr(ctx context.Context, listingID int64, delta int64) error
}

// ViewRecorder applies listing views off the request path. Views are
// sharded to a fixed set of workers by listing id, so updates to the same
// listing are applied in order. Record never blocks a request: when a
// shard's buffer is full the view is dropped and counted.
type ViewRecorder struct {
	shards  []chan int64
	store   ViewStore
	counter ViewCounter
	log     zerolog.Logger
}

// NewViewRecorder creates a recorder with numWorkers shards.
// If numWorkers <= 0, defaultWorkers is used.
func NewViewRecorder(numWorkers int, store ViewStore, counter ViewCounter, log zerolog.Logger) *ViewRecorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &ViewRecorder{
		shards:  make([]chan int64, numWorkers),
		store:   store,
		counter: counter,
		log:     log,
	}
	for i := range r.shards {
		r.shards[i] = make(chan int64, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *ViewRecorder) Start(ctx context.Context) {
	for i, ch := range r.shards {
		go r.runWorker(ctx, i, ch)
	}
}

// Record enqueues a single view for the listing. Non-blocking.
func (r *ViewRecorder) Record(listingID int64) {
	select {
	case r.shards[r.shardIndex(listingID)] <- listingID:
		metrics.ListingViewsRecordedTotal.Inc()
	default:
		metrics.ListingViewsDroppedTotal.Inc()
	}
}

// shardIndex maps a listing id deterministically to a worker index.
func (r *ViewRecorder) shardIndex(listingID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(listingID, 10)))
	return int(h.Sum32()) % len(r.shards)
}

func (r *ViewRecorder) runWorker(ctx context.Context, id int, ch <-chan int64) {
	for {
		select {
		case <-ctx.Done():
			return
		case listingID, ok := <-ch:
			if !ok {
				return
			}
			if err := r.store.IncrementViews(ctx, listingID, 1); err != nil {
				r.log.Error().Err(err).
					Int64("listing_id", listingID).
					Int("worker_id", id).
					Msg("view count persist failed")
			}
			if err := r.counter.Incr(ctx, listingID, 1); err != nil {
				r.log.Error().Err(err).
					Int64("listing_id", listingID).
					Int("worker_id", id).
					Msg("view rank update failed")
			}
		}
	}
}
