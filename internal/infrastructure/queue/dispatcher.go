package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/api/metrics"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes notification events to a fixed set of workers using
// consistent hashing on the recipient ID, guaranteeing per-recipient ordering.
// Inbox writes are read-modify-write against the KV store, so each recipient's
// inbox must only ever be touched by a single worker.
type Dispatcher struct {
	workers []chan ports.NotificationEventInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.NotificationEventInput) {
	metrics.NotificationQueueDepth.Inc()
	d.workers[d.shardIndex(event.RecipientID)] <- event
}

// EnqueueBatch enqueues multiple events preserving per-recipient ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.NotificationEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps a recipient ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipientID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationEventInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.Dec()
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("recipient_id", event.RecipientID).
					Int("worker_id", id).
					Msg("notification processing failed")
			}
		}
	}
}
