package projection

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/pkg/worker"
)

// Runner applies event batches through the dispatcher with per-stream
// ordering: events of one stream run sequentially in arrival order, distinct
// streams fan out onto the projection pool.
type Runner struct {
	dispatcher *domain.EventDispatcher
	pool       *worker.Pool
}

// NewRunner creates a Runner on top of the given dispatcher and pool.
func NewRunner(dispatcher *domain.EventDispatcher, pool *worker.Pool) *Runner {
	return &Runner{dispatcher: dispatcher, pool: pool}
}

// Apply processes one batch and returns once every event has been handled.
// The batch boundary is the checkpoint boundary: the caller only advances
// its checkpoint when Apply returns nil, so a failed batch is redelivered
// whole and the handlers' idempotency absorbs the overlap.
func (r *Runner) Apply(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	// Group by stream, preserving arrival order inside each group.
	order := make([]domain.StreamID, 0, len(events))
	groups := make(map[domain.StreamID][]*domain.Event, len(events))
	for _, e := range events {
		if _, seen := groups[e.StreamID]; !seen {
			order = append(order, e.StreamID)
		}
		groups[e.StreamID] = append(groups[e.StreamID], e)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, streamID := range order {
		stream := groups[streamID]
		wg.Add(1)
		err := r.pool.Submit(ctx, func(ctx context.Context) {
			defer wg.Done()
			for _, e := range stream {
				if err := r.dispatcher.Dispatch(ctx, e); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					// Later events of this stream would apply on top of a
					// hole; stop the stream, not the batch.
					logger.Error("Stopping stream after failed event",
						zap.String("stream_id", e.StreamID.String()),
						zap.Int64("version", e.Version),
						zap.Error(err),
					)
					return
				}
			}
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	}
	wg.Wait()
	return firstErr
}
