package projection

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/pkg/worker"
)

const testEventType domain.EventType = "TEST_EVENT"

type recordingHandler struct {
	mu       sync.Mutex
	versions map[domain.StreamID][]int64
	failAt   map[domain.StreamID]int64
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{
		versions: make(map[domain.StreamID][]int64),
		failAt:   make(map[domain.StreamID]int64),
	}
}

func (h *recordingHandler) handle(_ context.Context, e *domain.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v, ok := h.failAt[e.StreamID]; ok && v == e.Version {
		return errors.New("handler failure")
	}
	h.versions[e.StreamID] = append(h.versions[e.StreamID], e.Version)
	return nil
}

func (h *recordingHandler) seen(stream domain.StreamID) []int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int64(nil), h.versions[stream]...)
}

func newTestRunner(t *testing.T, h *recordingHandler) *Runner {
	t.Helper()
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		ProjectionPoolSize:  4,
		MaintenancePoolSize: 1,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	d := domain.NewEventDispatcher()
	d.Register(testEventType, h.handle)
	return NewRunner(d, pools.Projection)
}

func testEvent(stream domain.StreamID, version int64) *domain.Event {
	return &domain.Event{
		StreamID: stream,
		Version:  version,
		Type:     testEventType,
	}
}

func TestRunnerPreservesPerStreamOrder(t *testing.T) {
	h := newRecordingHandler()
	r := newTestRunner(t, h)

	streamA := domain.NewStreamID(domain.KindContent, uuid.New())
	streamB := domain.NewStreamID(domain.KindContent, uuid.New())
	streamC := domain.NewStreamID(domain.KindRealm, uuid.New())

	// Interleave three streams the way a feed batch would.
	var batch []*domain.Event
	for v := int64(1); v <= 5; v++ {
		batch = append(batch,
			testEvent(streamA, v),
			testEvent(streamB, v),
			testEvent(streamC, v),
		)
	}
	require.NoError(t, r.Apply(context.Background(), batch))

	want := []int64{1, 2, 3, 4, 5}
	require.Equal(t, want, h.seen(streamA))
	require.Equal(t, want, h.seen(streamB))
	require.Equal(t, want, h.seen(streamC))
}

func TestRunnerStopsOnlyTheFailedStream(t *testing.T) {
	h := newRecordingHandler()
	r := newTestRunner(t, h)

	streamA := domain.NewStreamID(domain.KindContent, uuid.New())
	streamB := domain.NewStreamID(domain.KindContent, uuid.New())
	h.failAt[streamA] = 2

	var batch []*domain.Event
	for v := int64(1); v <= 4; v++ {
		batch = append(batch, testEvent(streamA, v), testEvent(streamB, v))
	}
	err := r.Apply(context.Background(), batch)
	require.Error(t, err)

	// Stream A halted at the failure; stream B ran to completion, so one
	// poison stream cannot starve the rest of the batch.
	require.Equal(t, []int64{1}, h.seen(streamA))
	require.Equal(t, []int64{1, 2, 3, 4}, h.seen(streamB))
}

func TestRunnerEmptyBatchIsNoOp(t *testing.T) {
	h := newRecordingHandler()
	r := newTestRunner(t, h)
	require.NoError(t, r.Apply(context.Background(), nil))
}
