package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	m.Run()
}

func TestSubmitRunsTask(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()

	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	err = pools.Projection.Submit(context.Background(), func(ctx context.Context) {
		ran = true
		wg.Done()
	})
	require.NoError(t, err)
	wg.Wait()
	require.True(t, ran)
}

func TestSubmitCancelledContext(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = pools.Maintenance.Submit(ctx, func(ctx context.Context) {
		t.Error("task must not run with cancelled context")
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSubmitDetachedRespectsShutdown(t *testing.T) {
	pools, err := NewPools(context.Background(), PoolConfig{ProjectionPoolSize: 2, MaintenancePoolSize: 2})
	require.NoError(t, err)

	done := make(chan struct{})
	err = pools.SubmitDetached("maintenance", func(ctx context.Context) {
		<-ctx.Done()
		close(done)
	})
	require.NoError(t, err)

	pools.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("detached task did not observe shutdown")
	}
}
