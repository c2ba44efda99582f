// Package main is the entry point for the Lattice projector daemon: it
// tails the event feed, maintains the read models and index tables, and
// runs the River maintenance workers.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/internal/actor"
	"lattice-cms.io/lattice/internal/config"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/eventsource"
	"lattice-cms.io/lattice/internal/index"
	"lattice-cms.io/lattice/internal/infrastructure"
	"lattice-cms.io/lattice/internal/jobs"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/pkg/worker"
	"lattice-cms.io/lattice/internal/projection"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Starting Lattice projector",
		zap.String("consumer", cfg.Projector.ConsumerName),
		zap.String("log_level", cfg.Log.Level),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database (shared pool for Ent, River and the poller).
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	// Worker pools.
	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		ProjectionPoolSize:  cfg.Worker.ProjectionPoolSize,
		MaintenancePoolSize: cfg.Worker.MaintenancePoolSize,
	})
	if err != nil {
		return fmt.Errorf("worker pools: %w", err)
	}
	defer pools.Shutdown()

	// Maintenance jobs.
	maintainer := index.NewMaintainer()
	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewReindexContentTypeWorker(db.EntClient, maintainer))
	river.AddWorker(workers, jobs.NewPruneOrphanedIndexWorker(db.EntClient))

	periodic := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.River.IndexPruneInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.PruneOrphanedIndexArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: false},
		),
	}
	if err := db.InitRiverClient(workers, cfg.River, periodic); err != nil {
		return fmt.Errorf("river: %w", err)
	}
	if err := db.RiverClient.Start(ctx); err != nil {
		return fmt.Errorf("start river: %w", err)
	}
	defer func() {
		if err := db.RiverClient.Stop(context.Background()); err != nil {
			logger.Warn("River stop", zap.Error(err))
		}
	}()

	// Projection pipeline: dispatcher → handlers → runner → poller.
	actors := actor.NewResolver(db.EntClient)
	projector := projection.New(db.EntClient, maintainer, actors, jobs.NewEnqueuer(db.RiverClient))
	dispatcher := domain.NewEventDispatcher()
	projector.Register(dispatcher)

	runner := projection.NewRunner(dispatcher, pools.Projection)
	poller := eventsource.NewPoller(db.Pool, runner, cfg.Projector)
	if err := poller.EnsureSchema(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("Projector started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("poller: %w", err)
		}
	}

	cancel()
	logger.Info("Projector stopped gracefully")
	return nil
}
