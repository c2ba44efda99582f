// Package eventsource consumes the append-only event feed. A single poller
// tails the event store table by global position, hands batches to the
// projection runner and advances a per-consumer checkpoint only after the
// whole batch applied. Crashes between apply and checkpoint cause
// redelivery, which the handlers absorb.
package eventsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/internal/config"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

// Applier applies one ordered batch of events.
type Applier interface {
	Apply(ctx context.Context, events []*domain.Event) error
}

// Poller tails the event feed for one consumer.
type Poller struct {
	pool    *pgxpool.Pool
	applier Applier
	cfg     config.ProjectorConfig
}

// NewPoller creates a Poller.
func NewPoller(pool *pgxpool.Pool, applier Applier, cfg config.ProjectorConfig) *Poller {
	return &Poller{pool: pool, applier: applier, cfg: cfg}
}

// EnsureSchema creates the checkpoint table when missing. The events table
// belongs to the write side and is never created here.
func (p *Poller) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			consumer_name        TEXT PRIMARY KEY,
			last_global_position BIGINT NOT NULL DEFAULT 0,
			updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, p.cfg.CheckpointsTable))
	if err != nil {
		return fmt.Errorf("ensure checkpoint table: %w", err)
	}
	return nil
}

// Run polls until the context is cancelled. Consecutive non-empty batches
// drain back to back; an empty read waits one poll interval.
func (p *Poller) Run(ctx context.Context) error {
	logger.Info("Event feed poller starting",
		zap.String("consumer", p.cfg.ConsumerName),
		zap.String("events_table", p.cfg.EventsTable),
		zap.Int("batch_size", p.cfg.BatchSize),
	)

	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		n, err := p.processBatch(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Error("Batch failed, retrying after poll interval", zap.Error(err))
			n = 0
		}
		if n > 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// processBatch reads and applies one batch, returning how many events it saw.
func (p *Poller) processBatch(ctx context.Context) (int, error) {
	checkpoint, err := p.readCheckpoint(ctx)
	if err != nil {
		return 0, err
	}

	events, lastPosition, err := p.readEvents(ctx, checkpoint)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	if err := p.applier.Apply(ctx, events); err != nil {
		return 0, fmt.Errorf("apply batch after position %d: %w", checkpoint, err)
	}
	if err := p.writeCheckpoint(ctx, lastPosition); err != nil {
		return 0, err
	}

	logger.Debug("Batch applied",
		zap.Int("events", len(events)),
		zap.Int64("last_position", lastPosition),
	)
	return len(events), nil
}

func (p *Poller) readCheckpoint(ctx context.Context) (int64, error) {
	var checkpoint int64
	err := p.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT last_global_position FROM %s WHERE consumer_name = $1`,
		p.cfg.CheckpointsTable,
	), p.cfg.ConsumerName).Scan(&checkpoint)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read checkpoint: %w", err)
	}
	return checkpoint, nil
}

func (p *Poller) writeCheckpoint(ctx context.Context, position int64) error {
	_, err := p.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (consumer_name, last_global_position, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (consumer_name)
		DO UPDATE SET
			last_global_position = EXCLUDED.last_global_position,
			updated_at = EXCLUDED.updated_at`,
		p.cfg.CheckpointsTable,
	), p.cfg.ConsumerName, position)
	if err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}
	return nil
}

func (p *Poller) readEvents(ctx context.Context, after int64) ([]*domain.Event, int64, error) {
	rows, err := p.pool.Query(ctx, fmt.Sprintf(`
		SELECT global_position, stream_id, version, event_type, actor_id, occurred_on, payload
		FROM %s
		WHERE global_position > $1
		ORDER BY global_position
		LIMIT $2`,
		p.cfg.EventsTable,
	), after, p.cfg.BatchSize)
	if err != nil {
		return nil, 0, fmt.Errorf("read events after %d: %w", after, err)
	}
	defer rows.Close()

	var (
		events       []*domain.Event
		lastPosition int64
	)
	for rows.Next() {
		var (
			position int64
			streamID string
			actorID  *string
			e        domain.Event
			payload  []byte
		)
		if err := rows.Scan(&position, &streamID, &e.Version, &e.Type, &actorID, &e.OccurredOn, &payload); err != nil {
			return nil, 0, fmt.Errorf("scan event row: %w", err)
		}
		e.StreamID = domain.StreamID(streamID)
		if actorID != nil {
			e.ActorID = *actorID
		}
		e.Payload = json.RawMessage(payload)
		events = append(events, &e)
		lastPosition = position
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate event rows: %w", err)
	}
	return events, lastPosition, nil
}
