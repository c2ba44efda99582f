// Package projection applies domain events to the relational read models.
// Handlers are idempotent against at-least-once delivery: duplicate
// creations are absorbed, mutations are guarded by the row's last applied
// version, and every index mutation commits in the same transaction as the
// primary row it derives from.
package projection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/internal/actor"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/index"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

// ReindexEnqueuer schedules a full recompute of a content type's index rows.
// The projector enqueues one when a definition's indexing flags change,
// because existing locales written before the change have no rows to update.
type ReindexEnqueuer interface {
	EnqueueReindex(ctx context.Context, contentTypeID uuid.UUID) error
}

// Projector owns the event handlers for all read models.
type Projector struct {
	client  *ent.Client
	index   *index.Maintainer
	actors  *actor.Resolver
	reindex ReindexEnqueuer // optional
}

// New creates a Projector. reindex may be nil when no job queue is wired
// (tests, one-shot replays).
func New(client *ent.Client, maintainer *index.Maintainer, actors *actor.Resolver, reindex ReindexEnqueuer) *Projector {
	return &Projector{
		client:  client,
		index:   maintainer,
		actors:  actors,
		reindex: reindex,
	}
}

// Register wires every handler into the dispatcher.
func (p *Projector) Register(d *domain.EventDispatcher) {
	d.Register(domain.EventRealmCreated, p.handleRealmCreated)
	d.Register(domain.EventRealmUpdated, p.handleRealmUpdated)
	d.Register(domain.EventRealmDeleted, p.handleRealmDeleted)

	d.Register(domain.EventLanguageCreated, p.handleLanguageCreated)
	d.Register(domain.EventLanguageUpdated, p.handleLanguageUpdated)
	d.Register(domain.EventLanguageDeleted, p.handleLanguageDeleted)

	d.Register(domain.EventUserCreated, p.handleUserCreated)
	d.Register(domain.EventUserUpdated, p.handleUserUpdated)
	d.Register(domain.EventUserDeleted, p.handleUserDeleted)

	d.Register(domain.EventApiKeyCreated, p.handleApiKeyCreated)
	d.Register(domain.EventApiKeyUpdated, p.handleApiKeyUpdated)
	d.Register(domain.EventApiKeyDeleted, p.handleApiKeyDeleted)

	d.Register(domain.EventFieldTypeCreated, p.handleFieldTypeCreated)
	d.Register(domain.EventFieldTypeUpdated, p.handleFieldTypeUpdated)
	d.Register(domain.EventFieldTypeDeleted, p.handleFieldTypeDeleted)

	d.Register(domain.EventContentTypeCreated, p.handleContentTypeCreated)
	d.Register(domain.EventContentTypeUpdated, p.handleContentTypeUpdated)
	d.Register(domain.EventContentTypeDeleted, p.handleContentTypeDeleted)
	d.Register(domain.EventFieldDefinitionChanged, p.handleFieldDefinitionChanged)
	d.Register(domain.EventFieldDefinitionRemoved, p.handleFieldDefinitionRemoved)

	d.Register(domain.EventContentCreated, p.handleContentCreated)
	d.Register(domain.EventContentLocaleChanged, p.handleContentLocaleChanged)
	d.Register(domain.EventContentLocaleRemoved, p.handleContentLocaleRemoved)
	d.Register(domain.EventContentLocalePublished, p.handleContentLocalePublished)
	d.Register(domain.EventContentLocaleUnpublished, p.handleContentLocaleUnpublished)
	d.Register(domain.EventContentDeleted, p.handleContentDeleted)
}

// withTx runs fn in a transaction, rolling back on error or panic.
func (p *Projector) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// decodePayload unmarshals the event payload into T.
func decodePayload[T any](e *domain.Event) (*T, error) {
	var payload T
	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return &payload, nil
}

// guardVersion reports whether the event should mutate a row currently at
// rowVersion. A row already at or past the event version means a replayed
// delivery; a row further behind means events were lost upstream. Both are
// skipped, with distinct log lines so the two never blur together.
func guardVersion(e *domain.Event, rowVersion int64) bool {
	switch {
	case rowVersion == e.Version-1:
		return true
	case rowVersion >= e.Version:
		logger.Warn("Skipping already-applied event",
			zap.String("event_type", string(e.Type)),
			zap.String("stream_id", e.StreamID.String()),
			zap.Int64("event_version", e.Version),
			zap.Int64("row_version", rowVersion),
		)
	default:
		logger.Error("Skipping event: row is behind, earlier events missing",
			zap.String("event_type", string(e.Type)),
			zap.String("stream_id", e.StreamID.String()),
			zap.Int64("event_version", e.Version),
			zap.Int64("row_version", rowVersion),
		)
	}
	return false
}

// logDuplicateCreate records an absorbed duplicate creation delivery.
func logDuplicateCreate(e *domain.Event) {
	logger.Warn("Row already exists, ignoring duplicate creation event",
		zap.String("event_type", string(e.Type)),
		zap.String("stream_id", e.StreamID.String()),
		zap.Int64("event_version", e.Version),
	)
}

// logRowMissing records a mutation event whose target row does not exist.
// Treated like a version mismatch: skipped with a warning, because a fatal
// error here would block the checkpoint on an event that can never apply.
func logRowMissing(e *domain.Event) {
	logger.Warn("Skipping event: row missing",
		zap.String("event_type", string(e.Type)),
		zap.String("stream_id", e.StreamID.String()),
		zap.Int64("event_version", e.Version),
	)
}

// logAlreadyAbsent records a deletion arriving after its row is gone.
func logAlreadyAbsent(e *domain.Event) {
	logger.Warn("Row already absent, ignoring duplicate deletion event",
		zap.String("event_type", string(e.Type)),
		zap.String("stream_id", e.StreamID.String()),
		zap.Int64("event_version", e.Version),
	)
}

// parseStream extracts the realm and entity ids, failing loudly on a
// malformed stream id since nothing downstream can recover from it.
func parseStream(e *domain.Event) (realmID *uuid.UUID, entityID uuid.UUID, err error) {
	_, realmID, entityID, err = e.StreamID.Parse()
	return realmID, entityID, err
}
