// Package jobs contains the River maintenance workers: content type
// reindexing after schema changes and orphaned index row pruning.
package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/internal/index"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

// ---------------------------------------------------------------------------
// Job Args
// ---------------------------------------------------------------------------

// ReindexContentTypeArgs requests a full index rebuild for one content type.
// The projector enqueues it when a definition's indexing flags flip, because
// locales written before the change have no rows to diff against.
type ReindexContentTypeArgs struct {
	ContentTypeID uuid.UUID `json:"content_type_id"`
}

// Kind returns the job kind identifier for content type reindexing.
func (ReindexContentTypeArgs) Kind() string { return "reindex_content_type" }

// InsertOpts deduplicates pending rebuilds of the same content type.
func (ReindexContentTypeArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "index_maintenance",
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: []rivertype.JobState{rivertype.JobStateAvailable, rivertype.JobStateScheduled, rivertype.JobStateRetryable},
		},
	}
}

// ---------------------------------------------------------------------------
// Worker
// ---------------------------------------------------------------------------

// ReindexContentTypeWorker replays every locale of a content type through
// the index maintainer: latest rows from the locale, published rows from the
// snapshot. Conflicts during a rebuild are logged and skipped rather than
// failing the job, since the conflicting content was accepted earlier.
type ReindexContentTypeWorker struct {
	river.WorkerDefaults[ReindexContentTypeArgs]
	entClient  *ent.Client
	maintainer *index.Maintainer
}

// NewReindexContentTypeWorker creates a reindex worker.
func NewReindexContentTypeWorker(entClient *ent.Client, maintainer *index.Maintainer) *ReindexContentTypeWorker {
	return &ReindexContentTypeWorker{entClient: entClient, maintainer: maintainer}
}

// Work rebuilds the index rows of one content type.
func (w *ReindexContentTypeWorker) Work(ctx context.Context, job *river.Job[ReindexContentTypeArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("reindex worker is not initialized")
	}
	contentTypeID := job.Args.ContentTypeID

	ct, err := w.entClient.ContentType.Query().
		Where(contenttype.ID(contentTypeID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Deleted between enqueue and execution; its rows cascade away
			// with it, nothing left to rebuild.
			logger.Info("Reindex skipped, content type gone",
				zap.String("content_type_id", contentTypeID.String()),
			)
			return nil
		}
		return fmt.Errorf("load content type %s: %w", contentTypeID, err)
	}

	locales, err := w.entClient.ContentLocale.Query().
		Where(contentlocale.HasContentWith(content.ContentTypeID(contentTypeID))).
		WithContent().
		All(ctx)
	if err != nil {
		return fmt.Errorf("load locales of content type %s: %w", contentTypeID, err)
	}

	var synced, skipped int
	for _, loc := range locales {
		if err := w.reindexLocale(ctx, ct, loc); err != nil {
			if _, ok := index.AsConflictError(err); ok {
				logger.Warn("Reindex conflict, locale left unindexed",
					zap.String("content_locale_id", loc.ID.String()),
					zap.Error(err),
				)
				skipped++
				continue
			}
			return err
		}
		synced++
	}

	logger.Info("Content type reindex completed",
		zap.String("content_type_id", contentTypeID.String()),
		zap.Int("locales_synced", synced),
		zap.Int("locales_skipped", skipped),
	)
	return nil
}

func (w *ReindexContentTypeWorker) reindexLocale(ctx context.Context, ct *ent.ContentType, loc *ent.ContentLocale) error {
	tx, err := w.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	w1, err := localeWrite(ctx, tx, ct, loc, loc.Version, loc.FieldValues)
	if err != nil {
		return err
	}
	if err := w.maintainer.Sync(ctx, tx, w1, index.StatusLatest); err != nil {
		return err
	}

	if loc.IsPublished {
		snap, err := tx.PublishedContent.Get(ctx, loc.ID)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("load published snapshot of locale %s: %w", loc.ID, err)
		}
		if snap != nil {
			w2, err := localeWrite(ctx, tx, ct, loc, snap.Version, snap.FieldValues)
			if err != nil {
				return err
			}
			if err := w.maintainer.Sync(ctx, tx, w2, index.StatusPublished); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// localeWrite assembles the maintainer input for a rebuild pass.
func localeWrite(ctx context.Context, tx *ent.Tx, ct *ent.ContentType, loc *ent.ContentLocale, version int64, values map[string]string) (index.LocaleWrite, error) {
	w := index.LocaleWrite{
		RealmID:           ct.RealmID,
		ContentTypeID:     ct.ID,
		ContentTypeName:   ct.UniqueNameNormalized,
		ContentID:         loc.ContentID,
		ContentLocaleID:   loc.ID,
		ContentLocaleName: loc.UniqueNameNormalized,
		Version:           version,
		Values:            values,
	}
	if loc.LanguageID != nil {
		lang, err := tx.Language.Get(ctx, *loc.LanguageID)
		if err != nil {
			return w, fmt.Errorf("load language %s: %w", *loc.LanguageID, err)
		}
		w.LanguageID = loc.LanguageID
		w.LanguageCode = lang.Code
		w.LanguageIsDefault = lang.IsDefault
	}
	return w, nil
}

// ---------------------------------------------------------------------------
// Enqueuer
// ---------------------------------------------------------------------------

// Enqueuer inserts maintenance jobs; it satisfies the projector's
// ReindexEnqueuer.
type Enqueuer struct {
	riverClient *river.Client[pgx.Tx]
}

// NewEnqueuer creates an Enqueuer.
func NewEnqueuer(riverClient *river.Client[pgx.Tx]) *Enqueuer {
	return &Enqueuer{riverClient: riverClient}
}

// EnqueueReindex schedules a content type rebuild.
func (e *Enqueuer) EnqueueReindex(ctx context.Context, contentTypeID uuid.UUID) error {
	_, err := e.riverClient.Insert(ctx, ReindexContentTypeArgs{ContentTypeID: contentTypeID}, nil)
	if err != nil {
		return fmt.Errorf("insert reindex job for content type %s: %w", contentTypeID, err)
	}
	return nil
}
