package jobs

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/fieldindex"
	"lattice-cms.io/lattice/ent/publishedcontent"
	"lattice-cms.io/lattice/ent/uniqueindex"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

// ---------------------------------------------------------------------------
// Job Args
// ---------------------------------------------------------------------------

// PruneOrphanedIndexArgs is a periodic sweep for derived rows whose owning
// locale is gone. Cascades normally keep the tables consistent; the sweep
// covers crashes between a locale delete and its index cleanup, and rebuild
// races.
type PruneOrphanedIndexArgs struct{}

// Kind returns the job kind identifier for the orphan sweep.
func (PruneOrphanedIndexArgs) Kind() string { return "prune_orphaned_index" }

// InsertOpts keeps at most one sweep pending at a time.
func (PruneOrphanedIndexArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "index_maintenance",
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// ---------------------------------------------------------------------------
// Worker
// ---------------------------------------------------------------------------

// PruneOrphanedIndexWorker deletes index rows and published snapshots that
// reference a content locale that no longer exists.
type PruneOrphanedIndexWorker struct {
	river.WorkerDefaults[PruneOrphanedIndexArgs]
	entClient *ent.Client
}

// NewPruneOrphanedIndexWorker creates a prune worker.
func NewPruneOrphanedIndexWorker(entClient *ent.Client) *PruneOrphanedIndexWorker {
	return &PruneOrphanedIndexWorker{entClient: entClient}
}

// Work removes the orphaned rows.
func (w *PruneOrphanedIndexWorker) Work(ctx context.Context, _ *river.Job[PruneOrphanedIndexArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("prune worker is not initialized")
	}

	localeMissing := func(localeColumn string) func(s *sql.Selector) {
		return func(s *sql.Selector) {
			t := sql.Table(contentlocale.Table)
			s.Where(sql.NotExists(
				sql.Select().From(t).Where(sql.ColumnsEQ(t.C(contentlocale.FieldID), s.C(localeColumn))),
			))
		}
	}

	fieldRows, err := w.entClient.FieldIndex.Delete().
		Where(localeMissing(fieldindex.FieldContentLocaleID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune orphaned field index rows: %w", err)
	}
	uniqueRows, err := w.entClient.UniqueIndex.Delete().
		Where(localeMissing(uniqueindex.FieldContentLocaleID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune orphaned unique index rows: %w", err)
	}
	snapshots, err := w.entClient.PublishedContent.Delete().
		Where(localeMissing(publishedcontent.FieldID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune orphaned published snapshots: %w", err)
	}

	if fieldRows+uniqueRows+snapshots > 0 {
		logger.Warn("Orphaned derived rows pruned",
			zap.Int("field_index_rows", fieldRows),
			zap.Int("unique_index_rows", uniqueRows),
			zap.Int("published_snapshots", snapshots),
		)
	} else {
		logger.Debug("Orphan sweep found nothing to prune")
	}
	return nil
}
