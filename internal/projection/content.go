package projection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/publishedcontent"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/index"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

// localeWriteFor assembles the denormalized identity the index maintainer
// needs for one locale, resolving the language row when the locale is not
// invariant.
func localeWriteFor(ctx context.Context, tx *ent.Tx, ct *ent.ContentType, loc *ent.ContentLocale, version int64, values map[string]string) (index.LocaleWrite, error) {
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
			return w, fmt.Errorf("load language %s for locale %s: %w", *loc.LanguageID, loc.ID, err)
		}
		w.LanguageID = loc.LanguageID
		w.LanguageCode = lang.Code
		w.LanguageIsDefault = lang.IsDefault
	}
	return w, nil
}

// syncLocale runs the index maintainer, absorbing uniqueness conflicts: the
// event already happened, so the locale is stored and left unindexed rather
// than wedging the feed on an unresolvable batch. Pre-flight checks on the
// write side keep this rare.
func (p *Projector) syncLocale(ctx context.Context, tx *ent.Tx, e *domain.Event, w index.LocaleWrite, status index.Status) error {
	err := p.index.Sync(ctx, tx, w, status)
	if err == nil {
		return nil
	}
	if _, ok := index.AsConflictError(err); ok {
		logger.Warn("Unique value conflict, locale left unindexed",
			zap.String("stream_id", e.StreamID.String()),
			zap.String("content_locale_id", w.ContentLocaleID.String()),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil
	}
	return err
}

func (p *Projector) handleContentCreated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ContentCreatedPayload](e)
	if err != nil {
		return err
	}
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.Content.Query().Where(content.ID(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check content %s: %w", id, err)
		}
		if exists {
			logDuplicateCreate(e)
			return nil
		}

		// The content type must already be projected. This is a hard
		// dependency, not a race to absorb.
		ct, err := tx.ContentType.Get(ctx, payload.ContentTypeID)
		if err != nil {
			return fmt.Errorf("load content type %s for content %s: %w", payload.ContentTypeID, id, err)
		}

		create := tx.Content.Create().
			SetID(id).
			SetStreamID(e.StreamID.String()).
			SetVersion(e.Version).
			SetNillableRealmID(realmID).
			SetContentTypeID(ct.ID).
			SetCreatedOn(e.OccurredOn).
			SetUpdatedOn(e.OccurredOn)
		if e.ActorID != "" {
			create.SetCreatedBy(e.ActorID).SetUpdatedBy(e.ActorID)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create content %s: %w", id, err)
		}

		// Every content item starts with its invariant locale.
		loc, err := newLocaleCreate(tx, e, id, nil, payload.UniqueName, payload.DisplayName, payload.Description, payload.FieldValues).Save(ctx)
		if err != nil {
			return fmt.Errorf("create invariant locale of content %s: %w", id, err)
		}

		w, err := localeWriteFor(ctx, tx, ct, loc, e.Version, loc.FieldValues)
		if err != nil {
			return err
		}
		return p.syncLocale(ctx, tx, e, w, index.StatusLatest)
	})
}

func newLocaleCreate(tx *ent.Tx, e *domain.Event, contentID uuid.UUID, languageID *uuid.UUID, uniqueName string, displayName, description *string, values map[string]string) *ent.ContentLocaleCreate {
	if values == nil {
		values = map[string]string{}
	}
	create := tx.ContentLocale.Create().
		SetID(uuid.New()).
		SetContentID(contentID).
		SetNillableLanguageID(languageID).
		SetUniqueName(uniqueName).
		SetUniqueNameNormalized(index.Normalize(uniqueName)).
		SetFieldValues(values).
		SetVersion(e.Version).
		SetCreatedOn(e.OccurredOn).
		SetUpdatedOn(e.OccurredOn)
	if displayName != nil {
		create.SetDisplayName(*displayName)
	}
	if description != nil {
		create.SetDescription(*description)
	}
	if e.ActorID != "" {
		create.SetCreatedBy(e.ActorID).SetUpdatedBy(e.ActorID)
	}
	return create
}

// localeQuery finds the locale of a content item for a language id, where
// nil targets the invariant locale.
func localeQuery(tx *ent.Tx, contentID uuid.UUID, languageID *uuid.UUID) *ent.ContentLocaleQuery {
	q := tx.ContentLocale.Query().Where(contentlocale.ContentID(contentID))
	if languageID != nil {
		q = q.Where(contentlocale.LanguageIDEQ(*languageID))
	} else {
		q = q.Where(contentlocale.LanguageIDIsNil())
	}
	return q
}

// bumpContent advances the content aggregate row after a locale-level event.
func bumpContent(ctx context.Context, row *ent.Content, e *domain.Event) error {
	upd := row.Update().
		SetVersion(e.Version).
		SetUpdatedOn(e.OccurredOn)
	if e.ActorID != "" {
		upd.SetUpdatedBy(e.ActorID)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update content %s: %w", row.ID, err)
	}
	return nil
}

func (p *Projector) handleContentLocaleChanged(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ContentLocaleChangedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Content.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load content %s: %w", id, err)
		}
		if !guardVersion(e, row.Version) {
			return nil
		}

		ct, err := tx.ContentType.Get(ctx, row.ContentTypeID)
		if err != nil {
			return fmt.Errorf("load content type %s: %w", row.ContentTypeID, err)
		}
		if payload.LanguageID != nil {
			if ct.IsInvariant {
				// Invalid for this schema; the stream still has to advance.
				logger.Error("Ignoring language locale on invariant content type",
					zap.String("stream_id", e.StreamID.String()),
					zap.String("content_type_id", ct.ID.String()),
					zap.Int64("event_version", e.Version),
				)
				return bumpContent(ctx, row, e)
			}
			if _, err := tx.Language.Get(ctx, *payload.LanguageID); err != nil {
				return fmt.Errorf("load language %s for content %s: %w", *payload.LanguageID, id, err)
			}
		}

		loc, err := localeQuery(tx, id, payload.LanguageID).Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("load locale of content %s: %w", id, err)
		}

		values := payload.FieldValues
		if values == nil {
			values = map[string]string{}
		}

		renamed := ""
		if loc == nil {
			loc, err = newLocaleCreate(tx, e, id, payload.LanguageID, payload.UniqueName, payload.DisplayName, payload.Description, values).Save(ctx)
			if err != nil {
				return fmt.Errorf("create locale of content %s: %w", id, err)
			}
		} else {
			if n := index.Normalize(payload.UniqueName); n != loc.UniqueNameNormalized {
				renamed = n
			}
			// Locales are replaced wholesale, never patched.
			upd := loc.Update().
				SetUniqueName(payload.UniqueName).
				SetUniqueNameNormalized(index.Normalize(payload.UniqueName)).
				SetFieldValues(values).
				SetVersion(e.Version).
				SetUpdatedOn(e.OccurredOn)
			if payload.DisplayName != nil {
				upd.SetDisplayName(*payload.DisplayName)
			} else {
				upd.ClearDisplayName()
			}
			if payload.Description != nil {
				upd.SetDescription(*payload.Description)
			} else {
				upd.ClearDescription()
			}
			if e.ActorID != "" {
				upd.SetUpdatedBy(e.ActorID)
			}
			loc, err = upd.Save(ctx)
			if err != nil {
				return fmt.Errorf("update locale %s: %w", loc.ID, err)
			}
		}

		if err := bumpContent(ctx, row, e); err != nil {
			return err
		}

		// Sync below only touches the latest rows; published rows carry the
		// denormalized locale name too and rename in place.
		if renamed != "" {
			if err := p.index.ContentLocaleRenamed(ctx, tx, loc.ID, renamed); err != nil {
				return err
			}
		}

		w, err := localeWriteFor(ctx, tx, ct, loc, e.Version, values)
		if err != nil {
			return err
		}
		return p.syncLocale(ctx, tx, e, w, index.StatusLatest)
	})
}

func (p *Projector) handleContentLocaleRemoved(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ContentLocaleRemovedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Content.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load content %s: %w", id, err)
		}
		if !guardVersion(e, row.Version) {
			return nil
		}

		loc, err := localeQuery(tx, id, &payload.LanguageID).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				logAlreadyAbsent(e)
				return bumpContent(ctx, row, e)
			}
			return fmt.Errorf("load locale of content %s: %w", id, err)
		}

		if err := p.index.DeleteForContentLocale(ctx, tx, loc.ID); err != nil {
			return err
		}
		if _, err := tx.PublishedContent.Delete().
			Where(publishedcontent.ID(loc.ID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete published snapshot of locale %s: %w", loc.ID, err)
		}
		if err := tx.ContentLocale.DeleteOne(loc).Exec(ctx); err != nil {
			return fmt.Errorf("delete locale %s: %w", loc.ID, err)
		}
		return bumpContent(ctx, row, e)
	})
}

func (p *Projector) handleContentLocalePublished(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ContentLocalePublishedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Content.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load content %s: %w", id, err)
		}
		if !guardVersion(e, row.Version) {
			return nil
		}

		loc, err := localeQuery(tx, id, payload.LanguageID).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return bumpContent(ctx, row, e)
			}
			return fmt.Errorf("load locale of content %s: %w", id, err)
		}
		ct, err := tx.ContentType.Get(ctx, row.ContentTypeID)
		if err != nil {
			return fmt.Errorf("load content type %s: %w", row.ContentTypeID, err)
		}

		// Replace any earlier snapshot; the snapshot id mirrors the locale id.
		if _, err := tx.PublishedContent.Delete().
			Where(publishedcontent.ID(loc.ID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("replace published snapshot of locale %s: %w", loc.ID, err)
		}
		snap := tx.PublishedContent.Create().
			SetID(loc.ID).
			SetContentID(id).
			SetContentTypeID(ct.ID).
			SetNillableRealmID(row.RealmID).
			SetNillableLanguageID(loc.LanguageID).
			SetUniqueName(loc.UniqueName).
			SetUniqueNameNormalized(loc.UniqueNameNormalized).
			SetFieldValues(loc.FieldValues).
			SetVersion(e.Version).
			SetPublishedOn(e.OccurredOn)
		if loc.DisplayName != "" {
			snap.SetDisplayName(loc.DisplayName)
		}
		if loc.Description != "" {
			snap.SetDescription(loc.Description)
		}
		if e.ActorID != "" {
			snap.SetPublishedBy(e.ActorID)
		}
		if _, err := snap.Save(ctx); err != nil {
			return fmt.Errorf("create published snapshot of locale %s: %w", loc.ID, err)
		}

		upd := loc.Update().
			SetIsPublished(true).
			SetPublishedVersion(e.Version).
			SetNillablePublishedOn(&e.OccurredOn).
			SetVersion(e.Version).
			SetUpdatedOn(e.OccurredOn)
		if e.ActorID != "" {
			upd.SetPublishedBy(e.ActorID).SetUpdatedBy(e.ActorID)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("mark locale %s published: %w", loc.ID, err)
		}

		if err := bumpContent(ctx, row, e); err != nil {
			return err
		}

		w, err := localeWriteFor(ctx, tx, ct, loc, e.Version, loc.FieldValues)
		if err != nil {
			return err
		}
		return p.syncLocale(ctx, tx, e, w, index.StatusPublished)
	})
}

func (p *Projector) handleContentLocaleUnpublished(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ContentLocaleUnpublishedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Content.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load content %s: %w", id, err)
		}
		if !guardVersion(e, row.Version) {
			return nil
		}

		loc, err := localeQuery(tx, id, payload.LanguageID).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				logAlreadyAbsent(e)
				return bumpContent(ctx, row, e)
			}
			return fmt.Errorf("load locale of content %s: %w", id, err)
		}

		if _, err := tx.PublishedContent.Delete().
			Where(publishedcontent.ID(loc.ID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete published snapshot of locale %s: %w", loc.ID, err)
		}
		if err := p.index.DeleteForContentLocaleStatus(ctx, tx, loc.ID, index.StatusPublished); err != nil {
			return err
		}

		upd := loc.Update().
			SetIsPublished(false).
			ClearPublishedVersion().
			ClearPublishedBy().
			ClearPublishedOn().
			SetVersion(e.Version).
			SetUpdatedOn(e.OccurredOn)
		if e.ActorID != "" {
			upd.SetUpdatedBy(e.ActorID)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("mark locale %s unpublished: %w", loc.ID, err)
		}
		return bumpContent(ctx, row, e)
	})
}

func (p *Projector) handleContentDeleted(ctx context.Context, e *domain.Event) error {
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.Content.Query().Where(content.ID(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check content %s: %w", id, err)
		}
		if !exists {
			logAlreadyAbsent(e)
			return nil
		}

		if err := p.index.DeleteForContent(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.PublishedContent.Delete().
			Where(publishedcontent.ContentID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("cascade published snapshots of content %s: %w", id, err)
		}
		if _, err := tx.ContentLocale.Delete().
			Where(contentlocale.ContentID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("cascade locales of content %s: %w", id, err)
		}
		if err := tx.Content.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete content %s: %w", id, err)
		}
		return nil
	})
}
