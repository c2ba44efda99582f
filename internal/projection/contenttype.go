package projection

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/publishedcontent"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/index"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

func (p *Projector) handleContentTypeCreated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ContentTypeCreatedPayload](e)
	if err != nil {
		return err
	}
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	exists, err := p.client.ContentType.Query().Where(contenttype.ID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check content type %s: %w", id, err)
	}
	if exists {
		logDuplicateCreate(e)
		return nil
	}

	create := p.client.ContentType.Create().
		SetID(id).
		SetStreamID(e.StreamID.String()).
		SetVersion(e.Version).
		SetNillableRealmID(realmID).
		SetIsInvariant(payload.IsInvariant).
		SetUniqueName(payload.UniqueName).
		SetUniqueNameNormalized(index.Normalize(payload.UniqueName)).
		SetCreatedOn(e.OccurredOn).
		SetUpdatedOn(e.OccurredOn)
	if payload.DisplayName != nil {
		create.SetDisplayName(*payload.DisplayName)
	}
	if payload.Description != nil {
		create.SetDescription(*payload.Description)
	}
	if e.ActorID != "" {
		create.SetCreatedBy(e.ActorID).SetUpdatedBy(e.ActorID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create content type %s: %w", id, err)
	}
	return nil
}

func (p *Projector) handleContentTypeUpdated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ContentTypeUpdatedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.ContentType.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load content type %s: %w", id, err)
		}
		if !guardVersion(e, row.Version) {
			return nil
		}

		upd := row.Update().
			SetVersion(e.Version).
			SetUpdatedOn(e.OccurredOn)
		if e.ActorID != "" {
			upd.SetUpdatedBy(e.ActorID)
		}

		renamed := ""
		if payload.UniqueName != nil {
			if v, ok := payload.UniqueName.Get(); ok {
				normalized := index.Normalize(v)
				upd.SetUniqueName(v).SetUniqueNameNormalized(normalized)
				if normalized != row.UniqueNameNormalized {
					renamed = normalized
				}
			}
		}
		if payload.DisplayName != nil {
			if v, ok := payload.DisplayName.Get(); ok {
				upd.SetDisplayName(v)
			} else {
				upd.ClearDisplayName()
			}
		}
		if payload.Description != nil {
			if v, ok := payload.Description.Get(); ok {
				upd.SetDescription(v)
			} else {
				upd.ClearDescription()
			}
		}

		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update content type %s: %w", id, err)
		}
		if renamed != "" {
			return p.index.ContentTypeRenamed(ctx, tx, id, renamed)
		}
		return nil
	})
}

func (p *Projector) handleFieldDefinitionChanged(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.FieldDefinitionChangedPayload](e)
	if err != nil {
		return err
	}
	_, contentTypeID, err := parseStream(e)
	if err != nil {
		return err
	}

	var needsReindex bool
	err = p.withTx(ctx, func(tx *ent.Tx) error {
		ct, err := tx.ContentType.Get(ctx, contentTypeID)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load content type %s: %w", contentTypeID, err)
		}
		if !guardVersion(e, ct.Version) {
			return nil
		}

		// The referenced field type must already be projected; a miss here
		// is out-of-order delivery across streams and cannot be absorbed.
		ft, err := tx.FieldType.Get(ctx, payload.FieldTypeID)
		if err != nil {
			return fmt.Errorf("load field type %s for definition %s: %w", payload.FieldTypeID, payload.FieldID, err)
		}

		existing, err := tx.FieldDefinition.Query().
			Where(fielddefinition.ID(payload.FieldID)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("load definition %s: %w", payload.FieldID, err)
		}

		normalized := index.Normalize(payload.UniqueName)
		if existing == nil {
			create := tx.FieldDefinition.Create().
				SetID(payload.FieldID).
				SetContentTypeID(contentTypeID).
				SetFieldTypeID(ft.ID).
				SetOrder(ct.FieldCount).
				SetIsInvariant(payload.IsInvariant).
				SetIsRequired(payload.IsRequired).
				SetIsIndexed(payload.IsIndexed).
				SetIsUnique(payload.IsUnique).
				SetUniqueName(payload.UniqueName).
				SetUniqueNameNormalized(normalized)
			if payload.DisplayName != nil {
				create.SetDisplayName(*payload.DisplayName)
			}
			if payload.Description != nil {
				create.SetDescription(*payload.Description)
			}
			if payload.Placeholder != nil {
				create.SetPlaceholder(*payload.Placeholder)
			}
			if _, err := create.Save(ctx); err != nil {
				return fmt.Errorf("create definition %s: %w", payload.FieldID, err)
			}
			if _, err := ct.Update().
				SetVersion(e.Version).
				SetFieldCount(ct.FieldCount + 1).
				SetUpdatedOn(e.OccurredOn).
				Save(ctx); err != nil {
				return fmt.Errorf("update content type %s: %w", contentTypeID, err)
			}
			needsReindex = payload.IsIndexed || payload.IsUnique
			return nil
		}

		upd := existing.Update().
			SetFieldTypeID(ft.ID).
			SetIsInvariant(payload.IsInvariant).
			SetIsRequired(payload.IsRequired).
			SetIsIndexed(payload.IsIndexed).
			SetIsUnique(payload.IsUnique).
			SetUniqueName(payload.UniqueName).
			SetUniqueNameNormalized(normalized)
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
		if payload.Placeholder != nil {
			upd.SetPlaceholder(*payload.Placeholder)
		} else {
			upd.ClearPlaceholder()
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update definition %s: %w", payload.FieldID, err)
		}
		if _, err := ct.Update().
			SetVersion(e.Version).
			SetUpdatedOn(e.OccurredOn).
			Save(ctx); err != nil {
			return fmt.Errorf("update content type %s: %w", contentTypeID, err)
		}

		if normalized != existing.UniqueNameNormalized {
			if err := p.index.FieldDefinitionRenamed(ctx, tx, payload.FieldID, normalized); err != nil {
				return err
			}
		}
		// Rows derived under flags that just turned off are stale now.
		if existing.IsIndexed && !payload.IsIndexed {
			if err := p.index.DropFieldRowsForDefinition(ctx, tx, payload.FieldID); err != nil {
				return err
			}
		}
		if existing.IsUnique && !payload.IsUnique {
			if err := p.index.DropUniqueRowsForDefinition(ctx, tx, payload.FieldID); err != nil {
				return err
			}
		}
		needsReindex = (!existing.IsIndexed && payload.IsIndexed) ||
			(!existing.IsUnique && payload.IsUnique) ||
			existing.FieldTypeID != ft.ID
		return nil
	})
	if err != nil {
		return err
	}

	// Locales written before the flags flipped on have no index rows yet;
	// a background reindex backfills them.
	if needsReindex && p.reindex != nil {
		if err := p.reindex.EnqueueReindex(ctx, contentTypeID); err != nil {
			logger.Error("Failed to enqueue reindex",
				zap.String("content_type_id", contentTypeID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (p *Projector) handleFieldDefinitionRemoved(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.FieldDefinitionRemovedPayload](e)
	if err != nil {
		return err
	}
	_, contentTypeID, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		ct, err := tx.ContentType.Get(ctx, contentTypeID)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load content type %s: %w", contentTypeID, err)
		}
		if !guardVersion(e, ct.Version) {
			return nil
		}

		existing, err := tx.FieldDefinition.Query().
			Where(fielddefinition.ID(payload.FieldID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				logAlreadyAbsent(e)
				// The content type still advances so later events apply.
				_, err = ct.Update().SetVersion(e.Version).SetUpdatedOn(e.OccurredOn).Save(ctx)
				return err
			}
			return fmt.Errorf("load definition %s: %w", payload.FieldID, err)
		}

		if err := tx.FieldDefinition.DeleteOne(existing).Exec(ctx); err != nil {
			return fmt.Errorf("delete definition %s: %w", payload.FieldID, err)
		}
		if err := repackFieldOrders(ctx, tx, contentTypeID); err != nil {
			return err
		}
		if _, err := tx.ContentType.UpdateOneID(contentTypeID).
			SetVersion(e.Version).
			SetUpdatedOn(e.OccurredOn).
			Save(ctx); err != nil {
			return fmt.Errorf("update content type %s: %w", contentTypeID, err)
		}
		return p.index.DeleteForFieldDefinition(ctx, tx, payload.FieldID)
	})
}

func (p *Projector) handleContentTypeDeleted(ctx context.Context, e *domain.Event) error {
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.ContentType.Query().Where(contenttype.ID(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check content type %s: %w", id, err)
		}
		if !exists {
			logAlreadyAbsent(e)
			return nil
		}

		// Everything under the type goes: definitions, content items with
		// their locales and snapshots, and all derived index rows.
		contentIDs, err := tx.Content.Query().
			Where(content.ContentTypeID(id)).
			IDs(ctx)
		if err != nil {
			return fmt.Errorf("load contents of content type %s: %w", id, err)
		}
		if len(contentIDs) > 0 {
			if _, err := tx.PublishedContent.Delete().
				Where(publishedcontent.ContentTypeID(id)).
				Exec(ctx); err != nil {
				return fmt.Errorf("cascade published snapshots of content type %s: %w", id, err)
			}
			if _, err := tx.ContentLocale.Delete().
				Where(contentlocale.ContentIDIn(contentIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("cascade locales of content type %s: %w", id, err)
			}
			if _, err := tx.Content.Delete().
				Where(content.ContentTypeID(id)).
				Exec(ctx); err != nil {
				return fmt.Errorf("cascade contents of content type %s: %w", id, err)
			}
		}
		if _, err := tx.FieldDefinition.Delete().
			Where(fielddefinition.ContentTypeID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("cascade definitions of content type %s: %w", id, err)
		}
		if err := p.index.DeleteForContentType(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.ContentType.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete content type %s: %w", id, err)
		}
		return nil
	})
}
