package projection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldtype"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/fields"
	"lattice-cms.io/lattice/internal/index"
)

func (p *Projector) handleFieldTypeCreated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.FieldTypeCreatedPayload](e)
	if err != nil {
		return err
	}
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	dt := fields.DataType(payload.DataType)
	if _, err := fields.NewValidator(dt, payload.Settings); err != nil {
		return fmt.Errorf("field type %s: %w", id, err)
	}

	exists, err := p.client.FieldType.Query().Where(fieldtype.ID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check field type %s: %w", id, err)
	}
	if exists {
		logDuplicateCreate(e)
		return nil
	}

	create := p.client.FieldType.Create().
		SetID(id).
		SetStreamID(e.StreamID.String()).
		SetVersion(e.Version).
		SetNillableRealmID(realmID).
		SetUniqueName(payload.UniqueName).
		SetUniqueNameNormalized(index.Normalize(payload.UniqueName)).
		SetDataType(fieldtype.DataType(dt)).
		SetSettings(settingsBytes(payload.Settings)).
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
		return fmt.Errorf("create field type %s: %w", id, err)
	}
	return nil
}

func (p *Projector) handleFieldTypeUpdated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.FieldTypeUpdatedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.FieldType.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load field type %s: %w", id, err)
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
		if payload.Settings != nil {
			if v, ok := payload.Settings.Get(); ok {
				// The data type never changes, so the new settings must parse
				// under the existing one.
				if _, err := fields.NewValidator(fields.DataType(row.DataType), v); err != nil {
					return fmt.Errorf("field type %s: %w", id, err)
				}
				upd.SetSettings(settingsBytes(v))
			}
		}

		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update field type %s: %w", id, err)
		}
		if renamed != "" {
			return p.index.FieldTypeRenamed(ctx, tx, id, renamed)
		}
		return nil
	})
}

func (p *Projector) handleFieldTypeDeleted(ctx context.Context, e *domain.Event) error {
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.FieldType.Query().Where(fieldtype.ID(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check field type %s: %w", id, err)
		}
		if !exists {
			logAlreadyAbsent(e)
			return nil
		}

		// Definitions bound to the deleted type disappear; the remaining
		// orders per content type re-pack to stay contiguous.
		doomed, err := tx.FieldDefinition.Query().
			Where(fielddefinition.FieldTypeID(id)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load definitions of field type %s: %w", id, err)
		}
		affected := make(map[uuid.UUID]struct{}, len(doomed))
		for _, def := range doomed {
			affected[def.ContentTypeID] = struct{}{}
		}

		if _, err := tx.FieldDefinition.Delete().
			Where(fielddefinition.FieldTypeID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("cascade definitions of field type %s: %w", id, err)
		}
		for contentTypeID := range affected {
			if err := repackFieldOrders(ctx, tx, contentTypeID); err != nil {
				return err
			}
		}

		if err := p.index.DeleteForFieldType(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.FieldType.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete field type %s: %w", id, err)
		}
		return nil
	})
}

// repackFieldOrders rewrites a content type's definition orders to 0..n-1
// and refreshes its field count.
func repackFieldOrders(ctx context.Context, tx *ent.Tx, contentTypeID uuid.UUID) error {
	defs, err := tx.FieldDefinition.Query().
		Where(fielddefinition.ContentTypeID(contentTypeID)).
		Order(ent.Asc(fielddefinition.FieldOrder)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load definitions of content type %s: %w", contentTypeID, err)
	}
	for i, def := range defs {
		if def.Order == i {
			continue
		}
		if _, err := def.Update().SetOrder(i).Save(ctx); err != nil {
			return fmt.Errorf("repack order of definition %s: %w", def.ID, err)
		}
	}
	if _, err := tx.ContentType.UpdateOneID(contentTypeID).
		SetFieldCount(len(defs)).
		Save(ctx); err != nil {
		return fmt.Errorf("update field count of content type %s: %w", contentTypeID, err)
	}
	return nil
}

// settingsBytes canonicalizes absent settings to an empty JSON object so the
// column is never null.
func settingsBytes(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("{}")
	}
	return raw
}
