package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldindex"
	"lattice-cms.io/lattice/ent/uniqueindex"
	"lattice-cms.io/lattice/internal/fields"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

// LocaleWrite is one content locale's effective state at a status, with the
// denormalized identity the index rows need. The caller resolves names and
// language data before handing it over; all strings are already normalized.
type LocaleWrite struct {
	RealmID           *uuid.UUID
	ContentTypeID     uuid.UUID
	ContentTypeName   string
	LanguageID        *uuid.UUID
	LanguageCode      string
	LanguageIsDefault bool
	ContentID         uuid.UUID
	ContentLocaleID   uuid.UUID
	ContentLocaleName string
	Version           int64
	Values            map[string]string // fieldDefinitionId → raw value
}

// Maintainer keeps FieldIndex/UniqueIndex rows in sync with projection
// writes. It is stateless; every method runs inside the caller's
// transaction so index mutations commit atomically with the primary row.
type Maintainer struct{}

// NewMaintainer creates a Maintainer.
func NewMaintainer() *Maintainer {
	return &Maintainer{}
}

type desiredRow struct {
	def   *ent.FieldDefinition
	ft    *ent.FieldType
	typed fields.TypedValue
	value string // normalized, unique rows only
	key   string // unique rows only
}

// Sync recomputes the index rows for one (content locale, status) and
// applies the difference exactly: updates rows whose definition still
// qualifies, creates missing ones, deletes the rest. Uniqueness conflicts
// abort before any mutation.
func (m *Maintainer) Sync(ctx context.Context, tx *ent.Tx, w LocaleWrite, status Status) error {
	defs, err := tx.FieldDefinition.Query().
		Where(fielddefinition.ContentTypeID(w.ContentTypeID)).
		WithFieldType().
		Order(ent.Asc(fielddefinition.FieldOrder)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load field definitions for content type %s: %w", w.ContentTypeID, err)
	}

	desiredField := make(map[uuid.UUID]desiredRow)
	desiredUnique := make(map[uuid.UUID]desiredRow)

	for _, def := range defs {
		raw, ok := w.Values[def.ID.String()]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		ft := def.Edges.FieldType
		if ft == nil {
			return fmt.Errorf("field definition %s: field type %s not loaded", def.ID, def.FieldTypeID)
		}

		if def.IsIndexed {
			typed, err := fields.IndexValue(fields.DataType(ft.DataType), raw)
			if err != nil {
				// Validated upstream; an unparsable value here means a schema
				// drift between data type and stored value. Skip the row.
				logger.Warn("Skipping unindexable field value",
					zap.String("field_definition_id", def.ID.String()),
					zap.String("content_locale_id", w.ContentLocaleID.String()),
					zap.Error(err),
				)
			} else {
				desiredField[def.ID] = desiredRow{def: def, ft: ft, typed: typed}
			}
		}
		if def.IsUnique {
			desiredUnique[def.ID] = desiredRow{
				def:   def,
				ft:    ft,
				value: Normalize(raw),
				key:   Key(def.ID, raw),
			}
		}
	}

	// Conflict detection runs before any index mutation (all-or-nothing).
	if len(desiredUnique) > 0 {
		conflicts, err := m.checkConflicts(ctx, tx.UniqueIndex, w, status, desiredUnique)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return NewConflictError(conflicts)
		}
	}

	if err := m.applyFieldRows(ctx, tx, w, status, desiredField); err != nil {
		return err
	}
	return m.applyUniqueRows(ctx, tx, w, status, desiredUnique)
}

func (m *Maintainer) checkConflicts(ctx context.Context, c *ent.UniqueIndexClient, w LocaleWrite, status Status, desired map[uuid.UUID]desiredRow) ([]Conflict, error) {
	keys := make([]string, 0, len(desired))
	byKey := make(map[string]desiredRow, len(desired))
	for _, row := range desired {
		keys = append(keys, row.key)
		byKey[row.key] = row
	}

	q := c.Query().Where(
		uniqueindex.ContentTypeID(w.ContentTypeID),
		uniqueindex.StatusEQ(uniqueindex.Status(status)),
		uniqueindex.KeyIn(keys...),
		uniqueindex.ContentIDNEQ(w.ContentID),
	)
	if w.RealmID != nil {
		q = q.Where(uniqueindex.RealmIDEQ(*w.RealmID))
	} else {
		q = q.Where(uniqueindex.RealmIDIsNil())
	}
	if w.LanguageID != nil {
		q = q.Where(uniqueindex.LanguageIDEQ(*w.LanguageID))
	} else {
		q = q.Where(uniqueindex.LanguageIDIsNil())
	}

	owners, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unique index conflicts: %w", err)
	}

	conflicts := make([]Conflict, 0, len(owners))
	for _, owner := range owners {
		row := byKey[owner.Key]
		conflicts = append(conflicts, Conflict{
			FieldDefinitionID: row.def.ID,
			ContentID:         owner.ContentID,
			Value:             row.value,
		})
	}
	return conflicts, nil
}

func (m *Maintainer) applyFieldRows(ctx context.Context, tx *ent.Tx, w LocaleWrite, status Status, desired map[uuid.UUID]desiredRow) error {
	existing, err := tx.FieldIndex.Query().
		Where(
			fieldindex.ContentLocaleID(w.ContentLocaleID),
			fieldindex.StatusEQ(fieldindex.Status(status)),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load field index rows: %w", err)
	}

	remaining := make(map[uuid.UUID]desiredRow, len(desired))
	for id, row := range desired {
		remaining[id] = row
	}

	for _, row := range existing {
		want, ok := remaining[row.FieldDefinitionID]
		if !ok {
			if err := tx.FieldIndex.DeleteOne(row).Exec(ctx); err != nil {
				return fmt.Errorf("delete field index row %s: %w", row.ID, err)
			}
			continue
		}
		delete(remaining, row.FieldDefinitionID)

		u := tx.FieldIndex.UpdateOne(row).
			SetContentTypeName(w.ContentTypeName).
			SetFieldTypeID(want.ft.ID).
			SetFieldTypeName(want.ft.UniqueNameNormalized).
			SetFieldDefinitionName(want.def.UniqueNameNormalized).
			SetContentLocaleName(w.ContentLocaleName).
			SetLanguageCode(w.LanguageCode).
			SetLanguageIsDefault(w.LanguageIsDefault).
			SetVersion(w.Version).
			ClearValueBoolean().
			ClearValueDatetime().
			ClearValueNumber().
			ClearValueRelatedContent().
			ClearValueRichText().
			ClearValueSelect().
			ClearValueString().
			ClearValueTags()
		u = setFieldUpdateValue(u, want.typed)
		if _, err := u.Save(ctx); err != nil {
			return fmt.Errorf("update field index row %s: %w", row.ID, err)
		}
	}

	for _, want := range remaining {
		c := tx.FieldIndex.Create().
			SetStatus(fieldindex.Status(status)).
			SetContentTypeID(w.ContentTypeID).
			SetContentTypeName(w.ContentTypeName).
			SetFieldTypeID(want.ft.ID).
			SetFieldTypeName(want.ft.UniqueNameNormalized).
			SetFieldDefinitionID(want.def.ID).
			SetFieldDefinitionName(want.def.UniqueNameNormalized).
			SetContentID(w.ContentID).
			SetContentLocaleID(w.ContentLocaleID).
			SetContentLocaleName(w.ContentLocaleName).
			SetLanguageCode(w.LanguageCode).
			SetLanguageIsDefault(w.LanguageIsDefault).
			SetVersion(w.Version).
			SetNillableRealmID(w.RealmID).
			SetNillableLanguageID(w.LanguageID).
			SetNillableValueBoolean(want.typed.Boolean).
			SetNillableValueDatetime(want.typed.DateTime).
			SetNillableValueNumber(want.typed.Number).
			SetNillableValueRelatedContent(want.typed.RelatedContent).
			SetNillableValueRichText(want.typed.RichText).
			SetNillableValueSelect(want.typed.Select).
			SetNillableValueString(want.typed.String).
			SetNillableValueTags(want.typed.Tags)
		if _, err := c.Save(ctx); err != nil {
			return fmt.Errorf("create field index row for definition %s: %w", want.def.ID, err)
		}
	}
	return nil
}

func setFieldUpdateValue(u *ent.FieldIndexUpdateOne, tv fields.TypedValue) *ent.FieldIndexUpdateOne {
	switch {
	case tv.Boolean != nil:
		return u.SetValueBoolean(*tv.Boolean)
	case tv.DateTime != nil:
		return u.SetValueDatetime(*tv.DateTime)
	case tv.Number != nil:
		return u.SetValueNumber(*tv.Number)
	case tv.RelatedContent != nil:
		return u.SetValueRelatedContent(*tv.RelatedContent)
	case tv.RichText != nil:
		return u.SetValueRichText(*tv.RichText)
	case tv.Select != nil:
		return u.SetValueSelect(*tv.Select)
	case tv.String != nil:
		return u.SetValueString(*tv.String)
	case tv.Tags != nil:
		return u.SetValueTags(*tv.Tags)
	}
	return u
}

func (m *Maintainer) applyUniqueRows(ctx context.Context, tx *ent.Tx, w LocaleWrite, status Status, desired map[uuid.UUID]desiredRow) error {
	existing, err := tx.UniqueIndex.Query().
		Where(
			uniqueindex.ContentLocaleID(w.ContentLocaleID),
			uniqueindex.StatusEQ(uniqueindex.Status(status)),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load unique index rows: %w", err)
	}

	remaining := make(map[uuid.UUID]desiredRow, len(desired))
	for id, row := range desired {
		remaining[id] = row
	}

	for _, row := range existing {
		want, ok := remaining[row.FieldDefinitionID]
		if !ok {
			if err := tx.UniqueIndex.DeleteOne(row).Exec(ctx); err != nil {
				return fmt.Errorf("delete unique index row %s: %w", row.ID, err)
			}
			continue
		}
		delete(remaining, row.FieldDefinitionID)

		if _, err := tx.UniqueIndex.UpdateOne(row).
			SetContentTypeName(w.ContentTypeName).
			SetFieldTypeID(want.ft.ID).
			SetFieldTypeName(want.ft.UniqueNameNormalized).
			SetFieldDefinitionName(want.def.UniqueNameNormalized).
			SetContentLocaleName(w.ContentLocaleName).
			SetLanguageCode(w.LanguageCode).
			SetLanguageIsDefault(w.LanguageIsDefault).
			SetVersion(w.Version).
			SetValue(want.value).
			SetKey(want.key).
			Save(ctx); err != nil {
			return fmt.Errorf("update unique index row %s: %w", row.ID, err)
		}
	}

	for _, want := range remaining {
		if _, err := tx.UniqueIndex.Create().
			SetStatus(uniqueindex.Status(status)).
			SetContentTypeID(w.ContentTypeID).
			SetContentTypeName(w.ContentTypeName).
			SetFieldTypeID(want.ft.ID).
			SetFieldTypeName(want.ft.UniqueNameNormalized).
			SetFieldDefinitionID(want.def.ID).
			SetFieldDefinitionName(want.def.UniqueNameNormalized).
			SetContentID(w.ContentID).
			SetContentLocaleID(w.ContentLocaleID).
			SetContentLocaleName(w.ContentLocaleName).
			SetLanguageCode(w.LanguageCode).
			SetLanguageIsDefault(w.LanguageIsDefault).
			SetVersion(w.Version).
			SetNillableRealmID(w.RealmID).
			SetNillableLanguageID(w.LanguageID).
			SetValue(want.value).
			SetKey(want.key).
			Save(ctx); err != nil {
			return fmt.Errorf("create unique index row for definition %s: %w", want.def.ID, err)
		}
	}
	return nil
}
