package index

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/fieldindex"
	"lattice-cms.io/lattice/ent/uniqueindex"
)

// Rename propagation. Schema renames rewrite the denormalized name columns
// in place across BOTH statuses: published snapshots freeze values, not the
// names of the schema objects that describe them.

// ContentTypeRenamed rewrites the denormalized content type name.
func (m *Maintainer) ContentTypeRenamed(ctx context.Context, tx *ent.Tx, contentTypeID uuid.UUID, nameNormalized string) error {
	if _, err := tx.FieldIndex.Update().
		Where(fieldindex.ContentTypeID(contentTypeID)).
		SetContentTypeName(nameNormalized).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate content type rename to field index: %w", err)
	}
	if _, err := tx.UniqueIndex.Update().
		Where(uniqueindex.ContentTypeID(contentTypeID)).
		SetContentTypeName(nameNormalized).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate content type rename to unique index: %w", err)
	}
	return nil
}

// FieldTypeRenamed rewrites the denormalized field type name.
func (m *Maintainer) FieldTypeRenamed(ctx context.Context, tx *ent.Tx, fieldTypeID uuid.UUID, nameNormalized string) error {
	if _, err := tx.FieldIndex.Update().
		Where(fieldindex.FieldTypeID(fieldTypeID)).
		SetFieldTypeName(nameNormalized).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate field type rename to field index: %w", err)
	}
	if _, err := tx.UniqueIndex.Update().
		Where(uniqueindex.FieldTypeID(fieldTypeID)).
		SetFieldTypeName(nameNormalized).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate field type rename to unique index: %w", err)
	}
	return nil
}

// FieldDefinitionRenamed rewrites the denormalized field definition name.
// The field definition id is stable across renames, so values and keys are
// untouched.
func (m *Maintainer) FieldDefinitionRenamed(ctx context.Context, tx *ent.Tx, fieldDefinitionID uuid.UUID, nameNormalized string) error {
	if _, err := tx.FieldIndex.Update().
		Where(fieldindex.FieldDefinitionID(fieldDefinitionID)).
		SetFieldDefinitionName(nameNormalized).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate field definition rename to field index: %w", err)
	}
	if _, err := tx.UniqueIndex.Update().
		Where(uniqueindex.FieldDefinitionID(fieldDefinitionID)).
		SetFieldDefinitionName(nameNormalized).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate field definition rename to unique index: %w", err)
	}
	return nil
}

// ContentLocaleRenamed rewrites the denormalized locale name. Like the
// schema renames it covers both statuses: the published rows describe the
// same locale, only its values are frozen.
func (m *Maintainer) ContentLocaleRenamed(ctx context.Context, tx *ent.Tx, contentLocaleID uuid.UUID, nameNormalized string) error {
	if _, err := tx.FieldIndex.Update().
		Where(fieldindex.ContentLocaleID(contentLocaleID)).
		SetContentLocaleName(nameNormalized).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate locale rename to field index: %w", err)
	}
	if _, err := tx.UniqueIndex.Update().
		Where(uniqueindex.ContentLocaleID(contentLocaleID)).
		SetContentLocaleName(nameNormalized).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate locale rename to unique index: %w", err)
	}
	return nil
}

// LanguageChanged rewrites the denormalized language code and default flag.
func (m *Maintainer) LanguageChanged(ctx context.Context, tx *ent.Tx, languageID uuid.UUID, code string, isDefault bool) error {
	if _, err := tx.FieldIndex.Update().
		Where(fieldindex.LanguageIDEQ(languageID)).
		SetLanguageCode(code).
		SetLanguageIsDefault(isDefault).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate language change to field index: %w", err)
	}
	if _, err := tx.UniqueIndex.Update().
		Where(uniqueindex.LanguageIDEQ(languageID)).
		SetLanguageCode(code).
		SetLanguageIsDefault(isDefault).
		Save(ctx); err != nil {
		return fmt.Errorf("propagate language change to unique index: %w", err)
	}
	return nil
}

// Cascade deletes. Each removes every derived row, both statuses, for the
// deleted owner.

// DeleteForContent removes all index rows of a content item.
func (m *Maintainer) DeleteForContent(ctx context.Context, tx *ent.Tx, contentID uuid.UUID) error {
	if _, err := tx.FieldIndex.Delete().
		Where(fieldindex.ContentID(contentID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade field index for content %s: %w", contentID, err)
	}
	if _, err := tx.UniqueIndex.Delete().
		Where(uniqueindex.ContentID(contentID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade unique index for content %s: %w", contentID, err)
	}
	return nil
}

// DeleteForContentLocale removes all index rows of one locale, both statuses.
func (m *Maintainer) DeleteForContentLocale(ctx context.Context, tx *ent.Tx, contentLocaleID uuid.UUID) error {
	if _, err := tx.FieldIndex.Delete().
		Where(fieldindex.ContentLocaleID(contentLocaleID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade field index for locale %s: %w", contentLocaleID, err)
	}
	if _, err := tx.UniqueIndex.Delete().
		Where(uniqueindex.ContentLocaleID(contentLocaleID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade unique index for locale %s: %w", contentLocaleID, err)
	}
	return nil
}

// DeleteForContentLocaleStatus removes one status slice of a locale's index
// rows. Unpublish uses this to drop the published rows while the latest rows
// stay put.
func (m *Maintainer) DeleteForContentLocaleStatus(ctx context.Context, tx *ent.Tx, contentLocaleID uuid.UUID, status Status) error {
	if _, err := tx.FieldIndex.Delete().
		Where(
			fieldindex.ContentLocaleID(contentLocaleID),
			fieldindex.StatusEQ(fieldindex.Status(status)),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete %s field index for locale %s: %w", status, contentLocaleID, err)
	}
	if _, err := tx.UniqueIndex.Delete().
		Where(
			uniqueindex.ContentLocaleID(contentLocaleID),
			uniqueindex.StatusEQ(uniqueindex.Status(status)),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete %s unique index for locale %s: %w", status, contentLocaleID, err)
	}
	return nil
}

// DeleteForContentType removes all index rows under a content type.
func (m *Maintainer) DeleteForContentType(ctx context.Context, tx *ent.Tx, contentTypeID uuid.UUID) error {
	if _, err := tx.FieldIndex.Delete().
		Where(fieldindex.ContentTypeID(contentTypeID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade field index for content type %s: %w", contentTypeID, err)
	}
	if _, err := tx.UniqueIndex.Delete().
		Where(uniqueindex.ContentTypeID(contentTypeID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade unique index for content type %s: %w", contentTypeID, err)
	}
	return nil
}

// DeleteForFieldDefinition removes all index rows derived from one field
// definition.
func (m *Maintainer) DeleteForFieldDefinition(ctx context.Context, tx *ent.Tx, fieldDefinitionID uuid.UUID) error {
	if _, err := tx.FieldIndex.Delete().
		Where(fieldindex.FieldDefinitionID(fieldDefinitionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade field index for field definition %s: %w", fieldDefinitionID, err)
	}
	if _, err := tx.UniqueIndex.Delete().
		Where(uniqueindex.FieldDefinitionID(fieldDefinitionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade unique index for field definition %s: %w", fieldDefinitionID, err)
	}
	return nil
}

// DropFieldRowsForDefinition removes only the FieldIndex rows of a
// definition, used when its is_indexed flag turns off while is_unique stays.
func (m *Maintainer) DropFieldRowsForDefinition(ctx context.Context, tx *ent.Tx, fieldDefinitionID uuid.UUID) error {
	if _, err := tx.FieldIndex.Delete().
		Where(fieldindex.FieldDefinitionID(fieldDefinitionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("drop field index rows for definition %s: %w", fieldDefinitionID, err)
	}
	return nil
}

// DropUniqueRowsForDefinition removes only the UniqueIndex rows of a
// definition, used when its is_unique flag turns off.
func (m *Maintainer) DropUniqueRowsForDefinition(ctx context.Context, tx *ent.Tx, fieldDefinitionID uuid.UUID) error {
	if _, err := tx.UniqueIndex.Delete().
		Where(uniqueindex.FieldDefinitionID(fieldDefinitionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("drop unique index rows for definition %s: %w", fieldDefinitionID, err)
	}
	return nil
}

// DeleteForFieldType removes all index rows derived from any definition of
// one field type.
func (m *Maintainer) DeleteForFieldType(ctx context.Context, tx *ent.Tx, fieldTypeID uuid.UUID) error {
	if _, err := tx.FieldIndex.Delete().
		Where(fieldindex.FieldTypeID(fieldTypeID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade field index for field type %s: %w", fieldTypeID, err)
	}
	if _, err := tx.UniqueIndex.Delete().
		Where(uniqueindex.FieldTypeID(fieldTypeID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade unique index for field type %s: %w", fieldTypeID, err)
	}
	return nil
}

// DeleteForLanguage removes all index rows of locales in one language.
func (m *Maintainer) DeleteForLanguage(ctx context.Context, tx *ent.Tx, languageID uuid.UUID) error {
	if _, err := tx.FieldIndex.Delete().
		Where(fieldindex.LanguageIDEQ(languageID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade field index for language %s: %w", languageID, err)
	}
	if _, err := tx.UniqueIndex.Delete().
		Where(uniqueindex.LanguageIDEQ(languageID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("cascade unique index for language %s: %w", languageID, err)
	}
	return nil
}
