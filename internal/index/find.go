package index

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/uniqueindex"
)

// ConflictQuery describes a pre-flight uniqueness probe: candidate values
// for unique field definitions, checked against one scope before a write is
// ever attempted.
type ConflictQuery struct {
	RealmID          *uuid.UUID
	ContentTypeID    uuid.UUID
	LanguageID       *uuid.UUID // nil = invariant locale scope
	Status           Status
	Values           map[uuid.UUID]string // fieldDefinitionId → candidate raw value
	ExcludeContentID uuid.UUID            // uuid.Nil checks against everything
}

// FindConflicts returns the collisions the candidate values would cause.
// An empty result is advisory only: the projection re-checks inside its own
// transaction, so this can race with a concurrent write.
func FindConflicts(ctx context.Context, c *ent.UniqueIndexClient, q ConflictQuery) ([]Conflict, error) {
	if len(q.Values) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(q.Values))
	defByKey := make(map[string]uuid.UUID, len(q.Values))
	for defID, value := range q.Values {
		if Normalize(value) == "" {
			continue
		}
		key := Key(defID, value)
		keys = append(keys, key)
		defByKey[key] = defID
	}
	if len(keys) == 0 {
		return nil, nil
	}

	query := c.Query().Where(
		uniqueindex.ContentTypeID(q.ContentTypeID),
		uniqueindex.StatusEQ(uniqueindex.Status(q.Status)),
		uniqueindex.KeyIn(keys...),
	)
	if q.RealmID != nil {
		query = query.Where(uniqueindex.RealmIDEQ(*q.RealmID))
	} else {
		query = query.Where(uniqueindex.RealmIDIsNil())
	}
	if q.LanguageID != nil {
		query = query.Where(uniqueindex.LanguageIDEQ(*q.LanguageID))
	} else {
		query = query.Where(uniqueindex.LanguageIDIsNil())
	}
	if q.ExcludeContentID != uuid.Nil {
		query = query.Where(uniqueindex.ContentIDNEQ(q.ExcludeContentID))
	}

	owners, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unique index: %w", err)
	}

	conflicts := make([]Conflict, 0, len(owners))
	for _, owner := range owners {
		conflicts = append(conflicts, Conflict{
			FieldDefinitionID: defByKey[owner.Key],
			ContentID:         owner.ContentID,
			Value:             owner.Value,
		})
	}
	return conflicts, nil
}
