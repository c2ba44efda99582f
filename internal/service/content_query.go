// Package service contains the read-side query services over the projected
// models. The projector writes, these read; realm scoping is enforced here
// so a tenant can never see across the boundary.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/publishedcontent"
	"lattice-cms.io/lattice/internal/actor"
	"lattice-cms.io/lattice/internal/fields"
	"lattice-cms.io/lattice/internal/index"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// ContentQueryService reads content projections with actor attribution
// resolved to display names.
type ContentQueryService struct {
	client *ent.Client
	actors *actor.Resolver
}

// NewContentQueryService creates a ContentQueryService.
func NewContentQueryService(client *ent.Client, actors *actor.Resolver) *ContentQueryService {
	return &ContentQueryService{client: client, actors: actors}
}

// LocaleView is one locale of a content item as presented to readers.
type LocaleView struct {
	ID          uuid.UUID         `json:"id"`
	LanguageID  *uuid.UUID        `json:"language_id,omitempty"`
	UniqueName  string            `json:"unique_name"`
	DisplayName string            `json:"display_name,omitempty"`
	Description string            `json:"description,omitempty"`
	FieldValues map[string]string `json:"field_values"`
	Version     int64             `json:"version"`
	IsPublished bool              `json:"is_published"`
	UpdatedBy   string            `json:"updated_by,omitempty"` // resolved display name
	UpdatedOn   time.Time         `json:"updated_on"`
}

// ContentView is a content item with all of its locales.
type ContentView struct {
	ID            uuid.UUID    `json:"id"`
	RealmID       *uuid.UUID   `json:"realm_id,omitempty"`
	ContentTypeID uuid.UUID    `json:"content_type_id"`
	Version       int64        `json:"version"`
	Locales       []LocaleView `json:"locales"`
}

// FindContent loads one content item with its locales, scoped to a realm
// where nil means the platform level.
func (s *ContentQueryService) FindContent(ctx context.Context, realmID *uuid.UUID, id uuid.UUID) (*ContentView, error) {
	q := s.client.Content.Query().Where(content.ID(id))
	if realmID != nil {
		q = q.Where(content.RealmIDEQ(*realmID))
	} else {
		q = q.Where(content.RealmIDIsNil())
	}
	row, err := q.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeContentNotFound, "content not found").
				WithParams(map[string]interface{}{"content_id": id.String()})
		}
		return nil, fmt.Errorf("load content %s: %w", id, err)
	}

	locales, err := s.client.ContentLocale.Query().
		Where(contentlocale.ContentID(id)).
		Order(ent.Asc(contentlocale.FieldCreatedOn)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load locales of content %s: %w", id, err)
	}

	return s.buildView(ctx, row, locales)
}

// ListContentByType loads every content item of one type within a realm.
func (s *ContentQueryService) ListContentByType(ctx context.Context, realmID *uuid.UUID, contentTypeID uuid.UUID) ([]*ContentView, error) {
	q := s.client.Content.Query().Where(content.ContentTypeID(contentTypeID))
	if realmID != nil {
		q = q.Where(content.RealmIDEQ(*realmID))
	} else {
		q = q.Where(content.RealmIDIsNil())
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contents of type %s: %w", contentTypeID, err)
	}

	views := make([]*ContentView, 0, len(rows))
	for _, row := range rows {
		locales, err := s.client.ContentLocale.Query().
			Where(contentlocale.ContentID(row.ID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load locales of content %s: %w", row.ID, err)
		}
		view, err := s.buildView(ctx, row, locales)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// FindContentByName resolves a content item by the normalized unique name of
// one of its locales. Lookups are case and whitespace insensitive.
func (s *ContentQueryService) FindContentByName(ctx context.Context, realmID *uuid.UUID, contentTypeID uuid.UUID, uniqueName string) (*ContentView, error) {
	q := s.client.Content.Query().
		Where(
			content.ContentTypeID(contentTypeID),
			content.HasLocalesWith(contentlocale.UniqueNameNormalized(index.Normalize(uniqueName))),
		)
	if realmID != nil {
		q = q.Where(content.RealmIDEQ(*realmID))
	} else {
		q = q.Where(content.RealmIDIsNil())
	}
	row, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeContentNotFound, "content not found").
				WithParams(map[string]interface{}{"unique_name": uniqueName})
		}
		return nil, fmt.Errorf("find content by name %q: %w", uniqueName, err)
	}
	return s.FindContent(ctx, realmID, row.ID)
}

// PublishedView is one published locale snapshot as presented to readers.
type PublishedView struct {
	ID          uuid.UUID         `json:"id"`
	ContentID   uuid.UUID         `json:"content_id"`
	LanguageID  *uuid.UUID        `json:"language_id,omitempty"`
	UniqueName  string            `json:"unique_name"`
	DisplayName string            `json:"display_name,omitempty"`
	Description string            `json:"description,omitempty"`
	FieldValues map[string]string `json:"field_values"`
	Version     int64             `json:"version"`
	PublishedBy string            `json:"published_by,omitempty"` // resolved display name
	PublishedOn time.Time         `json:"published_on"`
}

// ListPublished lists the published snapshots of one content type within a
// realm. Only published locales appear; draft state never leaks here.
func (s *ContentQueryService) ListPublished(ctx context.Context, realmID *uuid.UUID, contentTypeID uuid.UUID) ([]PublishedView, error) {
	q := s.client.PublishedContent.Query().
		Where(publishedcontent.ContentTypeID(contentTypeID))
	if realmID != nil {
		q = q.Where(publishedcontent.RealmIDEQ(*realmID))
	} else {
		q = q.Where(publishedcontent.RealmIDIsNil())
	}
	rows, err := q.Order(ent.Asc(publishedcontent.FieldPublishedOn)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published of type %s: %w", contentTypeID, err)
	}

	actorIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.PublishedBy != "" {
			actorIDs = append(actorIDs, row.PublishedBy)
		}
	}
	resolved, err := s.actors.Find(ctx, actorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]PublishedView, 0, len(rows))
	for _, row := range rows {
		pv := PublishedView{
			ID:          row.ID,
			ContentID:   row.ContentID,
			LanguageID:  row.LanguageID,
			UniqueName:  row.UniqueName,
			DisplayName: row.DisplayName,
			Description: row.Description,
			FieldValues: row.FieldValues,
			Version:     row.Version,
			PublishedOn: row.PublishedOn,
		}
		if a, ok := resolved[row.PublishedBy]; ok {
			pv.PublishedBy = a.DisplayName
		}
		views = append(views, pv)
	}
	return views, nil
}

func (s *ContentQueryService) buildView(ctx context.Context, row *ent.Content, locales []*ent.ContentLocale) (*ContentView, error) {
	actorIDs := make([]string, 0, len(locales))
	for _, loc := range locales {
		if loc.UpdatedBy != "" {
			actorIDs = append(actorIDs, loc.UpdatedBy)
		}
	}
	resolved, err := s.actors.Find(ctx, actorIDs)
	if err != nil {
		return nil, err
	}

	view := &ContentView{
		ID:            row.ID,
		RealmID:       row.RealmID,
		ContentTypeID: row.ContentTypeID,
		Version:       row.Version,
		Locales:       make([]LocaleView, 0, len(locales)),
	}
	for _, loc := range locales {
		lv := LocaleView{
			ID:          loc.ID,
			LanguageID:  loc.LanguageID,
			UniqueName:  loc.UniqueName,
			DisplayName: loc.DisplayName,
			Description: loc.Description,
			FieldValues: loc.FieldValues,
			Version:     loc.Version,
			IsPublished: loc.IsPublished,
			UpdatedOn:   loc.UpdatedOn,
		}
		if a, ok := resolved[loc.UpdatedBy]; ok {
			lv.UpdatedBy = a.DisplayName
		}
		view.Locales = append(view.Locales, lv)
	}
	return view, nil
}

// ValidateLocaleValues checks candidate field values against a content
// type's definitions: unknown fields, invariant placement, required fields
// when forPublish is set, and per-type constraints. All failures surface at
// once.
func (s *ContentQueryService) ValidateLocaleValues(ctx context.Context, contentTypeID uuid.UUID, languageID *uuid.UUID, values map[string]string, forPublish bool) error {
	ct, err := s.client.ContentType.Query().
		Where(contenttype.ID(contentTypeID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeContentTypeNotFound, "content type not found").
				WithParams(map[string]interface{}{"content_type_id": contentTypeID.String()})
		}
		return fmt.Errorf("load content type %s: %w", contentTypeID, err)
	}

	defs, err := s.client.FieldDefinition.Query().
		Where(fielddefinition.ContentTypeID(contentTypeID)).
		WithFieldType().
		Order(ent.Asc(fielddefinition.FieldOrder)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load definitions of content type %s: %w", contentTypeID, err)
	}

	specs := make([]fields.Definition, 0, len(defs))
	for _, def := range defs {
		ft := def.Edges.FieldType
		if ft == nil {
			return fmt.Errorf("field definition %s: field type %s not loaded", def.ID, def.FieldTypeID)
		}
		specs = append(specs, fields.Definition{
			ID:          def.ID,
			UniqueName:  def.UniqueName,
			IsInvariant: def.IsInvariant,
			IsRequired:  def.IsRequired,
			DataType:    fields.DataType(ft.DataType),
			Settings:    ft.Settings,
		})
	}

	scope := fields.LocaleScope{
		Invariant:            languageID == nil,
		ContentTypeInvariant: ct.IsInvariant,
		RequireRequired:      forPublish,
	}
	return fields.ValidateValues(ct.UniqueName, specs, values, scope)
}

// CheckUniqueValues is the pre-flight uniqueness probe for a planned write.
// A nil result is advisory, not a reservation; the projection re-checks in
// its own transaction.
func (s *ContentQueryService) CheckUniqueValues(ctx context.Context, q index.ConflictQuery) error {
	conflicts, err := index.FindConflicts(ctx, s.client.UniqueIndex, q)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return index.NewConflictError(conflicts)
	}
	return nil
}
