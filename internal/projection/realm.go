package projection

import (
	"context"
	"fmt"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/realm"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/index"
)

func (p *Projector) handleRealmCreated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.RealmCreatedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	exists, err := p.client.Realm.Query().Where(realm.ID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check realm %s: %w", id, err)
	}
	if exists {
		logDuplicateCreate(e)
		return nil
	}

	create := p.client.Realm.Create().
		SetID(id).
		SetStreamID(e.StreamID.String()).
		SetVersion(e.Version).
		SetUniqueSlug(payload.UniqueSlug).
		SetUniqueSlugNormalized(index.Normalize(payload.UniqueSlug)).
		SetCreatedOn(e.OccurredOn).
		SetUpdatedOn(e.OccurredOn)
	if payload.DisplayName != nil {
		create.SetDisplayName(*payload.DisplayName)
	}
	if e.ActorID != "" {
		create.SetCreatedBy(e.ActorID).SetUpdatedBy(e.ActorID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create realm %s: %w", id, err)
	}
	return nil
}

func (p *Projector) handleRealmUpdated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.RealmUpdatedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	row, err := p.client.Realm.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			logRowMissing(e)
			return nil
		}
		return fmt.Errorf("load realm %s: %w", id, err)
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
	if payload.UniqueSlug != nil {
		if v, ok := payload.UniqueSlug.Get(); ok {
			upd.SetUniqueSlug(v).SetUniqueSlugNormalized(index.Normalize(v))
		}
	}
	if payload.DisplayName != nil {
		if v, ok := payload.DisplayName.Get(); ok {
			upd.SetDisplayName(v)
		} else {
			upd.ClearDisplayName()
		}
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update realm %s: %w", id, err)
	}
	return nil
}

func (p *Projector) handleRealmDeleted(ctx context.Context, e *domain.Event) error {
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}
	// Realm-scoped aggregates carry their own deletion events, so only the
	// realm row itself goes here.
	if err := p.client.Realm.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			logAlreadyAbsent(e)
			return nil
		}
		return fmt.Errorf("delete realm %s: %w", id, err)
	}
	return nil
}
