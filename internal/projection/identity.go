package projection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lattice-cms.io/lattice/ent"
	entactor "lattice-cms.io/lattice/ent/actor"
	"lattice-cms.io/lattice/ent/apikey"
	"lattice-cms.io/lattice/ent/user"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/index"
)

// actorWrite is the display identity a user or API key event contributes to
// the Actor cache table.
type actorWrite struct {
	typ         entactor.Type
	displayName string
	email       string
	picture     string
	isDeleted   bool
}

// syncActor upserts the Actor row keyed by the producing stream id, inside
// the caller's transaction so the entity row and its actor never diverge.
// The returned row is primed into the resolver after commit.
func syncActor(ctx context.Context, tx *ent.Tx, e *domain.Event, realmID *uuid.UUID, w actorWrite) (*ent.Actor, error) {
	id := e.StreamID.String()

	row, err := tx.Actor.Get(ctx, id)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("load actor %s: %w", id, err)
	}

	if row == nil {
		create := tx.Actor.Create().
			SetID(id).
			SetStreamID(id).
			SetNillableRealmID(realmID).
			SetType(w.typ).
			SetDisplayName(w.displayName).
			SetIsDeleted(w.isDeleted).
			SetUpdatedOn(e.OccurredOn)
		if w.email != "" {
			create.SetEmail(w.email)
		}
		if w.picture != "" {
			create.SetPicture(w.picture)
		}
		row, err = create.Save(ctx)
	} else {
		upd := row.Update().
			SetDisplayName(w.displayName).
			SetIsDeleted(w.isDeleted).
			SetUpdatedOn(e.OccurredOn)
		if w.email != "" {
			upd.SetEmail(w.email)
		} else {
			upd.ClearEmail()
		}
		if w.picture != "" {
			upd.SetPicture(w.picture)
		} else {
			upd.ClearPicture()
		}
		row, err = upd.Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("sync actor %s: %w", id, err)
	}
	return row, nil
}

// refreshActor replaces the resolver's cached entry once the transaction
// that produced row has committed.
func (p *Projector) refreshActor(row *ent.Actor) {
	if row == nil {
		return
	}
	p.actors.Invalidate(row.ID)
	p.actors.Prime(row)
}

func (p *Projector) handleUserCreated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.UserCreatedPayload](e)
	if err != nil {
		return err
	}
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	var actorRow *ent.Actor
	err = p.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.User.Query().Where(user.ID(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check user %s: %w", id, err)
		}
		if exists {
			logDuplicateCreate(e)
			return nil
		}

		create := tx.User.Create().
			SetID(id).
			SetStreamID(e.StreamID.String()).
			SetVersion(e.Version).
			SetNillableRealmID(realmID).
			SetUniqueName(payload.UniqueName).
			SetUniqueNameNormalized(index.Normalize(payload.UniqueName)).
			SetCreatedOn(e.OccurredOn).
			SetUpdatedOn(e.OccurredOn)
		if payload.Email != nil {
			create.SetEmail(*payload.Email)
		}
		if payload.DisplayName != nil {
			create.SetDisplayName(*payload.DisplayName)
		}
		if payload.Picture != nil {
			create.SetPicture(*payload.Picture)
		}
		if e.ActorID != "" {
			create.SetCreatedBy(e.ActorID).SetUpdatedBy(e.ActorID)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create user %s: %w", id, err)
		}

		actorRow, err = syncActor(ctx, tx, e, realmID, userActorWrite(row))
		return err
	})
	if err != nil {
		return err
	}
	p.refreshActor(actorRow)
	return nil
}

func (p *Projector) handleUserUpdated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.UserUpdatedPayload](e)
	if err != nil {
		return err
	}
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	var actorRow *ent.Actor
	err = p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.User.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load user %s: %w", id, err)
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
		if payload.UniqueName != nil {
			if v, ok := payload.UniqueName.Get(); ok {
				upd.SetUniqueName(v).SetUniqueNameNormalized(index.Normalize(v))
			}
		}
		if payload.Email != nil {
			if v, ok := payload.Email.Get(); ok {
				upd.SetEmail(v)
			} else {
				upd.ClearEmail()
			}
		}
		if payload.DisplayName != nil {
			if v, ok := payload.DisplayName.Get(); ok {
				upd.SetDisplayName(v)
			} else {
				upd.ClearDisplayName()
			}
		}
		if payload.Picture != nil {
			if v, ok := payload.Picture.Get(); ok {
				upd.SetPicture(v)
			} else {
				upd.ClearPicture()
			}
		}
		if payload.IsDisabled != nil {
			if v, ok := payload.IsDisabled.Get(); ok {
				upd.SetIsDisabled(v)
			}
		}
		row, err = upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update user %s: %w", id, err)
		}

		actorRow, err = syncActor(ctx, tx, e, realmID, userActorWrite(row))
		return err
	})
	if err != nil {
		return err
	}
	p.refreshActor(actorRow)
	return nil
}

func (p *Projector) handleUserDeleted(ctx context.Context, e *domain.Event) error {
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	var actorRow *ent.Actor
	err = p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.User.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logAlreadyAbsent(e)
				return nil
			}
			return fmt.Errorf("load user %s: %w", id, err)
		}
		if err := tx.User.DeleteOne(row).Exec(ctx); err != nil {
			return fmt.Errorf("delete user %s: %w", id, err)
		}

		// Historical attribution still points at this actor, so it is
		// soft-marked instead of removed.
		w := userActorWrite(row)
		w.isDeleted = true
		actorRow, err = syncActor(ctx, tx, e, realmID, w)
		return err
	})
	if err != nil {
		return err
	}
	p.refreshActor(actorRow)
	return nil
}

func userActorWrite(u *ent.User) actorWrite {
	display := u.DisplayName
	if display == "" {
		display = u.UniqueName
	}
	return actorWrite{
		typ:         entactor.TypeUser,
		displayName: display,
		email:       u.Email,
		picture:     u.Picture,
	}
}

func (p *Projector) handleApiKeyCreated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ApiKeyCreatedPayload](e)
	if err != nil {
		return err
	}
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	var actorRow *ent.Actor
	err = p.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.ApiKey.Query().Where(apikey.ID(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check api key %s: %w", id, err)
		}
		if exists {
			logDuplicateCreate(e)
			return nil
		}

		create := tx.ApiKey.Create().
			SetID(id).
			SetStreamID(e.StreamID.String()).
			SetVersion(e.Version).
			SetNillableRealmID(realmID).
			SetDisplayName(payload.DisplayName).
			SetNillableExpiresOn(payload.ExpiresOn).
			SetCreatedOn(e.OccurredOn).
			SetUpdatedOn(e.OccurredOn)
		if payload.Description != nil {
			create.SetDescription(*payload.Description)
		}
		if e.ActorID != "" {
			create.SetCreatedBy(e.ActorID).SetUpdatedBy(e.ActorID)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create api key %s: %w", id, err)
		}

		actorRow, err = syncActor(ctx, tx, e, realmID, apiKeyActorWrite(row))
		return err
	})
	if err != nil {
		return err
	}
	p.refreshActor(actorRow)
	return nil
}

func (p *Projector) handleApiKeyUpdated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.ApiKeyUpdatedPayload](e)
	if err != nil {
		return err
	}
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	var actorRow *ent.Actor
	err = p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.ApiKey.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load api key %s: %w", id, err)
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
		if payload.DisplayName != nil {
			if v, ok := payload.DisplayName.Get(); ok {
				upd.SetDisplayName(v)
			}
		}
		if payload.Description != nil {
			if v, ok := payload.Description.Get(); ok {
				upd.SetDescription(v)
			} else {
				upd.ClearDescription()
			}
		}
		if payload.ExpiresOn != nil {
			if v, ok := payload.ExpiresOn.Get(); ok {
				upd.SetExpiresOn(v)
			} else {
				upd.ClearExpiresOn()
			}
		}
		row, err = upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update api key %s: %w", id, err)
		}

		actorRow, err = syncActor(ctx, tx, e, realmID, apiKeyActorWrite(row))
		return err
	})
	if err != nil {
		return err
	}
	p.refreshActor(actorRow)
	return nil
}

func (p *Projector) handleApiKeyDeleted(ctx context.Context, e *domain.Event) error {
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	var actorRow *ent.Actor
	err = p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.ApiKey.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logAlreadyAbsent(e)
				return nil
			}
			return fmt.Errorf("load api key %s: %w", id, err)
		}
		if err := tx.ApiKey.DeleteOne(row).Exec(ctx); err != nil {
			return fmt.Errorf("delete api key %s: %w", id, err)
		}

		w := apiKeyActorWrite(row)
		w.isDeleted = true
		actorRow, err = syncActor(ctx, tx, e, realmID, w)
		return err
	})
	if err != nil {
		return err
	}
	p.refreshActor(actorRow)
	return nil
}

func apiKeyActorWrite(k *ent.ApiKey) actorWrite {
	return actorWrite{
		typ:         entactor.TypeAPIKey,
		displayName: k.DisplayName,
	}
}
