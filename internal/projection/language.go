package projection

import (
	"context"
	"fmt"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/language"
	"lattice-cms.io/lattice/ent/publishedcontent"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/index"
)

func (p *Projector) handleLanguageCreated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.LanguageCreatedPayload](e)
	if err != nil {
		return err
	}
	realmID, id, err := parseStream(e)
	if err != nil {
		return err
	}

	exists, err := p.client.Language.Query().Where(language.ID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check language %s: %w", id, err)
	}
	if exists {
		logDuplicateCreate(e)
		return nil
	}

	create := p.client.Language.Create().
		SetID(id).
		SetStreamID(e.StreamID.String()).
		SetVersion(e.Version).
		SetNillableRealmID(realmID).
		SetCode(payload.Code).
		SetCodeNormalized(index.Normalize(payload.Code)).
		SetIsDefault(payload.IsDefault).
		SetCreatedOn(e.OccurredOn).
		SetUpdatedOn(e.OccurredOn)
	if e.ActorID != "" {
		create.SetCreatedBy(e.ActorID).SetUpdatedBy(e.ActorID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create language %s: %w", id, err)
	}
	return nil
}

func (p *Projector) handleLanguageUpdated(ctx context.Context, e *domain.Event) error {
	payload, err := decodePayload[domain.LanguageUpdatedPayload](e)
	if err != nil {
		return err
	}
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Language.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				logRowMissing(e)
				return nil
			}
			return fmt.Errorf("load language %s: %w", id, err)
		}
		if !guardVersion(e, row.Version) {
			return nil
		}

		code := row.Code
		isDefault := row.IsDefault
		if payload.Code != nil {
			if v, ok := payload.Code.Get(); ok {
				code = v
			}
		}
		if payload.IsDefault != nil {
			if v, ok := payload.IsDefault.Get(); ok {
				isDefault = v
			}
		}

		upd := row.Update().
			SetVersion(e.Version).
			SetCode(code).
			SetCodeNormalized(index.Normalize(code)).
			SetIsDefault(isDefault).
			SetUpdatedOn(e.OccurredOn)
		if e.ActorID != "" {
			upd.SetUpdatedBy(e.ActorID)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update language %s: %w", id, err)
		}

		// Index rows denormalize the code and default flag.
		if code != row.Code || isDefault != row.IsDefault {
			if err := p.index.LanguageChanged(ctx, tx, id, code, isDefault); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Projector) handleLanguageDeleted(ctx context.Context, e *domain.Event) error {
	_, id, err := parseStream(e)
	if err != nil {
		return err
	}

	return p.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.Language.Query().Where(language.ID(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check language %s: %w", id, err)
		}
		if !exists {
			logAlreadyAbsent(e)
			return nil
		}

		// Locales in the deleted language disappear with it, snapshots and
		// index rows included. The invariant locales are untouched.
		if err := p.index.DeleteForLanguage(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.PublishedContent.Delete().
			Where(publishedcontent.LanguageIDEQ(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("cascade published snapshots for language %s: %w", id, err)
		}
		if _, err := tx.ContentLocale.Delete().
			Where(contentlocale.LanguageIDEQ(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("cascade locales for language %s: %w", id, err)
		}
		if err := tx.Language.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete language %s: %w", id, err)
		}
		return nil
	})
}
