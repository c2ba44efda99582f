package projection

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldindex"
	"lattice-cms.io/lattice/ent/uniqueindex"
	"lattice-cms.io/lattice/internal/actor"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/index"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

func evt(t *testing.T, stream domain.StreamID, version int64, typ domain.EventType, payload interface{}) *domain.Event {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return &domain.Event{
		StreamID:   stream,
		Version:    version,
		Type:       typ,
		ActorID:    "user:tester",
		OccurredOn: time.Now().UTC().Truncate(time.Microsecond),
		Payload:    raw,
	}
}

// fixture seeds one realm with a default language, a Sku field type bound as
// a unique invariant definition and a Name field type bound as a localized
// indexed definition on a Product content type.
type fixture struct {
	t          *testing.T
	ctx        context.Context
	client     *ent.Client
	dispatcher *domain.EventDispatcher

	realmID   uuid.UUID
	langID    uuid.UUID
	skuTypeID uuid.UUID
	strTypeID uuid.UUID
	ctID      uuid.UUID
	skuDefID  uuid.UUID
	nameDefID uuid.UUID

	ctVersion int64
}

func newFixture(t *testing.T) *fixture {
	client := testutil.OpenEntPostgres(t, "projection")
	projector := New(client, index.NewMaintainer(), actor.NewResolver(client), nil)
	dispatcher := domain.NewEventDispatcher()
	projector.Register(dispatcher)

	f := &fixture{
		t:          t,
		ctx:        context.Background(),
		client:     client,
		dispatcher: dispatcher,
		realmID:    uuid.New(),
		langID:     uuid.New(),
		skuTypeID:  uuid.New(),
		strTypeID:  uuid.New(),
		ctID:       uuid.New(),
		skuDefID:   uuid.New(),
		nameDefID:  uuid.New(),
	}

	f.apply(evt(t, domain.NewStreamID(domain.KindRealm, f.realmID), 1,
		domain.EventRealmCreated, domain.RealmCreatedPayload{UniqueSlug: "acme"}))
	f.apply(evt(t, domain.NewRealmStreamID(domain.KindLanguage, f.realmID, f.langID), 1,
		domain.EventLanguageCreated, domain.LanguageCreatedPayload{Code: "en", IsDefault: true}))
	f.apply(evt(t, domain.NewRealmStreamID(domain.KindFieldType, f.realmID, f.skuTypeID), 1,
		domain.EventFieldTypeCreated, domain.FieldTypeCreatedPayload{
			UniqueName: "SkuString",
			DataType:   "string",
			Settings:   json.RawMessage(`{"maximumLength":32}`),
		}))
	f.apply(evt(t, domain.NewRealmStreamID(domain.KindFieldType, f.realmID, f.strTypeID), 1,
		domain.EventFieldTypeCreated, domain.FieldTypeCreatedPayload{
			UniqueName: "PlainString",
			DataType:   "string",
			Settings:   json.RawMessage(`{}`),
		}))

	ctStream := domain.NewRealmStreamID(domain.KindContentType, f.realmID, f.ctID)
	f.apply(evt(t, ctStream, 1, domain.EventContentTypeCreated,
		domain.ContentTypeCreatedPayload{UniqueName: "Product"}))
	f.apply(evt(t, ctStream, 2, domain.EventFieldDefinitionChanged,
		domain.FieldDefinitionChangedPayload{
			FieldID:     f.skuDefID,
			FieldTypeID: f.skuTypeID,
			IsInvariant: true,
			IsRequired:  true,
			IsIndexed:   true,
			IsUnique:    true,
			UniqueName:  "Sku",
		}))
	f.apply(evt(t, ctStream, 3, domain.EventFieldDefinitionChanged,
		domain.FieldDefinitionChangedPayload{
			FieldID:     f.nameDefID,
			FieldTypeID: f.strTypeID,
			IsIndexed:   true,
			UniqueName:  "Name",
		}))
	f.ctVersion = 3
	return f
}

func (f *fixture) apply(e *domain.Event) {
	f.t.Helper()
	require.NoError(f.t, f.dispatcher.Dispatch(f.ctx, e))
}

func (f *fixture) contentStream(contentID uuid.UUID) domain.StreamID {
	return domain.NewRealmStreamID(domain.KindContent, f.realmID, contentID)
}

func (f *fixture) createProduct(contentID uuid.UUID, name, sku string) {
	f.t.Helper()
	f.apply(evt(f.t, f.contentStream(contentID), 1, domain.EventContentCreated,
		domain.ContentCreatedPayload{
			ContentTypeID: f.ctID,
			UniqueName:    name,
			FieldValues:   map[string]string{f.skuDefID.String(): sku},
		}))
}

func TestRealmProjectionIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "realm")
	projector := New(client, index.NewMaintainer(), actor.NewResolver(client), nil)
	dispatcher := domain.NewEventDispatcher()
	projector.Register(dispatcher)
	ctx := context.Background()

	realmID := uuid.New()
	stream := domain.NewStreamID(domain.KindRealm, realmID)
	created := evt(t, stream, 1, domain.EventRealmCreated, domain.RealmCreatedPayload{UniqueSlug: "acme"})

	require.NoError(t, dispatcher.Dispatch(ctx, created))
	// Redelivery of the creation is absorbed.
	require.NoError(t, dispatcher.Dispatch(ctx, created))

	rows, err := client.Realm.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(1), rows[0].Version)
	require.Equal(t, "ACME", rows[0].UniqueSlugNormalized)

	// An event from the future is skipped until the gap closes.
	v3 := evt(t, stream, 3, domain.EventRealmUpdated,
		domain.RealmUpdatedPayload{UniqueSlug: domain.Set("globex")})
	require.NoError(t, dispatcher.Dispatch(ctx, v3))
	row, err := client.Realm.Get(ctx, realmID)
	require.NoError(t, err)
	require.Equal(t, int64(1), row.Version)
	require.Equal(t, "acme", row.UniqueSlug)

	v2 := evt(t, stream, 2, domain.EventRealmUpdated,
		domain.RealmUpdatedPayload{UniqueSlug: domain.Set("initech")})
	require.NoError(t, dispatcher.Dispatch(ctx, v2))
	// Replaying an already-applied version changes nothing.
	require.NoError(t, dispatcher.Dispatch(ctx, v2))

	row, err = client.Realm.Get(ctx, realmID)
	require.NoError(t, err)
	require.Equal(t, int64(2), row.Version)
	require.Equal(t, "initech", row.UniqueSlug)
}

func TestContentCreationIndexesInvariantLocale(t *testing.T) {
	f := newFixture(t)
	productID := uuid.New()
	f.createProduct(productID, "product-a", "CC18DACH")

	row, err := f.client.Content.Get(f.ctx, productID)
	require.NoError(t, err)
	require.Equal(t, int64(1), row.Version)
	require.Equal(t, f.realmID, *row.RealmID)

	loc, err := f.client.ContentLocale.Query().
		Where(contentlocale.ContentID(productID)).
		Only(f.ctx)
	require.NoError(t, err)
	require.Nil(t, loc.LanguageID)
	require.Equal(t, "CC18DACH", loc.FieldValues[f.skuDefID.String()])

	fi, err := f.client.FieldIndex.Query().
		Where(fieldindex.ContentID(productID)).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, fieldindex.StatusLatest, fi.Status)
	require.Equal(t, "PRODUCT", fi.ContentTypeName)
	require.Equal(t, "SKU", fi.FieldDefinitionName)
	require.NotNil(t, fi.ValueString)
	require.Equal(t, "CC18DACH", *fi.ValueString)
	require.Nil(t, fi.LanguageID)

	ui, err := f.client.UniqueIndex.Query().
		Where(uniqueindex.ContentID(productID)).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, index.Key(f.skuDefID, "CC18DACH"), ui.Key)
	require.Equal(t, "CC18DACH", ui.Value)
}

func TestDuplicateSkuLeavesSecondProductUnindexed(t *testing.T) {
	f := newFixture(t)
	first := uuid.New()
	second := uuid.New()
	f.createProduct(first, "product-a", "CC18DACH")
	// Same logical value after normalization.
	f.createProduct(second, "product-b", "  cc18dach ")

	// Both products project; only the first owns the unique key.
	count, err := f.client.Content.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	owners, err := f.client.UniqueIndex.Query().
		Where(uniqueindex.KeyEQ(index.Key(f.skuDefID, "cc18dach"))).
		All(f.ctx)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	require.Equal(t, first, owners[0].ContentID)

	// The pre-flight probe names the existing owner.
	conflicts, err := index.FindConflicts(f.ctx, f.client.UniqueIndex, index.ConflictQuery{
		RealmID:       &f.realmID,
		ContentTypeID: f.ctID,
		Status:        index.StatusLatest,
		Values:        map[uuid.UUID]string{f.skuDefID: "cc18dach"},
	})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	require.Equal(t, first, conflicts[0].ContentID)
	require.Equal(t, f.skuDefID, conflicts[0].FieldDefinitionID)

	// Excluding the owner itself reports no conflict (rewriting your own
	// value is always allowed).
	conflicts, err = index.FindConflicts(f.ctx, f.client.UniqueIndex, index.ConflictQuery{
		RealmID:          &f.realmID,
		ContentTypeID:    f.ctID,
		Status:           index.StatusLatest,
		Values:           map[uuid.UUID]string{f.skuDefID: "CC18DACH"},
		ExcludeContentID: first,
	})
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestPublishLifecycle(t *testing.T) {
	f := newFixture(t)
	productID := uuid.New()
	stream := f.contentStream(productID)
	f.createProduct(productID, "product-a", "CC18DACH")

	f.apply(evt(t, stream, 2, domain.EventContentLocalePublished,
		domain.ContentLocalePublishedPayload{}))

	loc, err := f.client.ContentLocale.Query().
		Where(contentlocale.ContentID(productID)).
		Only(f.ctx)
	require.NoError(t, err)
	require.True(t, loc.IsPublished)
	require.Equal(t, int64(2), *loc.PublishedVersion)

	snap, err := f.client.PublishedContent.Get(f.ctx, loc.ID)
	require.NoError(t, err)
	require.Equal(t, "CC18DACH", snap.FieldValues[f.skuDefID.String()])

	published, err := f.client.UniqueIndex.Query().
		Where(
			uniqueindex.ContentID(productID),
			uniqueindex.StatusEQ(uniqueindex.StatusPublished),
		).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, "CC18DACH", published.Value)

	// Rewriting the working copy leaves the published side frozen.
	f.apply(evt(t, stream, 3, domain.EventContentLocaleChanged,
		domain.ContentLocaleChangedPayload{
			UniqueName:  "product-a",
			FieldValues: map[string]string{f.skuDefID.String(): "NEW-SKU-1"},
		}))

	latest, err := f.client.UniqueIndex.Query().
		Where(
			uniqueindex.ContentID(productID),
			uniqueindex.StatusEQ(uniqueindex.StatusLatest),
		).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, "NEW-SKU-1", latest.Value)

	published, err = f.client.UniqueIndex.Query().
		Where(
			uniqueindex.ContentID(productID),
			uniqueindex.StatusEQ(uniqueindex.StatusPublished),
		).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, "CC18DACH", published.Value)

	// Unpublish drops only the published side.
	f.apply(evt(t, stream, 4, domain.EventContentLocaleUnpublished,
		domain.ContentLocaleUnpublishedPayload{}))

	loc, err = f.client.ContentLocale.Query().
		Where(contentlocale.ContentID(productID)).
		Only(f.ctx)
	require.NoError(t, err)
	require.False(t, loc.IsPublished)
	require.Nil(t, loc.PublishedVersion)

	_, err = f.client.PublishedContent.Get(f.ctx, loc.ID)
	require.True(t, ent.IsNotFound(err))

	remaining, err := f.client.UniqueIndex.Query().
		Where(uniqueindex.ContentID(productID)).
		All(f.ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, uniqueindex.StatusLatest, remaining[0].Status)
}

func TestFieldDefinitionRemovalCascadesAndRepacks(t *testing.T) {
	f := newFixture(t)
	productID := uuid.New()
	f.createProduct(productID, "product-a", "CC18DACH")

	f.apply(evt(t, domain.NewRealmStreamID(domain.KindContentType, f.realmID, f.ctID),
		f.ctVersion+1, domain.EventFieldDefinitionRemoved,
		domain.FieldDefinitionRemovedPayload{FieldID: f.skuDefID}))

	_, err := f.client.FieldDefinition.Query().
		Where(fielddefinition.ID(f.skuDefID)).
		Only(f.ctx)
	require.True(t, ent.IsNotFound(err))

	// The later definition shifts down and the count follows.
	nameDef, err := f.client.FieldDefinition.Query().
		Where(fielddefinition.ID(f.nameDefID)).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 0, nameDef.Order)

	ct, err := f.client.ContentType.Get(f.ctx, f.ctID)
	require.NoError(t, err)
	require.Equal(t, 1, ct.FieldCount)

	count, err := f.client.UniqueIndex.Query().
		Where(uniqueindex.FieldDefinitionID(f.skuDefID)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	count, err = f.client.FieldIndex.Query().
		Where(fieldindex.FieldDefinitionID(f.skuDefID)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestLanguageChangePropagatesToIndexRows(t *testing.T) {
	f := newFixture(t)
	productID := uuid.New()
	stream := f.contentStream(productID)
	f.createProduct(productID, "product-a", "CC18DACH")

	f.apply(evt(t, stream, 2, domain.EventContentLocaleChanged,
		domain.ContentLocaleChangedPayload{
			LanguageID:  &f.langID,
			UniqueName:  "product-a",
			FieldValues: map[string]string{f.nameDefID.String(): "Gadget"},
		}))

	fi, err := f.client.FieldIndex.Query().
		Where(
			fieldindex.ContentID(productID),
			fieldindex.FieldDefinitionID(f.nameDefID),
		).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, "en", fi.LanguageCode)
	require.True(t, fi.LanguageIsDefault)

	f.apply(evt(t, domain.NewRealmStreamID(domain.KindLanguage, f.realmID, f.langID), 2,
		domain.EventLanguageUpdated,
		domain.LanguageUpdatedPayload{Code: domain.Set("en-US")}))

	fi, err = f.client.FieldIndex.Query().
		Where(
			fieldindex.ContentID(productID),
			fieldindex.FieldDefinitionID(f.nameDefID),
		).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, "en-US", fi.LanguageCode)
}

func TestLocaleRemovalDropsDerivedRows(t *testing.T) {
	f := newFixture(t)
	productID := uuid.New()
	stream := f.contentStream(productID)
	f.createProduct(productID, "product-a", "CC18DACH")

	f.apply(evt(t, stream, 2, domain.EventContentLocaleChanged,
		domain.ContentLocaleChangedPayload{
			LanguageID:  &f.langID,
			UniqueName:  "product-a",
			FieldValues: map[string]string{f.nameDefID.String(): "Gadget"},
		}))
	f.apply(evt(t, stream, 3, domain.EventContentLocaleRemoved,
		domain.ContentLocaleRemovedPayload{LanguageID: f.langID}))

	locales, err := f.client.ContentLocale.Query().
		Where(contentlocale.ContentID(productID)).
		All(f.ctx)
	require.NoError(t, err)
	require.Len(t, locales, 1)
	require.Nil(t, locales[0].LanguageID)

	count, err := f.client.FieldIndex.Query().
		Where(fieldindex.FieldDefinitionID(f.nameDefID)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestMutationOnMissingRowIsSkipped(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "missing")
	projector := New(client, index.NewMaintainer(), actor.NewResolver(client), nil)
	dispatcher := domain.NewEventDispatcher()
	projector.Register(dispatcher)
	ctx := context.Background()

	realmID := uuid.New()
	contentStream := domain.NewStreamID(domain.KindContent, uuid.New())
	ctStream := domain.NewStreamID(domain.KindContentType, uuid.New())

	// None of these rows exist; every mutation must absorb the miss instead
	// of failing the batch.
	orphans := []*domain.Event{
		evt(t, domain.NewStreamID(domain.KindRealm, realmID), 2,
			domain.EventRealmUpdated, domain.RealmUpdatedPayload{UniqueSlug: domain.Set("globex")}),
		evt(t, domain.NewStreamID(domain.KindLanguage, uuid.New()), 2,
			domain.EventLanguageUpdated, domain.LanguageUpdatedPayload{Code: domain.Set("de")}),
		evt(t, domain.NewStreamID(domain.KindUser, uuid.New()), 2,
			domain.EventUserUpdated, domain.UserUpdatedPayload{}),
		evt(t, domain.NewStreamID(domain.KindApiKey, uuid.New()), 2,
			domain.EventApiKeyUpdated, domain.ApiKeyUpdatedPayload{}),
		evt(t, domain.NewStreamID(domain.KindFieldType, uuid.New()), 2,
			domain.EventFieldTypeUpdated, domain.FieldTypeUpdatedPayload{}),
		evt(t, ctStream, 2, domain.EventContentTypeUpdated, domain.ContentTypeUpdatedPayload{}),
		evt(t, ctStream, 2, domain.EventFieldDefinitionChanged,
			domain.FieldDefinitionChangedPayload{FieldID: uuid.New(), FieldTypeID: uuid.New(), UniqueName: "Sku"}),
		evt(t, ctStream, 2, domain.EventFieldDefinitionRemoved,
			domain.FieldDefinitionRemovedPayload{FieldID: uuid.New()}),
		evt(t, contentStream, 2, domain.EventContentLocaleChanged,
			domain.ContentLocaleChangedPayload{UniqueName: "product-a"}),
		evt(t, contentStream, 2, domain.EventContentLocaleRemoved,
			domain.ContentLocaleRemovedPayload{LanguageID: uuid.New()}),
		evt(t, contentStream, 2, domain.EventContentLocalePublished,
			domain.ContentLocalePublishedPayload{}),
		evt(t, contentStream, 2, domain.EventContentLocaleUnpublished,
			domain.ContentLocaleUnpublishedPayload{}),
	}
	for _, e := range orphans {
		require.NoError(t, dispatcher.Dispatch(ctx, e))
	}

	// The skipped update does not poison the stream: once the creation
	// arrives the stream applies normally from the top.
	stream := domain.NewStreamID(domain.KindRealm, realmID)
	require.NoError(t, dispatcher.Dispatch(ctx, evt(t, stream, 1,
		domain.EventRealmCreated, domain.RealmCreatedPayload{UniqueSlug: "acme"})))
	require.NoError(t, dispatcher.Dispatch(ctx, evt(t, stream, 2,
		domain.EventRealmUpdated, domain.RealmUpdatedPayload{UniqueSlug: domain.Set("globex")})))

	row, err := client.Realm.Get(ctx, realmID)
	require.NoError(t, err)
	require.Equal(t, int64(2), row.Version)
	require.Equal(t, "globex", row.UniqueSlug)
}

func TestUserLifecycleKeepsActorInStep(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "identity")
	resolver := actor.NewResolver(client)
	projector := New(client, index.NewMaintainer(), resolver, nil)
	dispatcher := domain.NewEventDispatcher()
	projector.Register(dispatcher)
	ctx := context.Background()

	userID := uuid.New()
	stream := domain.NewStreamID(domain.KindUser, userID)
	display := "Jane Doe"
	require.NoError(t, dispatcher.Dispatch(ctx, evt(t, stream, 1,
		domain.EventUserCreated, domain.UserCreatedPayload{UniqueName: "jdoe", DisplayName: &display})))

	actorRow, err := client.Actor.Get(ctx, stream.String())
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", actorRow.DisplayName)
	require.False(t, actorRow.IsDeleted)

	require.NoError(t, dispatcher.Dispatch(ctx, evt(t, stream, 2,
		domain.EventUserUpdated, domain.UserUpdatedPayload{DisplayName: domain.Set("J. Doe")})))
	require.NoError(t, dispatcher.Dispatch(ctx, evt(t, stream, 3,
		domain.EventUserDeleted, struct{}{})))

	// The user row is gone but the actor survives soft-marked, in the same
	// transaction as the delete.
	_, err = client.User.Get(ctx, userID)
	require.True(t, ent.IsNotFound(err))
	actorRow, err = client.Actor.Get(ctx, stream.String())
	require.NoError(t, err)
	require.True(t, actorRow.IsDeleted)
	require.Equal(t, "J. Doe", actorRow.DisplayName)

	// Historical attribution still resolves.
	resolved, err := actor.NewResolver(client).Find(ctx, []string{stream.String()})
	require.NoError(t, err)
	require.NotNil(t, resolved[stream.String()])
	require.Equal(t, "J. Doe", resolved[stream.String()].DisplayName)
}

func TestLocaleRenamePropagatesToPublishedIndexRows(t *testing.T) {
	f := newFixture(t)
	productID := uuid.New()
	stream := f.contentStream(productID)
	f.createProduct(productID, "product-a", "CC18DACH")
	f.apply(evt(t, stream, 2, domain.EventContentLocalePublished,
		domain.ContentLocalePublishedPayload{}))

	f.apply(evt(t, stream, 3, domain.EventContentLocaleChanged,
		domain.ContentLocaleChangedPayload{
			UniqueName:  "product-b",
			FieldValues: map[string]string{f.skuDefID.String(): "CC18DACH"},
		}))

	// Both status slices carry the new locale name; only the published
	// values stay frozen.
	rows, err := f.client.UniqueIndex.Query().
		Where(uniqueindex.ContentID(productID)).
		All(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.Equal(t, "PRODUCT-B", r.ContentLocaleName)
	}

	fiRows, err := f.client.FieldIndex.Query().
		Where(fieldindex.ContentID(productID)).
		All(f.ctx)
	require.NoError(t, err)
	for _, r := range fiRows {
		require.Equal(t, "PRODUCT-B", r.ContentLocaleName)
	}
}

func TestContentTypeDeletionCascades(t *testing.T) {
	f := newFixture(t)
	first := uuid.New()
	second := uuid.New()
	f.createProduct(first, "product-a", "CC18DACH")
	f.createProduct(second, "product-b", "CC18DACI")
	f.apply(evt(t, f.contentStream(first), 2, domain.EventContentLocalePublished,
		domain.ContentLocalePublishedPayload{}))

	f.apply(evt(t, domain.NewRealmStreamID(domain.KindContentType, f.realmID, f.ctID),
		f.ctVersion+1, domain.EventContentTypeDeleted, struct{}{}))

	_, err := f.client.ContentType.Get(f.ctx, f.ctID)
	require.True(t, ent.IsNotFound(err))

	count, err := f.client.FieldDefinition.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	count, err = f.client.Content.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	count, err = f.client.ContentLocale.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	count, err = f.client.PublishedContent.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	count, err = f.client.FieldIndex.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	count, err = f.client.UniqueIndex.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	// Schema neighbors are untouched.
	types, err := f.client.FieldType.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 2, types)
	_, err = f.client.Realm.Get(f.ctx, f.realmID)
	require.NoError(t, err)
}

func TestFieldTypeDeletionCascadesAcrossContentTypes(t *testing.T) {
	f := newFixture(t)

	// A second content type binds the PlainString type at order 0, ahead of
	// another definition, so its survivor must shift down on re-pack.
	articleCtID := uuid.New()
	refDefID := uuid.New()
	bodyDefID := uuid.New()
	articleStream := domain.NewRealmStreamID(domain.KindContentType, f.realmID, articleCtID)
	f.apply(evt(t, articleStream, 1, domain.EventContentTypeCreated,
		domain.ContentTypeCreatedPayload{UniqueName: "Article"}))
	f.apply(evt(t, articleStream, 2, domain.EventFieldDefinitionChanged,
		domain.FieldDefinitionChangedPayload{
			FieldID:     bodyDefID,
			FieldTypeID: f.strTypeID,
			IsIndexed:   true,
			UniqueName:  "Body",
		}))
	f.apply(evt(t, articleStream, 3, domain.EventFieldDefinitionChanged,
		domain.FieldDefinitionChangedPayload{
			FieldID:     refDefID,
			FieldTypeID: f.skuTypeID,
			IsIndexed:   true,
			UniqueName:  "Ref",
		}))

	productID := uuid.New()
	f.createProduct(productID, "product-a", "CC18DACH")
	f.apply(evt(t, f.contentStream(productID), 2, domain.EventContentLocaleChanged,
		domain.ContentLocaleChangedPayload{
			LanguageID:  &f.langID,
			UniqueName:  "product-a",
			FieldValues: map[string]string{f.nameDefID.String(): "Gadget"},
		}))

	f.apply(evt(t, domain.NewRealmStreamID(domain.KindFieldType, f.realmID, f.strTypeID), 2,
		domain.EventFieldTypeDeleted, struct{}{}))

	_, err := f.client.FieldType.Get(f.ctx, f.strTypeID)
	require.True(t, ent.IsNotFound(err))

	// Both bound definitions are gone, and each content type re-packed.
	for _, defID := range []uuid.UUID{f.nameDefID, bodyDefID} {
		_, err := f.client.FieldDefinition.Query().
			Where(fielddefinition.ID(defID)).
			Only(f.ctx)
		require.True(t, ent.IsNotFound(err))
	}
	product, err := f.client.ContentType.Get(f.ctx, f.ctID)
	require.NoError(t, err)
	require.Equal(t, 1, product.FieldCount)
	// The Ref definition was at order 1 and shifts down.
	refDef, err := f.client.FieldDefinition.Query().
		Where(fielddefinition.ID(refDefID)).
		Only(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 0, refDef.Order)
	article, err := f.client.ContentType.Get(f.ctx, articleCtID)
	require.NoError(t, err)
	require.Equal(t, 1, article.FieldCount)

	// Index rows of the deleted type's definitions are gone; the rows of the
	// surviving Sku definition are not.
	count, err := f.client.FieldIndex.Query().
		Where(fieldindex.FieldDefinitionID(f.nameDefID)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	count, err = f.client.FieldIndex.Query().
		Where(fieldindex.FieldDefinitionID(f.skuDefID)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestContentDeletionCascades(t *testing.T) {
	f := newFixture(t)
	doomed := uuid.New()
	survivor := uuid.New()
	stream := f.contentStream(doomed)
	f.createProduct(doomed, "product-a", "CC18DACH")
	f.createProduct(survivor, "product-b", "CC18DACI")
	f.apply(evt(t, stream, 2, domain.EventContentLocaleChanged,
		domain.ContentLocaleChangedPayload{
			LanguageID:  &f.langID,
			UniqueName:  "product-a",
			FieldValues: map[string]string{f.nameDefID.String(): "Gadget"},
		}))
	f.apply(evt(t, stream, 3, domain.EventContentLocalePublished,
		domain.ContentLocalePublishedPayload{}))

	f.apply(evt(t, stream, 4, domain.EventContentDeleted, struct{}{}))

	_, err := f.client.Content.Get(f.ctx, doomed)
	require.True(t, ent.IsNotFound(err))
	count, err := f.client.ContentLocale.Query().
		Where(contentlocale.ContentID(doomed)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	snaps, err := f.client.PublishedContent.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, snaps)
	count, err = f.client.FieldIndex.Query().
		Where(fieldindex.ContentID(doomed)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	count, err = f.client.UniqueIndex.Query().
		Where(uniqueindex.ContentID(doomed)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	// The other product keeps its rows.
	count, err = f.client.UniqueIndex.Query().
		Where(uniqueindex.ContentID(survivor)).
		Count(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPublishOfAbsentLocaleKeepsStreamMoving(t *testing.T) {
	f := newFixture(t)
	productID := uuid.New()
	stream := f.contentStream(productID)
	f.createProduct(productID, "product-a", "CC18DACH")

	// No locale exists for the language; the publish is absorbed like an
	// unpublish of an absent locale would be.
	f.apply(evt(t, stream, 2, domain.EventContentLocalePublished,
		domain.ContentLocalePublishedPayload{LanguageID: &f.langID}))

	snaps, err := f.client.PublishedContent.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, snaps)

	// The content version still advances, so the next event is not treated
	// as a gap.
	row, err := f.client.Content.Get(f.ctx, productID)
	require.NoError(t, err)
	require.Equal(t, int64(2), row.Version)

	f.apply(evt(t, stream, 3, domain.EventContentLocaleChanged,
		domain.ContentLocaleChangedPayload{
			LanguageID:  &f.langID,
			UniqueName:  "product-a",
			FieldValues: map[string]string{f.nameDefID.String(): "Gadget"},
		}))
	row, err = f.client.Content.Get(f.ctx, productID)
	require.NoError(t, err)
	require.Equal(t, int64(3), row.Version)
}
