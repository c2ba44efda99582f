package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent"
	entactor "lattice-cms.io/lattice/ent/actor"
	"lattice-cms.io/lattice/ent/uniqueindex"
	"lattice-cms.io/lattice/internal/actor"
	"lattice-cms.io/lattice/internal/index"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

type queryFixture struct {
	t      *testing.T
	ctx    context.Context
	client *ent.Client
	svc    *ContentQueryService

	realmID   uuid.UUID
	ctID      uuid.UUID
	contentID uuid.UUID
	localeID  uuid.UUID
}

func newQueryFixture(t *testing.T) *queryFixture {
	client := testutil.OpenEntPostgres(t, "svc")
	f := &queryFixture{
		t:         t,
		ctx:       context.Background(),
		client:    client,
		svc:       NewContentQueryService(client, actor.NewResolver(client)),
		realmID:   uuid.New(),
		ctID:      uuid.New(),
		contentID: uuid.New(),
		localeID:  uuid.New(),
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	f.client.Actor.Create().
		SetID("user:editor").
		SetStreamID("user:editor").
		SetType(entactor.TypeUser).
		SetDisplayName("Edna Editor").
		SetUpdatedOn(now).
		SaveX(f.ctx)

	f.client.ContentType.Create().
		SetID(f.ctID).
		SetStreamID("contenttype:" + f.realmID.String() + ":" + uuid.NewString()).
		SetVersion(1).
		SetRealmID(f.realmID).
		SetUniqueName("Product").
		SetUniqueNameNormalized("PRODUCT").
		SetCreatedOn(now).
		SetUpdatedOn(now).
		SaveX(f.ctx)
	f.client.Content.Create().
		SetID(f.contentID).
		SetStreamID("content:" + f.realmID.String() + ":" + f.contentID.String()).
		SetVersion(2).
		SetRealmID(f.realmID).
		SetContentTypeID(f.ctID).
		SetCreatedOn(now).
		SetUpdatedOn(now).
		SaveX(f.ctx)
	f.client.ContentLocale.Create().
		SetID(f.localeID).
		SetContentID(f.contentID).
		SetUniqueName("widget-a").
		SetUniqueNameNormalized("WIDGET-A").
		SetFieldValues(map[string]string{}).
		SetVersion(2).
		SetIsPublished(true).
		SetUpdatedBy("user:editor").
		SetCreatedOn(now).
		SetUpdatedOn(now).
		SaveX(f.ctx)
	f.client.PublishedContent.Create().
		SetID(f.localeID).
		SetContentID(f.contentID).
		SetContentTypeID(f.ctID).
		SetRealmID(f.realmID).
		SetUniqueName("widget-a").
		SetUniqueNameNormalized("WIDGET-A").
		SetFieldValues(map[string]string{"color": "red"}).
		SetVersion(2).
		SetPublishedBy("user:editor").
		SetPublishedOn(now).
		SaveX(f.ctx)
	return f
}

func TestFindContentByNameIsCaseInsensitive(t *testing.T) {
	f := newQueryFixture(t)

	view, err := f.svc.FindContentByName(f.ctx, &f.realmID, f.ctID, "  widget-A ")
	require.NoError(t, err)
	require.Equal(t, f.contentID, view.ID)
	require.Len(t, view.Locales, 1)
	require.Equal(t, "Edna Editor", view.Locales[0].UpdatedBy)

	// The wrong realm sees nothing.
	other := uuid.New()
	_, err = f.svc.FindContentByName(f.ctx, &other, f.ctID, "widget-a")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeContentNotFound, appErr.Code)
}

func TestListPublishedResolvesActors(t *testing.T) {
	f := newQueryFixture(t)

	views, err := f.svc.ListPublished(f.ctx, &f.realmID, f.ctID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, f.localeID, views[0].ID)
	require.Equal(t, "red", views[0].FieldValues["color"])
	require.Equal(t, "Edna Editor", views[0].PublishedBy)
}

func TestCheckUniqueValuesReportsOwner(t *testing.T) {
	f := newQueryFixture(t)
	defID := uuid.New()

	f.client.UniqueIndex.Create().
		SetStatus(uniqueindex.StatusLatest).
		SetContentTypeID(f.ctID).
		SetContentTypeName("PRODUCT").
		SetFieldTypeID(uuid.New()).
		SetFieldTypeName("SKU_STRING").
		SetFieldDefinitionID(defID).
		SetFieldDefinitionName("SKU").
		SetContentID(f.contentID).
		SetContentLocaleID(f.localeID).
		SetContentLocaleName("WIDGET-A").
		SetRealmID(f.realmID).
		SetVersion(2).
		SetValue("CC18DACH").
		SetKey(index.Key(defID, "CC18DACH")).
		SaveX(f.ctx)

	q := index.ConflictQuery{
		RealmID:       &f.realmID,
		ContentTypeID: f.ctID,
		Status:        index.StatusLatest,
		Values:        map[uuid.UUID]string{defID: " cc18dach "},
	}
	err := f.svc.CheckUniqueValues(f.ctx, q)
	appErr, ok := index.AsConflictError(err)
	require.True(t, ok)
	require.NotEmpty(t, appErr.Params["conflicts"])

	// The owner probing its own value passes.
	q.ExcludeContentID = f.contentID
	require.NoError(t, f.svc.CheckUniqueValues(f.ctx, q))
}
