package index

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/fieldtype"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

type dbFixture struct {
	t      *testing.T
	ctx    context.Context
	client *ent.Client
	m      *Maintainer

	realmID uuid.UUID
	ct      *ent.ContentType
	skuDef  *ent.FieldDefinition
	numDef  *ent.FieldDefinition
}

func newDBFixture(t *testing.T) *dbFixture {
	f := &dbFixture{
		t:       t,
		ctx:     context.Background(),
		client:  testutil.OpenEntPostgres(t, "index"),
		m:       NewMaintainer(),
		realmID: uuid.New(),
	}
	now := time.Now().UTC()

	strType := f.client.FieldType.Create().
		SetID(uuid.New()).
		SetStreamID("fieldtype:" + f.realmID.String() + ":" + uuid.NewString()).
		SetVersion(1).
		SetRealmID(f.realmID).
		SetUniqueName("PlainString").
		SetUniqueNameNormalized("PLAINSTRING").
		SetDataType(fieldtype.DataTypeString).
		SetSettings([]byte(`{}`)).
		SetCreatedOn(now).
		SetUpdatedOn(now).
		SaveX(f.ctx)
	numType := f.client.FieldType.Create().
		SetID(uuid.New()).
		SetStreamID("fieldtype:" + f.realmID.String() + ":" + uuid.NewString()).
		SetVersion(1).
		SetRealmID(f.realmID).
		SetUniqueName("Amount").
		SetUniqueNameNormalized("AMOUNT").
		SetDataType(fieldtype.DataTypeNumber).
		SetSettings([]byte(`{}`)).
		SetCreatedOn(now).
		SetUpdatedOn(now).
		SaveX(f.ctx)

	f.ct = f.client.ContentType.Create().
		SetID(uuid.New()).
		SetStreamID("contenttype:" + f.realmID.String() + ":" + uuid.NewString()).
		SetVersion(1).
		SetRealmID(f.realmID).
		SetUniqueName("Product").
		SetUniqueNameNormalized("PRODUCT").
		SetFieldCount(2).
		SetCreatedOn(now).
		SetUpdatedOn(now).
		SaveX(f.ctx)

	f.skuDef = f.client.FieldDefinition.Create().
		SetID(uuid.New()).
		SetContentTypeID(f.ct.ID).
		SetFieldTypeID(strType.ID).
		SetOrder(0).
		SetIsInvariant(true).
		SetIsIndexed(true).
		SetIsUnique(true).
		SetUniqueName("Sku").
		SetUniqueNameNormalized("SKU").
		SaveX(f.ctx)
	f.numDef = f.client.FieldDefinition.Create().
		SetID(uuid.New()).
		SetContentTypeID(f.ct.ID).
		SetFieldTypeID(numType.ID).
		SetOrder(1).
		SetIsIndexed(true).
		SetUniqueName("Amount").
		SetUniqueNameNormalized("AMOUNT").
		SaveX(f.ctx)
	return f
}

func (f *dbFixture) newLocale(uniqueName string) (*ent.Content, *ent.ContentLocale) {
	f.t.Helper()
	now := time.Now().UTC()
	c := f.client.Content.Create().
		SetID(uuid.New()).
		SetStreamID("content:" + f.realmID.String() + ":" + uuid.NewString()).
		SetVersion(1).
		SetRealmID(f.realmID).
		SetContentTypeID(f.ct.ID).
		SetCreatedOn(now).
		SetUpdatedOn(now).
		SaveX(f.ctx)
	loc := f.client.ContentLocale.Create().
		SetID(uuid.New()).
		SetContentID(c.ID).
		SetUniqueName(uniqueName).
		SetUniqueNameNormalized(Normalize(uniqueName)).
		SetFieldValues(map[string]string{}).
		SetVersion(1).
		SetCreatedOn(now).
		SetUpdatedOn(now).
		SaveX(f.ctx)
	return c, loc
}

func (f *dbFixture) write(c *ent.Content, loc *ent.ContentLocale, version int64, values map[string]string) LocaleWrite {
	return LocaleWrite{
		RealmID:           &f.realmID,
		ContentTypeID:     f.ct.ID,
		ContentTypeName:   f.ct.UniqueNameNormalized,
		ContentID:         c.ID,
		ContentLocaleID:   loc.ID,
		ContentLocaleName: loc.UniqueNameNormalized,
		Version:           version,
		Values:            values,
	}
}

func (f *dbFixture) sync(w LocaleWrite, status Status) error {
	f.t.Helper()
	tx, err := f.client.Tx(f.ctx)
	require.NoError(f.t, err)
	if err := f.m.Sync(f.ctx, tx, w, status); err != nil {
		require.NoError(f.t, tx.Rollback())
		return err
	}
	require.NoError(f.t, tx.Commit())
	return nil
}

func TestSyncAppliesExactDifference(t *testing.T) {
	f := newDBFixture(t)
	c, loc := f.newLocale("product-a")

	// First sync creates one row per populated indexed definition.
	require.NoError(t, f.sync(f.write(c, loc, 1, map[string]string{
		f.skuDef.ID.String(): "CC18DACH",
		f.numDef.ID.String(): "42.5",
	}), StatusLatest))

	rows, err := f.client.FieldIndex.Query().All(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var skuRowID uuid.UUID
	for _, r := range rows {
		if r.FieldDefinitionID == f.skuDef.ID {
			skuRowID = r.ID
			require.Equal(t, "CC18DACH", *r.ValueString)
		} else {
			require.Equal(t, 42.5, *r.ValueNumber)
		}
	}

	// Re-syncing with a new value and a dropped value updates in place and
	// deletes the leftover.
	require.NoError(t, f.sync(f.write(c, loc, 2, map[string]string{
		f.skuDef.ID.String(): "NEW-SKU",
	}), StatusLatest))

	rows, err = f.client.FieldIndex.Query().All(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, skuRowID, rows[0].ID) // same row, not delete-and-recreate
	require.Equal(t, "NEW-SKU", *rows[0].ValueString)
	require.Equal(t, int64(2), rows[0].Version)

	// Empty values clear everything.
	require.NoError(t, f.sync(f.write(c, loc, 3, nil), StatusLatest))
	count, err := f.client.FieldIndex.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestSyncRejectsDuplicateUniqueValue(t *testing.T) {
	f := newDBFixture(t)
	c1, loc1 := f.newLocale("product-a")
	c2, loc2 := f.newLocale("product-b")

	require.NoError(t, f.sync(f.write(c1, loc1, 1, map[string]string{
		f.skuDef.ID.String(): "CC18DACH",
	}), StatusLatest))

	err := f.sync(f.write(c2, loc2, 1, map[string]string{
		f.skuDef.ID.String(): " cc18dach ",
	}), StatusLatest)
	require.Error(t, err)

	appErr, ok := AsConflictError(err)
	require.True(t, ok)
	require.NotEmpty(t, appErr.Params["conflicts"])

	// Nothing of the losing write landed.
	count, err := f.client.UniqueIndex.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// The same value under the published status does not collide with the
	// latest row: the statuses are parallel scopes.
	require.NoError(t, f.sync(f.write(c1, loc1, 2, map[string]string{
		f.skuDef.ID.String(): "CC18DACH",
	}), StatusPublished))
}

func TestSyncSkipsUnparsableIndexValue(t *testing.T) {
	f := newDBFixture(t)
	c, loc := f.newLocale("product-a")

	// A number definition holding garbage is skipped, not fatal.
	require.NoError(t, f.sync(f.write(c, loc, 1, map[string]string{
		f.numDef.ID.String(): "not-a-number",
	}), StatusLatest))

	count, err := f.client.FieldIndex.Query().Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestRenamePropagationRewritesBothStatuses(t *testing.T) {
	f := newDBFixture(t)
	c, loc := f.newLocale("product-a")
	values := map[string]string{f.skuDef.ID.String(): "CC18DACH"}
	require.NoError(t, f.sync(f.write(c, loc, 1, values), StatusLatest))
	require.NoError(t, f.sync(f.write(c, loc, 1, values), StatusPublished))

	tx, err := f.client.Tx(f.ctx)
	require.NoError(t, err)
	require.NoError(t, f.m.FieldDefinitionRenamed(f.ctx, tx, f.skuDef.ID, "PRODUCT_CODE"))
	require.NoError(t, tx.Commit())

	rows, err := f.client.UniqueIndex.Query().All(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.Equal(t, "PRODUCT_CODE", r.FieldDefinitionName)
		// Keys bind to the definition id, so renames never move ownership.
		require.Equal(t, Key(f.skuDef.ID, "CC18DACH"), r.Key)
	}
}
