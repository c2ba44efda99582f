package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	m.Run()
}

func TestStreamIDRoundTrip(t *testing.T) {
	realmID := uuid.New()
	entityID := uuid.New()

	scoped := NewRealmStreamID(KindContent, realmID, entityID)
	kind, rid, eid, err := scoped.Parse()
	require.NoError(t, err)
	require.Equal(t, KindContent, kind)
	require.NotNil(t, rid)
	require.Equal(t, realmID, *rid)
	require.Equal(t, entityID, eid)

	platform := NewStreamID(KindFieldType, entityID)
	kind, rid, eid, err = platform.Parse()
	require.NoError(t, err)
	require.Equal(t, KindFieldType, kind)
	require.Nil(t, rid)
	require.Equal(t, entityID, eid)

	require.Equal(t, KindContent, scoped.Kind())
}

func TestStreamIDMalformed(t *testing.T) {
	for _, s := range []StreamID{"", "content", "content:not-a-uuid", "a:b:c:d"} {
		_, _, _, err := s.Parse()
		require.Error(t, err, "stream id %q", s)
	}
}

func TestChangeWireStates(t *testing.T) {
	// Absent, clear, and set must survive a JSON round trip distinctly.
	type doc struct {
		DisplayName *Change[string] `json:"display_name,omitempty"`
		Email       *Change[string] `json:"email,omitempty"`
		Picture     *Change[string] `json:"picture,omitempty"`
	}

	in := doc{
		Email:   Clear[string](),
		Picture: Set("https://example.test/p.png"),
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out doc
	require.NoError(t, json.Unmarshal(raw, &out))

	require.Nil(t, out.DisplayName) // absent = no change
	require.True(t, out.Email.IsClear())
	v, ok := out.Picture.Get()
	require.True(t, ok)
	require.Equal(t, "https://example.test/p.png", v)
}

func TestChangeApply(t *testing.T) {
	current := "old"
	target := &current

	var absent *Change[string]
	require.False(t, absent.Apply(&target))
	require.Equal(t, "old", *target)

	require.True(t, Set("new").Apply(&target))
	require.Equal(t, "new", *target)

	require.True(t, Clear[string]().Apply(&target))
	require.Nil(t, target)
}

func TestDispatcherRoutesAndCollectsError(t *testing.T) {
	d := NewEventDispatcher()

	var calls []string
	d.Register(EventRealmCreated, func(ctx context.Context, e *Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Register(EventRealmCreated, func(ctx context.Context, e *Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := d.Dispatch(context.Background(), &Event{
		StreamID: NewStreamID(KindRealm, uuid.New()),
		Type:     EventRealmCreated,
		Version:  1,
	})
	require.Error(t, err)
	require.Equal(t, []string{"first", "second"}, calls) // second still runs

	// Unregistered type is a warn + no-op.
	require.NoError(t, d.Dispatch(context.Background(), &Event{Type: EventContentDeleted}))
}
