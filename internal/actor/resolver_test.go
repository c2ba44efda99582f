package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent"
)

func TestResolverServesPrimedEntriesWithoutClient(t *testing.T) {
	// No client wired: any cache miss would panic, proving primed entries
	// are served entirely from memory.
	r := NewResolver(nil)

	a := &ent.Actor{ID: "user:42", DisplayName: "Ada", UpdatedOn: time.Now()}
	r.Prime(a)

	found, err := r.Find(context.Background(), []string{"user:42", "user:42", ""})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Same(t, a, found["user:42"])
}

func TestResolverInvalidate(t *testing.T) {
	r := NewResolver(nil)
	r.Prime(&ent.Actor{ID: "apikey:7", DisplayName: "CI key"})
	r.Invalidate("apikey:7")

	r.mu.RLock()
	_, cached := r.cache["apikey:7"]
	r.mu.RUnlock()
	require.False(t, cached)
}

func TestResolverPrimeNilIsNoop(t *testing.T) {
	r := NewResolver(nil)
	r.Prime(nil)

	r.mu.RLock()
	defer r.mu.RUnlock()
	require.Empty(t, r.cache)
}
