// Package actor resolves event producer identities (users and API keys)
// against the Actor read model, with an in-process read-through cache.
package actor

import (
	"context"
	"fmt"
	"sync"

	"lattice-cms.io/lattice/ent"
	entactor "lattice-cms.io/lattice/ent/actor"
)

// Resolver looks up actors by id. Rows are cached until invalidated by the
// identity projection, so bulk display-name resolution stays off the
// database on the hot path.
type Resolver struct {
	client *ent.Client

	mu    sync.RWMutex
	cache map[string]*ent.Actor
}

// NewResolver creates a Resolver backed by the given client.
func NewResolver(client *ent.Client) *Resolver {
	return &Resolver{
		client: client,
		cache:  make(map[string]*ent.Actor),
	}
}

// Find resolves the given actor ids. Unknown ids are simply absent from the
// result; callers decide how to render a missing actor.
func (r *Resolver) Find(ctx context.Context, ids []string) (map[string]*ent.Actor, error) {
	found := make(map[string]*ent.Actor, len(ids))
	var missing []string

	r.mu.RLock()
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := found[id]; dup {
			continue
		}
		if a, ok := r.cache[id]; ok {
			found[id] = a
		} else {
			missing = append(missing, id)
		}
	}
	r.mu.RUnlock()

	if len(missing) == 0 {
		return found, nil
	}

	rows, err := r.client.Actor.Query().
		Where(entactor.IDIn(missing...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query actors: %w", err)
	}

	r.mu.Lock()
	for _, row := range rows {
		r.cache[row.ID] = row
		found[row.ID] = row
	}
	r.mu.Unlock()

	return found, nil
}

// Prime stores a freshly written actor row, replacing any cached copy.
func (r *Resolver) Prime(a *ent.Actor) {
	if a == nil {
		return
	}
	r.mu.Lock()
	r.cache[a.ID] = a
	r.mu.Unlock()
}

// Invalidate drops cached entries so the next Find re-reads them.
func (r *Resolver) Invalidate(ids ...string) {
	r.mu.Lock()
	for _, id := range ids {
		delete(r.cache, id)
	}
	r.mu.Unlock()
}
