package directory

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/rshade/userdir/internal/cache"
	"github.com/rshade/userdir/internal/logging"
)

// UsersQueryKey is the query key under which the users list is cached.
const UsersQueryKey = "users"

// Query fetches the users list at most once per query key while the cached
// result is fresh. Concurrent callers share a single in-flight request.
// Failed fetches are not cached.
type Query struct {
	key     string
	fetcher Fetcher
	store   *cache.MemoryStore
	group   singleflight.Group

	mu     sync.Mutex
	flight *flight
}

// flight is the shared request behind one singleflight call. It runs on its
// own context, cancelled once every caller waiting on it has gone.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewQuery wraps fetcher. store may be nil or disabled, in which case every
// Fetch still coalesces concurrent calls but nothing is kept afterwards.
func NewQuery(key string, fetcher Fetcher, store *cache.MemoryStore) *Query {
	if key == "" {
		key = UsersQueryKey
	}
	return &Query{key: key, fetcher: fetcher, store: store}
}

// Key returns the query key.
func (q *Query) Key() string {
	return q.key
}

// Fetch returns the users list, from cache when fresh. Cancelling ctx
// returns early for this caller only; the request keeps running while any
// other caller still waits on it.
func (q *Query) Fetch(ctx context.Context) ([]User, error) {
	if users, ok := q.cached(ctx); ok {
		return users, nil
	}

	f, ch := q.join(ctx)
	defer q.leave(f)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		users, _ := res.Val.([]User)
		return cloneUsers(users), nil
	}
}

// Invalidate drops the cached result so the next Fetch hits the network.
func (q *Query) Invalidate() {
	if q.store == nil || !q.store.IsEnabled() {
		return
	}
	_ = q.store.Delete(q.key)
}

// join registers a waiter on the current flight, starting one if needed.
func (q *Query) join(ctx context.Context) (*flight, <-chan singleflight.Result) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.flight == nil {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		q.flight = &flight{ctx: fctx, cancel: cancel}
	}
	f := q.flight
	f.waiters++

	ch := q.group.DoChan(q.key, func() (interface{}, error) {
		users, err := q.fetcher.FetchUsers(f.ctx)
		q.mu.Lock()
		if q.flight == f {
			q.flight = nil
		}
		q.mu.Unlock()
		if err != nil {
			return nil, err
		}
		q.remember(f.ctx, users)
		return users, nil
	})
	return f, ch
}

// leave drops a waiter. The last one out cancels the request if it is
// still running and lets the next Fetch start a new one.
func (q *Query) leave(f *flight) {
	q.mu.Lock()
	defer q.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	if q.flight == f {
		q.flight = nil
		q.group.Forget(q.key)
	}
	f.cancel()
}

func (q *Query) cached(ctx context.Context) ([]User, bool) {
	if q.store == nil || !q.store.IsEnabled() {
		return nil, false
	}
	entry, err := q.store.Get(q.key)
	if err != nil {
		return nil, false
	}
	var users []User
	if decodeErr := entry.Decode(&users); decodeErr != nil {
		return nil, false
	}
	logging.FromContext(ctx).Debug().Ctx(ctx).
		Str("query_key", q.key).
		Dur("age", entry.Age(q.store.Now())).
		Msg("users served from cache")
	return users, true
}

func (q *Query) remember(ctx context.Context, users []User) {
	if q.store == nil || !q.store.IsEnabled() {
		return
	}
	data, err := json.Marshal(users)
	if err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).Err(err).Msg("could not encode users for cache")
		return
	}
	if setErr := q.store.Set(q.key, data); setErr != nil && !errors.Is(setErr, cache.ErrCacheDisabled) {
		logging.FromContext(ctx).Warn().Ctx(ctx).Err(setErr).Msg("could not cache users")
	}
}

// cloneUsers deep-copies a shared result so callers never see each other's
// changes.
func cloneUsers(users []User) []User {
	if users == nil {
		return nil
	}
	out := make([]User, len(users))
	for i, u := range users {
		if u.Company != nil {
			company := *u.Company
			u.Company = &company
		}
		if u.Address != nil {
			address := *u.Address
			u.Address = &address
		}
		out[i] = u
	}
	return out
}
