// Package sessionstore holds the authentication state of one client and writes
// it through to the client's key-value snapshot.
package sessionstore

import (
	"context"
	"sync"

	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessioninfo"
	"github.com/cccteam/rolegate/snapshot"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/rolegate/sessionstore"

// Store is the single source of truth for a client's session.
//
// The in-memory session is restored from the snapshot on first use. Commit and
// Clear write through to the snapshot before they return, and then notify
// subscribers with the new session.
type Store struct {
	kv snapshot.KV

	mu          sync.Mutex
	loaded      bool
	current     sessioninfo.Session
	version     uint64
	nextID      int
	subscribers map[int]func(sessioninfo.Session)
	order       []int
}

// New returns a Store persisting through kv.
func New(kv snapshot.KV) *Store {
	return &Store{
		kv:          kv,
		subscribers: make(map[int]func(sessioninfo.Session)),
	}
}

// Load reads the session from the snapshot and makes it current.
//
// Load never fails. An absent, partial or malformed snapshot, or a snapshot
// that cannot be read, yields the zero session. If a Commit or Clear lands
// while the snapshot is being read, the session it set wins and is returned.
func (s *Store) Load(ctx context.Context) sessioninfo.Session {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.Load()")
	defer span.End()

	s.mu.Lock()
	version := s.version
	s.mu.Unlock()

	sess := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.version != version {
		return s.current
	}
	s.current = sess
	s.loaded = true

	return sess
}

// Current returns the in-memory session, loading it from the snapshot on first use.
func (s *Store) Current(ctx context.Context) sessioninfo.Session {
	s.mu.Lock()
	if s.loaded {
		defer s.mu.Unlock()

		return s.current
	}
	s.mu.Unlock()

	return s.Load(ctx)
}

// Commit validates and stores a new session. Both the role and the token are
// written to the snapshot in one Put before the in-memory session changes.
func (s *Store) Commit(ctx context.Context, role roles.Role, token string) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.Commit()")
	defer span.End()

	if !role.Valid() {
		return errors.Newf("invalid role %q", role)
	}
	if token == "" {
		return errors.New("token must not be empty")
	}

	if err := s.kv.Put(ctx, snapshot.Values{
		snapshot.KeyToken: token,
		snapshot.KeyRole:  string(role),
	}); err != nil {
		return errors.Wrap(err, "snapshot.KV.Put()")
	}

	s.set(sessioninfo.Session{Token: token, Role: role})

	return nil
}

// Clear removes the session from the snapshot and memory. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.Clear()")
	defer span.End()

	if err := s.kv.Remove(ctx, snapshot.KeyToken, snapshot.KeyRole); err != nil {
		return errors.Wrap(err, "snapshot.KV.Remove()")
	}

	s.set(sessioninfo.Session{})

	return nil
}

// Subscribe registers fn to be called with the new session after every
// successful Commit or Clear. Subscribers are called in registration order on
// the goroutine that changed the session. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(sessioninfo.Session)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.order = append(s.order, id)

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.subscribers, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)

					break
				}
			}
		})
	}
}

func (s *Store) set(sess sessioninfo.Session) {
	s.mu.Lock()
	s.current = sess
	s.loaded = true
	s.version++
	fns := make([]func(sessioninfo.Session), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subscribers[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}

func (s *Store) read(ctx context.Context) sessioninfo.Session {
	vals, err := s.kv.Get(ctx, snapshot.KeyToken, snapshot.KeyRole)
	if err != nil {
		logger.FromCtx(ctx).Error(errors.Wrap(err, "snapshot.KV.Get()"))

		return sessioninfo.Session{}
	}

	token, role := vals[snapshot.KeyToken], vals[snapshot.KeyRole]
	if token == "" && role == "" {
		return sessioninfo.Session{}
	}

	sess := sessioninfo.Session{Token: token, Role: roles.Role(role)}
	if !sess.Complete() {
		logger.FromCtx(ctx).Infof("discarding malformed session snapshot (role=%q, token set=%t)", role, token != "")

		return sessioninfo.Session{}
	}

	return sess
}
