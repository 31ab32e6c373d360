package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/meridian-coop/backoffice/internal/platform/kv"
	"github.com/meridian-coop/backoffice/internal/rbac"
	"github.com/meridian-coop/backoffice/internal/shared"
)

// DefaultStorageKey is the key-value entry holding the session snapshot.
const DefaultStorageKey = "backoffice:session"

// Store is the process-wide session holder. All mutation funnels through
// Login, Register, Logout, and SetAuth; reads never observe a half-updated
// roles/permissions pair.
type Store struct {
	mu        sync.Mutex
	logger    *slog.Logger
	transport Transport
	storage   kv.Store
	key       string
	notifier  shared.Notifier

	state   State
	permSet rbac.Set

	subs    map[int]func(State)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithStorageKey overrides the durable storage key.
func WithStorageKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithNotifier routes failure notices to n.
func WithNotifier(n shared.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// NewStore constructs a Store and rehydrates any durable snapshot. An
// absent or corrupt snapshot yields the empty session.
func NewStore(logger *slog.Logger, transport Transport, storage kv.Store, opts ...Option) *Store {
	s := &Store{
		logger:    logger,
		transport: transport,
		storage:   storage,
		key:       DefaultStorageKey,
		permSet:   rbac.Set{},
		subs:      make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hydrate()
	return s
}

// Login exchanges credentials for a session. On failure the session is left
// unchanged and the failure message is surfaced.
func (s *Store) Login(ctx context.Context, creds Credentials) (State, error) {
	result, err := s.transport.Login(ctx, creds)
	if err != nil {
		s.notifyFailure(err)
		return s.State(), err
	}
	return s.SetAuth(result.Identity, result.Token, result.Roles), nil
}

// Register creates an account and logs the new user in. Contract shape
// matches Login.
func (s *Store) Register(ctx context.Context, reg Registration) (State, error) {
	result, err := s.transport.Register(ctx, reg)
	if err != nil {
		s.notifyFailure(err)
		return s.State(), err
	}
	return s.SetAuth(result.Identity, result.Token, result.Roles), nil
}

// Logout notifies the server best-effort, then unconditionally clears local
// state and durable storage. It never leaves a stale authenticated session,
// even when the server call fails.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.state.Token
	s.mu.Unlock()

	if token != "" {
		if err := s.transport.Logout(ctx, token); err != nil {
			s.logger.Warn("logout server call failed", slog.Any("error", err))
		}
	}

	s.mu.Lock()
	s.state = State{}
	s.permSet = rbac.Set{}
	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.logger.Warn("clear session snapshot", slog.Any("error", err))
	}
	state, subs := s.snapshotLocked()
	s.mu.Unlock()

	publish(subs, state)
}

// SetAuth atomically replaces the session from externally obtained auth
// data, recomputing permissions as the union over roles.
func (s *Store) SetAuth(user Identity, token string, roles []rbac.Role) State {
	s.mu.Lock()
	perms := rbac.EffectivePermissions(roles)
	s.state = State{
		User:          &user,
		Token:         token,
		Roles:         roles,
		Permissions:   perms,
		Authenticated: token != "",
	}
	s.permSet = rbac.NewSet(perms)
	s.persistLocked()
	state, subs := s.snapshotLocked()
	s.mu.Unlock()

	publish(subs, state)
	return state
}

// HasPermission reports membership in the derived permission set. The set
// is recomputed under the same lock as every roles change, so the answer
// never reflects stale roles.
func (s *Store) HasPermission(p rbac.Permission) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permSet.Has(p)
}

// IsAuthenticated reports whether both user and token are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Authenticated
}

// State returns a defensive copy of the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, _ := s.snapshotLocked()
	return state
}

// Subscribe registers fn to run on every session change. The returned
// cancel function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) hydrate() {
	data, err := s.storage.Get(context.Background(), s.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn("read session snapshot", slog.Any("error", err))
		}
		return
	}
	state, err := decodeSnapshot(data)
	if err != nil {
		s.logger.Warn("corrupt session snapshot, starting empty", slog.Any("error", err))
		return
	}
	s.state = state
	s.permSet = rbac.NewSet(state.Permissions)
}

// persistLocked writes the snapshot through to durable storage. Storage
// failures are logged; the in-memory session stays authoritative.
func (s *Store) persistLocked() {
	data, err := encodeSnapshot(s.state)
	if err != nil {
		s.logger.Error("encode session snapshot", slog.Any("error", err))
		return
	}
	if err := s.storage.Set(context.Background(), s.key, data); err != nil {
		s.logger.Warn("write session snapshot", slog.Any("error", err))
	}
}

// snapshotLocked deep-copies the state so callers can never reach store
// internals, nested permission slices included.
func (s *Store) snapshotLocked() (State, []func(State)) {
	state := s.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	roles := make([]rbac.Role, len(state.Roles))
	for i, role := range state.Roles {
		role.Permissions = append([]rbac.Permission(nil), role.Permissions...)
		roles[i] = role
	}
	state.Roles = roles
	state.Permissions = append([]rbac.Permission(nil), state.Permissions...)

	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return state, subs
}

func (s *Store) notifyFailure(err error) {
	if s.notifier == nil {
		return
	}
	kind := "error"
	if errors.Is(err, shared.ErrAuthFailed) || errors.Is(err, shared.ErrValidation) {
		kind = "warning"
	}
	s.notifier.Notify(shared.Notice{Kind: kind, Message: userMessage(err)})
}

func publish(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrNetwork):
		return "could not reach the server"
	case errors.Is(err, shared.ErrAuthFailed), errors.Is(err, shared.ErrValidation):
		return fmt.Sprintf("%v", err)
	default:
		return "something went wrong"
	}
}
