package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akolanti/RagAPI/internal/adapter/utils"
	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/domain/chatModel"
	"github.com/akolanti/RagAPI/internal/metrics"
)

var ErrSessionNotFound = errors.New("session not found")

// InMemorySessionStore keeps chat sessions in process memory. A session idle
// past the TTL is dropped lazily on its next touch; nothing survives a
// restart.
type InMemorySessionStore struct {
	sessionLock *sync.RWMutex
	sessions    map[string]*chatModel.Session
	idleTTL     time.Duration
	now         func() time.Time
}

func InitInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessionLock: new(sync.RWMutex),
		sessions:    make(map[string]*chatModel.Session),
		idleTTL:     config.SessionIdleTTL,
		now:         time.Now,
	}
}

func (store *InMemorySessionStore) InitSession(ctx context.Context) (string, error) {
	id := utils.GetNewUUID()
	now := store.now()

	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()
	store.sessions[id] = &chatModel.Session{ID: id, CreatedAt: now, LastSeen: now}
	metrics.IncrementActiveSessions()
	return id, nil
}

// expireLocked drops the session when idle past the TTL and returns what is
// left. Caller holds the write lock.
func (store *InMemorySessionStore) expireLocked(id string) *chatModel.Session {
	session, ok := store.sessions[id]
	if !ok {
		return nil
	}
	if store.now().Sub(session.LastSeen) > store.idleTTL {
		delete(store.sessions, id)
		metrics.DecrementActiveSessions()
		return nil
	}
	return session
}

func (store *InMemorySessionStore) ValidateSession(ctx context.Context, id string) bool {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()
	return store.expireLocked(id) != nil
}

func (store *InMemorySessionStore) AppendTurn(ctx context.Context, id string, turn chatModel.ChatTurn) error {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()

	session := store.expireLocked(id)
	if session == nil {
		return ErrSessionNotFound
	}
	session.Turns = append(session.Turns, turn)
	session.LastSeen = store.now()
	return nil
}

func (store *InMemorySessionStore) GetHistory(ctx context.Context, id string) ([]chatModel.ChatTurn, error) {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()

	session := store.expireLocked(id)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	session.LastSeen = store.now()

	turns := make([]chatModel.ChatTurn, len(session.Turns))
	copy(turns, session.Turns)
	return turns, nil
}

func (store *InMemorySessionStore) EndSession(ctx context.Context, id string) error {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()

	if _, ok := store.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(store.sessions, id)
	metrics.DecrementActiveSessions()
	return nil
}

// TestSessionStore lets tests drive the idle clock by hand.
func TestSessionStore(idleTTL time.Duration, now func() time.Time) *InMemorySessionStore {
	return &InMemorySessionStore{
		sessionLock: new(sync.RWMutex),
		sessions:    make(map[string]*chatModel.Session),
		idleTTL:     idleTTL,
		now:         now,
	}
}
