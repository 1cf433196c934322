package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Session binds an identity and role for the lifetime of one login, plus the
// per-session scratch selections the storefront UI works with. It lives in
// memory only; logout discards the whole thing.
type Session struct {
	Token    string
	Username string
	Role     string

	mu                sync.Mutex
	selectedGameID    uint
	selectedProductID uint
	pendingPayment    uint
	lastStatuses      map[uint]string
	alerts            []Alert
	stopWatcher       context.CancelFunc
}

func (s *Session) SetSelection(gameID, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedGameID = gameID
	s.selectedProductID = productID
}

func (s *Session) Selection() (gameID, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedGameID, s.selectedProductID
}

func (s *Session) SetPendingPayment(transactionID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingPayment = transactionID
}

func (s *Session) PendingPayment() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingPayment
}

func (s *Session) ClearPendingPayment(transactionID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingPayment == transactionID {
		s.pendingPayment = 0
	}
}

// BindWatcher attaches the cancel func of this session's background order
// watcher so logout can stop it.
func (s *Session) BindWatcher(cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopWatcher = cancel
}

func (s *Session) stop() {
	s.mu.Lock()
	cancel := s.stopWatcher
	s.stopWatcher = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// SessionStore holds all live sessions keyed by token.
type SessionStore struct {
	mu      sync.RWMutex
	byToken map[string]*Session
}

var Sessions = NewSessionStore()

func NewSessionStore() *SessionStore {
	return &SessionStore{byToken: make(map[string]*Session)}
}

func (st *SessionStore) Create(username, role string) *Session {
	sess := &Session{
		Token:    uuid.New().String(),
		Username: username,
		Role:     role,
	}
	st.mu.Lock()
	st.byToken[sess.Token] = sess
	st.mu.Unlock()
	return sess
}

func (st *SessionStore) Get(token string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.byToken[token]
	st.mu.RUnlock()
	return sess, ok
}

// Delete tears the session down: the order watcher is cancelled and the
// session (with all its scratch state) is dropped from the store.
func (st *SessionStore) Delete(token string) {
	st.mu.Lock()
	sess, ok := st.byToken[token]
	delete(st.byToken, token)
	st.mu.Unlock()
	if ok {
		sess.stop()
	}
}
