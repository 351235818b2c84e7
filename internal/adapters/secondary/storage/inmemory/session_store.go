package inmemory

import (
	"sync"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/ports/store"
)

// SessionStore in-memory хранилище сессий сбора заявок.
// Ключ - пара (user_id, chat_id); мьютекс защищает только саму мапу,
// события одного чата приходят от Telegram последовательно.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionKey]*domain.Session
}

// NewSessionStore создаёт новое in-memory хранилище сессий
func NewSessionStore() store.ISessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionKey]*domain.Session),
	}
}

// Get возвращает живую сессию по ключу
func (s *SessionStore) Get(key domain.SessionKey) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[key]
	return session, ok
}

// Put сохраняет сессию, перезаписывая существующую для того же ключа
func (s *SessionStore) Put(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Key()] = session
}

// Delete полностью удаляет сессию
func (s *SessionStore) Delete(key domain.SessionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}
