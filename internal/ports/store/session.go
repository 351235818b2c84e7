package store

import (
	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// ISessionStore хранилище незавершённых заявок.
// Ключ - пара (user_id, chat_id); чтения и записи между ключами запрещены.
// Put с существующим ключом перезаписывает сессию целиком (нельзя вести
// две заявки в одном чате одновременно).
type ISessionStore interface {
	Get(key domain.SessionKey) (*domain.Session, bool)
	Put(session *domain.Session)
	Delete(key domain.SessionKey)
}
