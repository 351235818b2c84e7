package domain

import "time"

// SessionState состояние сбора данных заявки
type SessionState string

const (
	// StateAwaitingNotes бот ждёт текст примечаний к инспекции
	StateAwaitingNotes SessionState = "awaiting_notes"
	// StateAwaitingDate бот ждёт желаемую дату инспекции
	StateAwaitingDate SessionState = "awaiting_date"
)

// SessionKey ключ сессии: пара (пользователь, чат).
// Сессии разных пар никогда не видят друг друга.
type SessionKey struct {
	UserID int64
	ChatID int64
}

// Session незавершённая заявка на инспекцию.
// Живёт только пока идёт диалог: создаётся при выборе типа инспекции в меню,
// заполняется по шагам и полностью удаляется на любом терминальном переходе
// (успех, ошибка доставки, отмена).
type Session struct {
	UserID      int64
	DisplayName string
	ChatID      int64
	ChatType    string
	ChatTitle   *string // только для групповых чатов

	InspectionType string
	Notes          string
	PreferredDate  string // каноничный вид YYYY-MM-DD
	State          SessionState

	StartedAt time.Time
}

// Key возвращает ключ сессии
func (s *Session) Key() SessionKey {
	return SessionKey{UserID: s.UserID, ChatID: s.ChatID}
}
