package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus статус заявки в журнале
type SubmissionStatus string

const (
	// SubmissionDelivered заявка принята workflow (n8n вернул 200)
	SubmissionDelivered SubmissionStatus = "delivered"
	// SubmissionQueued endpoint был недоступен, заявка ждёт редоставки
	SubmissionQueued SubmissionStatus = "queued"
	// SubmissionRejected endpoint ответил не-200, заявка не ретраится
	SubmissionRejected SubmissionStatus = "rejected"
	// SubmissionScheduled workflow назначил инспекцию
	SubmissionScheduled SubmissionStatus = "scheduled"
	// SubmissionCompleted инспекция проведена
	SubmissionCompleted SubmissionStatus = "completed"
)

// Submission строка журнала заявок.
// Журнал - единственное durable-состояние бота: именно он делает честным
// сообщение "заявка сохранена и будет обработана после восстановления связи".
type Submission struct {
	ID             uuid.UUID        `db:"id"`
	TelegramUserID int64            `db:"telegram_user_id"`
	UserName       string           `db:"user_name"`
	ChatID         int64            `db:"chat_id"`
	ChatType       string           `db:"chat_type"`
	ChatTitle      *string          `db:"chat_title"`
	InspectionType string           `db:"inspection_type"`
	Notes          string           `db:"notes"`
	PreferredDate  string           `db:"preferred_date"`
	Status         SubmissionStatus `db:"status"`
	Attempts       int              `db:"attempts"`
	PermitNumber   *string          `db:"permit_number"`
	Address        *string          `db:"address"`
	TaskID         *string          `db:"task_id"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

// InspectionRequest тело POST-запроса к n8n webhook
type InspectionRequest struct {
	TelegramUserID    int64   `json:"telegram_user_id"`
	TelegramUserName  string  `json:"telegram_user_name"`
	TelegramChatID    int64   `json:"telegram_chat_id"`
	TelegramChatType  string  `json:"telegram_chat_type"`
	TelegramChatTitle *string `json:"telegram_chat_title,omitempty"` // нет для личных чатов
	InspectionType    string  `json:"inspection_type"`
	Notes             string  `json:"notes"`
	PreferredDate     string  `json:"preferred_date"` // YYYY-MM-DD
	Timestamp         string  `json:"timestamp"`      // ISO-8601
	Status            string  `json:"status"`         // всегда "pending"
}

// ToRequest собирает payload для webhook из строки журнала
func (s *Submission) ToRequest() InspectionRequest {
	return InspectionRequest{
		TelegramUserID:    s.TelegramUserID,
		TelegramUserName:  s.UserName,
		TelegramChatID:    s.ChatID,
		TelegramChatType:  s.ChatType,
		TelegramChatTitle: s.ChatTitle,
		InspectionType:    s.InspectionType,
		Notes:             s.Notes,
		PreferredDate:     s.PreferredDate,
		Timestamp:         s.CreatedAt.Format(time.RFC3339),
		Status:            "pending",
	}
}

// WebhookResult разобранный ответ n8n. Используется один раз для
// построения итогового сообщения и нигде не хранится.
type WebhookResult struct {
	StatusCode   int
	PermitNumber *string
	Address      *string
	TaskID       *string
}

// OK true если workflow принял заявку
func (r *WebhookResult) OK() bool {
	return r.StatusCode == 200
}

// StatusUpdate обратная связь от workflow через Kafka
type StatusUpdate struct {
	SubmissionID string  `json:"submission_id"`
	ChatID       int64   `json:"chat_id"`
	Status       string  `json:"status"` // "scheduled", "completed", "rejected"
	PermitNumber *string `json:"permit_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	TaskID       *string `json:"notion_task_id,omitempty"`
	Note         *string `json:"note,omitempty"`
}
