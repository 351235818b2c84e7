package telegram

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		token:      "test-token",
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestEditMessageTextRendersMarkdown(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/editMessageText" {
			t.Errorf("path = %s, want /editMessageText", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	err := client.EditMessageText(context.Background(), 100, 7, "**Rough Electrical Inspection**")
	if err != nil {
		t.Fatalf("EditMessageText: %v", err)
	}

	// Инструкции листов содержат Markdown-разметку, она должна рендериться
	if received["parse_mode"] != "Markdown" {
		t.Errorf("parse_mode = %v, want Markdown", received["parse_mode"])
	}
	if received["text"] != "**Rough Electrical Inspection**" {
		t.Errorf("text = %v", received["text"])
	}
	if received["chat_id"] != float64(100) || received["message_id"] != float64(7) {
		t.Errorf("chat_id/message_id = %v/%v", received["chat_id"], received["message_id"])
	}
}

func TestEditMessageWithKeyboardSendsMarkup(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	keyboard := map[string]interface{}{
		"inline_keyboard": [][]map[string]interface{}{
			{{"text": "Back", "callback_data": "main_menu"}},
		},
	}
	if err := client.EditMessageWithKeyboard(context.Background(), 100, 7, "menu", keyboard); err != nil {
		t.Fatalf("EditMessageWithKeyboard: %v", err)
	}

	if received["parse_mode"] != "Markdown" {
		t.Errorf("parse_mode = %v, want Markdown", received["parse_mode"])
	}
	if received["reply_markup"] == nil {
		t.Error("reply_markup was not sent")
	}
}
