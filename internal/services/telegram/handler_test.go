package telegram_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	telegramService "github.com/Trio2/telegram-construction-bot/internal/services/telegram"
)

type botCall struct {
	kind    string // "command", "text", "callback"
	payload string
}

type fakeBotService struct {
	calls []botCall
}

func (f *fakeBotService) HandleCommand(_ context.Context, _ *domain.TelegramUser, _ *domain.Chat, command string) error {
	f.calls = append(f.calls, botCall{kind: "command", payload: command})
	return nil
}

func (f *fakeBotService) HandleText(_ context.Context, _ *domain.TelegramUser, _ *domain.Chat, text string) error {
	f.calls = append(f.calls, botCall{kind: "text", payload: text})
	return nil
}

func (f *fakeBotService) HandleCallback(_ context.Context, callback *domain.CallbackQuery) error {
	f.calls = append(f.calls, botCall{kind: "callback", payload: *callback.Data})
	return nil
}

func newService(bot *fakeBotService) *telegramService.Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return telegramService.New(bot, log)
}

func strPtr(s string) *string { return &s }

func messageUpdate(text string, isBot bool) *domain.Update {
	return &domain.Update{
		UpdateID: 1,
		Message: &domain.Message{
			MessageID: 10,
			From:      &domain.TelegramUser{ID: 42, IsBot: isBot, FirstName: "Dan"},
			Chat:      &domain.Chat{ID: 100, Type: "private"},
			Text:      strPtr(text),
		},
	}
}

func TestHandleUpdateRoutesCommands(t *testing.T) {
	bot := &fakeBotService{}
	svc := newService(bot)

	if err := svc.HandleUpdate(context.Background(), messageUpdate("/start@SomeBot now", false)); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}

	if len(bot.calls) != 1 || bot.calls[0].kind != "command" || bot.calls[0].payload != "start" {
		t.Errorf("calls = %+v, want a single command %q", bot.calls, "start")
	}
}

func TestHandleUpdateRoutesText(t *testing.T) {
	bot := &fakeBotService{}
	svc := newService(bot)

	if err := svc.HandleUpdate(context.Background(), messageUpdate("some notes", false)); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}

	if len(bot.calls) != 1 || bot.calls[0].kind != "text" || bot.calls[0].payload != "some notes" {
		t.Errorf("calls = %+v, want a single text %q", bot.calls, "some notes")
	}
}

func TestHandleUpdateIgnoresBots(t *testing.T) {
	bot := &fakeBotService{}
	svc := newService(bot)

	if err := svc.HandleUpdate(context.Background(), messageUpdate("/start", true)); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}
	if len(bot.calls) != 0 {
		t.Errorf("bot sender must be ignored, got calls %+v", bot.calls)
	}
}

func TestHandleUpdateIgnoresMessageWithoutText(t *testing.T) {
	bot := &fakeBotService{}
	svc := newService(bot)

	update := messageUpdate("", false)
	update.Message.Text = nil

	if err := svc.HandleUpdate(context.Background(), update); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}
	if len(bot.calls) != 0 {
		t.Errorf("message without text must be ignored, got calls %+v", bot.calls)
	}
}

func TestHandleUpdateRoutesCallbacks(t *testing.T) {
	bot := &fakeBotService{}
	svc := newService(bot)

	update := &domain.Update{
		UpdateID: 2,
		CallbackQuery: &domain.CallbackQuery{
			ID:   "cb-1",
			From: &domain.TelegramUser{ID: 42, FirstName: "Dan"},
			Data: strPtr("menu_inspections"),
		},
	}

	if err := svc.HandleUpdate(context.Background(), update); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}
	if len(bot.calls) != 1 || bot.calls[0].kind != "callback" || bot.calls[0].payload != "menu_inspections" {
		t.Errorf("calls = %+v, want a single callback %q", bot.calls, "menu_inspections")
	}
}

func TestHandleUpdateIgnoresCallbackWithoutData(t *testing.T) {
	bot := &fakeBotService{}
	svc := newService(bot)

	update := &domain.Update{
		UpdateID: 3,
		CallbackQuery: &domain.CallbackQuery{
			ID:   "cb-2",
			From: &domain.TelegramUser{ID: 42, FirstName: "Dan"},
		},
	}

	if err := svc.HandleUpdate(context.Background(), update); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}
	if len(bot.calls) != 0 {
		t.Errorf("callback without data must be ignored, got calls %+v", bot.calls)
	}
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/start", "start"},
		{"/start@InspectionBot", "start"},
		{"/start arg1 arg2", "start"},
		{"/cancel@InspectionBot now", "cancel"},
		{"/", ""},
	}
	for _, tc := range cases {
		if got := telegramService.ParseCommand(tc.in); got != tc.want {
			t.Errorf("ParseCommand(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsCommand(t *testing.T) {
	if !telegramService.IsCommand("/start") {
		t.Error("IsCommand(/start) = false")
	}
	if telegramService.IsCommand("start") {
		t.Error("IsCommand(start) = true")
	}
	if telegramService.IsCommand("") {
		t.Error("IsCommand(\"\") = true")
	}
}
