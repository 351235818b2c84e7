package inspection

import (
	"context"
	"fmt"
	"time"

	"github.com/Trio2/telegram-construction-bot/internal/usecases/inspection/texts"
)

const (
	listingsLimit    = 10
	listingsCacheTTL = 60 * time.Second
)

// showPending показывает необработанные заявки чата
func (s *Service) showPending(ctx context.Context, chatID int64) error {
	cacheKey := fmt.Sprintf("inspections:pending:%d", chatID)

	if cached, ok := s.cachedListing(ctx, cacheKey); ok {
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, cached, backToMainMenuKeyboard())
	}

	submissions, err := s.Submissions.ListPendingByChat(ctx, chatID, listingsLimit)
	if err != nil {
		return fmt.Errorf("failed to list pending inspections: %w", err)
	}

	if len(submissions) == 0 {
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID,
			texts.NoPendingInspections, backToMainMenuKeyboard())
	}

	message := texts.FormatPendingList(submissions)
	s.storeListing(ctx, cacheKey, message)

	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, message, backToMainMenuKeyboard())
}

// showCompleted показывает назначенные и проведённые инспекции чата
func (s *Service) showCompleted(ctx context.Context, chatID int64) error {
	cacheKey := fmt.Sprintf("inspections:completed:%d", chatID)

	if cached, ok := s.cachedListing(ctx, cacheKey); ok {
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, cached, backToMainMenuKeyboard())
	}

	submissions, err := s.Submissions.ListCompletedByChat(ctx, chatID, listingsLimit)
	if err != nil {
		return fmt.Errorf("failed to list completed inspections: %w", err)
	}

	if len(submissions) == 0 {
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID,
			texts.NoCompletedInspections, backToMainMenuKeyboard())
	}

	message := texts.FormatCompletedList(submissions)
	s.storeListing(ctx, cacheKey, message)

	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, message, backToMainMenuKeyboard())
}

// cachedListing пробует достать готовый список из кеша
func (s *Service) cachedListing(ctx context.Context, key string) (string, bool) {
	if s.Cache == nil {
		return "", false
	}
	cached, err := s.Cache.Get(ctx, key)
	if err != nil || cached == "" {
		return "", false
	}
	return cached, true
}

// storeListing кладёт готовый список в кеш, ошибки кеша не критичны
func (s *Service) storeListing(ctx context.Context, key string, message string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, key, message, listingsCacheTTL); err != nil {
		s.Log.Warn("failed to cache listing", "error", err, "key", key)
	}
}

// invalidateListings сбрасывает кеш списков чата после изменения журнала
func (s *Service) invalidateListings(ctx context.Context, chatID int64) {
	if s.Cache == nil {
		return
	}
	for _, key := range []string{
		fmt.Sprintf("inspections:pending:%d", chatID),
		fmt.Sprintf("inspections:completed:%d", chatID),
	} {
		if err := s.Cache.Delete(ctx, key); err != nil {
			s.Log.Warn("failed to invalidate listing cache", "error", err, "key", key)
		}
	}
}
