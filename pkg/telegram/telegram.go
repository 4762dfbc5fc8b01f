package telegram

import (
	"context"
	"sync"
	"time"

	"commodity-advisor/config"
	"commodity-advisor/pkg/logger"
	"commodity-advisor/pkg/utils"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

type userLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter wraps the telebot sender with a global and a per-user rate
// limit so the bot stays inside the Telegram API budget.
type RateLimiter struct {
	cfg           *config.TelegramConfig
	log           *logger.Logger
	globalLimiter *rate.Limiter
	userLimiters  map[int64]*userLimiterEntry
	bot           *telebot.Bot
	mu            sync.Mutex
	wg            sync.WaitGroup
}

func NewRateLimiter(cfg *config.TelegramConfig, log *logger.Logger, bot *telebot.Bot) *RateLimiter {
	return &RateLimiter{
		cfg:           cfg,
		log:           log,
		bot:           bot,
		globalLimiter: rate.NewLimiter(rate.Limit(cfg.MaxGlobalRequestPerSecond), cfg.MaxGlobalRequestPerSecond),
		userLimiters:  make(map[int64]*userLimiterEntry),
	}
}

func (t *RateLimiter) Send(ctx context.Context, c telebot.Context, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if err := t.checkRateLimit(ctx, c.Sender().ID); err != nil {
		return nil, err
	}
	return t.bot.Send(c.Chat(), what, opts...)
}

func (t *RateLimiter) Edit(ctx context.Context, c telebot.Context, msg *telebot.Message, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if err := t.checkRateLimit(ctx, c.Sender().ID); err != nil {
		return nil, err
	}
	return t.bot.Edit(msg, what, opts...)
}

func (t *RateLimiter) Delete(ctx context.Context, c telebot.Context, msg *telebot.Message) error {
	if err := t.checkRateLimit(ctx, c.Sender().ID); err != nil {
		return err
	}
	return t.bot.Delete(msg)
}

func (t *RateLimiter) getUserLimiter(userID int64) *userLimiterEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entry, exists := t.userLimiters[userID]; exists {
		entry.lastAccess = time.Now()
		return entry
	}

	entry := &userLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(t.cfg.MaxUserRequestPerSecond), t.cfg.MaxUserRequestPerSecond),
		lastAccess: time.Now(),
	}
	t.userLimiters[userID] = entry
	return entry
}

func (t *RateLimiter) checkRateLimit(ctx context.Context, senderID int64) error {
	userLimiter := t.getUserLimiter(senderID)

	if err := t.globalLimiter.Wait(ctx); err != nil {
		t.log.ErrorContext(ctx, "Failed to wait for global rate limit", logger.ErrorField(err))
		return err
	}
	if err := userLimiter.limiter.Wait(ctx); err != nil {
		t.log.ErrorContext(ctx, "Failed to wait for user rate limit", logger.ErrorField(err))
		return err
	}
	return nil
}

// StartCleanupExpired drops per-user limiters that have been idle longer
// than the configured expiry.
func (t *RateLimiter) StartCleanupExpired(ctx context.Context) {
	t.wg.Add(1)
	utils.GoSafe(func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.cfg.RateLimitCleanupDuration)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				t.log.Info("Received signal to stop Telegram rate limiter cleanup")
				return
			case <-ticker.C:
				t.mu.Lock()
				now := time.Now()
				for userID, entry := range t.userLimiters {
					if now.Sub(entry.lastAccess) > t.cfg.RatelimitExpireDuration {
						delete(t.userLimiters, userID)
					}
				}
				t.mu.Unlock()
			}
		}
	})
}

func (t *RateLimiter) StopCleanupExpired() {
	t.wg.Wait()
	t.log.Info("Telegram rate limiter stopped")
}
