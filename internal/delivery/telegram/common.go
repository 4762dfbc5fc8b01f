package telegram

import (
	"context"
	"fmt"

	"commodity-advisor/internal/dto"
	"commodity-advisor/pkg/cache"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) getUserState(userID int64) (int, bool) {
	return cache.GetFromCache[int](fmt.Sprintf(UserStateKey, userID))
}

func (t *TelegramBotHandler) setUserState(userID int64, state int) {
	t.inmemoryCache.Set(fmt.Sprintf(UserStateKey, userID), state, t.cfg.Cache.DefaultExpiration)
}

func (t *TelegramBotHandler) getUserData(userID int64) (dto.AnalyzeParam, bool) {
	return cache.GetFromCache[dto.AnalyzeParam](fmt.Sprintf(UserDataKey, userID))
}

func (t *TelegramBotHandler) setUserData(userID int64, param dto.AnalyzeParam) {
	t.inmemoryCache.Set(fmt.Sprintf(UserDataKey, userID), param, t.cfg.Cache.DefaultExpiration)
}

func (t *TelegramBotHandler) ResetUserState(userID int64) {
	t.inmemoryCache.Delete(fmt.Sprintf(UserStateKey, userID))
	t.inmemoryCache.Delete(fmt.Sprintf(UserDataKey, userID))
}

func (t *TelegramBotHandler) handleCancelCommand(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	defer t.ResetUserState(userID)

	if state, ok := t.getUserState(userID); ok && state != StateIdle {
		_, err := t.telegram.Send(ctx, c, "✅ Conversation cancelled.")
		return err
	}

	_, err := t.telegram.Send(ctx, c, "Nothing to cancel.")
	return err
}
