package telegram

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"commodity-advisor/internal/dto"
	"commodity-advisor/pkg/logger"
	"commodity-advisor/pkg/utils"

	"gopkg.in/telebot.v3"
)

// telegramMessageLimit is the Telegram hard cap per message; narratives
// longer than this are chunked.
const telegramMessageLimit = 4000

func (t *TelegramBotHandler) handleAnalyze(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)

	_, err := t.telegram.Send(ctx, c, "Which asset class do you want to analyze?", assetClassMarkup())
	return err
}

func (t *TelegramBotHandler) handleAssetClassCallback(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	assetClass := dto.AssetClass(c.Data())
	if !assetClass.Valid() {
		_, err := t.telegram.Send(ctx, c, "Unknown asset class, try /analyze again.")
		return err
	}

	t.setUserData(userID, dto.AnalyzeParam{AssetClass: assetClass})
	t.setUserState(userID, StateWaitingSymbol)

	prompt := fmt.Sprintf("Pick a %s symbol or type one:", strings.ToLower(assetClass.DisplayName()))
	_, err := t.telegram.Send(ctx, c, prompt, symbolMarkup(assetClass))
	return err
}

func (t *TelegramBotHandler) handleSymbolCallback(ctx context.Context, c telebot.Context) error {
	return t.acceptSymbol(ctx, c, c.Data())
}

func (t *TelegramBotHandler) handleSymbolInput(ctx context.Context, c telebot.Context) error {
	return t.acceptSymbol(ctx, c, strings.ToUpper(strings.TrimSpace(c.Text())))
}

func (t *TelegramBotHandler) acceptSymbol(ctx context.Context, c telebot.Context, symbol string) error {
	userID := c.Sender().ID

	param, ok := t.getUserData(userID)
	if !ok {
		t.ResetUserState(userID)
		_, err := t.telegram.Send(ctx, c, "Session expired, start again with /analyze.")
		return err
	}

	if symbol == "" {
		_, err := t.telegram.Send(ctx, c, "Please send a symbol, e.g. WTI or AAPL.")
		return err
	}

	param.Symbol = symbol
	t.setUserData(userID, param)
	t.setUserState(userID, StateWaitingInvestmentAmount)

	_, err := t.telegram.Send(ctx, c, "How much do you want to invest in USD? (e.g. 10000)")
	return err
}

func (t *TelegramBotHandler) handleInvestmentAmountInput(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	param, ok := t.getUserData(userID)
	if !ok {
		t.ResetUserState(userID)
		_, err := t.telegram.Send(ctx, c, "Session expired, start again with /analyze.")
		return err
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(c.Text(), ",", "")), 64)
	if err != nil || amount <= 0 {
		_, err := t.telegram.Send(ctx, c, "That doesn't look like a valid amount, send a positive number like 10000.")
		return err
	}

	param.InvestmentAmount = amount
	t.setUserData(userID, param)
	t.setUserState(userID, StateWaitingQuestion)

	_, err = t.telegram.Send(ctx, c, fmt.Sprintf(
		"Got it: %s into %s. Now ask your question, e.g. \"Should I invest now? What are the risks?\"",
		utils.FormatCurrency(amount), param.Symbol,
	))
	return err
}

func (t *TelegramBotHandler) handleQuestionInput(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	param, ok := t.getUserData(userID)
	if !ok {
		t.ResetUserState(userID)
		_, err := t.telegram.Send(ctx, c, "Session expired, start again with /analyze.")
		return err
	}

	question := strings.TrimSpace(c.Text())
	if question == "" {
		_, err := t.telegram.Send(ctx, c, "Please ask a question about this investment.")
		return err
	}

	param.Question = question
	t.ResetUserState(userID)

	loadingMsg, err := t.telegram.Send(ctx, c, fmt.Sprintf("⏳ Fetching %s data and asking the AI, hang on...", param.Symbol))
	if err != nil {
		return err
	}

	utils.GoSafe(func() {
		newCtx, cancel := context.WithTimeout(t.ctx, t.cfg.Telegram.TimeoutDuration)
		defer cancel()

		result, err := t.service.AnalysisService.Analyze(newCtx, param)
		if err != nil {
			t.log.ErrorContext(newCtx, "Failed to analyze investment", logger.ErrorField(err))
			_, editErr := t.telegram.Edit(newCtx, c, loadingMsg, fmt.Sprintf("❌ Analysis failed: %s", err.Error()))
			if editErr != nil {
				t.log.ErrorContext(newCtx, "Failed to send error message", logger.ErrorField(editErr))
			}
			return
		}

		if err := t.telegram.Delete(newCtx, c, loadingMsg); err != nil {
			t.log.ErrorContext(newCtx, "Failed to delete loading message", logger.ErrorField(err))
		}

		if err := t.showAnalysisResult(newCtx, c, result); err != nil {
			t.log.ErrorContext(newCtx, "Failed to show analysis result", logger.ErrorField(err))
		}
	})

	return nil
}

func (t *TelegramBotHandler) showAnalysisResult(ctx context.Context, c telebot.Context, result *dto.AnalyzeResult) error {
	stats := result.Statistics

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("<b>%s %s (%s)</b>\n", trendIcon(stats.Trend), result.Symbol, result.AssetClass.DisplayName()))
	sb.WriteString(fmt.Sprintf("💰 <b>Current:</b> %s (%s / %s)\n",
		utils.FormatCurrency(stats.CurrentPrice),
		utils.FormatSignedCurrency(stats.Change),
		utils.FormatPercentage(stats.ChangePercent)))
	sb.WriteString(fmt.Sprintf("📊 <b>Avg:</b> %s | <b>Std Dev:</b> %s\n",
		utils.FormatCurrency(stats.AvgPrice), utils.FormatCurrency(stats.Volatility)))
	sb.WriteString(fmt.Sprintf("🔺 <b>High:</b> %s | 🔻 <b>Low:</b> %s (last %d periods)\n",
		utils.FormatCurrency(stats.HighTrailing), utils.FormatCurrency(stats.LowTrailing), t.cfg.Analysis.TrailingWindow))
	sb.WriteString(fmt.Sprintf("📈 <b>Trend:</b> %s | ⚠️ <b>Risk:</b> %s\n", stats.Trend, result.RiskLevel))
	sb.WriteString(fmt.Sprintf("🗂 <b>Data points:</b> %d\n", stats.DataPoints))

	if _, err := t.telegram.Send(ctx, c, sb.String(), telebot.ModeHTML); err != nil {
		return err
	}

	narrative := "🤖 <b>AI Investment Analysis</b>\n\n" + html.EscapeString(result.Narrative)
	return t.sendLongText(ctx, c, narrative)
}

func (t *TelegramBotHandler) sendLongText(ctx context.Context, c telebot.Context, text string) error {
	for len(text) > 0 {
		chunk := text
		if len(chunk) > telegramMessageLimit {
			cut := strings.LastIndex(chunk[:telegramMessageLimit], "\n")
			if cut <= 0 {
				cut = telegramMessageLimit
			}
			chunk = chunk[:cut]
		}
		if _, err := t.telegram.Send(ctx, c, chunk, telebot.ModeHTML); err != nil {
			return err
		}
		text = strings.TrimPrefix(text[len(chunk):], "\n")
	}
	return nil
}

func trendIcon(trend dto.TrendLabel) string {
	switch trend {
	case dto.TrendUpward:
		return "📈"
	case dto.TrendDownward:
		return "📉"
	case dto.TrendSideways:
		return "➡️"
	default:
		return "❔"
	}
}
