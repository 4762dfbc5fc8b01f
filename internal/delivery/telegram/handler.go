package telegram

import (
	"context"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) WithContext(handler func(ctx context.Context, c telebot.Context) error) func(c telebot.Context) error {
	return func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(t.ctx, t.cfg.Telegram.TimeoutDuration)
		defer cancel()

		return handler(ctx, c)
	}
}

func (t *TelegramBotHandler) RegisterHandlers() {
	t.bot.Handle("/start", t.WithContext(t.handleStart))
	t.bot.Handle("/help", t.WithContext(t.handleHelp))
	t.bot.Handle("/analyze", t.WithContext(t.handleAnalyze))
	t.bot.Handle("/history", t.WithContext(t.handleHistory))
	t.bot.Handle("/cancel", t.WithContext(t.handleCancelCommand))
	t.bot.Handle(&btnAssetClass, t.WithContext(t.handleAssetClassCallback))
	t.bot.Handle(&btnSymbol, t.WithContext(t.handleSymbolCallback))
	t.bot.Handle(telebot.OnText, t.WithContext(t.handleConversation))
}

func (t *TelegramBotHandler) handleStart(ctx context.Context, c telebot.Context) error {
	message := `👋 <b>Welcome to the Investment Advisor Bot!</b> 🤖
I analyze commodity and stock price history and give you an AI-generated investment opinion.

🔧 Available commands:

📈 /analyze - Analyze a commodity or stock investment
📚 /history - Show your recent analyses
❌ /cancel - Cancel the current conversation
🆘 /help - Show the full guide
🔁 /start - Show this message again

⚠️ Educational information only, not financial advice.`

	_, err := t.telegram.Send(ctx, c, message, telebot.ModeHTML)
	return err
}

func (t *TelegramBotHandler) handleHelp(ctx context.Context, c telebot.Context) error {
	message := `<b>How it works</b>

1. Send /analyze and pick an asset class (commodity or stock).
2. Pick a symbol from the keyboard or type your own.
3. Enter the amount you want to invest in USD.
4. Ask a free-text question, e.g. "Should I invest now? What are the risks?"

The bot fetches the monthly price history, computes statistics and a trend, and asks the AI for a structured opinion covering opportunity, risks, allocation, time horizon and risk level.

<b>Supported commodities:</b> WTI, BRENT, NATURAL_GAS, COPPER, ALUMINUM, WHEAT, CORN, SUGAR, COFFEE
<b>Supported stocks:</b> AAPL, MSFT, GOOGL, AMZN, TSLA, META, NVDA, JPM, V, WMT

Use /history to revisit your last analyses of this session.`

	_, err := t.telegram.Send(ctx, c, message, telebot.ModeHTML)
	return err
}

// handleConversation routes free text to the active conversation step.
func (t *TelegramBotHandler) handleConversation(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	state, ok := t.getUserState(userID)
	if !ok || state == StateIdle {
		return t.handleTextMessage(ctx, c)
	}

	switch state {
	case StateWaitingSymbol:
		return t.handleSymbolInput(ctx, c)
	case StateWaitingInvestmentAmount:
		return t.handleInvestmentAmountInput(ctx, c)
	case StateWaitingQuestion:
		return t.handleQuestionInput(ctx, c)
	default:
		t.ResetUserState(userID)
		_, err := t.telegram.Send(ctx, c, "You are not in an active conversation. Use /help to see the available commands.")
		return err
	}
}

func (t *TelegramBotHandler) handleTextMessage(ctx context.Context, c telebot.Context) error {
	_, err := t.telegram.Send(ctx, c, "I don't recognize that. Use /analyze to start an analysis or /help for the guide.")
	return err
}
