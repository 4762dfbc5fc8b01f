package telegram

import (
	"context"
	"fmt"
	"html"
	"strings"

	"commodity-advisor/pkg/utils"

	"gopkg.in/telebot.v3"
)

// questionPreviewLimit keeps history entries scannable.
const questionPreviewLimit = 80

func (t *TelegramBotHandler) handleHistory(ctx context.Context, c telebot.Context) error {
	records := t.service.AnalysisService.RecentHistory()
	if len(records) == 0 {
		_, err := t.telegram.Send(ctx, c, "No analyses yet in this session. Start one with /analyze.")
		return err
	}

	sb := strings.Builder{}
	sb.WriteString("📚 <b>Analysis History</b> (most recent first)\n")

	for _, record := range records {
		question := record.Question
		if len(question) > questionPreviewLimit {
			question = question[:questionPreviewLimit] + "…"
		}

		sb.WriteString(fmt.Sprintf("\n🕐 <i>%s</i>\n", record.Timestamp.Format("2006-01-02 15:04:05")))
		sb.WriteString(fmt.Sprintf("%s <b>%s</b> — %s\n",
			record.AssetClass.DisplayName(), record.Symbol, utils.FormatCurrency(record.InvestmentAmount)))
		sb.WriteString(fmt.Sprintf("❓ %s\n", html.EscapeString(question)))
	}

	return t.sendLongText(ctx, c, sb.String())
}
