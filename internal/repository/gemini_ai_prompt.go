package repository

import (
	"fmt"
	"strings"

	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/model"
	"commodity-advisor/pkg/utils"
)

// recentPricesInSummary is how many trailing raw prices the data summary
// quotes verbatim to the model.
const recentPricesInSummary = 6

func (r *geminiAIRepository) promptInvestmentAnalysis(param dto.AnalyzeParam, series *model.PriceSeries, stats *dto.Statistics) string {
	var sb strings.Builder

	assetName := strings.ToLower(param.AssetClass.DisplayName())

	sb.WriteString(fmt.Sprintf(
		"You are a financial analyst specializing in %s investments.\nAnalyze the following %s data and answer the user's question.\n\n",
		assetName, assetName,
	))

	sb.WriteString(r.dataSummary(param, series, stats))

	sb.WriteString(fmt.Sprintf("\nUser's Question: %s\n", param.Question))

	// Downstream consumers may parse the reply, keep this five-point
	// structure stable.
	sb.WriteString(`
Provide a comprehensive analysis that includes:
1. Whether this is a good investment opportunity (Yes/No/Maybe with reasoning)
2. Key risks and opportunities
3. Specific investment recommendation (how much to invest or if to avoid)
4. Time horizon considerations
5. Risk level (Low/Medium/High)

Be specific, data-driven, and practical. Format your response in a clear, structured way.
Remember: This is educational information, not financial advice. Users should consult financial advisors.`)

	return sb.String()
}

func (r *geminiAIRepository) dataSummary(param dto.AnalyzeParam, series *model.PriceSeries, stats *dto.Statistics) string {
	var sb strings.Builder

	recent := series.TailValues(recentPricesInSummary)
	recentFormatted := make([]string, 0, len(recent))
	for _, p := range recent {
		recentFormatted = append(recentFormatted, utils.FormatCurrency(p))
	}

	latest, _ := series.Last()

	sb.WriteString(fmt.Sprintf("Asset Type: %s\n", param.AssetClass.DisplayName()))
	sb.WriteString(fmt.Sprintf("Symbol: %s\n", param.Symbol))
	sb.WriteString(fmt.Sprintf("Investment Amount: %s\n", utils.FormatCurrency(param.InvestmentAmount)))
	sb.WriteString(fmt.Sprintf("Current Price: %s\n", utils.FormatCurrency(stats.CurrentPrice)))
	sb.WriteString(fmt.Sprintf("Previous Price: %s\n", utils.FormatCurrency(stats.PreviousPrice)))
	sb.WriteString(fmt.Sprintf("Recent Change: %s (%s)\n", utils.FormatSignedCurrency(stats.Change), utils.FormatPercentage(stats.ChangePercent)))
	sb.WriteString(fmt.Sprintf("Average Price: %s\n", utils.FormatCurrency(stats.AvgPrice)))
	sb.WriteString(fmt.Sprintf("Price Volatility (Std Dev): %s\n", utils.FormatCurrency(stats.Volatility)))
	sb.WriteString(fmt.Sprintf("Price Trend: %s\n", stats.Trend))
	sb.WriteString(fmt.Sprintf("Recent Prices (Last %d periods): %s\n", recentPricesInSummary, strings.Join(recentFormatted, ", ")))
	sb.WriteString(fmt.Sprintf("Data Points Available: %d\n", stats.DataPoints))
	sb.WriteString(fmt.Sprintf("Latest Data Date: %s\n", utils.FormatDate(latest.Date)))

	return sb.String()
}
