package repository

import (
	"testing"
	"time"

	"commodity-advisor/config"
	"commodity-advisor/internal/calculator"
	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptTestSeries(t *testing.T) *model.PriceSeries {
	t.Helper()
	start := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	values := []float64{1500, 1600, 1700, 1800, 1900, 2000, 2100, 2250.5}
	points := make([]model.PricePoint, 0, len(values))
	for i, v := range values {
		points = append(points, model.PricePoint{Date: start.AddDate(0, i, 0), Value: v})
	}
	return model.NewPriceSeries(points)
}

func TestPromptInvestmentAnalysis(t *testing.T) {
	repo := &geminiAIRepository{cfg: &config.Config{}}

	series := promptTestSeries(t)
	stats, err := calculator.Summarize(series, 12, 6)
	require.NoError(t, err)

	param := dto.AnalyzeParam{
		AssetClass:       dto.AssetClassStock,
		Symbol:           "NVDA",
		Question:         "Is this overvalued right now?",
		InvestmentAmount: 25000,
	}

	prompt := repo.promptInvestmentAnalysis(param, series, stats)

	// Data summary fields.
	assert.Contains(t, prompt, "Asset Type: Stock")
	assert.Contains(t, prompt, "Symbol: NVDA")
	assert.Contains(t, prompt, "Investment Amount: $25,000.00")
	assert.Contains(t, prompt, "Current Price: $2,250.50")
	assert.Contains(t, prompt, "Previous Price: $2,100.00")
	assert.Contains(t, prompt, "Data Points Available: 8")
	assert.Contains(t, prompt, "Latest Data Date: 2024-01-01")
	assert.Contains(t, prompt, "Price Trend: upward")

	// The last six raw prices are quoted as currency.
	assert.Contains(t, prompt, "$1,700.00")
	assert.Contains(t, prompt, "$2,250.50")
	assert.NotContains(t, prompt, "$1,500.00")

	// User question and the five-point structure.
	assert.Contains(t, prompt, "User's Question: Is this overvalued right now?")
	assert.Contains(t, prompt, "1. Whether this is a good investment opportunity")
	assert.Contains(t, prompt, "2. Key risks and opportunities")
	assert.Contains(t, prompt, "3. Specific investment recommendation")
	assert.Contains(t, prompt, "4. Time horizon considerations")
	assert.Contains(t, prompt, "5. Risk level (Low/Medium/High)")
	assert.Contains(t, prompt, "not financial advice")
}

func TestDataSummary_SignedChange(t *testing.T) {
	repo := &geminiAIRepository{cfg: &config.Config{}}

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	series := model.NewPriceSeries([]model.PricePoint{
		{Date: start, Value: 80},
		{Date: start.AddDate(0, 1, 0), Value: 76},
	})
	stats, err := calculator.Summarize(series, 12, 6)
	require.NoError(t, err)

	param := dto.AnalyzeParam{
		AssetClass:       dto.AssetClassCommodity,
		Symbol:           "WTI",
		Question:         "worth it?",
		InvestmentAmount: 5000,
	}

	summary := repo.dataSummary(param, series, stats)
	assert.Contains(t, summary, "Recent Change: -$4.00 (-5.00%)")
	assert.Contains(t, summary, "Asset Type: Commodity")
}
