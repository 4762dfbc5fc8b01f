package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commodity-advisor/config"
	"commodity-advisor/internal/calculator"
	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/errs"
	"commodity-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) MarketDataRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.AlphaVantage = config.AlphaVantageConfig{
		BaseURL:             server.URL,
		APIKey:              "test-key",
		Timeout:             10 * time.Second,
		MaxRequestPerMinute: 60000,
	}

	log, err := logger.New("error", "console")
	require.NoError(t, err)

	return NewAlphaVantageRepository(cfg, log)
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestGet_CommodityScenario(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(`{"data":[{"date":"2024-01-01","value":"70.5"},{"date":"2024-02-01","value":"75.0"}]}`))

	series, err := repo.Get(context.Background(), "WTI", dto.AssetClassCommodity)
	require.NoError(t, err)
	require.Equal(t, 2, series.Len())

	stats, err := calculator.Summarize(series, 12, 6)
	require.NoError(t, err)
	assert.Equal(t, 75.0, stats.CurrentPrice)
	assert.Equal(t, 70.5, stats.PreviousPrice)
	assert.InDelta(t, 4.5, stats.Change, 1e-9)
	assert.InDelta(t, 6.38, stats.ChangePercent, 0.01)
}

func TestGet_CommodityPassesFunctionAndInterval(t *testing.T) {
	var gotQuery map[string]string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"function": r.URL.Query().Get("function"),
			"interval": r.URL.Query().Get("interval"),
			"apikey":   r.URL.Query().Get("apikey"),
		}
		jsonHandler(`{"data":[{"date":"2024-01-01","value":"70.5"}]}`)(w, r)
	})

	_, err := repo.Get(context.Background(), "COPPER", dto.AssetClassCommodity)
	require.NoError(t, err)
	assert.Equal(t, "COPPER", gotQuery["function"])
	assert.Equal(t, "monthly", gotQuery["interval"])
	assert.Equal(t, "test-key", gotQuery["apikey"])
}

func TestGet_StockScenario(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(`{"Monthly Time Series":{"2024-01-31":{"4. close":"190.00"}}}`))

	series, err := repo.Get(context.Background(), "AAPL", dto.AssetClassStock)
	require.NoError(t, err)
	require.Equal(t, 1, series.Len())

	stats, err := calculator.Summarize(series, 12, 6)
	require.NoError(t, err)
	assert.Equal(t, 190.0, stats.CurrentPrice)
	assert.Equal(t, 190.0, stats.PreviousPrice)
	assert.Equal(t, 0.0, stats.Change)
}

func TestGet_StockUsesMonthlyFunction(t *testing.T) {
	var gotFunction, gotSymbol string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotFunction = r.URL.Query().Get("function")
		gotSymbol = r.URL.Query().Get("symbol")
		jsonHandler(`{"Monthly Time Series":{"2024-01-31":{"4. close":"190.00"}}}`)(w, r)
	})

	_, err := repo.Get(context.Background(), "AAPL", dto.AssetClassStock)
	require.NoError(t, err)
	assert.Equal(t, "TIME_SERIES_MONTHLY", gotFunction)
	assert.Equal(t, "AAPL", gotSymbol)
}

func TestGet_RateLimitNote(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(`{"Note":"rate limited"}`))

	_, err := repo.Get(context.Background(), "WTI", dto.AssetClassCommodity)
	require.Error(t, err)

	var fetchErr *errs.DataFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "rate limit")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestGet_ProviderErrorMessage(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(`{"Error Message":"Invalid API call"}`))

	_, err := repo.Get(context.Background(), "WTI", dto.AssetClassCommodity)
	require.Error(t, err)

	var fetchErr *errs.DataFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "Invalid API call")
}

func TestGet_MalformedShape(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(`{"something_else":true}`))

	_, err := repo.Get(context.Background(), "WTI", dto.AssetClassCommodity)
	require.Error(t, err)

	var fetchErr *errs.DataFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "data")
}

func TestGet_EmptyResultSet(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(`{"data":[]}`))

	_, err := repo.Get(context.Background(), "WTI", dto.AssetClassCommodity)
	require.Error(t, err)

	var fetchErr *errs.DataFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "no usable observations")
}

func TestGet_DropsUnparseableRows(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(`{"data":[
		{"date":"2024-01-01","value":"70.5"},
		{"date":"2024-02-01","value":"."},
		{"date":"not-a-date","value":"80.0"},
		{"date":"2024-03-01","value":"75.0"}
	]}`))

	series, err := repo.Get(context.Background(), "WTI", dto.AssetClassCommodity)
	require.NoError(t, err)
	assert.Equal(t, 2, series.Len())
	assert.Equal(t, []float64{70.5, 75.0}, series.Values())
}

func TestGet_NonOKStatus(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := repo.Get(context.Background(), "WTI", dto.AssetClassCommodity)
	require.Error(t, err)

	var fetchErr *errs.DataFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "503")
}

func TestGet_RoundTripTenPoints(t *testing.T) {
	body := `{"data":[`
	for i := 0; i < 10; i++ {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"date":"2023-%02d-01","value":"%d.0"}`, i+1, 100+i*10)
	}
	body += `]}`

	repo := newTestRepo(t, jsonHandler(body))

	series, err := repo.Get(context.Background(), "BRENT", dto.AssetClassCommodity)
	require.NoError(t, err)

	stats, err := calculator.Summarize(series, 12, 6)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.DataPoints)
	assert.GreaterOrEqual(t, stats.HighTrailing, stats.LowTrailing)
	assert.Equal(t, dto.TrendUpward, stats.Trend)
}
