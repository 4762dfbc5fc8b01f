package repository

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"commodity-advisor/config"
	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/errs"
	"commodity-advisor/internal/model"
	"commodity-advisor/pkg/httpclient"
	"commodity-advisor/pkg/logger"

	"golang.org/x/time/rate"
)

const alphaVantageDateLayout = "2006-01-02"

type MarketDataRepository interface {
	Get(ctx context.Context, symbol string, assetClass dto.AssetClass) (*model.PriceSeries, error)
}

// alphaVantageRepository fetches commodity and stock price history from
// the Alpha Vantage query API. A failed call is terminal for the request;
// there are no retries.
type alphaVantageRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewAlphaVantageRepository creates a new instance of alphaVantageRepository.
func NewAlphaVantageRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.AlphaVantage.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &alphaVantageRepository{
		httpClient:     httpclient.New(log, cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *alphaVantageRepository) Get(ctx context.Context, symbol string, assetClass dto.AssetClass) (*model.PriceSeries, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, errs.WrapDataFetchError(symbol, err, "request limiter interrupted")
	}

	if assetClass == dto.AssetClassStock {
		return r.getStockSeries(ctx, symbol)
	}
	return r.getCommoditySeries(ctx, symbol)
}

func (r *alphaVantageRepository) getCommoditySeries(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	// The commodity symbol maps straight onto the provider function name.
	function, ok := dto.CommodityFunctions[symbol]
	if !ok {
		function = symbol
	}

	queryParams := map[string]string{
		"function": function,
		"interval": "monthly",
		"apikey":   r.cfg.AlphaVantage.APIKey,
	}

	var avResp dto.CommodityResponse
	resp, err := r.httpClient.Get(ctx, "/query", queryParams, nil, &avResp)
	if err != nil {
		return nil, errs.WrapDataFetchError(symbol, err, "failed to fetch commodity data")
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Alpha Vantage returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, errs.NewDataFetchError(symbol, "alpha vantage returned status %d", resp.StatusCode)
	}

	if err := checkProviderError(symbol, avResp.AlphaVantageError); err != nil {
		return nil, err
	}

	if avResp.Data == nil {
		return nil, errs.NewDataFetchError(symbol, "unexpected response shape: missing \"data\" key")
	}

	points := make([]model.PricePoint, 0, len(avResp.Data))
	for _, row := range avResp.Data {
		date, err := time.Parse(alphaVantageDateLayout, row.Date)
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(row.Value, 64)
		if err != nil {
			// Alpha Vantage reports gaps as ".", drop those rows.
			continue
		}
		points = append(points, model.PricePoint{Date: date, Value: value})
	}

	return r.buildSeries(ctx, symbol, points)
}

func (r *alphaVantageRepository) getStockSeries(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	queryParams := map[string]string{
		"function": "TIME_SERIES_MONTHLY",
		"symbol":   symbol,
		"apikey":   r.cfg.AlphaVantage.APIKey,
	}

	var avResp dto.StockResponse
	resp, err := r.httpClient.Get(ctx, "/query", queryParams, nil, &avResp)
	if err != nil {
		return nil, errs.WrapDataFetchError(symbol, err, "failed to fetch stock data")
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Alpha Vantage returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, errs.NewDataFetchError(symbol, "alpha vantage returned status %d", resp.StatusCode)
	}

	if err := checkProviderError(symbol, avResp.AlphaVantageError); err != nil {
		return nil, err
	}

	if avResp.MonthlyTimeSeries == nil {
		return nil, errs.NewDataFetchError(symbol, "unexpected response shape: missing \"Monthly Time Series\" key")
	}

	points := make([]model.PricePoint, 0, len(avResp.MonthlyTimeSeries))
	for dateStr, bar := range avResp.MonthlyTimeSeries {
		date, err := time.Parse(alphaVantageDateLayout, dateStr)
		if err != nil {
			continue
		}
		closePrice, err := strconv.ParseFloat(bar.Close, 64)
		if err != nil {
			continue
		}
		points = append(points, model.PricePoint{Date: date, Value: closePrice})
	}

	return r.buildSeries(ctx, symbol, points)
}

func (r *alphaVantageRepository) buildSeries(ctx context.Context, symbol string, points []model.PricePoint) (*model.PriceSeries, error) {
	series := model.NewPriceSeries(points)
	if series.IsEmpty() {
		return nil, errs.NewDataFetchError(symbol, "no usable observations returned by provider")
	}

	r.logger.DebugContext(ctx, "fetched price series",
		logger.StringField("symbol", symbol),
		logger.IntField("data_points", series.Len()),
	)
	return series, nil
}

// checkProviderError maps Alpha Vantage in-body error signaling onto the
// fetch error taxonomy. "Note" and "Information" both indicate rate or
// plan limits.
func checkProviderError(symbol string, avErr dto.AlphaVantageError) error {
	switch {
	case avErr.ErrorMessage != "":
		return errs.NewDataFetchError(symbol, "provider error: %s", avErr.ErrorMessage)
	case avErr.Note != "":
		return errs.NewDataFetchError(symbol, "provider rate limit: %s", avErr.Note)
	case avErr.Information != "":
		return errs.NewDataFetchError(symbol, "provider rate limit: %s", avErr.Information)
	default:
		return nil
	}
}
