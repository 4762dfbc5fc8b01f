package service

import (
	"context"
	"time"

	"commodity-advisor/config"
	"commodity-advisor/internal/calculator"
	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/errs"
	"commodity-advisor/internal/history"
	"commodity-advisor/internal/repository"
	"commodity-advisor/pkg/logger"
)

type AnalysisService interface {
	Analyze(ctx context.Context, param dto.AnalyzeParam) (*dto.AnalyzeResult, error)
	RecentHistory() []dto.AnalysisRecord
}

type analysisService struct {
	cfg            *config.Config
	log            *logger.Logger
	marketDataRepo repository.MarketDataRepository
	aiRepo         repository.AIRepository
	historyLog     *history.Log
}

func NewAnalysisService(
	cfg *config.Config,
	log *logger.Logger,
	marketDataRepo repository.MarketDataRepository,
	aiRepo repository.AIRepository,
	historyLog *history.Log,
) AnalysisService {
	return &analysisService{
		cfg:            cfg,
		log:            log,
		marketDataRepo: marketDataRepo,
		aiRepo:         aiRepo,
		historyLog:     historyLog,
	}
}

// Analyze runs the full pipeline for one request: fetch the price series,
// compute statistics and risk, generate the narrative, record the result.
// Every stage failure is terminal; the caller presents the error and the
// user retries manually.
func (s *analysisService) Analyze(ctx context.Context, param dto.AnalyzeParam) (*dto.AnalyzeResult, error) {
	if err := s.checkCredentials(); err != nil {
		return nil, err
	}
	if err := validateParam(param); err != nil {
		return nil, err
	}

	series, err := s.marketDataRepo.Get(ctx, param.Symbol, param.AssetClass)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to fetch price series",
			logger.StringField("symbol", param.Symbol),
			logger.ErrorField(err))
		return nil, err
	}

	stats, err := calculator.Summarize(series, s.cfg.Analysis.TrailingWindow, s.cfg.Analysis.TrendWindow)
	if err != nil {
		return nil, err
	}

	riskLevel := calculator.ClassifyRisk(series)

	narrative, err := s.aiRepo.AnalyzeInvestment(ctx, param, series, stats)
	if err != nil {
		return nil, err
	}

	result := &dto.AnalyzeResult{
		AssetClass: param.AssetClass,
		Symbol:     param.Symbol,
		Statistics: *stats,
		RiskLevel:  riskLevel,
		Narrative:  narrative,
		Timestamp:  time.Now(),
	}

	s.historyLog.Append(dto.AnalysisRecord{
		Timestamp:        result.Timestamp,
		AssetClass:       param.AssetClass,
		Symbol:           param.Symbol,
		Question:         param.Question,
		InvestmentAmount: param.InvestmentAmount,
		Narrative:        narrative,
	})

	s.log.InfoContext(ctx, "analysis completed",
		logger.StringField("symbol", param.Symbol),
		logger.StringField("trend", string(stats.Trend)),
		logger.StringField("risk_level", string(riskLevel)),
		logger.IntField("data_points", stats.DataPoints),
	)

	return result, nil
}

// RecentHistory returns the most recent analyses, newest first, capped by
// the configured display limit.
func (s *analysisService) RecentHistory() []dto.AnalysisRecord {
	return s.historyLog.Recent(s.cfg.Analysis.MaxShowHistory)
}

// checkCredentials aborts before any network call if a required API key
// is missing.
func (s *analysisService) checkCredentials() error {
	if s.cfg.AlphaVantage.APIKey == "" {
		return errs.NewConfigurationError("alpha vantage api key is not configured")
	}
	if s.cfg.Gemini.APIKey == "" {
		return errs.NewConfigurationError("gemini api key is not configured")
	}
	return nil
}

func validateParam(param dto.AnalyzeParam) error {
	if !param.AssetClass.Valid() {
		return errs.NewAnalysisError("unknown asset class: %q", string(param.AssetClass))
	}
	if param.Symbol == "" {
		return errs.NewAnalysisError("symbol is required")
	}
	if param.Question == "" {
		return errs.NewAnalysisError("question is required")
	}
	if param.InvestmentAmount <= 0 {
		return errs.NewAnalysisError("investment amount must be positive")
	}
	return nil
}
