package service

import (
	"commodity-advisor/config"
	"commodity-advisor/internal/history"
	"commodity-advisor/internal/repository"
	"commodity-advisor/pkg/logger"
)

type Service struct {
	AnalysisService AnalysisService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
) *Service {
	historyLog := history.NewLog(cfg.Analysis.MaxHistoryEntries)
	analysisService := NewAnalysisService(cfg, log, repo.MarketDataRepo, repo.GeminiAIRepo, historyLog)

	return &Service{
		AnalysisService: analysisService,
	}
}
